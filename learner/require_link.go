package learner

import "github.com/concept-learner/winston/model"

// requireLinkStage promotes positive links whose class signature is
// absent from near_miss into Must obligations. Skipped when no
// near_miss is present.
func requireLinkStage(ps *pipelineState) {
	if !ps.hasNearMiss() {
		return
	}
	for _, p := range ps.positive.Links() {
		if p.Kind != model.Regular {
			continue
		}
		srcObj, ok := ps.positive.Object(p.Source)
		if !ok {
			continue
		}
		tgtObj, ok := ps.positive.Object(p.Target)
		if !ok {
			continue
		}
		if hasExactClassLink(ps.nearMiss, srcObj.Class, tgtObj.Class) {
			continue // signature appears in near_miss too; not discriminating
		}

		candidate := model.Link{Source: srcObj.Class, Target: tgtObj.Class, Kind: model.Must}
		if wouldConflict(ps.working, ps.tree, candidate) {
			continue
		}

		changed := false
		if !ps.working.HasGenericClassLink(srcObj.Class, tgtObj.Class, model.Must) {
			if err := ps.working.AddGenericClassLink(srcObj.Class, tgtObj.Class, model.Must); err == nil {
				changed = true
			}
		}
		if _, ok := ps.working.Object(p.Source); ok {
			if _, ok := ps.working.Object(p.Target); ok {
				if !ps.working.HasLink(p.Source, p.Target, model.Must) {
					if err := ps.working.AddLink(model.Link{Source: p.Source, Target: p.Target, Kind: model.Must}); err == nil {
						changed = true
					}
				}
			}
		}
		if changed {
			ps.tag("require_link")
		}
	}
}
