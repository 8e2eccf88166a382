package learner

import (
	"slices"

	"github.com/concept-learner/winston/model"
)

// propagateToCommonAncestorStage lifts a Must obligation shared by two
// sibling-ish source classes onto their nearest common ancestor.
func propagateToCommonAncestorStage(ps *pipelineState) {
	mustTargets := map[string]map[string]bool{}
	for _, l := range ps.working.Links() {
		if l.Kind != model.Must {
			continue
		}
		src := resolveClassName(ps.working, l.Source)
		tgt := resolveClassName(ps.working, l.Target)
		if mustTargets[src] == nil {
			mustTargets[src] = map[string]bool{}
		}
		mustTargets[src][tgt] = true
	}

	sources := make([]string, 0, len(mustTargets))
	for s := range mustTargets {
		sources = append(sources, s)
	}
	slices.Sort(sources)

	for i, a := range sources {
		for _, b := range sources[i+1:] {
			propagatePair(ps, a, b, mustTargets)
		}
	}
}

func propagatePair(ps *pipelineState, a, b string, mustTargets map[string]map[string]bool) {
	shared := make([]string, 0)
	for t := range mustTargets[a] {
		if mustTargets[b][t] {
			shared = append(shared, t)
		}
	}
	if len(shared) == 0 {
		return
	}
	slices.Sort(shared)

	ancestor, ok := ps.tree.CommonAncestor(a, b)
	if !ok {
		return
	}
	for _, t := range shared {
		if ps.working.HasGenericClassLink(ancestor, t, model.Must) {
			continue
		}
		candidate := model.Link{Source: ancestor, Target: t, Kind: model.Must}
		if wouldConflict(ps.working, ps.tree, candidate) {
			continue
		}
		if err := ps.working.AddGenericClassLink(ancestor, t, model.Must); err == nil {
			ps.tag("propagate_to_common_ancestor")
		}
	}
}
