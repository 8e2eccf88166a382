package learner

import (
	"slices"

	"github.com/concept-learner/winston/model"
)

// forbidLinkStage forbids component classes that distinguish a near-miss
// from the positive example. Applied only
// when a near-miss is present.
func forbidLinkStage(ps *pipelineState) {
	if !ps.hasNearMiss() {
		return
	}
	anchors := sharedAnchorClasses(ps.positive, ps.nearMiss)
	for _, a := range anchors {
		positiveComponents := componentClassesFrom(ps.positive, a)
		nearMissComponents := componentClassesFrom(ps.nearMiss, a)

		candidates := make([]string, 0)
		for x := range nearMissComponents {
			if !positiveComponents[x] {
				candidates = append(candidates, x)
			}
		}
		slices.Sort(candidates)

		for _, x := range candidates {
			// wouldConflict rejects the prohibition when an existing
			// Must(A -> X), a retained instance link A -> X, or a
			// subclass-chained Must rule contradicts it. Because
			// candidates are the concrete classes actually observed in
			// the near-miss, this already prefers the specific-
			// difference form over a coarser parent-class prohibition.
			candidate := model.Link{Source: a, Target: x, Kind: model.MustNot}
			if wouldConflict(ps.working, ps.tree, candidate) {
				continue
			}
			if ps.working.HasGenericClassLink(a, x, model.MustNot) {
				continue
			}
			if err := ps.working.AddGenericClassLink(a, x, model.MustNot); err == nil {
				ps.tag("forbid_link")
			}
		}
	}
}

// sharedAnchorClasses returns, sorted, the classes that act as
// composite "top-level" objects (they source at least one Regular link
// and are never themselves a Regular link's target) in both a and b.
func sharedAnchorClasses(a, b *model.Model) []string {
	aAnchors := anchorClasses(a)
	bAnchors := anchorClasses(b)
	var shared []string
	for c := range aAnchors {
		if bAnchors[c] {
			shared = append(shared, c)
		}
	}
	slices.Sort(shared)
	return shared
}

func anchorClasses(m *model.Model) map[string]bool {
	isComponentTarget := map[string]bool{}
	for _, l := range m.Links() {
		if l.Kind != model.Regular {
			continue
		}
		if tgt, ok := m.Object(l.Target); ok {
			isComponentTarget[tgt.Class] = true
		}
	}

	anchors := map[string]bool{}
	for _, o := range m.Objects() {
		if isComponentTarget[o.Class] {
			continue
		}
		if len(m.LinksFrom(o.Name)) == 0 {
			continue
		}
		hasComponentLink := false
		for _, l := range m.LinksFrom(o.Name) {
			if l.Kind == model.Regular {
				hasComponentLink = true
				break
			}
		}
		if hasComponentLink {
			anchors[o.Class] = true
		}
	}
	return anchors
}
