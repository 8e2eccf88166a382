package learner

import "github.com/concept-learner/winston/model"

// checkConsistencyStage resolves MustNot rules that newly-accepted
// positive evidence contradicts. When a rule MustNot(A -> B) is removed
// and B has a parent P, the obligation Must(A -> P) is added in its
// place if that rule does not itself conflict.
func checkConsistencyStage(ps *pipelineState) {
	for _, l := range ps.working.Links() {
		if l.Kind != model.MustNot {
			continue
		}
		a := resolveClassName(ps.working, l.Source)
		b := resolveClassName(ps.working, l.Target)

		if !hasLinkBetweenSubclasses(ps.positive, ps.tree, a, b) {
			continue
		}

		ps.working.RemoveLink(l)
		ps.tag("resolve_conflict")

		parent, ok := ps.tree.Parent(b)
		if !ok {
			continue
		}
		candidate := model.Link{Source: a, Target: parent, Kind: model.Must}
		if wouldConflict(ps.working, ps.tree, candidate) {
			continue
		}
		if err := ps.working.AddGenericClassLink(a, parent, model.Must); err == nil {
			ps.tag("generalize_conflict")
		}
	}
}
