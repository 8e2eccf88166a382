package learner

import "github.com/concept-learner/winston/model"

// dropLinkStage discards Regular links the current positive example no
// longer exhibits, unless a generic Must rule still justifies keeping
// them.
func dropLinkStage(ps *pipelineState) {
	for _, l := range ps.working.Links() {
		if l.Kind != model.Regular {
			continue
		}
		if ps.positive.HasLink(l.Source, l.Target, model.Regular) {
			continue
		}
		srcClass := resolveClassName(ps.working, l.Source)
		tgtClass := resolveClassName(ps.working, l.Target)
		if ps.working.HasGenericClassLink(srcClass, tgtClass, model.Must) {
			continue // retained: a Must rule still requires this signature
		}
		ps.working.RemoveLink(l)
		ps.tag("drop_link")
	}
}
