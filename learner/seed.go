package learner

// seedStage initializes an empty working model from positive. Skipped
// when working already has content.
func seedStage(ps *pipelineState) {
	if !ps.working.IsEmpty() {
		return
	}
	for _, o := range ps.positive.Objects() {
		if err := ps.working.AddObject(o); err == nil {
			ps.tag("add_object")
		}
	}
	for _, l := range ps.positive.Links() {
		// AddLink is idempotent (invariant M4): a MustBeA link copied here
		// may already exist from the AddObject calls above. Seeding still
		// tags "add_link" once per positive link processed, regardless of
		// whether the underlying add was a no-op.
		if err := ps.working.AddLink(l); err == nil {
			ps.tag("add_link")
		}
	}
}
