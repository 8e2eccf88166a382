package learner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concept-learner/winston/learner"
	"github.com/concept-learner/winston/model"
	"github.com/concept-learner/winston/validate"
)

// A concept never holds a Must and a MustNot rule for the same class
// pair at once: every heuristic that could introduce one checks
// wouldConflict against the other's presence first.
func TestProperty_NoMustAndMustNotCoexistForSamePair(t *testing.T) {
	tr := vehicleComponentTree(t)
	l := learner.New(tr)

	positive := model.New()
	mustObject(t, positive, "c1", "ModelA")
	mustObject(t, positive, "e1", "EngineX")
	require.NoError(t, positive.AddLink(model.Link{Source: "c1", Target: "e1", Kind: model.Regular}))

	nearMiss := model.New()
	mustObject(t, nearMiss, "c2", "ModelA")
	mustObject(t, nearMiss, "e2", "EngineY")
	require.NoError(t, nearMiss.AddLink(model.Link{Source: "c2", Target: "e2", Kind: model.Regular}))

	result := l.Update(model.New(), positive, nearMiss)

	for _, link := range result.Links() {
		switch link.Kind {
		case model.Must:
			assert.False(t, result.HasLink(link.Source, link.Target, model.MustNot),
				"Must and MustNot both present for %s -> %s", link.Source, link.Target)
		case model.MustNot:
			assert.False(t, result.HasLink(link.Source, link.Target, model.Must),
				"Must and MustNot both present for %s -> %s", link.Source, link.Target)
		}
	}
}

// Repeating the same update is a fixed point: once a model has absorbed
// a positive example, folding that same example in again changes
// nothing.
func TestProperty_UpdateIsIdempotentOnSameInput(t *testing.T) {
	tr := vehicleComponentTree(t)
	l := learner.New(tr)

	positive := model.New()
	mustObject(t, positive, "c1", "ModelA")
	mustObject(t, positive, "e1", "EngineX")
	require.NoError(t, positive.AddLink(model.Link{Source: "c1", Target: "e1", Kind: model.Regular}))

	first := l.Update(model.New(), positive, nil)
	second := l.Update(first, positive, nil)

	assert.True(t, first.Equal(second))
}

// The example that produced an update is always accepted by the
// resulting concept: backup_rule exists precisely to guarantee this.
func TestProperty_PositiveExampleAcceptedAfterUpdate(t *testing.T) {
	tr := vehicleComponentTree(t)
	l := learner.New(tr)
	v := validate.New()

	positive := model.New()
	mustObject(t, positive, "c1", "ModelA")
	mustObject(t, positive, "e1", "EngineX")
	require.NoError(t, positive.AddLink(model.Link{Source: "c1", Target: "e1", Kind: model.Regular}))

	result := l.Update(model.New(), positive, nil)

	ok, violations := v.IsValid(result, positive, tr)
	assert.True(t, ok, "violations: %v", violations)
}

// A near-miss counterexample is rejected by the concept that learned
// from it: forbid_link's prohibition must actually discriminate.
func TestProperty_NearMissRejectedAfterUpdate(t *testing.T) {
	tr := vehicleComponentTree(t)
	l := learner.New(tr)
	v := validate.New()

	positive := model.New()
	mustObject(t, positive, "c1", "ModelA")
	mustObject(t, positive, "e1", "EngineX")
	require.NoError(t, positive.AddLink(model.Link{Source: "c1", Target: "e1", Kind: model.Regular}))

	nearMiss := model.New()
	mustObject(t, nearMiss, "c1", "ModelA")
	mustObject(t, nearMiss, "e2", "EngineY")
	require.NoError(t, nearMiss.AddLink(model.Link{Source: "c1", Target: "e2", Kind: model.Regular}))

	result := l.Update(model.New(), positive, nearMiss)

	ok, violations := v.IsValid(result, nearMiss, tr)
	assert.False(t, ok)
	assert.NotEmpty(t, violations)
}
