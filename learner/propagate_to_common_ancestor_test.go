package learner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concept-learner/winston/classtree"
	"github.com/concept-learner/winston/model"
)

func propagateTree(t *testing.T) *classtree.Tree {
	t.Helper()
	tr := classtree.New()
	require.NoError(t, tr.Add("Brand", "Vehicle"))
	require.NoError(t, tr.Add("ModelA", "Brand"))
	require.NoError(t, tr.Add("ModelB", "Brand"))
	require.NoError(t, tr.Add("Engine", "Component"))
	return tr
}

func TestPropagateToCommonAncestor_LiftsSharedMustTarget(t *testing.T) {
	working := model.New()
	require.NoError(t, working.AddGenericClassLink("ModelA", "Engine", model.Must))
	require.NoError(t, working.AddGenericClassLink("ModelB", "Engine", model.Must))

	ps := &pipelineState{working: working, positive: model.New(), tree: propagateTree(t)}
	propagateToCommonAncestorStage(ps)

	assert.True(t, working.HasGenericClassLink("Brand", "Engine", model.Must))
	assert.Contains(t, ps.applied, "propagate_to_common_ancestor")
}

func TestPropagateToCommonAncestor_NoSharedTargetDoesNothing(t *testing.T) {
	working := model.New()
	require.NoError(t, working.AddGenericClassLink("ModelA", "Engine", model.Must))

	ps := &pipelineState{working: working, positive: model.New(), tree: propagateTree(t)}
	propagateToCommonAncestorStage(ps)

	assert.False(t, working.HasGenericClassLink("Brand", "Engine", model.Must))
	assert.Empty(t, ps.applied)
}

func TestPropagateToCommonAncestor_SkipsWhenAncestorRuleWouldConflict(t *testing.T) {
	working := model.New()
	require.NoError(t, working.AddGenericClassLink("ModelA", "Engine", model.Must))
	require.NoError(t, working.AddGenericClassLink("ModelB", "Engine", model.Must))
	require.NoError(t, working.AddGenericClassLink("Brand", "Engine", model.MustNot))

	ps := &pipelineState{working: working, positive: model.New(), tree: propagateTree(t)}
	propagateToCommonAncestorStage(ps)

	assert.False(t, working.HasGenericClassLink("Brand", "Engine", model.Must))
	assert.Empty(t, ps.applied)
}
