package learner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concept-learner/winston/model"
)

func namedModel(t *testing.T, name string) *model.Model {
	t.Helper()
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: name, Class: "Vehicle"}))
	return m
}

func TestPushHistory_SkipsNilAndEmptyModels(t *testing.T) {
	l := &Learner{historyCap: 3}

	l.pushHistory(nil)
	l.pushHistory(model.New())

	assert.Empty(t, l.history)
}

func TestPushHistory_EvictsOldestAtCapacity(t *testing.T) {
	l := &Learner{historyCap: 2}

	l.pushHistory(namedModel(t, "a"))
	l.pushHistory(namedModel(t, "b"))
	l.pushHistory(namedModel(t, "c"))

	require.Len(t, l.history, 2)
	_, hasA := l.history[0].m.Object("a")
	assert.False(t, hasA, "oldest snapshot should have been evicted")
	_, hasB := l.history[0].m.Object("b")
	assert.True(t, hasB)
	_, hasC := l.history[1].m.Object("c")
	assert.True(t, hasC)
}

func TestPushHistory_CopiesSoLaterMutationDoesNotLeak(t *testing.T) {
	l := &Learner{historyCap: 1}

	src := namedModel(t, "a")
	l.pushHistory(src)
	require.NoError(t, src.AddObject(model.Object{Name: "b", Class: "Vehicle"}))

	_, hasB := l.history[0].m.Object("b")
	assert.False(t, hasB, "snapshot must be an independent copy")
}

func TestHistoryNewestToOldest_ReversesOrder(t *testing.T) {
	l := &Learner{historyCap: 3}

	l.pushHistory(namedModel(t, "a"))
	l.pushHistory(namedModel(t, "b"))
	l.pushHistory(namedModel(t, "c"))

	ordered := l.historyNewestToOldest()
	require.Len(t, ordered, 3)
	_, hasC := ordered[0].m.Object("c")
	assert.True(t, hasC)
	_, hasA := ordered[2].m.Object("a")
	assert.True(t, hasA)
}
