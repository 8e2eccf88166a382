package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/concept-learner/winston/model"
)

func TestLinkKind_String(t *testing.T) {
	tests := []struct {
		kind     model.LinkKind
		expected string
	}{
		{model.Regular, "regular"},
		{model.Must, "must"},
		{model.MustNot, "must_not"},
		{model.MustBeA, "must_be_a"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestLinkKind_Opposite(t *testing.T) {
	assert.Equal(t, model.MustNot, model.Must.Opposite())
	assert.Equal(t, model.Must, model.MustNot.Opposite())
}

func TestLinkKind_Opposite_PanicsOnNonRuleKind(t *testing.T) {
	assert.Panics(t, func() { model.Regular.Opposite() })
	assert.Panics(t, func() { model.MustBeA.Opposite() })
}

func TestLinkKind_IsRule(t *testing.T) {
	assert.True(t, model.Must.IsRule())
	assert.True(t, model.MustNot.IsRule())
	assert.False(t, model.Regular.IsRule())
	assert.False(t, model.MustBeA.IsRule())
}

func TestLink_Equal(t *testing.T) {
	a := model.Link{Source: "Car1", Target: "DieselEngine1", Kind: model.Must}
	b := model.Link{Source: "Car1", Target: "DieselEngine1", Kind: model.Must}
	c := model.Link{Source: "Car1", Target: "DieselEngine1", Kind: model.MustNot}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestLink_String(t *testing.T) {
	l := model.Link{Source: "Car1", Target: "Engine1", Kind: model.Must}
	assert.Equal(t, "Car1 -must-> Engine1", l.String())
}
