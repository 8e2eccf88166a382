package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concept-learner/winston/formula"
	"github.com/concept-learner/winston/model"
)

func TestToModel_BuildsObjectsLinksAndAttributes(t *testing.T) {
	predicates := []formula.Predicate{
		formula.IsA{Object: "c1", Class: "ModelA"},
		formula.IsA{Object: "e1", Class: "EngineX"},
		formula.HasPart{Source: "c1", Target: "e1"},
		formula.MustHavePart{Source: "c1", Target: "e1"},
		formula.MustNotHavePart{Source: "ModelA", Target: "EngineY"},
		formula.Attribute{Object: "e1", Name: "power", Value: model.Scalar{Value: model.NewScalarNumber(150)}},
	}

	m, err := formula.ToModel(predicates)
	require.NoError(t, err)

	assert.True(t, m.HasLink("c1", "e1", model.Regular))
	assert.True(t, m.HasLink("c1", "e1", model.Must))
	assert.True(t, m.HasGenericClassLink("ModelA", "EngineY", model.MustNot))
	v, ok := m.GetAttribute("e1", "power")
	require.True(t, ok)
	assert.Equal(t, model.Scalar{Value: model.NewScalarNumber(150)}, v)
}

func TestToModel_PropagatesObjectErrors(t *testing.T) {
	predicates := []formula.Predicate{
		formula.IsA{Object: "c1", Class: "ModelA"},
		formula.IsA{Object: "c1", Class: "ModelB"},
	}
	_, err := formula.ToModel(predicates)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDuplicateName)
}

func TestToModel_PropagatesDanglingLinkErrors(t *testing.T) {
	predicates := []formula.Predicate{
		formula.IsA{Object: "c1", Class: "ModelA"},
		formula.HasPart{Source: "c1", Target: "e1"},
	}
	_, err := formula.ToModel(predicates)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDanglingLink)
}

func TestFromModel_RendersEveryPredicateKind(t *testing.T) {
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: "c1", Class: "ModelA"}))
	require.NoError(t, m.AddObject(model.Object{Name: "e1", Class: "EngineX"}))
	require.NoError(t, m.AddLink(model.Link{Source: "c1", Target: "e1", Kind: model.Regular}))
	require.NoError(t, m.AddLink(model.Link{Source: "c1", Target: "e1", Kind: model.Must}))
	require.NoError(t, m.AddGenericClassLink("ModelA", "EngineY", model.MustNot))
	m.SetAttribute("e1", "power", model.Scalar{Value: model.NewScalarNumber(150)})

	predicates := formula.FromModel(m)

	assert.Contains(t, predicates, formula.IsA{Object: "c1", Class: "ModelA"})
	assert.Contains(t, predicates, formula.IsA{Object: "e1", Class: "EngineX"})
	assert.Contains(t, predicates, formula.HasPart{Source: "c1", Target: "e1"})
	assert.Contains(t, predicates, formula.MustHavePart{Source: "c1", Target: "e1"})
	assert.Contains(t, predicates, formula.MustNotHavePart{Source: "ModelA", Target: "EngineY"})
	assert.Contains(t, predicates, formula.Attribute{
		Object: "e1", Name: "power", Value: model.Scalar{Value: model.NewScalarNumber(150)},
	})

	for _, p := range predicates {
		if isA, ok := p.(formula.IsA); ok {
			assert.NotEqual(t, "MustBeA", isA.Class, "MustBeA links are implied by IsA and must not be rendered separately")
		}
	}
}

func TestRoundTrip_ToModelFromModelEqualsOriginal(t *testing.T) {
	original := model.New()
	require.NoError(t, original.AddObject(model.Object{Name: "c1", Class: "ModelA"}))
	require.NoError(t, original.AddObject(model.Object{Name: "e1", Class: "EngineX"}))
	require.NoError(t, original.AddLink(model.Link{Source: "c1", Target: "e1", Kind: model.Regular}))
	require.NoError(t, original.AddGenericClassLink("ModelA", "Engine", model.Must))
	original.SetAttribute("e1", "power", model.NewInterval(100, 200))

	roundTripped, err := formula.ToModel(formula.FromModel(original))
	require.NoError(t, err)

	assert.True(t, original.Equal(roundTripped))
}
