package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concept-learner/winston/classtree"
	"github.com/concept-learner/winston/model"
	"github.com/concept-learner/winston/validate"
)

func vehicleTree(t *testing.T) *classtree.Tree {
	t.Helper()
	tree := classtree.New()
	require.NoError(t, tree.Add("Series3", "Vehicle"))
	require.NoError(t, tree.Add("Engine", "Component"))
	require.NoError(t, tree.Add("DieselEngine", "Engine"))
	require.NoError(t, tree.Add("PetrolEngine", "Engine"))
	require.NoError(t, tree.Add("Transmission", "Component"))
	require.NoError(t, tree.Add("ManualTransmission", "Transmission"))
	require.NoError(t, tree.Add("AutomaticTransmission", "Transmission"))
	return tree
}

func TestIsValid_WrongClass(t *testing.T) {
	tree := vehicleTree(t)
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: "Car1", Class: "Series3"}))

	e := model.New()
	require.NoError(t, e.AddObject(model.Object{Name: "Car1", Class: "Vehicle"}))

	ok, violations := validate.New().IsValid(m, e, tree)
	assert.False(t, ok)
	require.Len(t, violations, 1)
}

func TestIsValid_SubclassIsAccepted(t *testing.T) {
	tree := vehicleTree(t)
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: "Engine1", Class: "Engine"}))

	e := model.New()
	require.NoError(t, e.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))

	ok, violations := validate.New().IsValid(m, e, tree)
	assert.True(t, ok)
	assert.Empty(t, violations)
}

func TestIsValid_MissingInstanceMustLink(t *testing.T) {
	tree := vehicleTree(t)
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: "Car1", Class: "Series3"}))
	require.NoError(t, m.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))
	require.NoError(t, m.AddLink(model.Link{Source: "Car1", Target: "Engine1", Kind: model.Must}))

	e := model.New()
	require.NoError(t, e.AddObject(model.Object{Name: "Car1", Class: "Series3"}))

	ok, violations := validate.New().IsValid(m, e, tree)
	assert.False(t, ok)
	assert.NotEmpty(t, violations)
}

func TestIsValid_GenericMustSatisfiedBySubclass(t *testing.T) {
	tree := vehicleTree(t)
	m := model.New()
	require.NoError(t, m.AddGenericClassLink("Series3", "Engine", model.Must))

	e := model.New()
	require.NoError(t, e.AddObject(model.Object{Name: "Car1", Class: "Series3"}))
	require.NoError(t, e.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))
	require.NoError(t, e.AddLink(model.Link{Source: "Car1", Target: "Engine1", Kind: model.Regular}))

	ok, violations := validate.New().IsValid(m, e, tree)
	assert.True(t, ok)
	assert.Empty(t, violations)
}

func TestIsValid_GenericMustViolatedWithoutAnyLink(t *testing.T) {
	tree := vehicleTree(t)
	m := model.New()
	require.NoError(t, m.AddGenericClassLink("Series3", "Engine", model.Must))

	e := model.New()
	require.NoError(t, e.AddObject(model.Object{Name: "Car1", Class: "Series3"}))

	ok, violations := validate.New().IsValid(m, e, tree)
	assert.False(t, ok)
	require.Len(t, violations, 1)
}

func TestIsValid_MustNotViolatedByGenericLink(t *testing.T) {
	tree := vehicleTree(t)
	m := model.New()
	require.NoError(t, m.AddGenericClassLink("Series3", "ManualTransmission", model.MustNot))

	e := model.New()
	require.NoError(t, e.AddObject(model.Object{Name: "Car1", Class: "Series3"}))
	require.NoError(t, e.AddObject(model.Object{Name: "Trans1", Class: "ManualTransmission"}))
	require.NoError(t, e.AddLink(model.Link{Source: "Car1", Target: "Trans1", Kind: model.Regular}))

	ok, violations := validate.New().IsValid(m, e, tree)
	assert.False(t, ok)
	require.Len(t, violations, 1)
}

func TestIsValid_MustNotInstanceLevel(t *testing.T) {
	tree := vehicleTree(t)
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: "Car1", Class: "Series3"}))
	require.NoError(t, m.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))
	require.NoError(t, m.AddLink(model.Link{Source: "Car1", Target: "Engine1", Kind: model.MustNot}))

	e := model.New()
	require.NoError(t, e.AddObject(model.Object{Name: "Car1", Class: "Series3"}))
	require.NoError(t, e.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))
	require.NoError(t, e.AddLink(model.Link{Source: "Car1", Target: "Engine1", Kind: model.Regular}))

	ok, violations := validate.New().IsValid(m, e, tree)
	assert.False(t, ok)
	require.Len(t, violations, 1)
}

func TestIsValid_AttributeInterval(t *testing.T) {
	tree := vehicleTree(t)
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))
	m.SetAttribute("Engine1", "power", model.NewInterval(100, 150))

	e := model.New()
	require.NoError(t, e.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))
	e.SetAttribute("Engine1", "power", model.Scalar{Value: model.NewScalarNumber(120)})

	ok, violations := validate.New().IsValid(m, e, tree)
	assert.True(t, ok)
	assert.Empty(t, violations)
}

func TestIsValid_AttributeOutOfRange(t *testing.T) {
	tree := vehicleTree(t)
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))
	m.SetAttribute("Engine1", "power", model.NewInterval(100, 150))

	e := model.New()
	require.NoError(t, e.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))
	e.SetAttribute("Engine1", "power", model.Scalar{Value: model.NewScalarNumber(300)})

	ok, violations := validate.New().IsValid(m, e, tree)
	assert.False(t, ok)
	require.Len(t, violations, 1)
}

func TestIsValid_AttributeNotInSet(t *testing.T) {
	tree := vehicleTree(t)
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))
	m.SetAttribute("Engine1", "fuel", model.NewSet(model.NewScalarString("diesel")))

	e := model.New()
	require.NoError(t, e.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))
	e.SetAttribute("Engine1", "fuel", model.Scalar{Value: model.NewScalarString("petrol")})

	ok, violations := validate.New().IsValid(m, e, tree)
	assert.False(t, ok)
	require.Len(t, violations, 1)
}

func TestIsValid_AttributeMissing(t *testing.T) {
	tree := vehicleTree(t)
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))
	m.SetAttribute("Engine1", "power", model.NewInterval(100, 150))

	e := model.New()
	require.NoError(t, e.AddObject(model.Object{Name: "Engine1", Class: "DieselEngine"}))

	ok, violations := validate.New().IsValid(m, e, tree)
	assert.False(t, ok)
	require.Len(t, violations, 1)
}

func TestIsValid_EmptyModelsAreTriviallyValid(t *testing.T) {
	tree := vehicleTree(t)
	ok, violations := validate.New().IsValid(model.New(), model.New(), tree)
	assert.True(t, ok)
	assert.Empty(t, violations)
}
