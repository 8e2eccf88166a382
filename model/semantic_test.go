package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concept-learner/winston/model"
)

func TestToSemanticNetwork_DefaultCategoryRules(t *testing.T) {
	m := buildVehicleModel(t)
	net := m.ToSemanticNetwork(nil)

	require.Len(t, net.Nodes, 2)

	byName := map[string]model.SemanticNode{}
	for _, n := range net.Nodes {
		byName[n.Name] = n
	}

	assert.Equal(t, "BMW", byName["Car1"].Category)
	assert.Equal(t, "Engine", byName["Engine1"].Category)
}

func TestToSemanticNetwork_UnmatchedClassFallsBackToOther(t *testing.T) {
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: "Widget1", Class: "Gadget"}))

	net := m.ToSemanticNetwork(nil)
	require.Len(t, net.Nodes, 1)
	assert.Equal(t, "Other", net.Nodes[0].Category)
}

func TestToSemanticNetwork_CustomCategoryRules(t *testing.T) {
	m := model.New()
	require.NoError(t, m.AddObject(model.Object{Name: "Widget1", Class: "Gadget"}))

	rules := []model.CategoryRule{
		{Category: "Gizmo", Match: func(class string) bool { return class == "Gadget" }},
	}
	net := m.ToSemanticNetwork(rules)
	require.Len(t, net.Nodes, 1)
	assert.Equal(t, "Gizmo", net.Nodes[0].Category)
}

func TestToSemanticNetwork_IncludesLinks(t *testing.T) {
	m := buildVehicleModel(t)
	net := m.ToSemanticNetwork(nil)

	found := false
	for _, l := range net.Links {
		if l.Source == "Car1" && l.Target == "Engine1" && l.Kind == model.Regular {
			found = true
		}
	}
	assert.True(t, found)
}
