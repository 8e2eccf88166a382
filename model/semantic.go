package model

import "strings"

// SemanticNetwork is a rendering of a Model suitable for graph
// visualization: objects become nodes grouped into display categories,
// and links become edges.
type SemanticNetwork struct {
	Nodes []SemanticNode
	Links []SemanticLink
}

// SemanticNode is one object rendered as a visualization node.
type SemanticNode struct {
	ID         string
	Name       string
	Class      string
	Category   string
	Attributes map[string]AttrValue
}

// SemanticLink is one link rendered as a visualization edge.
type SemanticLink struct {
	Source string
	Target string
	Kind   LinkKind
}

// CategoryRule assigns a display category to a node, keyed on its
// class name; the first matching rule in the list wins. DefaultCategoryRules
// reproduces the original's fixed BMW/Engine/Transmission/Drive buckets,
// generalized so callers can supply their own domain instead.
type CategoryRule struct {
	Match    func(class string) bool
	Category string
}

// DefaultCategoryRules reproduces backend/model.py's to_semantic_network
// category buckets for the worked vehicle example. Classes matching none
// of these fall into "Other".
var DefaultCategoryRules = []CategoryRule{
	{Category: "BMW", Match: classContainsAny("BMW", "Series3", "Series5", "Series7", "X5", "X7")},
	{Category: "Engine", Match: classContainsAny("Engine", "DieselEngine", "PetrolEngine", "HybridEngine")},
	{Category: "Transmission", Match: classContainsAny("Transmission", "AutomaticTransmission", "ManualTransmission")},
	{Category: "Drive", Match: classContainsAny("DriveSystem", "RWD", "AWD", "XDrive")},
}

func classContainsAny(substrings ...string) func(string) bool {
	return func(class string) bool {
		for _, s := range substrings {
			if strings.Contains(class, s) {
				return true
			}
		}
		return false
	}
}

func categoryFor(class string, rules []CategoryRule) string {
	for _, r := range rules {
		if r.Match(class) {
			return r.Category
		}
	}
	return "Other"
}

// ToSemanticNetwork renders m as a [SemanticNetwork] using rules to
// assign each node's Category. Pass nil to use [DefaultCategoryRules].
func (m *Model) ToSemanticNetwork(rules []CategoryRule) SemanticNetwork {
	if rules == nil {
		rules = DefaultCategoryRules
	}
	var net SemanticNetwork
	if m == nil {
		return net
	}
	for _, name := range m.objectOrd {
		o := m.objects[name]
		net.Nodes = append(net.Nodes, SemanticNode{
			ID:         o.Name,
			Name:       o.Name,
			Class:      o.Class,
			Category:   categoryFor(o.Class, rules),
			Attributes: o.Attributes,
		})
	}
	for _, l := range m.links {
		net.Links = append(net.Links, SemanticLink{
			Source: l.Source,
			Target: l.Target,
			Kind:   l.Kind,
		})
	}
	return net
}
