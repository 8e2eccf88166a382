package model

import (
	"fmt"
	"strings"
)

// ToFormula renders the model as a single first-order-logic conjunction
// over a fixed predicate vocabulary (Ι for IsA, Π for Regular, Μ for
// Must, Ν for MustNot, Α for Attribute). Predicate order is: one IsA
// predicate per object, one relation predicate per non-MustBeA link (in
// insertion order), then one attribute predicate per object attribute.
func (m *Model) ToFormula() string {
	if m == nil {
		return ""
	}
	var predicates []string
	for _, name := range m.objectOrd {
		o := m.objects[name]
		predicates = append(predicates, fmt.Sprintf("Ι(%s, %s)", o.Name, o.Class))
	}
	for _, l := range m.links {
		switch l.Kind {
		case Regular:
			predicates = append(predicates, fmt.Sprintf("Π(%s, %s)", l.Source, l.Target))
		case Must:
			predicates = append(predicates, fmt.Sprintf("Μ(%s, %s)", l.Source, l.Target))
		case MustNot:
			predicates = append(predicates, fmt.Sprintf("Ν(%s, %s)", l.Source, l.Target))
		case MustBeA:
			// already covered by the Ι predicate above.
		}
	}
	for _, name := range m.objectOrd {
		o := m.objects[name]
		for _, attr := range sortedAttrNames(o.Attributes) {
			v := o.Attributes[attr]
			predicates = append(predicates, fmt.Sprintf("Α(%s, %s, %s)", o.Name, attr, v.String()))
		}
	}
	return strings.Join(predicates, " ∧ ")
}

func sortedAttrNames(attrs map[string]AttrValue) []string {
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	// insertion order is not tracked per-attribute, so attribute
	// predicates are ordered lexicographically for determinism.
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}

// ExtractModelRules derives one first-order rule per requested anchor
// class, generalized from backend/model.py's extract_model_rules (which
// hard-coded the anchor set to {"BMW","Series3","Series5","Series7",
// "X5","X7"}; here the caller supplies the anchor classes instead).
//
// For each anchor class, the rule body conjoins:
//   - a Must predicate for every component class the anchor's instances
//     (or the anchor class itself, via a generic class-level Must link)
//     are required to have,
//   - a MustNot predicate for every forbidden component class,
//   - an Attribute predicate for every attribute value observed on a
//     linked component of an anchor instance.
//
// Anchor classes absent from the model produce no entry.
func (m *Model) ExtractModelRules(anchors []string) map[string]string {
	if m == nil || len(anchors) == 0 {
		return map[string]string{}
	}
	rules := make(map[string]string, len(anchors))
	for _, anchor := range anchors {
		if body := m.ruleBodyForAnchor(anchor); body != "" {
			rules[anchor] = fmt.Sprintf("%s(x) → %s", anchor, body)
		}
	}
	return rules
}

func (m *Model) ruleBodyForAnchor(anchor string) string {
	var clauses []string
	seen := make(map[string]bool)

	add := func(clause string) {
		if !seen[clause] {
			seen[clause] = true
			clauses = append(clauses, clause)
		}
	}

	for _, l := range m.links {
		if l.Kind != Must && l.Kind != MustNot {
			continue
		}
		if src, ok := m.objects[l.Source]; ok && src.Class == anchor {
			add(m.requirementClause(l, anchor))
			continue
		}
		if l.Source == anchor {
			add(m.requirementClause(l, anchor))
		}
	}

	for _, name := range m.objectOrd {
		o := m.objects[name]
		if o.Class != anchor {
			continue
		}
		for _, l := range m.LinksFrom(o.Name) {
			if l.Kind == Regular {
				if target, ok := m.objects[l.Target]; ok {
					for _, attr := range sortedAttrNames(target.Attributes) {
						add(fmt.Sprintf("Α(%s, %s, %s)", target.Class, attr, target.Attributes[attr].String()))
					}
				}
			}
		}
	}

	if len(clauses) == 0 {
		return ""
	}
	return strings.Join(clauses, " ∧ ")
}

func (m *Model) requirementClause(l Link, anchor string) string {
	var targetClass string
	if t, ok := m.objects[l.Target]; ok {
		targetClass = t.Class
	} else {
		targetClass = l.Target
	}
	switch l.Kind {
	case Must:
		return fmt.Sprintf("Μ(%s, %s)", anchor, targetClass)
	case MustNot:
		return fmt.Sprintf("Ν(%s, %s)", anchor, targetClass)
	default:
		return ""
	}
}
