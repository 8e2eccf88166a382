package formula

import (
	"fmt"
	"slices"

	"github.com/concept-learner/winston/model"
)

// ToModel builds a Model from predicates, applied in order. IsA
// predicates must introduce an object before any predicate referencing
// it by object name. A MustHavePart or MustNotHavePart whose Source is not
// a registered object is treated as a generic class-level rule between
// class names; HasPart, and a rule whose Source is an object, need both
// endpoints to be registered objects.
func ToModel(predicates []Predicate, opts ...model.Option) (*model.Model, error) {
	m := model.New(opts...)
	for _, p := range predicates {
		if err := applyPredicate(m, p); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func applyPredicate(m *model.Model, p Predicate) error {
	switch v := p.(type) {
	case IsA:
		if err := m.AddObject(model.Object{Name: v.Object, Class: v.Class}); err != nil {
			return fmt.Errorf("formula: IsA(%s, %s): %w", v.Object, v.Class, err)
		}
	case HasPart:
		if err := m.AddLink(model.Link{Source: v.Source, Target: v.Target, Kind: model.Regular}); err != nil {
			return fmt.Errorf("formula: HasPart(%s, %s): %w", v.Source, v.Target, err)
		}
	case MustHavePart:
		if err := addRule(m, v.Source, v.Target, model.Must); err != nil {
			return fmt.Errorf("formula: MustHavePart(%s, %s): %w", v.Source, v.Target, err)
		}
	case MustNotHavePart:
		if err := addRule(m, v.Source, v.Target, model.MustNot); err != nil {
			return fmt.Errorf("formula: MustNotHavePart(%s, %s): %w", v.Source, v.Target, err)
		}
	case Attribute:
		m.SetAttribute(v.Object, v.Name, v.Value)
	default:
		return fmt.Errorf("formula: unrecognized predicate %T", p)
	}
	return nil
}

func addRule(m *model.Model, source, target string, kind model.LinkKind) error {
	if _, ok := m.Object(source); ok {
		return m.AddLink(model.Link{Source: source, Target: target, Kind: kind})
	}
	return m.AddGenericClassLink(source, target, kind)
}

// FromModel renders m as the predicate set ToModel(FromModel(m)) would
// reconstruct: one IsA per object, one HasPart/MustHavePart/
// MustNotHavePart per non-MustBeA link (MustBeA is implied by IsA and
// omitted), then one Attribute per object attribute. Ordering matches
// m.Objects(), m.Links() and each object's sorted attribute names.
func FromModel(m *model.Model) []Predicate {
	var out []Predicate
	for _, o := range m.Objects() {
		out = append(out, IsA{Object: o.Name, Class: o.Class})
	}
	for _, l := range m.Links() {
		switch l.Kind {
		case model.MustBeA:
			continue // already implied by the IsA predicate above
		case model.Regular:
			out = append(out, HasPart{Source: l.Source, Target: l.Target})
		case model.Must:
			out = append(out, MustHavePart{Source: l.Source, Target: l.Target})
		case model.MustNot:
			out = append(out, MustNotHavePart{Source: l.Source, Target: l.Target})
		}
	}
	for _, o := range m.Objects() {
		for _, name := range sortedAttributeNames(o.Attributes) {
			v, _ := o.Attribute(name)
			out = append(out, Attribute{Object: o.Name, Name: name, Value: v})
		}
	}
	return out
}

func sortedAttributeNames(attrs map[string]model.AttrValue) []string {
	names := make([]string, 0, len(attrs))
	for k := range attrs {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}
