package validate

import (
	"fmt"

	"github.com/concept-learner/winston/classtree"
	"github.com/concept-learner/winston/diag"
	"github.com/concept-learner/winston/model"
)

// Validator decides whether an example model satisfies a learned model.
// The zero value is ready to use: Validator carries no state.
type Validator struct{}

// New returns a ready-to-use Validator.
func New() Validator {
	return Validator{}
}

// IsValid runs the five-step decision procedure against e using m as the
// learned model and t for subclass reasoning. It is pure: m, e and t are
// never mutated.
func (Validator) IsValid(m, e *model.Model, t *classtree.Tree) (bool, []Violation) {
	var violations []Violation

	violations = append(violations, checkObjectClasses(m, e, t)...)
	violations = append(violations, checkMustLinks(m, e, t)...)
	violations = append(violations, checkMustNotLinks(m, e, t)...)
	violations = append(violations, checkAttributes(m, e)...)

	return len(violations) == 0, violations
}

// step 1: every example object's class must equal, or be a subclass of,
// the learned model's class for the same-named object.
func checkObjectClasses(m, e *model.Model, t *classtree.Tree) []Violation {
	var out []Violation
	for _, oe := range e.Objects() {
		om, found := m.Object(oe.Name)
		if !found {
			continue
		}
		if om.Class == oe.Class {
			continue
		}
		if t.IsSubclass(oe.Class, om.Class) {
			continue
		}
		out = append(out, newViolation(diag.E_WRONG_CLASS,
			fmt.Sprintf("object %q: expected class %q (or a subclass), got %q", oe.Name, om.Class, oe.Class)))
	}
	return out
}

// resolveClass returns the class associated with name in m: if name
// names a registered object, its class; otherwise name is itself
// treated as a class name (the generic-rule case).
func resolveClass(m *model.Model, name string) string {
	if o, ok := m.Object(name); ok {
		return o.Class
	}
	return name
}

func isGenericLink(m *model.Model, l model.Link) bool {
	_, srcIsObject := m.Object(l.Source)
	return !srcIsObject
}

// step 2: every Must link in m must be satisfied by e.
func checkMustLinks(m, e *model.Model, t *classtree.Tree) []Violation {
	var out []Violation
	for _, l := range m.Links() {
		if l.Kind != model.Must {
			continue
		}
		if isGenericLink(m, l) {
			out = append(out, checkGenericMust(l, e, t)...)
			continue
		}
		if !hasExactLink(e, l.Source, l.Target) {
			out = append(out, newViolation(diag.E_MISSING_MUST,
				fmt.Sprintf("object %q: missing required link to %q", l.Source, l.Target)))
		}
	}
	return out
}

func checkGenericMust(l model.Link, e *model.Model, t *classtree.Tree) []Violation {
	var out []Violation
	for _, oe := range e.Objects() {
		if !t.IsSubclass(oe.Class, l.Source) {
			continue
		}
		if hasLinkToSubclass(e, oe.Name, l.Target, t) {
			continue
		}
		out = append(out, newViolation(diag.E_MISSING_MUST,
			fmt.Sprintf("object %q (class %q): missing required link to a %q", oe.Name, oe.Class, l.Target)))
	}
	return out
}

func hasExactLink(e *model.Model, source, target string) bool {
	for _, l := range e.LinksFrom(source) {
		if l.Target == target {
			return true
		}
	}
	return false
}

func hasLinkToSubclass(e *model.Model, source, targetClass string, t *classtree.Tree) bool {
	for _, l := range e.LinksFrom(source) {
		target, ok := e.Object(l.Target)
		if !ok {
			continue
		}
		if t.IsSubclass(target.Class, targetClass) {
			return true
		}
	}
	return false
}

// step 3: no MustNot link in m may be contradicted by e.
func checkMustNotLinks(m, e *model.Model, t *classtree.Tree) []Violation {
	var out []Violation
	for _, l := range m.Links() {
		if l.Kind != model.MustNot {
			continue
		}
		if isGenericLink(m, l) {
			if hasGenericLinkAmong(e, l.Source, l.Target, t) {
				out = append(out, newViolation(diag.E_FORBIDDEN_LINK,
					fmt.Sprintf("forbidden link: a %q links to a %q", l.Source, l.Target)))
			}
			continue
		}
		if hasExactLink(e, l.Source, l.Target) {
			out = append(out, newViolation(diag.E_FORBIDDEN_LINK,
				fmt.Sprintf("object %q: forbidden link to %q", l.Source, l.Target)))
		}
	}
	return out
}

func hasGenericLinkAmong(e *model.Model, sourceClass, targetClass string, t *classtree.Tree) bool {
	for _, l := range e.Links() {
		src, ok := e.Object(l.Source)
		if !ok || !t.IsSubclass(src.Class, sourceClass) {
			continue
		}
		tgt, ok := e.Object(l.Target)
		if !ok || !t.IsSubclass(tgt.Class, targetClass) {
			continue
		}
		return true
	}
	return false
}

// step 4: every attribute constraint on an object in m must be satisfied
// by the same-named object in e.
func checkAttributes(m, e *model.Model) []Violation {
	var out []Violation
	for _, om := range m.Objects() {
		for attr, want := range om.Attributes {
			got, ok := e.GetAttribute(om.Name, attr)
			if !ok {
				out = append(out, newViolation(diag.E_ATTR_MISSING,
					fmt.Sprintf("object %q: missing attribute %q", om.Name, attr)))
				continue
			}
			if v := attributeViolation(om.Name, attr, want, got); v != nil {
				out = append(out, *v)
			}
		}
	}
	return out
}

func attributeViolation(objName, attr string, want, got model.AttrValue) *Violation {
	scalar, ok := scalarOf(got)
	if !ok {
		v := newViolation(diag.E_ATTR_MISMATCH,
			fmt.Sprintf("object %q: attribute %q is not a single observed value", objName, attr))
		return &v
	}

	switch w := want.(type) {
	case model.Interval:
		num, isNum := scalar.Number()
		if !isNum || !w.Contains(num) {
			v := newViolation(diag.E_ATTR_OUT_OF_RANGE,
				fmt.Sprintf("object %q: attribute %q = %s is outside %s", objName, attr, got.String(), want.String()))
			return &v
		}
	case model.Set:
		if !w.Contains(scalar) {
			v := newViolation(diag.E_ATTR_NOT_IN_SET,
				fmt.Sprintf("object %q: attribute %q = %s is not in %s", objName, attr, got.String(), want.String()))
			return &v
		}
	case model.Scalar:
		if !w.Value.Equal(scalar) {
			v := newViolation(diag.E_ATTR_MISMATCH,
				fmt.Sprintf("object %q: attribute %q = %s, expected %s", objName, attr, got.String(), want.String()))
			return &v
		}
	}
	return nil
}

func scalarOf(v model.AttrValue) (model.ScalarValue, bool) {
	s, ok := v.(model.Scalar)
	if !ok {
		return model.ScalarValue{}, false
	}
	return s.Value, true
}
