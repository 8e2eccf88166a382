package formula

import "github.com/concept-learner/winston/model"

// Predicate is a closed sum type over the five predicate forms a model
// reduces to: IsA, HasPart, MustHavePart, MustNotHavePart, Attribute. An
// unexported marker method, mirroring [model.AttrValue], keeps the set
// closed to this package.
type Predicate interface {
	predicate()
}

// IsA asserts that Object is an instance of Class.
type IsA struct {
	Object string
	Class  string
}

func (IsA) predicate() {}

// HasPart records an observed, non-load-bearing composition from Source
// to Target (a Regular link).
type HasPart struct {
	Source string
	Target string
}

func (HasPart) predicate() {}

// MustHavePart requires Source to stand in a composition relation to
// Target. Source and Target name objects for an instance-level rule, or
// classes for a generic one.
type MustHavePart struct {
	Source string
	Target string
}

func (MustHavePart) predicate() {}

// MustNotHavePart forbids Source from standing in a composition relation
// to Target, at the same instance-or-generic granularity as
// MustHavePart.
type MustNotHavePart struct {
	Source string
	Target string
}

func (MustNotHavePart) predicate() {}

// Attribute constrains Object's Name attribute to Value.
type Attribute struct {
	Object string
	Name   string
	Value  model.AttrValue
}

func (Attribute) predicate() {}
