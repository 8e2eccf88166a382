package model

import "fmt"

// LinkKind identifies the semantics of a [Link], encoded as a closed Go
// enum rather than a string so invalid kinds are caught at compile time
// wherever code switches exhaustively over them.
type LinkKind uint8

const (
	// Regular is an observed, non-load-bearing association.
	Regular LinkKind = iota
	// Must requires the source to stand in this relation to the target.
	Must
	// MustNot forbids the source from standing in this relation to the target.
	MustNot
	// MustBeA asserts that an object (source) is an instance of a class (target).
	MustBeA
)

// String returns the lowercase tag used in persistence and diagnostics:
// "regular", "must", "must_not", "must_be_a".
func (k LinkKind) String() string {
	switch k {
	case Regular:
		return "regular"
	case Must:
		return "must"
	case MustNot:
		return "must_not"
	case MustBeA:
		return "must_be_a"
	default:
		return fmt.Sprintf("LinkKind(%d)", uint8(k))
	}
}

// Opposite returns the polarity-inverted kind used by conflict detection:
// Must <-> MustNot. Opposite panics for kinds with no defined polarity
// (Regular, MustBeA) — callers must only call this for rule kinds.
func (k LinkKind) Opposite() LinkKind {
	switch k {
	case Must:
		return MustNot
	case MustNot:
		return Must
	default:
		panic(fmt.Sprintf("model: LinkKind.Opposite called on non-rule kind %s", k))
	}
}

// IsRule reports whether k is a polarized rule kind (Must or MustNot).
func (k LinkKind) IsRule() bool {
	return k == Must || k == MustNot
}

// Link is a directed, kinded edge between two names.
//
// source and target are either object names or class names depending on
// kind: for MustBeA, source is an object and target is a class. For
// Must/MustNot, either both endpoints are objects
// (instance-level) or both are class names (generic). Regular links are
// always instance-level.
type Link struct {
	Source string
	Target string
	Kind   LinkKind
}

// String renders the link as "source -kind-> target" for diagnostics.
func (l Link) String() string {
	return fmt.Sprintf("%s -%s-> %s", l.Source, l.Kind, l.Target)
}

// Equal reports full-triple equality, the equality the no-duplicate-
// links invariant is defined on.
func (l Link) Equal(other Link) bool {
	return l.Source == other.Source && l.Target == other.Target && l.Kind == other.Kind
}
