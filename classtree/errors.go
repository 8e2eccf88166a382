package classtree

import (
	"errors"
	"fmt"
)

// ErrInternal is the base sentinel for internal classtree failures —
// programmer errors, not data issues.
var ErrInternal = errors.New("internal classtree failure")

// ErrNilTree indicates a method was called on a nil *Tree receiver.
var ErrNilTree = fmt.Errorf("%w: nil *Tree receiver", ErrInternal)

// CycleError is returned by [Tree.Add] when registering the requested
// parent edge would introduce a cycle. It satisfies errors.Is against
// [ErrCycle].
type CycleError struct {
	Child  string
	Parent string
	Path   []string // the existing ancestor path from Parent back to Child
}

// ErrCycle is the sentinel CycleError wraps; use errors.Is(err, ErrCycle)
// to detect any cycle failure without inspecting the path.
var ErrCycle = errors.New("cycle in classification tree")

func (e *CycleError) Error() string {
	return fmt.Sprintf("classtree: adding %q as a child of %q would create a cycle (%v)", e.Child, e.Parent, e.Path)
}

// Unwrap enables errors.Is(err, ErrCycle).
func (e *CycleError) Unwrap() error {
	return ErrCycle
}
