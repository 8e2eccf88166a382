package model

import (
	"errors"
	"fmt"
)

// ErrInternal is the base sentinel for internal model failures.
var ErrInternal = errors.New("internal model failure")

// ErrNilModel indicates a method was called on a nil *Model receiver.
var ErrNilModel = fmt.Errorf("%w: nil *Model receiver", ErrInternal)

// DuplicateNameError is returned by [Model.AddObject] when the object's
// name is already present, per invariant M1. It satisfies
// errors.Is(err, ErrDuplicateName).
type DuplicateNameError struct {
	Name string
}

// ErrDuplicateName is the sentinel DuplicateNameError wraps.
var ErrDuplicateName = errors.New("duplicate object name")

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("model: object name %q already exists", e.Name)
}

// Unwrap enables errors.Is(err, ErrDuplicateName).
func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// DanglingLinkError is returned when an instance-level link would
// reference an object that does not exist in the model, per invariant M2.
type DanglingLinkError struct {
	Link Link
}

// ErrDanglingLink is the sentinel DanglingLinkError wraps.
var ErrDanglingLink = errors.New("link references unknown object")

func (e *DanglingLinkError) Error() string {
	return fmt.Sprintf("model: link %s references an object that does not exist", e.Link)
}

// Unwrap enables errors.Is(err, ErrDanglingLink).
func (e *DanglingLinkError) Unwrap() error {
	return ErrDanglingLink
}
