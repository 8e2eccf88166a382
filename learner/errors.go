package learner

import "errors"

// ErrInternal is the base sentinel for internal learner failures.
var ErrInternal = errors.New("internal learner failure")

// ErrNilTree is the value [New] panics with when given a nil ClassificationTree.
var ErrNilTree = errors.New("learner: nil classification tree")
