// Package classtree implements the classification hierarchy that backs
// generalization in the Winston-style concept learner: a rooted forest of
// class names connected by parent/child edges.
//
// A [Tree] is the partial function parent: ClassName -> Option<ClassName>.
// Unknown class names are legal and participate in no ancestry relations;
// the universe of class names is open.
//
// # Thread Safety
//
// Tree is effectively read-mostly: its only mutators are [Tree.Add] and
// [Tree.AddUnion]. Tree does not synchronize internally — a caller
// sharing one Tree across concurrent learners is responsible for
// excluding readers during mutation.
//
// # Determinism
//
// [Tree.Children] and [Tree.Ancestors] iterate in a fixed order
// (insertion order for children, root-ward for ancestors) so that callers
// folding over them — the learner's climb-tree and propagate-to-common-
// ancestor heuristics in particular — produce the same result on every
// run given the same input order.
package classtree
