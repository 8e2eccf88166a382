// Package formula provides the thin boundary between a textual
// first-order-logic representation of a Model and the Model itself.
// Parsing that text into [Predicate] values is out of scope for this
// package; formula only adapts between already-parsed predicates and a
// [model.Model].
package formula
