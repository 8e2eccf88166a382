// Package learner implements a Winston-style near-miss concept learner:
// a fixed-order pipeline of idempotent
// heuristics that folds a positive example, and optionally a near-miss
// counterexample, into a working Model.
//
// Learner owns a ClassificationTree reference, a bounded ring of recent
// Model snapshots used for rollback, and the list of heuristic tags
// applied by the most recent Update call. The pipeline itself is data —
// an ordered slice of stage values — so reordering or disabling a
// heuristic is a slice literal edit, not a refactor.
package learner
