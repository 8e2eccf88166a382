// Package winston provides incremental, near-miss concept learning over a
// typed object/link graph.
//
// A concept is represented as a [github.com/concept-learner/winston/model.Model]:
// a graph of named objects, each belonging to a class drawn from a
// [github.com/concept-learner/winston/classtree.Tree], connected by links
// that carry a kind (Regular, Must, MustNot, MustBeA). A
// [github.com/concept-learner/winston/validate.Validator] decides whether a
// given example satisfies the current concept. A
// [github.com/concept-learner/winston/learner.Learner] folds a new positive
// example (and optional near-miss) into a concept by running a fixed-order
// pipeline of heuristics, each of which generalizes, specializes, or
// repairs the model's rules, with bounded rollback when a heuristic's
// result would reject the very example that produced it.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - diag: Structured diagnostics with stable error codes
//
//	Core library tier:
//	  - classtree: Single-inheritance class hierarchy
//	  - model: Object/link/rule graph and attribute values
//	  - validate: Acceptance decision procedure
//	  - learner: Incremental heuristic update pipeline
//
//	Boundary tier:
//	  - formula: First-order-logic predicate adapter
//	  - config: Classification hierarchy loading
//
// # Entry Points
//
// Building a class hierarchy and an initial concept:
//
//	import (
//	    "github.com/concept-learner/winston/config"
//	    "github.com/concept-learner/winston/learner"
//	    "github.com/concept-learner/winston/model"
//	)
//
//	tree, err := config.LoadTreeFile("hierarchy.jsonc")
//	if err != nil {
//	    // malformed document or cyclic hierarchy
//	}
//	l := learner.New(tree)
//	concept := l.Update(model.New(), positive, nil)
//
// Folding in a near-miss to sharpen the concept:
//
//	concept = l.Update(concept, nextPositive, nextNearMiss)
//	for _, h := range l.AppliedHeuristics() {
//	    // which stages fired, in pipeline order
//	}
//
// Checking whether an example matches the learned concept:
//
//	import "github.com/concept-learner/winston/validate"
//
//	v := validate.New()
//	ok, violations := v.IsValid(concept, example, tree)
//
// Converting to and from a first-order-logic predicate list:
//
//	import "github.com/concept-learner/winston/formula"
//
//	predicates := formula.FromModel(concept)
//	roundTripped, err := formula.ToModel(predicates)
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/concept-learner/winston/diag]: Structured diagnostics
//   - [github.com/concept-learner/winston/classtree]: Class hierarchy
//   - [github.com/concept-learner/winston/model]: Object/link/rule graph
//   - [github.com/concept-learner/winston/validate]: Acceptance decisions
//   - [github.com/concept-learner/winston/learner]: Heuristic update pipeline
//   - [github.com/concept-learner/winston/formula]: Predicate adapter
//   - [github.com/concept-learner/winston/config]: Hierarchy loading
package winston
