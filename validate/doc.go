// Package validate decides whether an example Model satisfies a learned
// Model, given a ClassificationTree for subclass reasoning.
//
// Validator holds no mutable state and is safe for concurrent use.
// IsValid takes no context.Context — the decision procedure performs no
// I/O and nothing here is cancellable.
package validate
