// Package diag provides structured diagnostics for the validate package.
//
// A [Code] is a stable, machine-readable identifier for a kind of
// violation or internal failure. An [Issue] pairs a Code with a
// human-readable message and optional key/value details; it is built
// through [NewIssue], the only valid construction path — direct struct
// literals skip the validity checks NewIssue performs.
//
// This package is a deliberately small subset of the diagnostics
// machinery found in schema/validation libraries: there is no source-span
// tracking, no JSON/LSP rendering and no multi-issue collector here,
// because nothing in this module parses source text or serves an editor
// protocol (see DESIGN.md for the full justification). What remains is
// exactly what [validate.Violation] needs: a stable code plus a message.
package diag
