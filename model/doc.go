// Package model implements the typed graph of objects, class memberships
// and required/forbidden relationships that the learner revises and the
// validator tests against.
//
// A [Model] owns its objects and links. It is not safe for concurrent
// mutation; callers needing concurrent access must impose their own
// exclusion, consistent with the single-threaded cooperative design of
// the whole core.
//
// # Representation
//
// Model keeps two logical lists (objects, links) but backs them with
// secondary indices: a name->Object index, source->[]Link and
// target->[]Link indices, and a (source, target, kind)->bool membership
// index. Lookups by name, by endpoint and by full triple are O(1) or
// O(degree) as a result; RemoveLink rebuilds the position indices and
// HasGenericClassLink scans every link, so both are O(|links|).
//
// # Invariants
//
// (M1) object names are unique; (M2) every instance-level link
// references existing objects; (M3) every object o of class c has a
// reproducible MustBeA(o, c) link; (M4) no link is duplicated. These are
// enforced at every mutation point, not just checked after the fact.
package model
