package classtree

import (
	"iter"
	"log/slog"

	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

func canonical(name string) string {
	return foldCaser.String(name)
}

// Tree is a rooted forest of class names connected by parent/child edges.
//
// The zero value is not usable; construct a Tree with [New].
type Tree struct {
	logger *slog.Logger

	// parent maps a registered class to its parent, or "" for a root.
	// Presence of a key (even mapping to "") is what "registered" means.
	parent map[string]string

	// children maps a class to its children in insertion order.
	children map[string][]string

	// canon maps a case-folded name to the name it was registered under,
	// for case-insensitive lookup.
	canon map[string]string

	// roots preserves insertion order of root classes for deterministic
	// full-tree iteration in tests and diagnostics.
	roots []string
}

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithLogger enables debug logging of Add/AddUnion mutations.
// Pass nil to disable logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tree) {
		t.logger = logger
	}
}

// New returns an empty Tree.
func New(opts ...Option) *Tree {
	t := &Tree{
		parent:   make(map[string]string),
		children: make(map[string][]string),
		canon:    make(map[string]string),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tree) resolve(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if _, ok := t.parent[name]; ok {
		return name, true
	}
	if canonicalName, ok := t.canon[canonical(name)]; ok {
		return canonicalName, true
	}
	return "", false
}

// Registered reports whether name (or a case-fold match of it) is known
// to the tree.
func (t *Tree) Registered(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.resolve(name)
	return ok
}

// Add registers child with the given parent (empty string for a root).
//
// Add is idempotent: re-registering a class under the same parent is a
// no-op. Re-registering an existing class under a *different* parent is
// treated as a re-parent (used internally by [Tree.AddUnion]) unless it
// would introduce a cycle, in which case Add returns a [CycleError] and
// leaves the tree unchanged (invariant I1). If parent is non-empty and
// not yet registered, it is implicitly registered as a new root — this
// keeps invariant I2 (every parent is itself registered) without forcing
// callers to pre-declare roots.
func (t *Tree) Add(child, parent string) error {
	if t == nil {
		return ErrNilTree
	}
	if child == "" {
		return nil
	}

	if parent != "" {
		if _, ok := t.resolve(parent); !ok {
			t.register(parent, "")
		}
	}
	resolvedParent := parent
	if parent != "" {
		resolvedParent, _ = t.resolve(parent)
	}

	if existing, ok := t.resolve(child); ok {
		if t.parent[existing] == resolvedParent {
			return nil // idempotent
		}
		if resolvedParent != "" && (existing == resolvedParent || t.isAncestor(existing, resolvedParent)) {
			return &CycleError{Child: child, Parent: parent, Path: t.pathToRoot(resolvedParent)}
		}
		t.reparent(existing, resolvedParent)
		t.log("classtree: reparented", existing, resolvedParent)
		return nil
	}

	if resolvedParent != "" && t.isAncestor(resolvedParent, child) {
		// Can't happen for a brand-new child, but guards against case-fold
		// collisions where "child" canonicalizes to an existing ancestor.
		return &CycleError{Child: child, Parent: parent, Path: t.pathToRoot(resolvedParent)}
	}

	t.register(child, resolvedParent)
	t.log("classtree: added", child, resolvedParent)
	return nil
}

func (t *Tree) register(name, parent string) {
	t.parent[name] = parent
	t.canon[canonical(name)] = name
	if parent == "" {
		t.roots = append(t.roots, name)
	} else {
		t.children[parent] = append(t.children[parent], name)
	}
}

func (t *Tree) reparent(child, newParent string) {
	oldParent := t.parent[child]
	if oldParent == newParent {
		return
	}
	if oldParent == "" {
		t.roots = removeString(t.roots, child)
	} else {
		t.children[oldParent] = removeString(t.children[oldParent], child)
	}
	t.parent[child] = newParent
	if newParent == "" {
		t.roots = append(t.roots, child)
	} else {
		t.children[newParent] = append(t.children[newParent], child)
	}
}

func removeString(s []string, v string) []string {
	out := s[:0:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// isAncestor reports whether candidate appears on descendant's path to root.
func (t *Tree) isAncestor(candidate, descendant string) bool {
	cur := descendant
	for {
		p, ok := t.parent[cur]
		if !ok || p == "" {
			return false
		}
		if p == candidate {
			return true
		}
		cur = p
	}
}

func (t *Tree) pathToRoot(name string) []string {
	var path []string
	cur := name
	for cur != "" {
		path = append(path, cur)
		cur = t.parent[cur]
	}
	return path
}

// Parent returns the registered parent of c, or ("", false) if c is a
// root or unregistered.
func (t *Tree) Parent(c string) (string, bool) {
	if t == nil {
		return "", false
	}
	resolved, ok := t.resolve(c)
	if !ok {
		return "", false
	}
	p := t.parent[resolved]
	return p, p != ""
}

// Children returns c's direct children in registration order.
func (t *Tree) Children(c string) []string {
	if t == nil {
		return nil
	}
	resolved, ok := t.resolve(c)
	if !ok {
		return nil
	}
	kids := t.children[resolved]
	out := make([]string, len(kids))
	copy(out, kids)
	return out
}

// Ancestors returns a root-ward iterator over c's proper ancestors,
// starting with c's immediate parent and ending at the root. Ancestors
// over an unregistered class yields nothing.
func (t *Tree) Ancestors(c string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if t == nil {
			return
		}
		resolved, ok := t.resolve(c)
		if !ok {
			return
		}
		cur := t.parent[resolved]
		for cur != "" {
			if !yield(cur) {
				return
			}
			cur = t.parent[cur]
		}
	}
}

// IsSubclass reports whether c is p or a descendant of p (reflexive).
// Unknown classes on either side return false unless c == p
// textually/case-fold-equal.
func (t *Tree) IsSubclass(c, p string) bool {
	if t == nil {
		return false
	}
	rc, okc := t.resolve(c)
	rp, okp := t.resolve(p)
	if !okc || !okp {
		return canonical(c) == canonical(p) && c != ""
	}
	if rc == rp {
		return true
	}
	return t.isAncestor(rp, rc)
}

// CommonAncestor returns the nearest class that is an ancestor of both a
// and b (reflexive: if a == b, returns a). Returns ("", false) if either
// class is unknown or no common ancestor exists.
//
// Algorithm: walk from a to root collecting the path, walk from b to
// root and return the first hit. O(depth).
func (t *Tree) CommonAncestor(a, b string) (string, bool) {
	if t == nil {
		return "", false
	}
	ra, oka := t.resolve(a)
	rb, okb := t.resolve(b)
	if !oka || !okb {
		return "", false
	}
	if ra == rb {
		return ra, true
	}

	seen := make(map[string]struct{})
	cur := ra
	for cur != "" {
		seen[cur] = struct{}{}
		cur = t.parent[cur]
	}

	cur = rb
	for cur != "" {
		if _, ok := seen[cur]; ok {
			return cur, true
		}
		cur = t.parent[cur]
	}
	return "", false
}

// AddUnion introduces a synthetic union class U grouping the given
// subclasses: U is registered as a child of the nearest common ancestor
// of subclasses (computed by a pairwise fold, left to right), or as a new root if no common ancestor exists; each subclass is
// then re-parented to U.
//
// AddUnion is idempotent when called twice with the same arguments: the
// second call finds U already registered under the same parent and each
// subclass already parented to U, so [Tree.Add] no-ops on every step.
func (t *Tree) AddUnion(union string, subclasses []string) error {
	if t == nil {
		return ErrNilTree
	}
	if union == "" || len(subclasses) == 0 {
		return nil
	}

	var ancestor string
	if len(subclasses) >= 2 {
		var ok bool
		ancestor, ok = t.CommonAncestor(subclasses[0], subclasses[1])
		if !ok {
			ancestor = ""
		}
		for _, s := range subclasses[2:] {
			if ancestor == "" {
				break
			}
			ancestor, ok = t.CommonAncestor(ancestor, s)
			if !ok {
				ancestor = ""
			}
		}
	} else if _, ok := t.resolve(subclasses[0]); ok {
		if p, hasParent := t.Parent(subclasses[0]); hasParent {
			ancestor = p
		}
	}
	// On a repeat call the subclasses already sit under union, so the fold
	// yields union itself; keep union's current parent instead.
	if existing, ok := t.resolve(union); ok && ancestor == existing {
		ancestor = t.parent[existing]
	}

	if err := t.Add(union, ancestor); err != nil {
		return err
	}
	for _, s := range subclasses {
		if err := t.Add(s, union); err != nil {
			return err
		}
	}
	return nil
}

// Roots returns the tree's root classes in registration order.
func (t *Tree) Roots() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.roots))
	copy(out, t.roots)
	return out
}

func (t *Tree) log(msg, child, parent string) {
	if t.logger == nil {
		return
	}
	t.logger.Debug(msg, slog.String("child", child), slog.String("parent", parent))
}
