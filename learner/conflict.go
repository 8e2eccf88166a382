package learner

import (
	"github.com/concept-learner/winston/classtree"
	"github.com/concept-learner/winston/model"
)

// wouldConflict reports whether adding candidate to m would be
// inconsistent with m's existing rules. It is centralized so every heuristic
// that might introduce a Must/MustNot rule (checkConsistency, climbTree,
// requireLink, propagateToCommonAncestor, forbidLink) shares one
// definition of consistency.
func wouldConflict(m *model.Model, t *classtree.Tree, candidate model.Link) bool {
	if !candidate.Kind.IsRule() {
		return false
	}
	srcClass := resolveClassName(m, candidate.Source)
	tgtClass := resolveClassName(m, candidate.Target)

	// The opposite-polarity rule already holds for this signature.
	if m.HasGenericClassLink(srcClass, tgtClass, candidate.Kind.Opposite()) {
		return true
	}

	if candidate.Kind != model.MustNot {
		return false
	}

	// Retained evidence directly contradicts the prohibition.
	if hasInstanceLinkBetweenClasses(m, srcClass, tgtClass) {
		return true
	}

	// The prohibition would contradict a retained Must rule reachable
	// through subclass relations on either side.
	for _, l := range m.Links() {
		if l.Kind != model.Must {
			continue
		}
		mustSrc := resolveClassName(m, l.Source)
		mustTgt := resolveClassName(m, l.Target)
		sameSide := t.IsSubclass(srcClass, mustSrc) || t.IsSubclass(mustSrc, srcClass)
		sameTarget := t.IsSubclass(tgtClass, mustTgt) || t.IsSubclass(mustTgt, tgtClass)
		if sameSide && sameTarget {
			return true
		}
	}
	return false
}

// resolveClassName returns the class associated with name in m: if name
// names a registered object, its class; otherwise name is treated as a
// class name directly (the generic-rule case).
func resolveClassName(m *model.Model, name string) string {
	if o, ok := m.Object(name); ok {
		return o.Class
	}
	return name
}

func hasInstanceLinkBetweenClasses(m *model.Model, srcClass, tgtClass string) bool {
	for _, l := range m.Links() {
		src, ok := m.Object(l.Source)
		if !ok || src.Class != srcClass {
			continue
		}
		tgt, ok := m.Object(l.Target)
		if !ok || tgt.Class != tgtClass {
			continue
		}
		return true
	}
	return false
}
