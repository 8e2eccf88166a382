package model

import "slices"

// Objects returns all objects in the model in insertion order. The
// returned slice and its Object values are snapshots; mutating them has
// no effect on the model.
func (m *Model) Objects() []Object {
	if m == nil {
		return nil
	}
	out := make([]Object, 0, len(m.objectOrd))
	for _, name := range m.objectOrd {
		out = append(out, m.objects[name].clone())
	}
	return out
}

// Object returns the named object and true, or (Object{}, false) if no
// such object exists.
func (m *Model) Object(name string) (Object, bool) {
	if m == nil {
		return Object{}, false
	}
	o, ok := m.objects[name]
	if !ok {
		return Object{}, false
	}
	return o.clone(), true
}

// Links returns all links in the model in insertion order.
func (m *Model) Links() []Link {
	if m == nil {
		return nil
	}
	return slices.Clone(m.links)
}

// LinksFrom returns all links whose Source is name, in insertion order.
func (m *Model) LinksFrom(name string) []Link {
	if m == nil {
		return nil
	}
	idxs := m.bySource[name]
	out := make([]Link, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, m.links[i])
	}
	return out
}

// LinksTo returns all links whose Target is name, in insertion order.
func (m *Model) LinksTo(name string) []Link {
	if m == nil {
		return nil
	}
	idxs := m.byTarget[name]
	out := make([]Link, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, m.links[i])
	}
	return out
}

// IsEmpty reports whether the model has no objects and no links.
func (m *Model) IsEmpty() bool {
	return m == nil || (len(m.objects) == 0 && len(m.links) == 0)
}

// HasLink reports whether the exact link (source, target, kind) exists.
func (m *Model) HasLink(source, target string, kind LinkKind) bool {
	if m == nil {
		return false
	}
	_, ok := m.linkIndex[linkKey{source: source, target: target, kind: kind}]
	return ok
}

// HasGenericClassLink reports whether a link of kind holds between
// srcClass and tgtClass at the class level: either a direct
// class-to-class link of that kind is recorded, or some
// instance-level link of that kind connects an object of srcClass to an
// object of tgtClass. The learner's heuristics need this dual view,
// since a rule learned from one instance generalizes to every future
// instance of the same classes. Classes are compared exactly; subclasses
// do not match.
func (m *Model) HasGenericClassLink(srcClass, tgtClass string, kind LinkKind) bool {
	if m == nil {
		return false
	}
	if m.HasLink(srcClass, tgtClass, kind) {
		return true
	}
	for _, l := range m.links {
		if l.Kind != kind {
			continue
		}
		src, ok := m.objects[l.Source]
		if !ok || src.Class != srcClass {
			continue
		}
		tgt, ok := m.objects[l.Target]
		if !ok || tgt.Class != tgtClass {
			continue
		}
		return true
	}
	return false
}

// AddGenericClassLink records a class-level rule link between srcClass
// and tgtClass, the generalized form a heuristic produces when it
// decides a constraint holds for every instance of a class rather than
// one object (used by require_link and forbid_link). It is idempotent
// (invariant M4) and is not subject to invariant M2, since srcClass and
// tgtClass name classes, not objects.
func (m *Model) AddGenericClassLink(srcClass, tgtClass string, kind LinkKind) error {
	if m == nil {
		return ErrNilModel
	}
	return m.addLinkUnchecked(Link{Source: srcClass, Target: tgtClass, Kind: kind})
}
