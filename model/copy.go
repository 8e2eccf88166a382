package model

import "slices"

// Copy returns a deep, independent copy of m. The learner takes a copy
// of the current model before running its heuristic pipeline on each
// update, so a heuristic that errors partway through never corrupts the
// caller's model.
func (m *Model) Copy() *Model {
	if m == nil {
		return nil
	}
	out := New()
	out.logger = m.logger
	for _, name := range m.objectOrd {
		cloned := m.objects[name].clone()
		out.objects[name] = &cloned
	}
	out.objectOrd = slices.Clone(m.objectOrd)
	out.links = slices.Clone(m.links)
	for k, v := range m.linkIndex {
		out.linkIndex[k] = v
	}
	for k, v := range m.bySource {
		out.bySource[k] = slices.Clone(v)
	}
	for k, v := range m.byTarget {
		out.byTarget[k] = slices.Clone(v)
	}
	return out
}

// Equal reports whether m and other contain the same objects (name,
// class, attributes) and the same links, irrespective of insertion
// order. Used by property tests to confirm heuristics are idempotent.
func (m *Model) Equal(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.objects) != len(other.objects) {
		return false
	}
	for name, o := range m.objects {
		oo, ok := other.objects[name]
		if !ok || oo.Class != o.Class {
			return false
		}
		if len(o.Attributes) != len(oo.Attributes) {
			return false
		}
		for attr, v := range o.Attributes {
			ov, ok := oo.Attributes[attr]
			if !ok || !v.Equal(ov) {
				return false
			}
		}
	}
	if len(m.links) != len(other.links) {
		return false
	}
	for _, l := range m.links {
		if !other.HasLink(l.Source, l.Target, l.Kind) {
			return false
		}
	}
	return true
}
