package model

import (
	"log/slog"
)

type linkKey struct {
	source string
	target string
	kind   LinkKind
}

// Model is a typed graph of objects and links. The zero value is not
// usable; construct one with [New] or [FromObjectsAndLinks].
type Model struct {
	logger *slog.Logger

	objects   map[string]*Object
	objectOrd []string // insertion order, for deterministic iteration
	links     []Link
	linkIndex map[linkKey]int // full triple -> index into links
	bySource  map[string][]int
	byTarget  map[string][]int
}

// New returns an empty Model.
func New(opts ...Option) *Model {
	m := &Model{
		objects:   make(map[string]*Object),
		linkIndex: make(map[linkKey]int),
		bySource:  make(map[string][]int),
		byTarget:  make(map[string][]int),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FromObjectsAndLinks builds a Model from the given objects and links, in
// the order given. Every object's MustBeA(name, class) link is added
// automatically if not already present (invariant M3). Returns
// [DuplicateNameError] or [DanglingLinkError] on the first invariant
// violation encountered; the returned Model reflects whatever was
// successfully added before the error (callers on the error path should
// discard it).
func FromObjectsAndLinks(objects []Object, links []Link, opts ...Option) (*Model, error) {
	m := New(opts...)
	for _, o := range objects {
		if err := m.AddObject(o); err != nil {
			return m, err
		}
	}
	for _, l := range links {
		if err := m.AddLink(l); err != nil {
			return m, err
		}
	}
	return m, nil
}

func (m *Model) log(msg string, args ...any) {
	if m == nil || m.logger == nil {
		return
	}
	m.logger.Debug(msg, args...)
}

// isObjectName reports whether name is an existing object in this model;
// used to distinguish instance-level links from generic class-level ones.
func (m *Model) isObjectName(name string) bool {
	_, ok := m.objects[name]
	return ok
}

// AddObject adds o to the model (invariant M1) and ensures its MustBeA
// link is present (invariant M3). Returns [DuplicateNameError] if an
// object with o.Name already exists.
func (m *Model) AddObject(o Object) error {
	if m == nil {
		return ErrNilModel
	}
	if _, exists := m.objects[o.Name]; exists {
		return &DuplicateNameError{Name: o.Name}
	}
	stored := o.clone()
	m.objects[o.Name] = &stored
	m.objectOrd = append(m.objectOrd, o.Name)
	m.log("model: added object", slog.String("name", o.Name), slog.String("class", o.Class))

	// invariant M3: reproducible MustBeA link.
	_ = m.addLinkUnchecked(Link{Source: o.Name, Target: o.Class, Kind: MustBeA})
	return nil
}

// AddLink adds l to the model if not already present (invariant M4 makes
// this idempotent). For Regular and instance-level Must/MustNot links
// (source and target both naming existing objects) and for MustBeA
// links, the source must already be a registered object — returns
// [DanglingLinkError] otherwise (invariant M2). Generic class-level
// Must/MustNot links (source is not an object name in this model) are
// not subject to M2: their endpoints are class names, not object
// references.
func (m *Model) AddLink(l Link) error {
	if m == nil {
		return ErrNilModel
	}
	if m.isObjectName(l.Source) {
		switch l.Kind {
		case MustBeA:
			// target is a class name; no M2 check.
		case Regular, Must, MustNot:
			if !m.isObjectName(l.Target) {
				return &DanglingLinkError{Link: l}
			}
		}
	} else if l.Kind == Regular || l.Kind == MustBeA {
		return &DanglingLinkError{Link: l}
	}
	return m.addLinkUnchecked(l)
}

func (m *Model) addLinkUnchecked(l Link) error {
	key := linkKey{source: l.Source, target: l.Target, kind: l.Kind}
	if _, exists := m.linkIndex[key]; exists {
		return nil // M4: idempotent
	}
	idx := len(m.links)
	m.links = append(m.links, l)
	m.linkIndex[key] = idx
	m.bySource[l.Source] = append(m.bySource[l.Source], idx)
	m.byTarget[l.Target] = append(m.byTarget[l.Target], idx)
	m.log("model: added link", slog.String("link", l.String()))
	return nil
}

// RemoveLink removes l if present; it is a no-op if l is absent.
func (m *Model) RemoveLink(l Link) {
	if m == nil {
		return
	}
	key := linkKey{source: l.Source, target: l.Target, kind: l.Kind}
	idx, ok := m.linkIndex[key]
	if !ok {
		return
	}
	m.removeLinkAt(idx)
	m.log("model: removed link", slog.String("link", l.String()))
}

// removeLinkAt deletes the link at position idx and rebuilds the indices
// that reference positions (bySource/byTarget/linkIndex shift after a
// slice removal). Model sizes in this domain are small (tens to low
// hundreds of objects), so a full index rebuild on removal is simpler
// than maintaining swap-delete bookkeeping and is not a bottleneck.
func (m *Model) removeLinkAt(idx int) {
	m.links = append(m.links[:idx], m.links[idx+1:]...)
	m.linkIndex = make(map[linkKey]int, len(m.links))
	m.bySource = make(map[string][]int, len(m.bySource))
	m.byTarget = make(map[string][]int, len(m.byTarget))
	for i, l := range m.links {
		key := linkKey{source: l.Source, target: l.Target, kind: l.Kind}
		m.linkIndex[key] = i
		m.bySource[l.Source] = append(m.bySource[l.Source], i)
		m.byTarget[l.Target] = append(m.byTarget[l.Target], i)
	}
}

// GetAttribute returns the named attribute of object obj, or (nil, false)
// if the object or attribute does not exist.
func (m *Model) GetAttribute(obj, attr string) (AttrValue, bool) {
	if m == nil {
		return nil, false
	}
	o, ok := m.objects[obj]
	if !ok {
		return nil, false
	}
	v, ok := o.Attributes[attr]
	return v, ok
}

// SetAttribute sets the named attribute on object obj. It is a no-op if
// obj does not exist in the model.
func (m *Model) SetAttribute(obj, attr string, value AttrValue) {
	if m == nil {
		return
	}
	o, ok := m.objects[obj]
	if !ok {
		return
	}
	if o.Attributes == nil {
		o.Attributes = make(map[string]AttrValue)
	}
	o.Attributes[attr] = value
	m.log("model: set attribute", slog.String("object", obj), slog.String("attr", attr), slog.String("value", value.String()))
}

// UpdateObjectClass changes object name's class and rewrites its unique
// outgoing MustBeA link to target the new class. It is a no-op if name
// does not exist.
func (m *Model) UpdateObjectClass(name, newClass string) {
	if m == nil {
		return
	}
	o, ok := m.objects[name]
	if !ok {
		return
	}
	if o.Class == newClass {
		return
	}
	oldClass := o.Class
	o.Class = newClass
	m.RemoveLink(Link{Source: name, Target: oldClass, Kind: MustBeA})
	_ = m.addLinkUnchecked(Link{Source: name, Target: newClass, Kind: MustBeA})
	m.log("model: updated object class", slog.String("object", name), slog.String("from", oldClass), slog.String("to", newClass))
}
