package model

import "maps"

// Object is a named instance of a class, carrying zero or more attribute
// constraints.
//
// Object values returned from a [Model] are snapshots: mutating the
// returned value's Attributes map has no effect on the model. Use
// [Model.SetAttribute] and [Model.UpdateObjectClass] to mutate state
// owned by a Model.
type Object struct {
	Name       string
	Class      string
	Attributes map[string]AttrValue
}

func (o Object) clone() Object {
	return Object{
		Name:       o.Name,
		Class:      o.Class,
		Attributes: maps.Clone(o.Attributes),
	}
}

// Attribute returns the named attribute value and true, or (nil, false)
// if the object has no such attribute.
func (o Object) Attribute(name string) (AttrValue, bool) {
	v, ok := o.Attributes[name]
	return v, ok
}
