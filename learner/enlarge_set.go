package learner

import (
	"slices"
	"strings"

	"github.com/concept-learner/winston/model"
)

// enlargeSetStage widens attribute constraints from single values into
// Sets as multiple distinct values are observed, and records which
// subclasses of a shared parent have appeared as link targets from a
// given source class.
func enlargeSetStage(ps *pipelineState) {
	enlargeAttributeSets(ps)
	enlargeAllowedTypes(ps)
}

type classAttrKey struct {
	class string
	attr  string
}

func enlargeAttributeSets(ps *pipelineState) {
	observed := map[classAttrKey]map[model.ScalarValue]bool{}
	collectScalarObservations(ps.working, observed)
	collectScalarObservations(ps.positive, observed)

	keys := make([]classAttrKey, 0, len(observed))
	for k := range observed {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b classAttrKey) int {
		if a.class != b.class {
			return strings.Compare(a.class, b.class)
		}
		return strings.Compare(a.attr, b.attr)
	})

	for _, k := range keys {
		values := observed[k]
		if len(values) < 2 {
			continue
		}
		newSet := model.NewSet(sortedScalars(values)...)
		for _, o := range objectsOfClass(ps.working, k.class) {
			if existing, ok := ps.working.GetAttribute(o.Name, k.attr); ok {
				if s, isSet := existing.(model.Set); isSet && s.Equal(newSet) {
					continue
				}
			}
			ps.working.SetAttribute(o.Name, k.attr, newSet)
			ps.tag("enlarge_set")
		}
	}
}

func collectScalarObservations(m *model.Model, out map[classAttrKey]map[model.ScalarValue]bool) {
	for _, o := range m.Objects() {
		for attr, v := range o.Attributes {
			k := classAttrKey{class: o.Class, attr: attr}
			switch val := v.(type) {
			case model.Scalar:
				addObservation(out, k, val.Value)
			case model.Set:
				for _, sv := range val.Values() {
					addObservation(out, k, sv)
				}
			}
		}
	}
}

func addObservation(out map[classAttrKey]map[model.ScalarValue]bool, k classAttrKey, v model.ScalarValue) {
	if out[k] == nil {
		out[k] = map[model.ScalarValue]bool{}
	}
	out[k][v] = true
}

func sortedScalars(values map[model.ScalarValue]bool) []model.ScalarValue {
	out := make([]model.ScalarValue, 0, len(values))
	for v := range values {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b model.ScalarValue) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

// enlargeAllowedTypes adds an allowed_<parent>_types Set attribute to
// objects of a source class once two or more distinct subclasses of a
// shared parent have appeared as link targets from that source class.
func enlargeAllowedTypes(ps *pipelineState) {
	sourceClasses := map[string]bool{}
	for _, o := range ps.working.Objects() {
		sourceClasses[o.Class] = true
	}
	for _, o := range ps.positive.Objects() {
		sourceClasses[o.Class] = true
	}
	classes := make([]string, 0, len(sourceClasses))
	for c := range sourceClasses {
		classes = append(classes, c)
	}
	slices.Sort(classes)

	for _, srcClass := range classes {
		enlargeAllowedTypesForClass(ps, srcClass)
	}
}

func enlargeAllowedTypesForClass(ps *pipelineState, srcClass string) {
	targets := componentClassesFrom(ps.working, srcClass)
	for tc := range componentClassesFrom(ps.positive, srcClass) {
		targets[tc] = true
	}

	byParent := map[string]map[string]bool{}
	for tc := range targets {
		parent, ok := ps.tree.Parent(tc)
		if !ok {
			continue
		}
		if byParent[parent] == nil {
			byParent[parent] = map[string]bool{}
		}
		byParent[parent][tc] = true
	}

	parents := make([]string, 0, len(byParent))
	for p := range byParent {
		parents = append(parents, p)
	}
	slices.Sort(parents)

	for _, parent := range parents {
		subclasses := byParent[parent]
		if len(subclasses) < 2 {
			continue
		}
		names := make([]string, 0, len(subclasses))
		for n := range subclasses {
			names = append(names, n)
		}
		slices.Sort(names)

		scalars := make([]model.ScalarValue, len(names))
		for i, n := range names {
			scalars[i] = model.NewScalarString(n)
		}
		attrSet := model.NewSet(scalars...)
		attrName := "allowed_" + parent + "_types"

		for _, o := range objectsOfClass(ps.working, srcClass) {
			if existing, ok := ps.working.GetAttribute(o.Name, attrName); ok {
				if s, isSet := existing.(model.Set); isSet && s.Equal(attrSet) {
					continue
				}
			}
			ps.working.SetAttribute(o.Name, attrName, attrSet)
			ps.tag("enlarge_set")
		}
	}
}
