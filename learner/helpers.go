package learner

import (
	"github.com/concept-learner/winston/classtree"
	"github.com/concept-learner/winston/model"
)

// hasLinkBetweenSubclasses reports whether e contains any link whose
// source object's class is a subclass-or-equal of srcClass and whose
// target object's class is a subclass-or-equal of tgtClass.
func hasLinkBetweenSubclasses(e *model.Model, t *classtree.Tree, srcClass, tgtClass string) bool {
	for _, l := range e.Links() {
		src, ok := e.Object(l.Source)
		if !ok || !t.IsSubclass(src.Class, srcClass) {
			continue
		}
		tgt, ok := e.Object(l.Target)
		if !ok || !t.IsSubclass(tgt.Class, tgtClass) {
			continue
		}
		return true
	}
	return false
}

// hasExactClassLink reports whether e contains a link whose endpoint
// objects' classes exactly match srcClass and tgtClass.
func hasExactClassLink(e *model.Model, srcClass, tgtClass string) bool {
	for _, l := range e.Links() {
		src, ok := e.Object(l.Source)
		if !ok || src.Class != srcClass {
			continue
		}
		tgt, ok := e.Object(l.Target)
		if !ok || tgt.Class != tgtClass {
			continue
		}
		return true
	}
	return false
}

// componentClassesFrom returns the set of distinct classes that objects
// of sourceClass in e link to via Regular links, used by enlargeSet and
// forbidLink to compare observed component classes across models.
func componentClassesFrom(e *model.Model, sourceClass string) map[string]bool {
	out := make(map[string]bool)
	for _, o := range e.Objects() {
		if o.Class != sourceClass {
			continue
		}
		for _, l := range e.LinksFrom(o.Name) {
			if l.Kind != model.Regular {
				continue
			}
			if tgt, ok := e.Object(l.Target); ok {
				out[tgt.Class] = true
			}
		}
	}
	return out
}

// objectsOfClass returns every object in e whose class is exactly class.
func objectsOfClass(e *model.Model, class string) []model.Object {
	var out []model.Object
	for _, o := range e.Objects() {
		if o.Class == class {
			out = append(out, o)
		}
	}
	return out
}
