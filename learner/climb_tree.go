package learner

import "github.com/concept-learner/winston/model"

// climbTreeStage generalizes classes and obligations up the
// classification tree. It needs a near-miss: without one there are no
// shared names to climb and the stage changes nothing. The
// generic-propagation half runs only after at least one object's class
// was climbed.
func climbTreeStage(ps *pipelineState) {
	if !ps.hasNearMiss() {
		return
	}
	if climbSharedNames(ps) {
		climbGenericPropagation(ps)
	}
}

// climbSharedNames replaces the class of any object that appears under
// different classes in positive and near_miss with their common
// ancestor, and reports whether it replaced any.
func climbSharedNames(ps *pipelineState) bool {
	climbed := false
	for _, po := range ps.positive.Objects() {
		nmo, ok := ps.nearMiss.Object(po.Name)
		if !ok || nmo.Class == po.Class {
			continue
		}
		ancestor, ok := ps.tree.CommonAncestor(po.Class, nmo.Class)
		if !ok {
			continue
		}
		wo, ok := ps.working.Object(po.Name)
		if !ok || wo.Class == ancestor {
			continue
		}
		ps.working.UpdateObjectClass(po.Name, ancestor)
		ps.tag("climb_tree")
		climbed = true
	}
	return climbed
}

// climbGenericPropagation introduces generic Must obligations one and
// two levels up the target's class hierarchy for every positive
// composition link observed in positive.
func climbGenericPropagation(ps *pipelineState) {
	for _, p := range ps.positive.Links() {
		if p.Kind != model.Regular {
			continue
		}
		srcObj, ok := ps.positive.Object(p.Source)
		if !ok {
			continue
		}
		tgtObj, ok := ps.positive.Object(p.Target)
		if !ok {
			continue
		}

		targetParent, ok := ps.tree.Parent(tgtObj.Class)
		if !ok {
			continue
		}
		addGenericMustIfSafe(ps, srcObj.Class, targetParent)

		srcParent, okSrcParent := ps.tree.Parent(srcObj.Class)
		targetGrandparent, okGrandparent := ps.tree.Parent(targetParent)
		if okSrcParent && okGrandparent {
			addGenericMustIfSafe(ps, srcParent, targetGrandparent)
		}
	}
}

func addGenericMustIfSafe(ps *pipelineState, srcClass, tgtClass string) {
	candidate := model.Link{Source: srcClass, Target: tgtClass, Kind: model.Must}
	if wouldConflict(ps.working, ps.tree, candidate) {
		return
	}
	if ps.working.HasGenericClassLink(srcClass, tgtClass, model.Must) {
		return
	}
	if err := ps.working.AddGenericClassLink(srcClass, tgtClass, model.Must); err == nil {
		ps.tag("climb_tree")
	}
}
