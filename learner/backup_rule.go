package learner

import (
	"github.com/concept-learner/winston/model"
	"github.com/concept-learner/winston/validate"
)

// backupRuleStage is the final safety net: the working model must accept
// positive and, if present, reject near_miss.
// When it does not, the newest history snapshot satisfying both
// conditions is restored instead.
func backupRuleStage(ps *pipelineState) {
	v := validate.New()
	if satisfiesBoth(v, ps.working, ps) {
		return
	}
	for _, snap := range ps.history {
		if satisfiesBoth(v, snap.m, ps) {
			ps.working = snap.m.Copy()
			ps.tag("backup_rule")
			ps.log("learner: restored history snapshot", "snapshot", snap.id.String())
			return
		}
	}
	// No snapshot qualifies; keep the working model as-is.
}

func satisfiesBoth(v validate.Validator, candidate *model.Model, ps *pipelineState) bool {
	accepted, _ := v.IsValid(candidate, ps.positive, ps.tree)
	if !accepted {
		return false
	}
	if ps.hasNearMiss() {
		rejected, _ := v.IsValid(candidate, ps.nearMiss, ps.tree)
		if rejected {
			return false
		}
	}
	return true
}
