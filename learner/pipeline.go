package learner

import (
	"log/slog"

	"github.com/concept-learner/winston/classtree"
	"github.com/concept-learner/winston/model"
)

// pipelineState is threaded through the heuristic pipeline; each stage
// reads and mutates working in place and records the tags of whatever
// changes it made.
type pipelineState struct {
	working  *model.Model
	positive *model.Model
	nearMiss *model.Model // nil when absent
	tree     *classtree.Tree
	applied  []string
	logger   *slog.Logger
	history  []snapshot // newest-to-oldest, for backupRule
}

func (ps *pipelineState) tag(t string) {
	ps.applied = append(ps.applied, t)
}

func (ps *pipelineState) log(msg string, args ...any) {
	if ps.logger == nil {
		return
	}
	ps.logger.Debug(msg, args...)
}

// hasNearMiss reports whether this update carries a near-miss counterexample.
func (ps *pipelineState) hasNearMiss() bool {
	return ps.nearMiss != nil && !ps.nearMiss.IsEmpty()
}

type stage struct {
	tag string
	fn  func(ps *pipelineState)
}

// pipeline is the nine-stage heuristic sequence, in fixed priority
// order. Reordering or disabling a heuristic is a slice literal edit
// here, not a refactor elsewhere.
var pipeline = []stage{
	{"seed", seedStage},
	{"check_consistency", checkConsistencyStage},
	{"climb_tree", climbTreeStage},
	{"require_link", requireLinkStage},
	{"enlarge_set", enlargeSetStage},
	{"propagate_to_common_ancestor", propagateToCommonAncestorStage},
	{"forbid_link", forbidLinkStage},
	{"drop_link", dropLinkStage},
	{"backup_rule", backupRuleStage},
}

// Learner is the central incremental concept learner. It owns a
// reference to the shared ClassificationTree, a bounded history
// of recent Model snapshots, and the heuristic tags applied by the most
// recent Update.
//
// Learner is not safe for concurrent use: Update mutates history and
// appliedHeuristics. Callers sharing one Learner across goroutines must
// impose their own synchronization.
type Learner struct {
	tree       *classtree.Tree
	logger     *slog.Logger
	historyCap int

	history           []snapshot
	appliedHeuristics []string
}

const defaultHistoryCapacity = 5

// New returns a Learner bound to tree. Panics if tree is nil.
func New(tree *classtree.Tree, opts ...Option) *Learner {
	if tree == nil {
		panic(ErrNilTree)
	}
	l := &Learner{tree: tree, historyCap: defaultHistoryCapacity}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AppliedHeuristics lists, in order, every heuristic tag that effected a
// change during the most recent Update call.
func (l *Learner) AppliedHeuristics() []string {
	out := make([]string, len(l.appliedHeuristics))
	copy(out, l.appliedHeuristics)
	return out
}

// HistoryLen returns the number of snapshots currently retained.
func (l *Learner) HistoryLen() int {
	return len(l.history)
}

// Update folds positive, and optionally nearMiss, into current and
// returns the resulting working model. current is never mutated.
//
// Preconditions: positive must be non-empty; nearMiss, if non-nil, must
// be non-empty. Violating either leaves the model unchanged: Update
// returns a copy of current with no heuristics applied and no history
// push.
func (l *Learner) Update(current, positive, nearMiss *model.Model) *model.Model {
	l.appliedHeuristics = nil

	if positive.IsEmpty() {
		return current.Copy()
	}
	if nearMiss != nil && nearMiss.IsEmpty() {
		return current.Copy()
	}

	l.pushHistory(current)

	ps := &pipelineState{
		working:  current.Copy(),
		positive: positive,
		nearMiss: nearMiss,
		tree:     l.tree,
		logger:   l.logger,
		history:  l.historyNewestToOldest(),
	}

	for _, st := range pipeline {
		before := len(ps.applied)
		st.fn(ps)
		if len(ps.applied) > before {
			l.log("learner: stage effected changes", "stage", st.tag)
		}
	}

	l.appliedHeuristics = ps.applied
	return ps.working
}

func (l *Learner) log(msg string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(msg, args...)
}
