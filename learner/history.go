package learner

import (
	"github.com/google/uuid"

	"github.com/concept-learner/winston/model"
)

// snapshot is one entry in the history ring: a model paired with a
// correlation id, used by backupRule to name which past state a
// rollback returned to in logs.
type snapshot struct {
	id uuid.UUID
	m  *model.Model
}

// pushHistory appends m to the ring, evicting the oldest entry once the
// ring is at capacity.
func (l *Learner) pushHistory(m *model.Model) {
	if m == nil || m.IsEmpty() {
		return
	}
	s := snapshot{id: uuid.New(), m: m.Copy()}
	l.history = append(l.history, s)
	if len(l.history) > l.historyCap {
		l.history = l.history[len(l.history)-l.historyCap:]
	}
}

// historyNewestToOldest returns history snapshots ordered most-recent first,
// the traversal order backupRule needs.
func (l *Learner) historyNewestToOldest() []snapshot {
	out := make([]snapshot, len(l.history))
	for i, s := range l.history {
		out[len(l.history)-1-i] = s
	}
	return out
}
