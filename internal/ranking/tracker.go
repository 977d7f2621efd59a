package ranking

import (
	"germanbridge/internal/roster"
	"time"
)

// Tracker remembers the ranking committed at the end of the last round and
// flags players that climbed since then. Flags expire after OvertakeWindow.
type Tracker struct {
	now       func() time.Time
	committed map[string]int // player ID -> position index
	until     map[string]time.Time
}

func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		now:   now,
		until: make(map[string]time.Time),
	}
}

// Commit compares the current ranking with the previously committed one,
// flags every player whose position improved and stores the current ranking
// as the new baseline. It returns the IDs that were flagged.
func (t *Tracker) Commit(r roster.Roster) []string {
	order := Order(Rank(r))
	now := t.now()

	var climbed []string
	if t.committed != nil {
		for pos, id := range order {
			prev, seen := t.committed[id]
			if seen && pos < prev {
				t.until[id] = now.Add(OvertakeWindow)
				climbed = append(climbed, id)
			}
		}
	}

	t.committed = make(map[string]int, len(order))
	for pos, id := range order {
		t.committed[id] = pos
	}
	return climbed
}

func (t *Tracker) Overtaking(id string) bool {
	deadline, ok := t.until[id]
	if !ok {
		return false
	}
	if !t.now().Before(deadline) {
		delete(t.until, id)
		return false
	}
	return true
}

// Rank is Rank with the overtaking flag filled in.
func (t *Tracker) Rank(r roster.Roster) []Entry {
	entries := Rank(r)
	for i := range entries {
		entries[i].Overtaking = t.Overtaking(entries[i].Player.ID)
	}
	return entries
}

func (t *Tracker) Reset() {
	t.committed = nil
	t.until = make(map[string]time.Time)
}
