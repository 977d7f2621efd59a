package undo

import "germanbridge/internal/roster"

// Stack holds roster snapshots taken before each scoring action. Popped
// snapshots are gone for good; there is no redo.
type Stack struct {
	snapshots []roster.Roster
}

func (s *Stack) Push(r roster.Roster) {
	s.snapshots = append(s.snapshots, r)
}

func (s *Stack) Pop() (roster.Roster, bool) {
	if len(s.snapshots) == 0 {
		return roster.Roster{}, false
	}
	last := len(s.snapshots) - 1
	r := s.snapshots[last]
	s.snapshots[last] = roster.Roster{}
	s.snapshots = s.snapshots[:last]
	return r, true
}

func (s *Stack) Len() int {
	return len(s.snapshots)
}

func (s *Stack) Clear() {
	s.snapshots = nil
}
