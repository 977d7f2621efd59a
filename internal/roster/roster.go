package roster

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrNoSuchPlayer = errors.New("no such player")

// Roster is an immutable, insertion-ordered list of players. Every method that
// changes scores returns a new Roster and leaves the receiver untouched, so a
// Roster can be kept as an undo snapshot without copying.
type Roster struct {
	players []Player
}

// New builds a roster from names, assigning each player a fresh ID.
func New(names ...string) Roster {
	var r Roster
	return r.Add(names...)
}

// FromPlayers builds a roster from already-identified players, e.g. a stored
// game record. Players without an ID get one.
func FromPlayers(players []Player) Roster {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		out = append(out, p)
	}
	return Roster{players: out}
}

// ParseNames splits a comma separated list, trims each name and drops the
// empty ones.
func ParseNames(input string) []string {
	var names []string
	for _, name := range strings.Split(input, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (r Roster) Len() int {
	return len(r.players)
}

func (r Roster) At(i int) (Player, error) {
	if i < 0 || i >= len(r.players) {
		return Player{}, ErrNoSuchPlayer
	}
	return r.players[i], nil
}

// Players returns a copy of the players in insertion order.
func (r Roster) Players() []Player {
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}

func (r Roster) IndexOf(id string) int {
	for i, p := range r.players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Add appends players with zero scores. Blank names are skipped.
func (r Roster) Add(names ...string) Roster {
	out := make([]Player, len(r.players), len(r.players)+len(names))
	copy(out, r.players)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, Player{ID: uuid.New().String(), Name: name})
	}
	return Roster{players: out}
}

// Adjust returns a roster where player i's score has changed by delta.
func (r Roster) Adjust(i, delta int) (Roster, error) {
	if i < 0 || i >= len(r.players) {
		return r, ErrNoSuchPlayer
	}
	out := r.Players()
	out[i].Score += delta
	return Roster{players: out}, nil
}

// ResetScores returns the same players, in the same order, with zero scores.
func (r Roster) ResetScores() Roster {
	out := r.Players()
	for i := range out {
		out[i].Score = 0
	}
	return Roster{players: out}
}

func (r Roster) Scores() []int {
	scores := make([]int, len(r.players))
	for i, p := range r.players {
		scores[i] = p.Score
	}
	return scores
}

func (r Roster) Equal(other Roster) bool {
	if len(r.players) != len(other.players) {
		return false
	}
	for i := range r.players {
		if r.players[i] != other.players[i] {
			return false
		}
	}
	return true
}
