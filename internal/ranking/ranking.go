package ranking

import (
	"germanbridge/internal/roster"
	"sort"
	"time"
)

// OvertakeWindow is how long a player stays flagged after moving up the table.
const OvertakeWindow = 2 * time.Second

type Entry struct {
	Player     roster.Player
	Position   int // 1-based display rank
	Leading    bool
	Overtaking bool
}

// Rank orders players by score, highest first. Ties keep roster order. The
// roster itself is never reordered.
func Rank(r roster.Roster) []Entry {
	players := r.Players()
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score > players[j].Score
	})

	lead := leadScore(players)
	entries := make([]Entry, len(players))
	for i, p := range players {
		entries[i] = Entry{
			Player:   p,
			Position: i + 1,
			Leading:  lead != 0 && p.Score == lead,
		}
	}
	return entries
}

// leadScore is the highest score on the table, floored at zero, so an all
// negative table has no leader either.
func leadScore(players []roster.Player) int {
	max := 0
	for _, p := range players {
		if p.Score > max {
			max = p.Score
		}
	}
	return max
}

// Order returns player IDs in ranked order.
func Order(entries []Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.Player.ID
	}
	return ids
}
