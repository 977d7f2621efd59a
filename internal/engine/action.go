package engine

import (
	"germanbridge/internal/roster"
	"germanbridge/internal/scoring"
)

// Quick adjust amounts offered next to every player.
var QuickAdjustments = []int{10, 1, -1}

// ApplyAction returns r with delta added to player index. r is not modified.
func ApplyAction(r roster.Roster, index, delta int) (roster.Roster, error) {
	return r.Adjust(index, delta)
}

// ApplyCalculatedAction scores a bid/outcome pair with the standard rule and
// applies it.
func ApplyCalculatedAction(r roster.Roster, index, bid, outcome int) (roster.Roster, error) {
	return ApplyAction(r, index, scoring.Score(bid, outcome))
}

func isQuickAdjustment(amount int) bool {
	for _, q := range QuickAdjustments {
		if q == amount {
			return true
		}
	}
	return false
}
