package scoring

import (
	"fmt"
	"strings"
)

// Rule names a scoring formula. The two rules are not interchangeable and a
// game should stick to one.
type Rule string

const (
	// Standard rewards an exact bid with 10 + outcome² and penalises a miss by
	// the squared distance between bid and outcome.
	Standard = Rule("standard")
	// SplitEntry records sets won and sets lost as two unrelated entries.
	SplitEntry = Rule("split")
)

func ParseRule(name string) (Rule, error) {
	switch Rule(strings.ToLower(strings.TrimSpace(name))) {
	case "", Standard:
		return Standard, nil
	case SplitEntry:
		return SplitEntry, nil
	}
	return "", fmt.Errorf("unknown scoring rule %q", name)
}

// Score returns the delta for one round under the standard rule.
func Score(bid, outcome int) int {
	if bid == outcome {
		return 10 + outcome*outcome
	}
	miss := bid - outcome
	return -(miss * miss)
}

// SetsWon is the positive half of the split-entry rule.
func SetsWon(n int) int {
	return 10 + n*n
}

// SetsLost is the negative half of the split-entry rule.
func SetsLost(x int) int {
	return -(x * x)
}
