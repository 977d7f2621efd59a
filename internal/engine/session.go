package engine

import (
	"fmt"
	"time"

	"germanbridge/internal/ranking"
	"germanbridge/internal/roster"
	"germanbridge/internal/scoring"
	"germanbridge/internal/undo"
)

type Phase string

const (
	PhaseEmpty  = Phase("empty")
	PhaseActive = Phase("active")
)

type Config struct {
	Rule scoring.Rule
	Now  func() time.Time // clock for overtake highlighting; time.Now if nil
}

// Snapshot is the read-only view handed to whatever renders the game.
type Snapshot struct {
	Phase   Phase
	Rule    scoring.Rule
	Roster  roster.Roster
	Round   int
	CanUndo bool
}

// Session is one game at the table. It is not safe for concurrent use; every
// command runs to completion before the next one.
type Session struct {
	rule    scoring.Rule
	roster  roster.Roster
	round   int
	history undo.Stack
	tracker *ranking.Tracker
}

func NewSession(cfg Config) *Session {
	rule := cfg.Rule
	if rule == "" {
		rule = scoring.Standard
	}
	return &Session{
		rule:    rule,
		round:   1,
		tracker: ranking.NewTracker(cfg.Now),
	}
}

func (s *Session) Phase() Phase {
	if s.roster.Len() == 0 {
		return PhaseEmpty
	}
	return PhaseActive
}

func (s *Session) Rule() scoring.Rule {
	return s.rule
}

func (s *Session) Roster() roster.Roster {
	return s.roster
}

func (s *Session) Round() int {
	return s.round
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:   s.Phase(),
		Rule:    s.rule,
		Roster:  s.roster,
		Round:   s.round,
		CanUndo: s.history.Len() > 0,
	}
}

// Ranking is the display order for the current roster, with leader and
// overtake flags.
func (s *Session) Ranking() []ranking.Entry {
	return s.tracker.Rank(s.roster)
}

// AddPlayers appends every name in a comma separated list. If the list holds
// no usable name nothing changes and an *InputError is returned.
func (s *Session) AddPlayers(names string) (int, error) {
	parsed := roster.ParseNames(names)
	if len(parsed) == 0 {
		return 0, &InputError{Input: names, Reason: "enter at least one player name"}
	}
	s.roster = s.roster.Add(parsed...)
	return len(parsed), nil
}

// Load replaces the session with a stored game. Undo history and overtake
// state start over.
func (s *Session) Load(r roster.Roster, round int) {
	if round < 1 {
		round = 1
	}
	s.roster = r
	s.round = round
	s.history.Clear()
	s.tracker.Reset()
}

// apply commits a delta for one player, keeping the previous roster for undo.
func (s *Session) apply(index, delta int) error {
	next, err := ApplyAction(s.roster, index, delta)
	if err != nil {
		return err
	}
	s.history.Push(s.roster)
	s.roster = next
	return nil
}

func (s *Session) ScoreByBidOutcome(index, bid, outcome int) error {
	if s.rule != scoring.Standard {
		return ErrRuleMismatch
	}
	return s.apply(index, scoring.Score(bid, outcome))
}

func (s *Session) ScoreSetsWon(index, n int) error {
	if s.rule != scoring.SplitEntry {
		return ErrRuleMismatch
	}
	return s.apply(index, scoring.SetsWon(n))
}

func (s *Session) ScoreSetsLost(index, x int) error {
	if s.rule != scoring.SplitEntry {
		return ErrRuleMismatch
	}
	return s.apply(index, scoring.SetsLost(x))
}

func (s *Session) QuickAdjust(index, amount int) error {
	if !isQuickAdjustment(amount) {
		return fmt.Errorf("%w: got %d", ErrNotQuickAdjust, amount)
	}
	return s.apply(index, amount)
}

func (s *Session) CustomAdjust(index, amount int) error {
	return s.apply(index, amount)
}

// Undo restores the roster from before the last scoring action. It reports
// false when there is nothing to undo.
func (s *Session) Undo() bool {
	prev, ok := s.history.Pop()
	if !ok {
		return false
	}
	s.roster = prev
	return true
}

func (s *Session) ResetScores() {
	s.roster = s.roster.ResetScores()
	s.round = 1
	s.history.Clear()
	s.tracker.Reset()
}

func (s *Session) NewGame() {
	s.roster = roster.Roster{}
	s.round = 1
	s.history.Clear()
	s.tracker.Reset()
}

// AdvanceRound moves to the next round and commits the current standings.
// It returns the IDs of players who climbed since the last round.
func (s *Session) AdvanceRound() []string {
	if s.Phase() == PhaseEmpty {
		return nil
	}
	s.round++
	return s.tracker.Commit(s.roster)
}

// PromptBidOutcome asks for a bid and the sets won, then scores them.
func (s *Session) PromptBidOutcome(p Prompter, index int) error {
	if s.rule != scoring.Standard {
		return ErrRuleMismatch
	}
	player, err := s.roster.At(index)
	if err != nil {
		return err
	}
	bidText, err := requestText(p, fmt.Sprintf("Enter bid by %s:", player.Name))
	if err != nil {
		return err
	}
	wonText, err := requestText(p, fmt.Sprintf("Enter sets won by %s:", player.Name))
	if err != nil {
		return err
	}
	bid, err := parseNumber(bidText)
	if err != nil {
		return err
	}
	won, err := parseNumber(wonText)
	if err != nil {
		return err
	}
	return s.ScoreByBidOutcome(index, bid, won)
}

func (s *Session) PromptSetsWon(p Prompter, index int) error {
	if s.rule != scoring.SplitEntry {
		return ErrRuleMismatch
	}
	player, err := s.roster.At(index)
	if err != nil {
		return err
	}
	n, err := RequestNumber(p, fmt.Sprintf("Enter sets won by %s:", player.Name))
	if err != nil {
		return err
	}
	return s.ScoreSetsWon(index, n)
}

func (s *Session) PromptSetsLost(p Prompter, index int) error {
	if s.rule != scoring.SplitEntry {
		return ErrRuleMismatch
	}
	player, err := s.roster.At(index)
	if err != nil {
		return err
	}
	x, err := RequestNumber(p, fmt.Sprintf("Enter sets lost by %s:", player.Name))
	if err != nil {
		return err
	}
	return s.ScoreSetsLost(index, x)
}

func (s *Session) PromptCustom(p Prompter, index int) error {
	if _, err := s.roster.At(index); err != nil {
		return err
	}
	amount, err := RequestNumber(p, "Enter custom value:")
	if err != nil {
		return err
	}
	return s.CustomAdjust(index, amount)
}
