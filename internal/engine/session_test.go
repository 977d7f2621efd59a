package engine

import (
	"errors"
	"reflect"
	"testing"

	"germanbridge/internal/scoring"
)

type scriptedPrompter struct {
	answers []string
	asked   []string
}

func (p *scriptedPrompter) Prompt(text string) (string, bool) {
	p.asked = append(p.asked, text)
	if len(p.answers) == 0 {
		return "", false
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, true
}

func newStandardSession(t *testing.T, names string) *Session {
	t.Helper()
	s := NewSession(Config{Rule: scoring.Standard})
	if _, err := s.AddPlayers(names); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSession_StartsEmpty(t *testing.T) {
	s := NewSession(Config{})
	snap := s.Snapshot()
	if snap.Phase != PhaseEmpty {
		t.Errorf("Phase = %q, want %q", snap.Phase, PhaseEmpty)
	}
	if snap.Round != 1 {
		t.Errorf("Round = %d, want 1", snap.Round)
	}
	if snap.CanUndo {
		t.Error("CanUndo should be false")
	}
	if snap.Rule != scoring.Standard {
		t.Errorf("Rule = %q, want %q", snap.Rule, scoring.Standard)
	}
}

func TestAddPlayers_BlankInputStaysEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", " , ,"} {
		s := NewSession(Config{})
		n, err := s.AddPlayers(in)
		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			t.Errorf("AddPlayers(%q) error = %v, want *InputError", in, err)
		}
		if n != 0 {
			t.Errorf("AddPlayers(%q) added %d", in, n)
		}
		if s.Phase() != PhaseEmpty {
			t.Errorf("AddPlayers(%q) Phase = %q, want %q", in, s.Phase(), PhaseEmpty)
		}
		if s.Roster().Len() != 0 {
			t.Errorf("AddPlayers(%q) roster has %d players", in, s.Roster().Len())
		}
	}
}

func TestAddPlayers_AppendsWhileActive(t *testing.T) {
	s := newStandardSession(t, "Ann, Bo")
	n, err := s.AddPlayers("Cy")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || s.Roster().Len() != 3 {
		t.Errorf("added %d, roster len %d; want 1 and 3", n, s.Roster().Len())
	}
	if s.Snapshot().CanUndo {
		t.Error("adding players should not push undo")
	}
}

func TestScenario_AnnAndBo(t *testing.T) {
	s := newStandardSession(t, "Ann, Bo")
	if s.Phase() != PhaseActive {
		t.Fatalf("Phase = %q, want %q", s.Phase(), PhaseActive)
	}

	if err := s.ScoreByBidOutcome(0, 3, 3); err != nil {
		t.Fatal(err)
	}
	if err := s.QuickAdjust(1, 10); err != nil {
		t.Fatal(err)
	}
	if got := s.Roster().Scores(); !reflect.DeepEqual(got, []int{19, 10}) {
		t.Fatalf("scores = %v, want [19 10]", got)
	}

	if !s.Undo() {
		t.Fatal("Undo() should succeed")
	}
	if got := s.Roster().Scores(); !reflect.DeepEqual(got, []int{19, 0}) {
		t.Fatalf("scores after undo = %v, want [19 0]", got)
	}

	s.AdvanceRound()
	s.ResetScores()
	if got := s.Roster().Scores(); !reflect.DeepEqual(got, []int{0, 0}) {
		t.Errorf("scores after reset = %v, want [0 0]", got)
	}
	if s.Round() != 1 {
		t.Errorf("Round after reset = %d, want 1", s.Round())
	}
	if s.Snapshot().CanUndo {
		t.Error("reset should clear undo history")
	}
}

func TestUndo_RoundTrip(t *testing.T) {
	s := newStandardSession(t, "Ann, Bo, Cy")
	steps := []func() error{
		func() error { return s.ScoreByBidOutcome(0, 2, 2) },
		func() error { return s.QuickAdjust(1, -1) },
		func() error { return s.CustomAdjust(2, 42) },
		func() error { return s.ScoreByBidOutcome(1, 5, 2) },
		func() error { return s.QuickAdjust(0, 1) },
	}

	var snapshots [][]int
	for _, step := range steps {
		snapshots = append(snapshots, s.Roster().Scores())
		if err := step(); err != nil {
			t.Fatal(err)
		}
	}

	for i := len(snapshots) - 1; i >= 0; i-- {
		if !s.Undo() {
			t.Fatalf("Undo() #%d failed", len(snapshots)-i)
		}
		if got := s.Roster().Scores(); !reflect.DeepEqual(got, snapshots[i]) {
			t.Errorf("after undo to step %d scores = %v, want %v", i, got, snapshots[i])
		}
	}

	for i := 0; i < 3; i++ {
		if s.Undo() {
			t.Error("Undo() on empty history should report false")
		}
	}
	if got := s.Roster().Scores(); !reflect.DeepEqual(got, []int{0, 0, 0}) {
		t.Errorf("scores = %v, want all zero", got)
	}
}

func TestUndo_KeepsPlayerIdentity(t *testing.T) {
	s := newStandardSession(t, "Ann, Bo")
	before := s.Roster()
	if err := s.CustomAdjust(1, 7); err != nil {
		t.Fatal(err)
	}
	s.Undo()
	if !s.Roster().Equal(before) {
		t.Error("roster after undo should equal roster before the action")
	}
}

func TestScoreByBidOutcome_Miss(t *testing.T) {
	s := newStandardSession(t, "Ann")
	if err := s.ScoreByBidOutcome(0, 5, 2); err != nil {
		t.Fatal(err)
	}
	if got := s.Roster().Scores()[0]; got != -9 {
		t.Errorf("score = %d, want -9", got)
	}
}

func TestScoreByBidOutcome_OutOfRange(t *testing.T) {
	s := newStandardSession(t, "Ann")
	if err := s.ScoreByBidOutcome(4, 1, 1); err == nil {
		t.Error("expected error for unknown player index")
	}
	if s.Snapshot().CanUndo {
		t.Error("failed action should not push undo")
	}
}

func TestQuickAdjust_RejectsOtherAmounts(t *testing.T) {
	s := newStandardSession(t, "Ann")
	if err := s.QuickAdjust(0, 5); !errors.Is(err, ErrNotQuickAdjust) {
		t.Errorf("QuickAdjust(5) error = %v, want ErrNotQuickAdjust", err)
	}
	for _, amount := range QuickAdjustments {
		if err := s.QuickAdjust(0, amount); err != nil {
			t.Errorf("QuickAdjust(%d) error: %v", amount, err)
		}
	}
	if got := s.Roster().Scores()[0]; got != 10 {
		t.Errorf("score = %d, want 10", got)
	}
}

func TestRuleMismatch(t *testing.T) {
	standard := newStandardSession(t, "Ann")
	if err := standard.ScoreSetsWon(0, 2); !errors.Is(err, ErrRuleMismatch) {
		t.Errorf("ScoreSetsWon under standard rule error = %v, want ErrRuleMismatch", err)
	}

	split := NewSession(Config{Rule: scoring.SplitEntry})
	split.AddPlayers("Ann")
	if err := split.ScoreByBidOutcome(0, 2, 2); !errors.Is(err, ErrRuleMismatch) {
		t.Errorf("ScoreByBidOutcome under split rule error = %v, want ErrRuleMismatch", err)
	}
}

func TestSplitEntry(t *testing.T) {
	s := NewSession(Config{Rule: scoring.SplitEntry})
	s.AddPlayers("Ann")
	if err := s.ScoreSetsWon(0, 3); err != nil {
		t.Fatal(err)
	}
	if err := s.ScoreSetsLost(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := s.Roster().Scores()[0]; got != 15 {
		t.Errorf("score = %d, want 15", got)
	}
	s.Undo()
	if got := s.Roster().Scores()[0]; got != 19 {
		t.Errorf("score after undo = %d, want 19", got)
	}
}

func TestNewGame(t *testing.T) {
	s := newStandardSession(t, "Ann, Bo")
	s.QuickAdjust(0, 10)
	s.AdvanceRound()
	s.NewGame()

	snap := s.Snapshot()
	if snap.Phase != PhaseEmpty {
		t.Errorf("Phase = %q, want %q", snap.Phase, PhaseEmpty)
	}
	if snap.CanUndo {
		t.Error("NewGame should clear undo history")
	}
	if snap.Round != 1 {
		t.Errorf("Round = %d, want 1", snap.Round)
	}
	if s.Undo() {
		t.Error("Undo after NewGame should be a no-op")
	}
}

func TestAdvanceRound(t *testing.T) {
	s := newStandardSession(t, "Ann, Bo")
	s.QuickAdjust(0, 10)
	if climbed := s.AdvanceRound(); len(climbed) != 0 {
		t.Errorf("first advance flagged %v", climbed)
	}
	if s.Round() != 2 {
		t.Errorf("Round = %d, want 2", s.Round())
	}

	s.ScoreByBidOutcome(1, 4, 4)
	bo, _ := s.Roster().At(1)
	climbed := s.AdvanceRound()
	if len(climbed) != 1 || climbed[0] != bo.ID {
		t.Errorf("AdvanceRound() = %v, want [%s]", climbed, bo.ID)
	}

	entries := s.Ranking()
	if entries[0].Player.ID != bo.ID || !entries[0].Overtaking || !entries[0].Leading {
		t.Errorf("top entry = %+v, want Bo leading and overtaking", entries[0])
	}

	first, _ := s.Roster().At(0)
	if first.Name != "Ann" {
		t.Error("advancing must not reorder the roster")
	}
}

func TestAdvanceRound_EmptyIsNoop(t *testing.T) {
	s := NewSession(Config{})
	s.AdvanceRound()
	if s.Round() != 1 {
		t.Errorf("Round = %d, want 1", s.Round())
	}
}

func TestLoad(t *testing.T) {
	s := newStandardSession(t, "Ann")
	s.QuickAdjust(0, 10)

	other := NewSession(Config{})
	other.AddPlayers("Cy, Di")
	other.CustomAdjust(1, 5)

	s.Load(other.Roster(), 4)
	if !s.Roster().Equal(other.Roster()) {
		t.Error("Load should replace the roster")
	}
	if s.Round() != 4 {
		t.Errorf("Round = %d, want 4", s.Round())
	}
	if s.Snapshot().CanUndo {
		t.Error("Load should clear undo history")
	}

	s.Load(other.Roster(), 0)
	if s.Round() != 1 {
		t.Errorf("Round = %d, want 1 for invalid stored round", s.Round())
	}
}

func TestPromptSplitCommands_RuleCheckedBeforeAsking(t *testing.T) {
	s := newStandardSession(t, "Ann")
	for name, prompt := range map[string]func(Prompter, int) error{
		"PromptSetsWon":  s.PromptSetsWon,
		"PromptSetsLost": s.PromptSetsLost,
	} {
		p := &scriptedPrompter{answers: []string{"2"}}
		if err := prompt(p, 0); !errors.Is(err, ErrRuleMismatch) {
			t.Errorf("%s error = %v, want ErrRuleMismatch", name, err)
		}
		if len(p.asked) != 0 {
			t.Errorf("%s asked %q before checking the rule", name, p.asked)
		}
	}
}
