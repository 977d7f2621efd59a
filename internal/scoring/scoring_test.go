package scoring

import "testing"

func TestScore_ExactBid(t *testing.T) {
	for k := -5; k <= 13; k++ {
		if got, want := Score(k, k), 10+k*k; got != want {
			t.Errorf("Score(%d, %d) = %d, want %d", k, k, got, want)
		}
	}
	if got := Score(3, 3); got != 19 {
		t.Errorf("Score(3, 3) = %d, want 19", got)
	}
	if got := Score(0, 0); got != 10 {
		t.Errorf("Score(0, 0) = %d, want 10", got)
	}
}

func TestScore_Miss(t *testing.T) {
	tests := []struct {
		bid, outcome, want int
	}{
		{5, 2, -9},
		{2, 5, -9},
		{0, 1, -1},
		{4, 0, -16},
		{1000, 0, -1000000},
	}
	for _, tt := range tests {
		if got := Score(tt.bid, tt.outcome); got != tt.want {
			t.Errorf("Score(%d, %d) = %d, want %d", tt.bid, tt.outcome, got, tt.want)
		}
	}
}

func TestSplitEntry(t *testing.T) {
	if got := SetsWon(3); got != 19 {
		t.Errorf("SetsWon(3) = %d, want 19", got)
	}
	if got := SetsWon(0); got != 10 {
		t.Errorf("SetsWon(0) = %d, want 10", got)
	}
	if got := SetsLost(2); got != -4 {
		t.Errorf("SetsLost(2) = %d, want -4", got)
	}
	if got := SetsLost(0); got != 0 {
		t.Errorf("SetsLost(0) = %d, want 0", got)
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		in   string
		want Rule
	}{
		{"", Standard},
		{"standard", Standard},
		{" Split ", SplitEntry},
	}
	for _, tt := range tests {
		got, err := ParseRule(tt.in)
		if err != nil {
			t.Fatalf("ParseRule(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseRule(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseRule("doubles"); err == nil {
		t.Error("ParseRule should reject unknown rule names")
	}
}
