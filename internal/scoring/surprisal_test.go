package scoring

import "testing"

func TestSurprisalEmptyDocScoresZero(t *testing.T) {
	docs := [][]string{{"alpha"}, {}}
	scores := Surprisal(docs)
	if scores[1] != 0 {
		t.Errorf("Surprisal empty doc = %v, want 0", scores[1])
	}
}

func TestSurprisalRareTokenScoresHigher(t *testing.T) {
	docs := [][]string{
		{"common"},
		{"common"},
		{"common"},
		{"rare"},
	}
	scores := Surprisal(docs)
	if scores[3] <= scores[0] {
		t.Errorf("rare doc surprisal %v should exceed common doc surprisal %v", scores[3], scores[0])
	}
}

func TestSurprisalNoDocs(t *testing.T) {
	if got := Surprisal(nil); len(got) != 0 {
		t.Errorf("Surprisal(nil) = %v, want empty", got)
	}
}
