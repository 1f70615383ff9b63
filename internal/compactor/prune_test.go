package compactor

import (
	"testing"

	"cogcore/internal/types"
)

func TestPruneToFitKeepsProtectedRegardlessOfScore(t *testing.T) {
	msgs := []types.Message{
		textMsg("sys", 0, "system message"),
		textMsg("a", 1, "low score filler content padded to be long enough to matter here"),
		textMsg("b", 2, "low score filler content padded to be long enough to matter here too"),
		textMsg("last", 3, "final message"),
	}
	protected := map[int]struct{}{0: {}, 3: {}}
	scores := []float64{1, 0.1, 0.2, 1}
	est := charEstimator{limit: 1000}

	out := pruneToFit(msgs, protected, scores, est, 1)
	ids := make(map[string]bool)
	for _, m := range out {
		ids[m.ID] = true
	}
	if !ids["sys"] || !ids["last"] {
		t.Fatalf("protected messages dropped: %v", out)
	}
}

func TestPruneToFitNoOpWhenAlreadyUnderBudget(t *testing.T) {
	msgs := []types.Message{textMsg("a", 1, "short")}
	est := charEstimator{limit: 1000}
	out := pruneToFit(msgs, map[int]struct{}{}, []float64{0.5}, est, 1000)
	if len(out) != 1 {
		t.Errorf("expected no pruning under budget, got %d messages", len(out))
	}
}
