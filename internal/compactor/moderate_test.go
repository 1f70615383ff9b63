package compactor

import (
	"testing"

	"cogcore/internal/types"
)

func TestModeratePreservesSystemFirstAndLastTwo(t *testing.T) {
	var msgs []types.Message
	msgs = append(msgs, types.Message{ID: "sys", Role: types.RoleSystem, TimestampMs: 0,
		Content: []types.ContentPart{{Kind: types.PartText, Text: "system instructions for the assistant"}}})
	for i := 1; i <= 20; i++ {
		msgs = append(msgs, textMsg("m", int64(i), "filler conversation content that is reasonably long to accrue tokens"))
	}
	msgs = append(msgs, textMsg("second_last", 21, "second to last message"))
	msgs = append(msgs, textMsg("last", 22, "the very last message"))

	est := charEstimator{limit: 200}
	out := Moderate(msgs, est)

	ids := make(map[string]bool)
	for _, m := range out {
		ids[m.ID] = true
	}
	if !ids["sys"] {
		t.Error("system message dropped")
	}
	if !ids["second_last"] || !ids["last"] {
		t.Error("last two messages dropped")
	}
	if totalTokens(out, est) > int(float64(est.ContextLimit())*moderateBudgetFraction)*2 {
		t.Errorf("moderate output far exceeds budget: %d tokens", totalTokens(out, est))
	}
}

func TestModerateEmptyInput(t *testing.T) {
	out := Moderate(nil, charEstimator{limit: 100})
	if len(out) != 0 {
		t.Errorf("Moderate(nil) = %v, want empty", out)
	}
}
