package compactor

import (
	"fmt"
	"testing"

	"cogcore/internal/types"
)

type fixedEstimator struct {
	perMessage int
	limit      int
}

func (e fixedEstimator) EstimateTokens(types.Message) int { return e.perMessage }
func (e fixedEstimator) ContextLimit() int                { return e.limit }

func TestAggressiveSatisfiesScenarioInvariants(t *testing.T) {
	var msgs []types.Message
	msgs = append(msgs, types.Message{ID: "sys0", Role: types.RoleSystem, TimestampMs: 0,
		Content: []types.ContentPart{{Kind: types.PartText, Text: "system prompt alpha"}}})
	msgs = append(msgs, types.Message{ID: "sys1", Role: types.RoleSystem, TimestampMs: 1,
		Content: []types.ContentPart{{Kind: types.PartText, Text: "system prompt beta"}}})
	for i := 2; i < 198; i++ {
		text := fmt.Sprintf("synthetic message body number %d discussing distinct unrelated topic entity%d", i, i)
		msgs = append(msgs, textMsg(fmt.Sprintf("m%d", i), int64(i), text))
	}
	msgs = append(msgs, textMsg("second_last", 198, "second to last conversation turn"))
	msgs = append(msgs, textMsg("last", 199, "final conversation turn"))

	est := fixedEstimator{perMessage: 250, limit: 10000}
	if got := totalTokens(msgs, est); got != 50000 {
		t.Fatalf("test setup: total tokens = %d, want 50000", got)
	}
	if usage := Usage(msgs, est); usage != 5.0 {
		t.Fatalf("test setup: usage = %v, want 5.0", usage)
	}

	out := Aggressive(msgs, est)

	systemCount := 0
	for _, m := range out {
		if m.Role == types.RoleSystem {
			systemCount++
		}
	}
	if systemCount != 2 {
		t.Errorf("system messages retained = %d, want 2", systemCount)
	}

	ids := make(map[string]bool)
	for _, m := range out {
		ids[m.ID] = true
	}
	if !ids["second_last"] || !ids["last"] {
		t.Error("protected tail dropped")
	}

	if got := totalTokens(out, est); got > 4000 {
		t.Errorf("aggressive output token total = %d, want <= 4000", got)
	}

	for i := 1; i < len(out); i++ {
		if out[i].TimestampMs < out[i-1].TimestampMs {
			t.Fatalf("output not monotonically non-decreasing by timestamp at index %d", i)
		}
	}
}
