package compactor

import (
	"testing"

	"cogcore/internal/types"
)

func TestCheckAndCompactNoneBelowGentleThreshold(t *testing.T) {
	msgs := []types.Message{textMsg("a", 1, "short")}
	est := fixedEstimator{perMessage: 1, limit: 1000}
	result := CheckAndCompact(msgs, est, DefaultConfig())
	if result.Tier != TierNone {
		t.Errorf("Tier = %v, want none", result.Tier)
	}
	if len(result.Messages) != len(msgs) {
		t.Errorf("message count changed at tier none")
	}
}

func TestCheckAndCompactDispatchesGentle(t *testing.T) {
	msgs := []types.Message{textMsg("a", 1, "x")}
	est := fixedEstimator{perMessage: 600, limit: 1000}
	result := CheckAndCompact(msgs, est, DefaultConfig())
	if result.Tier != TierGentle {
		t.Errorf("Tier = %v, want gentle", result.Tier)
	}
}
