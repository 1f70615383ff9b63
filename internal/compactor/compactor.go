package compactor

import (
	"cogcore/internal/logging"
	"cogcore/internal/types"
)

var log = logging.Get(logging.CategoryCompactor)

// Result carries the compacted message sequence and the tier that was
// applied, so callers can observe downgrades as usage drops.
type Result struct {
	Messages []types.Message
	Tier     Tier
	Usage    float64
}

// CheckAndCompact reads current usage and applies at most one tier per
// invocation (spec §4.4). It must complete synchronously — no tier
// dispatch here ever yields.
func CheckAndCompact(msgs []types.Message, est TokenEstimator, cfg Config) Result {
	usage := Usage(msgs, est)
	tier := SelectTier(usage, cfg)

	var out []types.Message
	switch tier {
	case TierAggressive:
		out = Aggressive(msgs, est)
	case TierModerate:
		out = Moderate(msgs, est)
	case TierGentle:
		out = Gentle(msgs)
	default:
		out = types.CloneMessages(msgs)
	}

	if tier != TierNone {
		log.Info("compaction applied tier=%s usage=%.3f before=%d after=%d", tier, usage, len(msgs), len(out))
	}
	return Result{Messages: out, Tier: tier, Usage: usage}
}
