package compactor

// Tier names the compaction strategy selected for a given usage ratio.
type Tier string

const (
	TierNone       Tier = "none"
	TierGentle     Tier = "gentle"
	TierModerate   Tier = "moderate"
	TierAggressive Tier = "aggressive"
)

// SelectTier picks the most aggressive tier whose threshold usage does
// not exceed. Boundary values select the tier they name: usage==0.60
// selects gentle, usage just under it selects none (spec §8).
func SelectTier(usage float64, cfg Config) Tier {
	switch {
	case usage >= cfg.Aggressive:
		return TierAggressive
	case usage >= cfg.Moderate:
		return TierModerate
	case usage >= cfg.Gentle:
		return TierGentle
	default:
		return TierNone
	}
}
