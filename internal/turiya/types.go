// Package turiya implements a budget-aware contextual bandit router
// that complements marga's stateless decision pipeline without calling
// into it. Where Marga
// picks a model by task type alone, Turiya tracks empirical outcomes
// per tier and adjusts a cost-sensitive Lagrange multiplier to hold a
// configured spend target, escalating a single step when confidence
// runs low.
package turiya

// Tier is one of the four budget arms.
type Tier string

const (
	TierNoLLM  Tier = "no-llm"
	TierHaiku  Tier = "haiku"
	TierSonnet Tier = "sonnet"
	TierOpus   Tier = "opus"
)

var tierOrder = []Tier{TierNoLLM, TierHaiku, TierSonnet, TierOpus}

func tierIndex(t Tier) int {
	for i, x := range tierOrder {
		if x == t {
			return i
		}
	}
	return -1
}

// Context is the normalized feature vector Turiya classifies over, each
// field in [0,1].
type Context struct {
	Complexity        float64
	Urgency           float64
	Creativity        float64
	Precision         float64
	CodeRatio         float64
	ConversationDepth float64
	MemoryLoad        float64
}

// Preference nudges classify toward cheaper or stronger tiers without
// forcing a specific one.
type Preference string

const (
	PreferNone    Preference = ""
	PreferCheap   Preference = "cheap"
	PreferQuality Preference = "quality"
)

// Decision is classify's output.
type Decision struct {
	Tier       Tier
	ArmIndex   int
	Confidence float64
	CostUnits  float64
	Rationale  string
}

// CascadeResult is cascadeDecision's output.
type CascadeResult struct {
	Final       Tier
	Escalated   bool
	OriginalTier Tier
}

// Stats is getStats's output.
type Stats struct {
	TotalDecisions     int
	PerTierCount       map[Tier]int
	PerTierAvgReward   map[Tier]float64
	PerTierTotalCost   float64
	TotalCost          float64
	OpusBaselineCost   float64
	SavingsPercent     float64
	Lambda             float64
}

// armStats is the Beta-style counter pair plus a running reward mean
// for one tier.
type armStats struct {
	Successes    float64
	Failures     float64
	RewardSum    float64
	RewardCount  int
	TotalCost    float64
}

func (a armStats) avgReward() float64 {
	if a.RewardCount == 0 {
		return 0
	}
	return a.RewardSum / float64(a.RewardCount)
}

// mean of the Beta(successes+1, failures+1) posterior, used as the
// tier's empirical success rate.
func (a armStats) successRate() float64 {
	return (a.Successes + 1) / (a.Successes + a.Failures + 2)
}
