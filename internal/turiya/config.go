package turiya

// Config tunes the bandit's cost sensitivity and classification
// thresholds, all defaultable via internal/config (spec §6). Costs are
// illustrative relative units, not currency.
type Config struct {
	Cost map[Tier]float64 `yaml:"cost"`

	// BudgetTargetPerDecision is the average cost-per-decision the
	// Lagrange multiplier tracks (spec §4.8's "budget target").
	BudgetTargetPerDecision float64 `yaml:"budget_target_per_decision"`
	// LambdaStep is how aggressively lambda chases the budget error
	// each time an outcome is recorded.
	LambdaStep float64 `yaml:"lambda_step"`
	// LambdaMax bounds the multiplier so it can never push every
	// decision to the cheapest tier regardless of context.
	LambdaMax float64 `yaml:"lambda_max"`
	// InitialLambda seeds the multiplier before any outcomes recorded.
	InitialLambda float64 `yaml:"initial_lambda"`

	// BaseThresholds are the difficulty-score cut points (ascending)
	// separating no-llm|haiku|sonnet|opus before any lambda/preference
	// adjustment is applied.
	BaseThresholds [3]float64 `yaml:"base_thresholds"`
}

// DefaultConfig matches SPEC_FULL.md's illustrative relative costs
// (no-llm=0, haiku=1, sonnet=5, opus=25) and a moderate budget target.
func DefaultConfig() Config {
	return Config{
		Cost: map[Tier]float64{
			TierNoLLM:  0,
			TierHaiku:  1,
			TierSonnet: 5,
			TierOpus:   25,
		},
		BudgetTargetPerDecision: 3.0,
		LambdaStep:              0.05,
		LambdaMax:               2.0,
		InitialLambda:           0.0,
		BaseThresholds:          [3]float64{0.15, 0.40, 0.75},
	}
}

func (c Config) costFor(t Tier) float64 {
	if v, ok := c.Cost[t]; ok {
		return v
	}
	return 0
}
