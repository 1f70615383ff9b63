package turiya

import (
	"fmt"
	"sync"

	"cogcore/internal/logging"
)

// Router is the stateful contextual bandit. All mutating methods take
// the same mutex, giving the whole instance a single logical critical
// section as required by spec §4.8.
type Router struct {
	mu   sync.Mutex
	cfg  Config
	log  *logging.Logger
	arms map[Tier]armStats

	lambda         float64
	totalDecisions int
}

// New constructs a Router with empty arm statistics.
func New(cfg Config) *Router {
	arms := make(map[Tier]armStats, len(tierOrder))
	for _, t := range tierOrder {
		arms[t] = armStats{}
	}
	return &Router{
		cfg:    cfg,
		log:    logging.Get(logging.CategoryTuriya),
		arms:   arms,
		lambda: cfg.InitialLambda,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func difficultyScore(ctx Context) float64 {
	return clamp01(
		0.25*ctx.Complexity +
			0.15*ctx.Precision +
			0.15*ctx.CodeRatio +
			0.15*ctx.Creativity +
			0.10*ctx.ConversationDepth +
			0.10*ctx.Urgency +
			0.10*ctx.MemoryLoad,
	)
}

// Classify picks a tier for the given context (spec §4.8 classify).
func (r *Router) Classify(ctx Context, pref Preference) Decision {
	r.mu.Lock()
	defer r.mu.Unlock()

	diff := difficultyScore(ctx)

	adj := r.lambda * 0.2
	switch pref {
	case PreferCheap:
		adj += 0.15
	case PreferQuality:
		adj -= 0.15
	}

	th := r.cfg.BaseThresholds
	for i := range th {
		th[i] = clamp01(th[i] + adj)
	}

	tier := TierOpus
	switch {
	case diff < th[0]:
		tier = TierNoLLM
	case diff < th[1]:
		tier = TierHaiku
	case diff < th[2]:
		tier = TierSonnet
	}

	margin := marginToNearestBoundary(diff, th)
	arm := r.arms[tier]
	confidence := clamp01(0.6*marginConfidence(margin) + 0.4*arm.successRate())

	return Decision{
		Tier:       tier,
		ArmIndex:   tierIndex(tier),
		Confidence: confidence,
		CostUnits:  r.cfg.costFor(tier),
		Rationale:  fmt.Sprintf("difficulty=%.3f lambda=%.3f preference=%q", diff, r.lambda, pref),
	}
}

// marginToNearestBoundary is the absolute distance from diff to its
// closest threshold, used as a proxy for classification confidence.
func marginToNearestBoundary(diff float64, th [3]float64) float64 {
	best := 1.0
	for _, t := range th {
		d := diff - t
		if d < 0 {
			d = -d
		}
		if d < best {
			best = d
		}
	}
	return best
}

func marginConfidence(margin float64) float64 {
	// A margin of 0.25 or more (a point squarely inside a bucket) maps
	// to full confidence; anything closer to a boundary scales down.
	return clamp01(margin / 0.25)
}

// CascadeDecision escalates one tier when confidence falls below
// threshold (default 0.5), per spec §4.8.
func (r *Router) CascadeDecision(decision Decision, threshold *float64) CascadeResult {
	th := 0.5
	if threshold != nil {
		th = *threshold
	}
	idx := tierIndex(decision.Tier)
	if decision.Confidence < th && idx >= 0 && idx < len(tierOrder)-1 {
		return CascadeResult{Final: tierOrder[idx+1], Escalated: true, OriginalTier: decision.Tier}
	}
	return CascadeResult{Final: decision.Tier, Escalated: false, OriginalTier: decision.Tier}
}

// RecordOutcome updates the chosen tier's arm statistics and adjusts
// lambda toward the configured budget target.
func (r *Router) RecordOutcome(decision Decision, reward float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	arm := r.arms[decision.Tier]
	if reward >= 0.5 {
		arm.Successes++
	} else {
		arm.Failures++
	}
	arm.RewardSum += reward
	arm.RewardCount++
	arm.TotalCost += decision.CostUnits
	r.arms[decision.Tier] = arm

	r.totalDecisions++

	avgCost := r.totalCostLocked() / float64(r.totalDecisions)
	errTerm := avgCost - r.cfg.BudgetTargetPerDecision
	r.lambda += r.cfg.LambdaStep * errTerm
	if r.lambda > r.cfg.LambdaMax {
		r.lambda = r.cfg.LambdaMax
	}
	if r.lambda < 0 {
		r.lambda = 0
	}
	r.log.Debug("turiya: recorded outcome tier=%s reward=%.2f lambda=%.3f", decision.Tier, reward, r.lambda)
}

func (r *Router) totalCostLocked() float64 {
	var sum float64
	for _, a := range r.arms {
		sum += a.TotalCost
	}
	return sum
}

// GetStats summarizes totals, per-tier counts/rewards, and opus-baseline
// savings.
func (r *Router) GetStats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	perCount := make(map[Tier]int, len(tierOrder))
	perAvg := make(map[Tier]float64, len(tierOrder))
	var totalCost float64
	var totalCount int
	for _, t := range tierOrder {
		a := r.arms[t]
		perCount[t] = a.RewardCount
		perAvg[t] = a.avgReward()
		totalCost += a.TotalCost
		totalCount += a.RewardCount
	}

	opusBaseline := float64(totalCount) * r.cfg.costFor(TierOpus)
	savings := 0.0
	if opusBaseline > 0 {
		savings = clamp01((opusBaseline-totalCost)/opusBaseline) * 100
	}

	return Stats{
		TotalDecisions:   r.totalDecisions,
		PerTierCount:     perCount,
		PerTierAvgReward: perAvg,
		PerTierTotalCost: totalCost,
		TotalCost:        totalCost,
		OpusBaselineCost: opusBaseline,
		SavingsPercent:   savings,
		Lambda:           r.lambda,
	}
}

// Vacuum halves every arm's accumulated reward/cost counters, keeping
// the running averages but shrinking their weight against future
// outcomes. Satisfies nidra.Vacuumable for the deep-sleep facts-vacuum
// handler.
func (r *Router) Vacuum() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for t, a := range r.arms {
		a.Successes /= 2
		a.Failures /= 2
		a.RewardSum /= 2
		a.RewardCount /= 2
		a.TotalCost /= 2
		r.arms[t] = a
	}
}
