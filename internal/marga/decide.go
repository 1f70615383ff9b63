package marga

import (
	"fmt"
	"math"
	"time"

	"cogcore/internal/logging"
)

// Decide runs the full stateless routing pipeline (spec §4.7). It
// never panics: on any unexpected condition it degrades to a safe
// fallback decision rather than propagating an error, since Marga has
// no error return in its contract.
func Decide(req DecideRequest) (decision Decision) {
	start := time.Now()
	log := logging.Get(logging.CategoryMarga)

	defer func() {
		if r := recover(); r != nil {
			log.Warn("marga: recovered from panic in Decide: %v", r)
			decision = fallbackDecision(start)
		}
	}()

	taskType, taskConfidence, secondary, topScore, secondScore := classifyTaskType(req)
	complexity, complexityConfidence := classifyComplexity(req)

	if minC, ok := minComplexityFor(taskType); ok {
		complexity = maxComplexity(complexity, minC)
	}

	resolution := resolutionFor(taskType)
	skipLLM := resolution != ResolutionLLM

	bindings := req.Bindings
	if bindings == nil {
		bindings = defaultBindings(req.BindingStrategy)
	}
	b, ok := bindings[taskType]
	if !ok {
		b = bindings[TaskUnknown]
	}
	selected := b.model
	rationale := b.rationale

	if !skipLLM && complexity.rank() >= ComplexityComplex.rank() {
		switch {
		case complexity == ComplexityExpert:
			selected = ladder[tierOpus]
			rationale = "expert complexity routes to the top tier"
		case taskType == TaskCodeGen:
			selected = codingStrong
			rationale = "complex code-gen routes to the coding-oriented strong model"
		default:
			selected = ladder[tierSonnet]
			rationale = "complex task routes to the generic strong model"
		}
	}

	confidence := math.Sqrt(taskConfidence * complexityConfidence)

	decision = Decision{
		DecisionVersion:   DecisionVersion,
		ProviderID:        selected.ProviderID,
		ModelID:           selected.ModelID,
		TaskType:          taskType,
		SecondaryTaskType: secondary,
		Resolution:        resolution,
		Complexity:        complexity,
		SkipLLM:           skipLLM,
		EscalationChain:   escalationChain(selected),
		Rationale:         rationale,
		Confidence:        confidence,
	}

	if secondary != nil && (topScore-secondScore) <= 1 && confidence <= 0.67 {
		decision.Abstain = true
		decision.AbstainReason = "near_tie_top2"
	}

	if req.ProviderHealth != nil {
		if healthy, known := req.ProviderHealth[selected.ProviderID]; known && !healthy {
			decision.ProviderHealthHints = append(decision.ProviderHealthHints,
				fmt.Sprintf("provider %q reported unhealthy; selection unchanged, enforcement is external", selected.ProviderID))
		}
	}

	temp := temperatureFor(taskType)
	decision.Temperature = &temp

	decision.DecisionTimeMs = float64(time.Since(start)) / float64(time.Millisecond)
	if decision.DecisionTimeMs > 150 {
		log.Warn("marga: Decide exceeded 150ms budget (%.2fms)", decision.DecisionTimeMs)
	}
	return decision
}

// fallbackDecision is returned when Decide recovers from a panic; it
// degrades to the safest possible resolution (no LLM call) rather
// than propagating a failure, since Marga's contract never throws.
func fallbackDecision(start time.Time) Decision {
	temp := 0.4
	return Decision{
		DecisionVersion: DecisionVersion,
		ProviderID:      ladder[tierLocal].ProviderID,
		ModelID:         ladder[tierLocal].ModelID,
		TaskType:        TaskUnknown,
		Resolution:      ResolutionLocalCompute,
		Complexity:      ComplexityTrivial,
		SkipLLM:         true,
		Rationale:       "fallback decision after internal error",
		Confidence:      0,
		Temperature:     &temp,
		DecisionTimeMs:  float64(time.Since(start)) / float64(time.Millisecond),
	}
}

func temperatureFor(t TaskType) float64 {
	switch t {
	case TaskCodeGen:
		return 0.2
	case TaskReasoning:
		return 0.5
	case TaskChat, TaskSmalltalk:
		return 0.7
	default:
		return 0.4
	}
}
