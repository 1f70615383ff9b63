// Package marga implements the stateless routing decision pipeline:
// task-type classification, complexity classification, binding lookup,
// and escalation-chain construction. Decide is a pure function with no
// I/O and no shared state, safe to call concurrently from any goroutine.
package marga

// DecisionVersion is bumped whenever the shape or semantics of
// Decision changes. Callers validate compatibility at startup.
const DecisionVersion = 1

// TaskType is one of a fixed, closed set of task categories.
type TaskType string

const (
	TaskCodeGen    TaskType = "code-gen"
	TaskReasoning  TaskType = "reasoning"
	TaskChat       TaskType = "chat"
	TaskSmalltalk  TaskType = "smalltalk"
	TaskToolExec   TaskType = "tool-exec"
	TaskVision     TaskType = "vision"
	TaskSearch     TaskType = "search"
	TaskMemory     TaskType = "memory"
	TaskFileOp     TaskType = "file-op"
	TaskCheckin    TaskType = "check-in"
	TaskUnknown    TaskType = "unknown"
)

// Resolution is the dispatch path chosen for a decision.
type Resolution string

const (
	ResolutionLLM          Resolution = "llm"
	ResolutionToolOnly     Resolution = "tool-only"
	ResolutionLocalCompute Resolution = "local-compute"
)

// Complexity is a totally ordered estimate of task difficulty.
type Complexity string

const (
	ComplexityTrivial Complexity = "trivial"
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
	ComplexityExpert  Complexity = "expert"
)

var complexityOrder = map[Complexity]int{
	ComplexityTrivial: 0,
	ComplexitySimple:  1,
	ComplexityMedium:  2,
	ComplexityComplex: 3,
	ComplexityExpert:  4,
}

func (c Complexity) rank() int { return complexityOrder[c] }

func maxComplexity(a, b Complexity) Complexity {
	if a.rank() >= b.rank() {
		return a
	}
	return b
}

// BindingStrategy selects which binding table Decide consults.
type BindingStrategy string

const (
	BindingLocal  BindingStrategy = "local"
	BindingCloud  BindingStrategy = "cloud"
	BindingHybrid BindingStrategy = "hybrid"
)

// ProviderHealth is an advisory map of providerId -> healthy.
type ProviderHealth map[string]bool

// DecideRequest is the single input to Decide.
type DecideRequest struct {
	Message         string
	HasTools        bool
	HasImages       bool
	BindingStrategy BindingStrategy
	Bindings        BindingTable // optional override of the default table
	ProviderHealth  ProviderHealth
}

// ModelRef identifies a (provider, model) pair.
type ModelRef struct {
	ProviderID string
	ModelID    string
}

// Decision is the versioned output of Decide. Stateless; no side effects.
type Decision struct {
	DecisionVersion    int
	ProviderID         string
	ModelID            string
	TaskType           TaskType
	SecondaryTaskType  *TaskType
	CheckinSubtype     *string
	Resolution         Resolution
	Complexity         Complexity
	SkipLLM            bool
	EscalationChain    []ModelRef
	Rationale          string
	Confidence         float64
	DecisionTimeMs     float64
	Abstain            bool
	AbstainReason      string
	ProviderHealthHints []string
	Temperature        *float64
}
