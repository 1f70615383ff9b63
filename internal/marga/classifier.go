package marga

import "strings"

// taskSignal is a keyword/phrase list contributing score to a TaskType.
type taskSignal struct {
	taskType TaskType
	keywords []string
	weight   float64
}

var taskSignals = []taskSignal{
	{TaskCodeGen, []string{"function", "implement", "refactor", "bug", "code", "compile", "class", "api", "script", "debug"}, 1.0},
	{TaskReasoning, []string{"why", "prove", "reason", "analyze", "explain step", "tradeoff", "compare", "design decision"}, 1.0},
	{TaskSearch, []string{"find", "search", "look up", "where is", "locate"}, 1.0},
	{TaskMemory, []string{"remember", "recall", "earlier you said", "last time", "what did i"}, 1.0},
	{TaskFileOp, []string{"delete file", "rename", "move file", "create file", "write a file", "read file"}, 1.0},
	{TaskVision, []string{"image", "screenshot", "picture", "photo", "diagram"}, 1.0},
	{TaskSmalltalk, []string{"hi", "hello", "hey", "thanks", "thank you", "how are you", "good morning"}, 1.0},
	{TaskChat, []string{"what do you think", "let's talk", "chat", "opinion"}, 0.8},
}

const toolExecWeight = 1.5

// classifyTaskType runs Pravritti: a keyword-scoring classifier over
// the user message, returning primary/secondary categories with raw
// scores and confidence in [0,1].
func classifyTaskType(req DecideRequest) (taskType TaskType, confidence float64, secondary *TaskType, topScore, secondScore float64) {
	lower := strings.ToLower(req.Message)

	scores := make(map[TaskType]float64, len(taskSignals))
	for _, sig := range taskSignals {
		for _, kw := range sig.keywords {
			if strings.Contains(lower, kw) {
				scores[sig.taskType] += sig.weight
			}
		}
	}
	if req.HasTools {
		scores[TaskToolExec] += toolExecWeight
	}
	if req.HasImages {
		scores[TaskVision] += toolExecWeight
	}

	if len(scores) == 0 {
		// No signal at all: a short greeting-shaped message defaults to
		// smalltalk, anything longer defaults to chat.
		if len(strings.Fields(req.Message)) <= 4 {
			return TaskSmalltalk, 0.5, nil, 0, 0
		}
		return TaskChat, 0.5, nil, 0, 0
	}

	type scored struct {
		t TaskType
		s float64
	}
	// stable selection: candidates are ranked in signal declaration
	// order (tool-exec, which has no keyword signal, last), so with the
	// strict comparisons below the highest score wins and ties go to the
	// earlier-declared task type.
	ranked := make([]scored, 0, len(scores))
	seen := make(map[TaskType]bool, len(scores))
	for _, sig := range taskSignals {
		if s, ok := scores[sig.taskType]; ok && !seen[sig.taskType] {
			seen[sig.taskType] = true
			ranked = append(ranked, scored{sig.taskType, s})
		}
	}
	if s, ok := scores[TaskToolExec]; ok {
		ranked = append(ranked, scored{TaskToolExec, s})
	}
	best, second := scored{TaskUnknown, -1}, scored{TaskUnknown, -1}
	for _, r := range ranked {
		if r.s > best.s {
			second = best
			best = r
		} else if r.s > second.s {
			second = r
		}
	}
	topScore, secondScore = best.s, second.s
	total := topScore + secondScore
	if total <= 0 {
		total = 1
	}
	confidence = topScore / (topScore + 1)
	if confidence > 1 {
		confidence = 1
	}
	if second.s > 0 && second.t != best.t {
		sec := second.t
		secondary = &sec
	}
	return best.t, confidence, secondary, topScore, secondScore
}

// resolutionFor maps a task type to its dispatch path.
func resolutionFor(t TaskType) Resolution {
	switch t {
	case TaskToolExec, TaskFileOp:
		return ResolutionToolOnly
	case TaskMemory, TaskSmalltalk:
		return ResolutionLocalCompute
	default:
		return ResolutionLLM
	}
}

var complexitySignals = []struct {
	complexity Complexity
	keywords   []string
}{
	{ComplexityExpert, []string{"architecture", "distributed", "race condition", "formally prove", "end-to-end design"}},
	{ComplexityComplex, []string{"refactor", "optimize", "migrate", "concurrency", "performance", "multi-step"}},
	{ComplexityMedium, []string{"implement", "add a feature", "write a function", "fix the bug"}},
	{ComplexitySimple, []string{"rename", "typo", "small change", "quick"}},
}

// classifyComplexity runs Vichara: a heuristic blend of message length
// and keyword signals producing trivial..expert with a confidence.
func classifyComplexity(req DecideRequest) (Complexity, float64) {
	lower := strings.ToLower(req.Message)
	words := len(strings.Fields(req.Message))

	for _, sig := range complexitySignals {
		for _, kw := range sig.keywords {
			if strings.Contains(lower, kw) {
				return sig.complexity, 0.75
			}
		}
	}

	switch {
	case words == 0:
		return ComplexityTrivial, 0.9
	case words <= 5:
		return ComplexityTrivial, 0.7
	case words <= 15:
		return ComplexitySimple, 0.6
	case words <= 40:
		return ComplexityMedium, 0.55
	default:
		return ComplexityComplex, 0.5
	}
}

// minComplexityFor enforces spec's floor for certain task types
// (reasoning >= complex, vision >= medium).
func minComplexityFor(t TaskType) (Complexity, bool) {
	switch t {
	case TaskReasoning:
		return ComplexityComplex, true
	case TaskVision:
		return ComplexityMedium, true
	default:
		return "", false
	}
}
