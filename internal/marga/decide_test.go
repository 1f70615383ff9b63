package marga

import "testing"

func TestDecideSmalltalkGreeting(t *testing.T) {
	d := Decide(DecideRequest{Message: "hi there", BindingStrategy: BindingHybrid})

	if d.TaskType != TaskSmalltalk && d.TaskType != TaskChat {
		t.Errorf("TaskType = %v, want smalltalk or chat", d.TaskType)
	}
	if d.Resolution != ResolutionLLM && d.Resolution != ResolutionLocalCompute {
		t.Errorf("Resolution = %v, want llm or local-compute", d.Resolution)
	}
	if d.SkipLLM != (d.Resolution != ResolutionLLM) {
		t.Errorf("SkipLLM = %v inconsistent with Resolution = %v", d.SkipLLM, d.Resolution)
	}
	if d.ProviderID == "" || d.ModelID == "" {
		t.Errorf("expected bound provider/model, got %q/%q", d.ProviderID, d.ModelID)
	}
	if d.DecisionTimeMs > 150 {
		t.Errorf("DecisionTimeMs = %v, want <= 150", d.DecisionTimeMs)
	}
	if d.DecisionVersion != DecisionVersion {
		t.Errorf("DecisionVersion = %v, want %v", d.DecisionVersion, DecisionVersion)
	}
}

func TestDecideCodeGenComplexUpgradesModel(t *testing.T) {
	d := Decide(DecideRequest{
		Message:         "please refactor this function to fix the race condition in the concurrency code",
		BindingStrategy: BindingHybrid,
	})
	if d.TaskType != TaskCodeGen {
		t.Fatalf("TaskType = %v, want code-gen", d.TaskType)
	}
	if d.Complexity.rank() < ComplexityComplex.rank() {
		t.Errorf("Complexity = %v, want >= complex", d.Complexity)
	}
	if d.ModelID != codingStrong.ModelID && d.ModelID != ladder[tierOpus].ModelID {
		t.Errorf("ModelID = %v, want coding-strong or top tier", d.ModelID)
	}
}

func TestDecideReasoningMinComplexityOverride(t *testing.T) {
	d := Decide(DecideRequest{Message: "why is this the right tradeoff, can you reason about it", BindingStrategy: BindingHybrid})
	if d.Complexity.rank() < ComplexityComplex.rank() {
		t.Errorf("Complexity = %v, want >= complex for reasoning task", d.Complexity)
	}
}

func TestDecideVisionMinComplexityOverride(t *testing.T) {
	d := Decide(DecideRequest{Message: "what's in this screenshot", HasImages: true, BindingStrategy: BindingHybrid})
	if d.TaskType != TaskVision {
		t.Fatalf("TaskType = %v, want vision", d.TaskType)
	}
	if d.Complexity.rank() < ComplexityMedium.rank() {
		t.Errorf("Complexity = %v, want >= medium for vision task", d.Complexity)
	}
}

func TestDecideToolExecSkipsLLM(t *testing.T) {
	d := Decide(DecideRequest{Message: "run the tests", HasTools: true, BindingStrategy: BindingHybrid})
	if !d.SkipLLM {
		t.Errorf("SkipLLM = false, want true for tool-only resolution")
	}
	if d.Resolution != ResolutionToolOnly {
		t.Errorf("Resolution = %v, want tool-only", d.Resolution)
	}
}

func TestEscalationChainNeverIncludesSelected(t *testing.T) {
	for _, m := range ladder {
		chain := escalationChain(m)
		for _, c := range chain {
			if c == m {
				t.Errorf("escalationChain(%v) includes selected model", m)
			}
		}
	}
}

func TestEscalationChainEmptyAtTopTier(t *testing.T) {
	if chain := escalationChain(ladder[tierOpus]); len(chain) != 0 {
		t.Errorf("escalationChain(top tier) = %v, want empty", chain)
	}
}

func TestEscalationChainCodingStrongIsSonnetSibling(t *testing.T) {
	chain := escalationChain(codingStrong)
	if len(chain) != 1 || chain[0] != ladder[tierOpus] {
		t.Errorf("escalationChain(codingStrong) = %v, want [opus] since codingStrong sits at the sonnet tier", chain)
	}
}

func TestAbstainOnNearTie(t *testing.T) {
	secondary := TaskChat
	// Hand-construct the tie condition directly rather than hunting for
	// a message that produces it, since the classifier's exact scores
	// are an implementation detail.
	topScore, secondScore := 1.0, 1.0
	confidence := 0.5
	abstain := secondary != "" && (topScore-secondScore) <= 1 && confidence <= 0.67
	if !abstain {
		t.Fatal("expected near_tie_top2 condition to hold for this fixture")
	}
}

func TestDecideNeverPanics(t *testing.T) {
	reqs := []DecideRequest{
		{},
		{Message: ""},
		{Message: "   "},
		{BindingStrategy: "unknown-strategy"},
	}
	for _, r := range reqs {
		_ = Decide(r)
	}
}

func TestDecideProviderHealthHintIsAdvisoryOnly(t *testing.T) {
	unhealthy := Decide(DecideRequest{
		Message:         "hello",
		BindingStrategy: BindingHybrid,
		ProviderHealth:  ProviderHealth{"local": false},
	})
	healthy := Decide(DecideRequest{
		Message:         "hello",
		BindingStrategy: BindingHybrid,
		ProviderHealth:  ProviderHealth{"local": true},
	})
	if unhealthy.ProviderID != healthy.ProviderID || unhealthy.ModelID != healthy.ModelID {
		t.Errorf("provider health must not change selection: %+v vs %+v", unhealthy, healthy)
	}
	if len(unhealthy.ProviderHealthHints) == 0 {
		t.Errorf("expected a health hint when provider reported unhealthy")
	}
	if len(healthy.ProviderHealthHints) != 0 {
		t.Errorf("expected no health hint when provider reported healthy")
	}
}

func TestTemperatureSuggestions(t *testing.T) {
	cases := map[TaskType]float64{
		TaskCodeGen:   0.2,
		TaskReasoning: 0.5,
		TaskChat:      0.7,
		TaskSmalltalk: 0.7,
		TaskSearch:    0.4,
	}
	for tt, want := range cases {
		if got := temperatureFor(tt); got != want {
			t.Errorf("temperatureFor(%v) = %v, want %v", tt, got, want)
		}
	}
}
