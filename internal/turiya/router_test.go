package turiya

import "testing"

func TestClassifyLowDifficultyPicksNoLLM(t *testing.T) {
	r := New(DefaultConfig())
	d := r.Classify(Context{}, PreferNone)
	if d.Tier != TierNoLLM {
		t.Errorf("Tier = %v, want no-llm for zero-difficulty context", d.Tier)
	}
	if d.CostUnits != 0 {
		t.Errorf("CostUnits = %v, want 0", d.CostUnits)
	}
}

func TestClassifyHighDifficultyPicksOpus(t *testing.T) {
	r := New(DefaultConfig())
	d := r.Classify(Context{Complexity: 1, Precision: 1, CodeRatio: 1, Creativity: 1, ConversationDepth: 1, Urgency: 1, MemoryLoad: 1}, PreferNone)
	if d.Tier != TierOpus {
		t.Errorf("Tier = %v, want opus for max-difficulty context", d.Tier)
	}
}

func TestClassifyPreferCheapLowersTier(t *testing.T) {
	r := New(DefaultConfig())
	ctx := Context{Complexity: 0.5, Precision: 0.5, CodeRatio: 0.3}
	normal := r.Classify(ctx, PreferNone)
	cheap := r.Classify(ctx, PreferCheap)
	if tierIndex(cheap.Tier) > tierIndex(normal.Tier) {
		t.Errorf("PreferCheap tier %v should not rank above PreferNone tier %v", cheap.Tier, normal.Tier)
	}
}

func TestCascadeDecisionEscalatesOnLowConfidence(t *testing.T) {
	r := New(DefaultConfig())
	d := Decision{Tier: TierHaiku, Confidence: 0.1}
	res := r.CascadeDecision(d, nil)
	if !res.Escalated || res.Final != TierSonnet || res.OriginalTier != TierHaiku {
		t.Errorf("CascadeDecision = %+v, want escalated to sonnet", res)
	}
}

func TestCascadeDecisionStaysAtTopTier(t *testing.T) {
	r := New(DefaultConfig())
	d := Decision{Tier: TierOpus, Confidence: 0.0}
	res := r.CascadeDecision(d, nil)
	if res.Escalated || res.Final != TierOpus {
		t.Errorf("CascadeDecision at top tier = %+v, want no escalation", res)
	}
}

func TestCascadeDecisionNoEscalationAboveThreshold(t *testing.T) {
	r := New(DefaultConfig())
	d := Decision{Tier: TierHaiku, Confidence: 0.9}
	res := r.CascadeDecision(d, nil)
	if res.Escalated {
		t.Errorf("expected no escalation for high confidence, got %+v", res)
	}
}

func TestRecordOutcomeUpdatesStatsAndLambda(t *testing.T) {
	r := New(DefaultConfig())
	d := Decision{Tier: TierOpus, CostUnits: 25}
	for i := 0; i < 5; i++ {
		r.RecordOutcome(d, 1.0)
	}
	stats := r.GetStats()
	if stats.PerTierCount[TierOpus] != 5 {
		t.Errorf("PerTierCount[opus] = %d, want 5", stats.PerTierCount[TierOpus])
	}
	if stats.TotalCost != 125 {
		t.Errorf("TotalCost = %v, want 125", stats.TotalCost)
	}
	if stats.Lambda <= 0 {
		t.Errorf("Lambda = %v, want > 0 after repeatedly exceeding budget target with opus", stats.Lambda)
	}
	if stats.OpusBaselineCost != 125 {
		t.Errorf("OpusBaselineCost = %v, want 125", stats.OpusBaselineCost)
	}
	if stats.SavingsPercent != 0 {
		t.Errorf("SavingsPercent = %v, want 0 when every decision already used opus", stats.SavingsPercent)
	}
}

func TestRecordOutcomeCheaperTierShowsSavings(t *testing.T) {
	r := New(DefaultConfig())
	r.RecordOutcome(Decision{Tier: TierHaiku, CostUnits: 1}, 1.0)
	stats := r.GetStats()
	if stats.SavingsPercent <= 0 {
		t.Errorf("SavingsPercent = %v, want > 0 when using haiku instead of opus", stats.SavingsPercent)
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	r := New(DefaultConfig())
	r.RecordOutcome(Decision{Tier: TierSonnet, CostUnits: 5}, 0.8)
	snap := r.Serialize()

	r2 := Deserialize(snap)
	stats1 := r.GetStats()
	stats2 := r2.GetStats()
	if stats1.TotalDecisions != stats2.TotalDecisions {
		t.Errorf("TotalDecisions mismatch after round trip: %d vs %d", stats1.TotalDecisions, stats2.TotalDecisions)
	}
	if stats1.Lambda != stats2.Lambda {
		t.Errorf("Lambda mismatch after round trip: %v vs %v", stats1.Lambda, stats2.Lambda)
	}
}

func TestVacuumHalvesCounters(t *testing.T) {
	r := New(DefaultConfig())
	r.RecordOutcome(Decision{Tier: TierSonnet, CostUnits: 5}, 1.0)
	r.RecordOutcome(Decision{Tier: TierSonnet, CostUnits: 5}, 1.0)
	before := r.GetStats()
	r.Vacuum()
	after := r.GetStats()
	if after.PerTierCount[TierSonnet] >= before.PerTierCount[TierSonnet] {
		t.Errorf("Vacuum should shrink reward count, before=%d after=%d", before.PerTierCount[TierSonnet], after.PerTierCount[TierSonnet])
	}
}
