package compactor

import (
	"sort"

	"cogcore/internal/scoring"
	"cogcore/internal/types"
)

const aggressiveBudgetFraction = 0.4

// Aggressive fully rewrites the history to aggressiveBudgetFraction of
// the context limit: dedupe (keeping the most recent of any
// near-duplicate cluster), collapse tool detail, score every survivor
// by a weighted composite of normalized TF-IDF/TextRank/surprisal, then
// greedily include candidates in descending score order until the
// budget is consumed — always keeping system messages and the
// protected tail (spec §4.4).
func Aggressive(msgs []types.Message, est TokenEstimator) []types.Message {
	deduped := minHashDedupeKeepMostRecent(msgs)
	if len(deduped) == 0 {
		return deduped
	}
	collapsed := collapseToolDetailAll(deduped)

	docs := make([][]string, len(collapsed))
	for i, m := range collapsed {
		docs[i] = scoring.Tokenize(m.Text())
	}
	tfidf := scoring.MinMaxNormalize(scoring.TFIDF(docs))
	textrank := scoring.MinMaxNormalize(scoring.TextRank(docs))
	surprisal := scoring.MinMaxNormalize(scoring.Surprisal(docs))

	composite := make([]float64, len(collapsed))
	for i := range composite {
		composite[i] = 0.30*tfidf[i] + 0.35*textrank[i] + 0.35*surprisal[i]
	}

	protected := protectedIndices(collapsed)
	budget := int(float64(est.ContextLimit()) * aggressiveBudgetFraction)
	return greedyIncludeToFit(collapsed, protected, composite, est, budget)
}

// greedyIncludeToFit always includes protected messages, then walks
// the remaining candidates in descending composite-score order,
// including each as long as the running token total stays within
// budget. The result preserves original message order.
func greedyIncludeToFit(msgs []types.Message, protected map[int]struct{}, scores []float64, est TokenEstimator, budget int) []types.Message {
	included := make([]bool, len(msgs))
	used := 0
	for i := range msgs {
		if _, ok := protected[i]; ok {
			included[i] = true
			used += est.EstimateTokens(msgs[i])
		}
	}

	type candidate struct {
		index int
		score float64
	}
	var candidates []candidate
	for i := range msgs {
		if !included[i] {
			candidates = append(candidates, candidate{index: i, score: scores[i]})
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	for _, c := range candidates {
		cost := est.EstimateTokens(msgs[c.index])
		if used+cost > budget {
			continue
		}
		included[c.index] = true
		used += cost
	}

	out := make([]types.Message, 0, len(msgs))
	for i, m := range msgs {
		if included[i] {
			out = append(out, m)
		}
	}
	return out
}
