package compactor

import (
	"cogcore/internal/scoring"
	"cogcore/internal/types"
)

const moderateBudgetFraction = 0.5

// Moderate MinHash-deduplicates the history, then TextRank-prunes the
// survivors to moderateBudgetFraction of the context limit, always
// preserving every system message, the first message, and the last two
// messages (spec §4.4).
func Moderate(msgs []types.Message, est TokenEstimator) []types.Message {
	deduped := minHashDedupe(msgs)
	if len(deduped) == 0 {
		return deduped
	}

	docs := make([][]string, len(deduped))
	for i, m := range deduped {
		docs[i] = scoring.Tokenize(m.Text())
	}
	ranks := scoring.TextRank(docs)

	protected := protectedIndices(deduped)
	budget := int(float64(est.ContextLimit()) * moderateBudgetFraction)
	return pruneToFit(deduped, protected, ranks, est, budget)
}
