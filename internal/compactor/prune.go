package compactor

import (
	"sort"

	"cogcore/internal/types"
)

// pruneToFit drops the lowest-scored non-protected messages, in
// ascending score order, until the remaining sequence's estimated
// token total is at or below budget (or only protected messages
// remain). Message order is preserved in the result (spec §4.4, §8:
// output must remain monotonically non-decreasing by timestamp, which
// holds automatically since pruning never reorders).
func pruneToFit(msgs []types.Message, protected map[int]struct{}, scores []float64, est TokenEstimator, budget int) []types.Message {
	n := len(msgs)
	dropped := make([]bool, n)

	type candidate struct {
		index int
		score float64
	}
	candidates := make([]candidate, 0, n)
	for i := range msgs {
		if _, ok := protected[i]; !ok {
			candidates = append(candidates, candidate{index: i, score: scores[i]})
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score < candidates[b].score
	})

	remaining := func() []types.Message {
		out := make([]types.Message, 0, n)
		for i, m := range msgs {
			if !dropped[i] {
				out = append(out, m)
			}
		}
		return out
	}

	if totalTokens(remaining(), est) <= budget {
		return remaining()
	}

	for _, c := range candidates {
		dropped[c.index] = true
		if totalTokens(remaining(), est) <= budget {
			break
		}
	}
	return remaining()
}
