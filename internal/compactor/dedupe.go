package compactor

import (
	"cogcore/internal/scoring"
	"cogcore/internal/types"
)

const dedupeJaccardThreshold = 0.6

func clusterByMinHash(msgs []types.Message) [][]int {
	n := len(msgs)
	sigs := make([][64]uint64, n)
	for i, m := range msgs {
		sigs[i] = scoring.MinHashSignature(scoring.TokenSet(m.Text()))
	}

	clusterOf := make([]int, n)
	for i := range clusterOf {
		clusterOf[i] = -1
	}
	var clusters [][]int
	for i := 0; i < n; i++ {
		if clusterOf[i] != -1 {
			continue
		}
		clusterID := len(clusters)
		clusterOf[i] = clusterID
		members := []int{i}
		for j := i + 1; j < n; j++ {
			if clusterOf[j] != -1 {
				continue
			}
			if scoring.MinHashSimilarity(sigs[i], sigs[j]) >= dedupeJaccardThreshold {
				clusterOf[j] = clusterID
				members = append(members, j)
			}
		}
		clusters = append(clusters, members)
	}
	return clusters
}

// minHashDedupe clusters messages whose MinHash-estimated Jaccard
// similarity is >= dedupeJaccardThreshold, keeping the longest message
// (by byte length of its text) in each cluster, ties broken toward the
// earlier timestamp (spec §4.4 moderate tier).
func minHashDedupe(msgs []types.Message) []types.Message {
	n := len(msgs)
	if n == 0 {
		return nil
	}
	clusters := clusterByMinHash(msgs)

	keep := make(map[int]bool, len(clusters))
	for _, members := range clusters {
		best := members[0]
		for _, idx := range members[1:] {
			a, b := msgs[idx], msgs[best]
			switch {
			case len(a.Text()) > len(b.Text()):
				best = idx
			case len(a.Text()) == len(b.Text()) && a.TimestampMs < b.TimestampMs:
				best = idx
			}
		}
		keep[best] = true
	}

	out := make([]types.Message, 0, n)
	for i, m := range msgs {
		if keep[i] {
			out = append(out, m)
		}
	}
	return out
}

// minHashDedupeKeepMostRecent is the aggressive-tier variant: within
// each similarity cluster the most recent message survives even if it
// duplicates an earlier one (spec §4.4 aggressive tier).
func minHashDedupeKeepMostRecent(msgs []types.Message) []types.Message {
	n := len(msgs)
	if n == 0 {
		return nil
	}
	clusters := clusterByMinHash(msgs)

	keep := make(map[int]bool, len(clusters))
	for _, members := range clusters {
		best := members[0]
		for _, idx := range members[1:] {
			if msgs[idx].TimestampMs >= msgs[best].TimestampMs {
				best = idx
			}
		}
		keep[best] = true
	}

	out := make([]types.Message, 0, n)
	for i, m := range msgs {
		if keep[i] {
			out = append(out, m)
		}
	}
	return out
}
