package scoring

import "math"

// TFIDF computes, for each document in docs (already-tokenized messages),
// the score:
//
//	tfidf(d) = (1/|d|^2) * sum_{t in d} count(t,d) * ln(N/df(t))
//
// equivalent to the mean-over-terms of tf*idf normalized by document
// length (spec §4.1). Empty documents score 0.
func TFIDF(docs [][]string) []float64 {
	n := len(docs)
	scores := make([]float64, n)
	if n == 0 {
		return scores
	}

	df := make(map[string]int)
	docSets := make([]map[string]struct{}, n)
	for i, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, t := range doc {
			seen[t] = struct{}{}
		}
		docSets[i] = seen
		for t := range seen {
			df[t]++
		}
	}

	for i, doc := range docs {
		if len(doc) == 0 {
			continue
		}
		counts := TermCounts(doc)
		var sum float64
		for t, c := range counts {
			idf := math.Log(float64(n) / float64(df[t]))
			sum += float64(c) * idf
		}
		scores[i] = sum / float64(len(doc)*len(doc))
	}
	return scores
}
