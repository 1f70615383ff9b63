package scoring

import "math"

// Surprisal computes the mean Shannon surprisal -log2 p(t) of each
// document's tokens against the Laplace-smoothed global unigram
// distribution built from the whole corpus (spec §4.1). An empty
// document scores 0.
func Surprisal(docs [][]string) []float64 {
	n := len(docs)
	scores := make([]float64, n)
	if n == 0 {
		return scores
	}

	globalCounts := make(map[string]int)
	total := 0
	for _, doc := range docs {
		for _, t := range doc {
			globalCounts[t]++
			total++
		}
	}
	vocab := len(globalCounts)

	for i, doc := range docs {
		if len(doc) == 0 {
			continue
		}
		var sum float64
		for _, t := range doc {
			// Laplace (add-one) smoothing over the observed vocabulary.
			p := float64(globalCounts[t]+1) / float64(total+vocab)
			sum += -math.Log2(p)
		}
		scores[i] = sum / float64(len(doc))
	}
	return scores
}
