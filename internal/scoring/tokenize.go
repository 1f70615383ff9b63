// Package scoring implements the pure, deterministic information-theoretic
// primitives the compaction monitor (internal/compactor) builds on: a
// tokenizer, TF-IDF, TextRank (power iteration), MinHash signatures,
// Shannon surprisal, and min-max normalization (spec §4.1). Nothing in
// this package performs I/O or retains state across calls.
package scoring

import "strings"

// Tokenize lowercases the input, replaces non-alphanumeric runs with
// whitespace, splits on whitespace, and drops tokens shorter than two
// characters.
func Tokenize(s string) []string {
	lower := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	fields := strings.Fields(b.String())
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 2 {
			out = append(out, f)
		}
	}
	return out
}

// TokenSet returns the deduplicated token set of s.
func TokenSet(s string) map[string]struct{} {
	tokens := Tokenize(s)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// TermCounts returns the bag-of-words count per token.
func TermCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// JaccardSimilarity returns |a ∩ b| / |a ∪ b| for two token sets. Two
// empty sets are defined as similarity 0 (no shared structure to measure).
func JaccardSimilarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
