package compactor

import "cogcore/internal/types"

// protectedIndices returns the set of message indices that must always
// survive compaction: every system message, the first message, and the
// last two messages (spec §4.4 moderate/aggressive tiers).
func protectedIndices(msgs []types.Message) map[int]struct{} {
	protected := make(map[int]struct{})
	n := len(msgs)
	if n == 0 {
		return protected
	}
	protected[0] = struct{}{}
	for i := n - 2; i < n; i++ {
		if i >= 0 {
			protected[i] = struct{}{}
		}
	}
	for i, m := range msgs {
		if m.Role == types.RoleSystem {
			protected[i] = struct{}{}
		}
	}
	return protected
}
