package compactor

import "cogcore/internal/types"

// Gentle collapses tool-call/tool-result detail to abbreviations while
// preserving every message, its role, and its position (spec §4.4).
func Gentle(msgs []types.Message) []types.Message {
	return collapseToolDetailAll(msgs)
}
