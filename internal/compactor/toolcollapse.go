package compactor

import (
	"fmt"

	"cogcore/internal/types"
)

// collapseToolDetail abbreviates tool-call arguments and tool-result
// output longer than 64 bytes to their first 64 bytes plus the original
// length, keeping top-level structure and counts intact (spec §4.4
// gentle tier).
func collapseToolDetail(msg types.Message) types.Message {
	out := msg.Clone()
	for i, part := range out.Content {
		switch part.Kind {
		case types.PartToolCall:
			out.Content[i].ToolArgs = abbreviate(part.ToolArgs)
		case types.PartToolResult:
			out.Content[i].ToolOutput = abbreviate(part.ToolOutput)
		}
	}
	return out
}

func abbreviate(s string) string {
	if len(s) <= 64 {
		return s
	}
	return fmt.Sprintf("%s…(%d chars)", s[:64], len(s))
}

func collapseToolDetailAll(msgs []types.Message) []types.Message {
	out := make([]types.Message, len(msgs))
	for i, m := range msgs {
		out[i] = collapseToolDetail(m)
	}
	return out
}
