// Package types holds the shared data model of the cognitive runtime
// core (spec §3): conversation messages, guna state, and the wire
// shapes that every other package depends on without introducing
// import cycles between the monitor, compactor, and mesh packages.
package types

// Role identifies who produced a Message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleToolResult Role = "tool_result"
)

// PartKind tags the discriminated union held by a ContentPart.
type PartKind string

const (
	PartText       PartKind = "text"
	PartImage      PartKind = "image"
	PartToolCall   PartKind = "tool_call"
	PartToolResult PartKind = "tool_result"
	PartThinking   PartKind = "thinking"
)

// ContentPart is one element of a Message's ordered content sequence.
// Exactly one of the fields matching Kind is populated; callers should
// switch exhaustively on Kind rather than probing fields.
type ContentPart struct {
	Kind PartKind

	// Text holds the payload for PartText and PartThinking.
	Text string

	// Image holds an opaque image reference/payload for PartImage.
	Image string

	// ToolName/ToolArgs/ToolCallID describe a PartToolCall.
	ToolName   string
	ToolArgs   string
	ToolCallID string

	// ToolResultID/ToolOutput describe a PartToolResult.
	ToolResultID string
	ToolOutput   string
}

// Message is one turn of conversation history.
type Message struct {
	ID          string
	Role        Role
	Content     []ContentPart
	TimestampMs int64
}

// Text concatenates all PartText/PartThinking segments, the form the
// scoring primitives (tokenizer, TF-IDF, TextRank, MinHash, surprisal)
// consume.
func (m Message) Text() string {
	var out []byte
	for _, p := range m.Content {
		switch p.Kind {
		case PartText, PartThinking:
			if len(out) > 0 {
				out = append(out, ' ')
			}
			out = append(out, p.Text...)
		}
	}
	return string(out)
}

// HasToolActivity reports whether the message carries a tool call or
// tool result part, used by the compactor's tool-detail collapsing.
func (m Message) HasToolActivity() bool {
	for _, p := range m.Content {
		if p.Kind == PartToolCall || p.Kind == PartToolResult {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, used wherever ownership rules (§3) require
// handing out a copy rather than a shared reference.
func (m Message) Clone() Message {
	c := m
	c.Content = append([]ContentPart(nil), m.Content...)
	return c
}

// CloneMessages deep-copies a message slice.
func CloneMessages(msgs []Message) []Message {
	out := make([]Message, len(msgs))
	for i, m := range msgs {
		out[i] = m.Clone()
	}
	return out
}
