package turiya

import "strings"

// Message mirrors the core's minimal message shape (spec §3) for the
// purposes of context extraction; callers adapt their own message
// type into this one.
type Message struct {
	Role    string
	Content string
}

// ExtractContext derives a normalized feature vector from recent
// conversation state (spec §4.8). All fields are clamped to [0,1].
func ExtractContext(messages []Message, systemPrompt string, tools []string, memoryHits int) Context {
	var totalWords, codeWords int
	var userTurns int
	var lastUserLen int

	for _, m := range messages {
		words := strings.Fields(m.Content)
		totalWords += len(words)
		if m.Role == "user" {
			userTurns++
			lastUserLen = len(words)
		}
		if looksLikeCode(m.Content) {
			codeWords += len(words)
		}
	}

	codeRatio := 0.0
	if totalWords > 0 {
		codeRatio = clamp01(float64(codeWords) / float64(totalWords))
	}

	complexity := clamp01(float64(lastUserLen) / 120.0)
	if strings.Contains(strings.ToLower(systemPrompt), "precise") || len(tools) > 3 {
		complexity = clamp01(complexity + 0.1)
	}

	precision := clamp01(float64(len(tools)) / 10.0)
	urgency := 0.0
	if len(messages) > 0 {
		last := strings.ToLower(messages[len(messages)-1].Content)
		if strings.Contains(last, "urgent") || strings.Contains(last, "asap") || strings.Contains(last, "now") {
			urgency = 0.8
		}
	}

	creativity := 0.0
	if len(messages) > 0 {
		last := strings.ToLower(messages[len(messages)-1].Content)
		for _, kw := range []string{"brainstorm", "creative", "imagine", "story", "idea"} {
			if strings.Contains(last, kw) {
				creativity = 0.7
				break
			}
		}
	}

	conversationDepth := clamp01(float64(len(messages)) / 40.0)
	memoryLoad := clamp01(float64(memoryHits) / 20.0)

	return Context{
		Complexity:        complexity,
		Urgency:           urgency,
		Creativity:        creativity,
		Precision:         precision,
		CodeRatio:         codeRatio,
		ConversationDepth: conversationDepth,
		MemoryLoad:        memoryLoad,
	}
}

func looksLikeCode(content string) bool {
	markers := []string{"```", "func ", "def ", "class ", "{", "};", "import ", "const ", "return "}
	count := 0
	for _, m := range markers {
		if strings.Contains(content, m) {
			count++
		}
	}
	return count >= 2
}
