package marga

// ladder is the fixed, totally-ordered escalation chain from weakest
// to strongest. Index is the chain's sole ordering key.
var ladder = []ModelRef{
	{ProviderID: "local", ModelID: "local-small-instruct"},
	{ProviderID: "anthropic", ModelID: "claude-haiku"},
	{ProviderID: "anthropic", ModelID: "claude-sonnet"},
	{ProviderID: "anthropic", ModelID: "claude-opus"},
}

const (
	tierLocal  = 0
	tierHaiku  = 1
	tierSonnet = 2
	tierOpus   = 3
)

// codingStrong is the coding-oriented alternative to the generic
// strong-tier model (tierSonnet), used for code-gen complexity upgrades.
var codingStrong = ModelRef{ProviderID: "anthropic", ModelID: "claude-sonnet-coding"}

func ladderIndex(m ModelRef) int {
	for i, r := range ladder {
		if r == m {
			return i
		}
	}
	return -1
}

// escalationChain returns every ladder entry strictly stronger than
// selected (empty at the top tier). A selected model that is not itself
// a ladder entry, such as the coding-specialized variant, is treated as
// sitting at the sonnet tier, so its chain is [opus].
func escalationChain(selected ModelRef) []ModelRef {
	idx := ladderIndex(selected)
	if idx < 0 {
		idx = tierSonnet // coding-strong is a same-tier sibling of sonnet, not weaker
	}
	if idx >= len(ladder)-1 {
		return nil
	}
	out := make([]ModelRef, 0, len(ladder)-idx-1)
	for _, r := range ladder[idx+1:] {
		out = append(out, r)
	}
	return out
}

// BindingTable maps task type to its default (provider, model, rationale).
type BindingTable map[TaskType]binding

type binding struct {
	model     ModelRef
	rationale string
}

// defaultBindings returns the table for the given strategy. local
// forces the on-device model for every task type; cloud
// always uses the hosted ladder; hybrid uses local for cheap/offline
// task types and cloud for everything else.
func defaultBindings(strategy BindingStrategy) BindingTable {
	cloudDefault := binding{ladder[tierHaiku], "default cloud binding"}
	t := BindingTable{
		TaskCodeGen:   {ladder[tierSonnet], "code generation defaults to the strong coding tier"},
		TaskReasoning: {ladder[tierSonnet], "reasoning defaults to the strong tier"},
		TaskChat:      cloudDefault,
		TaskSmalltalk: {ladder[tierLocal], "smalltalk is cheap enough for local compute"},
		TaskToolExec:  {ladder[tierLocal], "tool execution needs no model reasoning"},
		TaskVision:    {ladder[tierSonnet], "vision needs at least the strong tier"},
		TaskSearch:    cloudDefault,
		TaskMemory:    {ladder[tierLocal], "memory lookups run locally"},
		TaskFileOp:    {ladder[tierLocal], "file operations need no model reasoning"},
		TaskCheckin:   cloudDefault,
		TaskUnknown:   cloudDefault,
	}

	switch strategy {
	case BindingLocal:
		for k, v := range t {
			if v.model.ProviderID != "local" {
				t[k] = binding{ladder[tierLocal], v.rationale + " (forced local by binding strategy)"}
			}
		}
	case BindingCloud:
		for k, v := range t {
			if v.model.ProviderID == "local" {
				t[k] = binding{ladder[tierHaiku], v.rationale + " (forced cloud by binding strategy)"}
			}
		}
	case BindingHybrid:
		// table above already reflects the hybrid default split.
	}
	return t
}
