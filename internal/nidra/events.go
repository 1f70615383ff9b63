package nidra

import "cogcore/internal/types"

// EventType names a daemon event (spec §6).
type EventType string

const (
	EventStateChange        EventType = "nidra:state_change"
	EventHeartbeat           EventType = "nidra:heartbeat"
	EventConsolidationStart EventType = "nidra:consolidation_start"
	EventConsolidationEnd   EventType = "nidra:consolidation_end"
)

// Event is a best-effort notification; handler panics never propagate
// out of the daemon (spec §4.5, §7).
type Event struct {
	Type        EventType
	Prev        types.NidraState
	Next        types.NidraState
	State       types.NidraState
	Timestamp   int64
	Uptime      int64
	DurationMs  int64
}
