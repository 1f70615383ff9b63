package types

// NidraState names the three phases of the sleep-cycle state machine
// (spec §3, §4.5).
type NidraState string

const (
	StateListening NidraState = "LISTENING"
	StateDreaming  NidraState = "DREAMING"
	StateDeepSleep NidraState = "DEEP_SLEEP"
)

// Row is the Nidra daemon's singleton persisted record (spec §3: "Row
// identity = id=1"). Every field round-trips through Store.SaveFull;
// Store.SaveHeartbeat touches only LastHeartbeat to avoid write
// amplification on the hot path.
type Row struct {
	State                  NidraState
	LastStateChange        int64
	LastHeartbeat          int64
	LastConsolidationStart int64
	LastConsolidationEnd   int64
	ConsolidationPhase     string
	ConsolidationProgress  float64
	UpdatedAt              int64
}
