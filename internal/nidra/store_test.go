package nidra

import (
	"testing"

	"cogcore/internal/types"
)

func TestMemStoreRoundTrip(t *testing.T) {
	s := NewMemStore()
	if _, exists, _ := s.Load(); exists {
		t.Fatal("fresh MemStore should report no existing row")
	}

	row := types.Row{State: types.StateDreaming, LastStateChange: 10, ConsolidationPhase: "phase1"}
	if err := s.SaveFull(row); err != nil {
		t.Fatalf("SaveFull error = %v", err)
	}

	got, exists, err := s.Load()
	if err != nil || !exists {
		t.Fatalf("Load() = %v, %v, %v", got, exists, err)
	}
	if got.State != types.StateDreaming || got.ConsolidationPhase != "phase1" {
		t.Errorf("Load() = %+v, want round-tripped row", got)
	}

	if err := s.SaveHeartbeat(99); err != nil {
		t.Fatalf("SaveHeartbeat error = %v", err)
	}
	got, _, _ = s.Load()
	if got.LastHeartbeat != 99 {
		t.Errorf("LastHeartbeat = %d, want 99", got.LastHeartbeat)
	}
	if got.State != types.StateDreaming {
		t.Errorf("SaveHeartbeat mutated unrelated fields: state = %v", got.State)
	}
}

func TestRestoreFromExistingRow(t *testing.T) {
	s := NewMemStore()
	s.SaveFull(types.Row{State: types.StateDeepSleep, LastStateChange: 5})

	d, err := New(DefaultConfig(), s, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := d.State(); got != types.StateDeepSleep {
		t.Errorf("restored State() = %v, want DEEP_SLEEP", got)
	}
}
