package triguna

import (
	"testing"

	"cogcore/internal/types"
)

func TestUpdateHealthyObservationRaisesSattva(t *testing.T) {
	m := New(DefaultConfig())
	before := m.State()

	obs := types.Observation{
		ErrorRate:        0,
		TokenVelocity:    0.2,
		LoopCount:        0,
		Latency:          0.1,
		SuccessRate:      0.9,
		UserSatisfaction: 0.9,
	}
	state, events := m.Update(obs, 1000)

	if state.Sattva <= before.Sattva {
		t.Errorf("sattva did not increase: before=%v after=%v", before.Sattva, state.Sattva)
	}
	if state.Dominant() != types.Sattva {
		t.Errorf("dominant = %v, want sattva", state.Dominant())
	}

	found := false
	for _, ev := range events {
		if ev.Type == EventSattvaDominant {
			found = true
		}
	}
	if !found {
		t.Errorf("expected sattva_dominant event in %v", events)
	}
}

func TestUpdateStateStaysOnSimplex(t *testing.T) {
	m := New(DefaultConfig())
	obs := types.Observation{ErrorRate: 0.5, TokenVelocity: 0.5, LoopCount: 0.2, Latency: 0.3, SuccessRate: 0.4, UserSatisfaction: 0.4}
	state, _ := m.Update(obs, 1)
	sum := state.Sum()
	if diff := sum - 1.0; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("state sum = %v, want ~1", sum)
	}
	floor := DefaultConfig().SimplexFloor
	if state.Sattva < floor || state.Rajas < floor || state.Tamas < floor {
		t.Errorf("state %+v has a component below floor %v", state, floor)
	}
}

func TestHistoryCappedAtMaxHistory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHistory = 3
	m := New(cfg)
	obs := types.Observation{SuccessRate: 0.5, UserSatisfaction: 0.5}
	for i := 0; i < 10; i++ {
		m.Update(obs, int64(i))
	}
	if got := len(m.History()); got != 3 {
		t.Errorf("len(History()) = %d, want 3", got)
	}
}

func TestHistoryHardCapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxHistory = 5000
	m := New(cfg)
	if got := m.cfg.historyCap(); got != hardMaxHistory {
		t.Errorf("historyCap() = %d, want %d", got, hardMaxHistory)
	}
}

func TestSubscribePanickingHandlerDoesNotPropagate(t *testing.T) {
	m := New(DefaultConfig())
	m.Subscribe(func(Event) { panic("boom") })
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic escaped Update: %v", r)
		}
	}()
	m.Update(types.Observation{ErrorRate: 0.9, Latency: 0.9}, 1)
}
