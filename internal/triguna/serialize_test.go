package triguna

import (
	"testing"

	"cogcore/internal/types"
)

func TestSerializeRestoreRoundTrip(t *testing.T) {
	m := New(DefaultConfig())
	m.Update(types.Observation{SuccessRate: 0.8, UserSatisfaction: 0.8}, 10)
	m.Update(types.Observation{ErrorRate: 0.6, Latency: 0.7}, 20)

	snap := m.Serialize()
	restored := Restore(DefaultConfig(), snap)

	want := m.State()
	got := restored.State()
	if got != want {
		t.Errorf("restored state = %+v, want %+v", got, want)
	}
	if len(restored.History()) != len(m.History()) {
		t.Errorf("restored history length = %d, want %d", len(restored.History()), len(m.History()))
	}
}
