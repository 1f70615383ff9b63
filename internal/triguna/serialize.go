package triguna

import (
	"cogcore/internal/simplex"
	"cogcore/internal/types"
)

// Snapshot is the monitor's serializable state: {gunaState, xHat, P,
// prevDominant, history} (spec §4.3). Deserialization restores the
// monitor without re-running any observations.
type Snapshot struct {
	GunaState    types.GunaState     `json:"guna_state" yaml:"guna_state"`
	XHat         simplex.Vec2        `json:"x_hat" yaml:"x_hat"`
	P            simplex.Mat2        `json:"p" yaml:"p"`
	PrevDominant types.Guna          `json:"prev_dominant" yaml:"prev_dominant"`
	History      []types.GunaSnapshot `json:"history" yaml:"history"`
}

// Serialize captures the monitor's full internal state for persistence.
func (m *Monitor) Serialize() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	history := make([]types.GunaSnapshot, len(m.history))
	copy(history, m.history)
	return Snapshot{
		GunaState:    m.currentStateLocked(),
		XHat:         m.xHat,
		P:            m.p,
		PrevDominant: m.prevDominant,
		History:      history,
	}
}

// Restore builds a Monitor directly from a prior Snapshot, bypassing
// InitialState and re-derivation from observations.
func Restore(cfg Config, snap Snapshot) *Monitor {
	m := New(cfg)
	m.xHat = snap.XHat
	m.p = snap.P
	m.prevDominant = snap.PrevDominant
	m.history = append([]types.GunaSnapshot(nil), snap.History...)
	return m
}
