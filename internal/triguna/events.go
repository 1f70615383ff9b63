package triguna

import (
	"fmt"

	"cogcore/internal/types"
)

// EventType names the kind of advisory raised by the monitor.
type EventType string

const (
	EventGunaShift      EventType = "triguna:guna_shift"
	EventSattvaDominant EventType = "triguna:sattva_dominant"
	EventRajasAlert     EventType = "triguna:rajas_alert"
	EventTamasAlert     EventType = "triguna:tamas_alert"
)

// Event is a best-effort advisory raised on a dominant-guna transition
// or a configured threshold crossing (spec §4.3).
type Event struct {
	Type      EventType
	Guna      types.Guna
	Value     float64
	Message   string
	Timestamp int64
}

// eventsForLocked must be called with m.mu held. It compares the new
// state/dominant against the monitor's prior recorded dominant and the
// configured thresholds, returning every event that fired this update.
func (m *Monitor) eventsForLocked(state types.GunaState, dominant types.Guna) []Event {
	var events []Event
	if dominant != m.prevDominant {
		events = append(events, Event{
			Type:    EventGunaShift,
			Guna:    dominant,
			Value:   state.Get(dominant),
			Message: fmt.Sprintf("dominant guna shifted from %s to %s", m.prevDominant, dominant),
		})
	}
	if state.Sattva > m.cfg.SattvaThreshold {
		events = append(events, Event{
			Type:    EventSattvaDominant,
			Guna:    types.Sattva,
			Value:   state.Sattva,
			Message: fmt.Sprintf("sattva %.3f exceeded threshold %.3f", state.Sattva, m.cfg.SattvaThreshold),
		})
	}
	if state.Rajas > m.cfg.RajasThreshold {
		events = append(events, Event{
			Type:    EventRajasAlert,
			Guna:    types.Rajas,
			Value:   state.Rajas,
			Message: fmt.Sprintf("rajas %.3f exceeded threshold %.3f", state.Rajas, m.cfg.RajasThreshold),
		})
	}
	if state.Tamas > m.cfg.TamasThreshold {
		events = append(events, Event{
			Type:    EventTamasAlert,
			Guna:    types.Tamas,
			Value:   state.Tamas,
			Message: fmt.Sprintf("tamas %.3f exceeded threshold %.3f", state.Tamas, m.cfg.TamasThreshold),
		})
	}
	return events
}
