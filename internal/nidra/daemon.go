package nidra

import (
	"context"
	"fmt"
	"sync"

	"cogcore/internal/logging"
	"cogcore/internal/types"
)

// ErrDisposed is panicked by any public call made after Dispose
// (spec §7: disposal is a programming error, not a runtime condition).
type ErrDisposed struct{}

func (ErrDisposed) Error() string { return "nidra: daemon is disposed" }

// Daemon is the sleep-cycle state machine. It is the single logical
// owner of its state and persisted row; all mutation goes through its
// exported methods under mu (spec §7).
type Daemon struct {
	cfg   Config
	store Store
	log   *logging.Logger

	dreamHandler     DreamHandler
	deepSleepHandler DeepSleepHandler

	mu                    sync.Mutex
	state                 types.NidraState
	startedAt             int64
	lastStateChange       int64
	lastHeartbeat         int64
	lastConsolidationStart int64
	lastConsolidationEnd   int64
	consolidationPhase    string
	consolidationProgress float64
	disposed              bool

	dreamCancel context.CancelFunc

	heartbeat  *heartbeatLoop
	phaseTimer *absoluteTimer

	handlers []func(Event)

	wg sync.WaitGroup
}

// New constructs a Daemon. If store already holds a persisted row, the
// daemon restores every field from it; otherwise it starts fresh in
// LISTENING (spec §4.5).
func New(cfg Config, store Store, dream DreamHandler, deepSleep DeepSleepHandler) (*Daemon, error) {
	if dream == nil {
		dream = NoopDreamHandler
	}
	if deepSleep == nil {
		deepSleep = func(ctx context.Context, progress ProgressFunc) error {
			progress("idle", 1.0)
			return nil
		}
	}
	d := &Daemon{
		cfg:              cfg,
		store:            store,
		log:              logging.Get(logging.CategoryNidra),
		dreamHandler:     dream,
		deepSleepHandler: deepSleep,
		state:            types.StateListening,
	}

	row, exists, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("nidra: restore: %w", err)
	}
	now := nowMs()
	d.startedAt = now
	if exists {
		d.state = row.State
		d.lastStateChange = row.LastStateChange
		d.lastHeartbeat = row.LastHeartbeat
		d.lastConsolidationStart = row.LastConsolidationStart
		d.lastConsolidationEnd = row.LastConsolidationEnd
		d.consolidationPhase = row.ConsolidationPhase
		d.consolidationProgress = row.ConsolidationProgress
	} else {
		d.lastStateChange = now
	}
	return d, nil
}

// Start begins the heartbeat loop and arms the timer for the restored
// (or fresh) state.
func (d *Daemon) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.checkDisposedLocked()

	d.heartbeat = startHeartbeatLoop(
		func() int64 {
			d.mu.Lock()
			defer d.mu.Unlock()
			return d.cfg.heartbeatInterval(d.state)
		},
		d.onHeartbeat,
	)
	d.armPhaseTimerLocked()
}

func (d *Daemon) onHeartbeat(now int64) {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return
	}
	d.lastHeartbeat = now
	state := d.state
	uptime := now - d.startedAt
	d.mu.Unlock()

	if err := d.store.SaveHeartbeat(now); err != nil {
		d.log.Warn("heartbeat persistence failed: %v", err)
	}
	d.emit(Event{Type: EventHeartbeat, State: state, Timestamp: now, Uptime: uptime})
}

// Subscribe registers an event observer.
func (d *Daemon) Subscribe(h func(Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.checkDisposedLocked()
	d.handlers = append(d.handlers, h)
}

func (d *Daemon) emit(ev Event) {
	d.mu.Lock()
	hs := append([]func(Event){}, d.handlers...)
	d.mu.Unlock()
	for _, h := range hs {
		safeInvoke(h, ev)
	}
}

// emitLocked is emit's counterpart for callers that already hold d.mu,
// such as transitionLocked: it must run (and observably complete)
// before any goroutine spawned later in the same critical section can
// emit a dependent event (spec §8 Scenario 2's state_change-before-
// consolidation_start ordering).
func (d *Daemon) emitLocked(ev Event) {
	for _, h := range d.handlers {
		safeInvoke(h, ev)
	}
}

func safeInvoke(h func(Event), ev Event) {
	defer func() { _ = recover() }()
	h(ev)
}

// State returns the current state.
func (d *Daemon) State() types.NidraState {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.checkDisposedLocked()
	return d.state
}

// Snapshot returns the current persisted-row view.
func (d *Daemon) Snapshot() types.Row {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.checkDisposedLocked()
	return d.rowLocked()
}

func (d *Daemon) rowLocked() types.Row {
	return types.Row{
		State:                  d.state,
		LastStateChange:        d.lastStateChange,
		LastHeartbeat:          d.lastHeartbeat,
		LastConsolidationStart: d.lastConsolidationStart,
		LastConsolidationEnd:   d.lastConsolidationEnd,
		ConsolidationPhase:     d.consolidationPhase,
		ConsolidationProgress:  d.consolidationProgress,
		UpdatedAt:              nowMs(),
	}
}

func (d *Daemon) checkDisposedLocked() {
	if d.disposed {
		panic(ErrDisposed{})
	}
}

// validTransition reports whether the nominal edge from->to, or a
// wake() interrupt (any state -> LISTENING), is allowed (spec §4.5).
func validTransition(from, to types.NidraState) bool {
	if to == types.StateListening {
		return true
	}
	switch from {
	case types.StateListening:
		return to == types.StateDreaming
	case types.StateDreaming:
		return to == types.StateDeepSleep
	default:
		return false
	}
}
