package nidra

import (
	"context"

	"cogcore/internal/types"
)

// Touch resets the idle timer in LISTENING, or triggers Wake from any
// other state (spec §4.5).
func (d *Daemon) Touch() {
	d.mu.Lock()
	d.checkDisposedLocked()
	state := d.state
	d.mu.Unlock()

	if state == types.StateListening {
		d.mu.Lock()
		if !d.disposed && d.state == types.StateListening {
			d.armPhaseTimerLocked()
		}
		d.mu.Unlock()
		return
	}
	d.Wake()
}

// Wake transitions unconditionally to LISTENING, aborting any in-flight
// dream handler.
func (d *Daemon) Wake() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.checkDisposedLocked()
	d.transitionLocked(types.StateListening)
}

// transitionLocked must be called with d.mu held. Invalid edges are
// rejected and logged, never panicking or throwing (spec §4.5).
func (d *Daemon) transitionLocked(next types.NidraState) {
	prev := d.state
	if !validTransition(prev, next) {
		d.log.Warn("rejected transition %s -> %s", prev, next)
		return
	}
	if prev == next {
		return
	}

	if d.phaseTimer != nil {
		d.phaseTimer.Stop()
		d.phaseTimer = nil
	}
	if prev == types.StateDreaming && d.dreamCancel != nil {
		d.dreamCancel()
		d.dreamCancel = nil
	}

	now := nowMs()
	d.state = next
	d.lastStateChange = now
	if next == types.StateListening {
		d.consolidationPhase = ""
		d.consolidationProgress = 0
	}

	if err := d.store.SaveFull(d.rowLocked()); err != nil {
		d.log.Warn("full-row persistence failed: %v", err)
	}

	d.emitLocked(Event{Type: EventStateChange, Prev: prev, Next: next, Timestamp: now})

	d.armPhaseTimerLocked()
	if next == types.StateDreaming {
		d.startDreamLocked()
	} else if next == types.StateDeepSleep {
		d.startDeepSleepLocked()
	}
}

// armPhaseTimerLocked must be called with d.mu held. It arms the
// duration timer appropriate to the current state: idle timeout in
// LISTENING, dream duration in DREAMING, deep-sleep duration in
// DEEP_SLEEP.
func (d *Daemon) armPhaseTimerLocked() {
	if d.phaseTimer != nil {
		d.phaseTimer.Stop()
		d.phaseTimer = nil
	}

	var durationMs int64
	var next types.NidraState
	switch d.state {
	case types.StateListening:
		durationMs, next = d.cfg.IdleTimeoutMs, types.StateDreaming
	case types.StateDreaming:
		durationMs, next = d.cfg.DreamDurationMs, types.StateDeepSleep
	case types.StateDeepSleep:
		durationMs, next = d.cfg.DeepSleepDurationMs, types.StateListening
	}
	target := nowMs() + durationMs
	d.phaseTimer = scheduleAbsolute(target, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.disposed {
			return
		}
		d.transitionLocked(next)
	})
}

// startDreamLocked must be called with d.mu held, immediately after
// transitioning into DREAMING.
func (d *Daemon) startDreamLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	d.dreamCancel = cancel
	handler := d.dreamHandler
	startedAt := nowMs()

	d.lastConsolidationStart = startedAt
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.emit(Event{Type: EventConsolidationStart, Timestamp: startedAt})

		progress := func(phase string, pct float64) {
			if ctx.Err() != nil {
				return
			}
			d.mu.Lock()
			if d.state == types.StateDreaming {
				d.consolidationPhase = phase
				d.consolidationProgress = pct
			}
			d.mu.Unlock()
		}

		err := handler(ctx, progress)
		if ctx.Err() != nil {
			return // aborted by wake(): no consolidation_end, per spec's wake scenario.
		}
		if err != nil {
			d.log.Warn("dream handler error: %v", err)
		}

		end := nowMs()
		d.mu.Lock()
		d.lastConsolidationEnd = end
		d.consolidationPhase = ""
		d.consolidationProgress = 0
		d.mu.Unlock()
		d.emit(Event{Type: EventConsolidationEnd, Timestamp: end, DurationMs: end - startedAt})
	}()
}

// startDeepSleepLocked must be called with d.mu held, immediately
// after transitioning into DEEP_SLEEP. Unlike the dream phase, no
// consolidation_start/end events surround maintenance work (spec's
// dream-cycle scenario names only state_change events here).
func (d *Daemon) startDeepSleepLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	d.dreamCancel = cancel // reused slot: at most one of dream/deep-sleep runs at a time.
	handler := d.deepSleepHandler

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		progress := func(phase string, pct float64) {
			if ctx.Err() != nil {
				return
			}
			d.mu.Lock()
			if d.state == types.StateDeepSleep {
				d.consolidationPhase = phase
				d.consolidationProgress = pct
			}
			d.mu.Unlock()
		}
		if err := handler(ctx, progress); err != nil && ctx.Err() == nil {
			d.log.Warn("deep-sleep handler error: %v", err)
		}
	}()
}

// Dispose is irreversible: cancels all timers, aborts any in-flight
// handler, drops handlers, marks disposed. A repeated Dispose returns
// without effect; every other public call made afterwards panics with
// ErrDisposed (spec §4.5, §7).
func (d *Daemon) Dispose() {
	d.mu.Lock()
	if d.disposed {
		d.mu.Unlock()
		return
	}
	d.disposed = true
	if d.phaseTimer != nil {
		d.phaseTimer.Stop()
	}
	if d.dreamCancel != nil {
		d.dreamCancel()
	}
	d.handlers = nil
	heartbeat := d.heartbeat
	d.mu.Unlock()

	if heartbeat != nil {
		heartbeat.Stop()
	}
	d.wg.Wait()
}
