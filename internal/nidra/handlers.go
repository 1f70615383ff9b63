package nidra

import "context"

// ProgressFunc reports a handler's progress as a human-readable phase
// label and a completion fraction in [0,1] (spec §4.5).
type ProgressFunc func(phase string, pct float64)

// DreamHandler performs memory-consolidation work while the daemon is
// in DREAMING. It must treat ctx cancellation as cooperative: any
// progress report after cancellation is dropped by the caller.
type DreamHandler func(ctx context.Context, progress ProgressFunc) error

// DeepSleepHandler performs maintenance work while the daemon is in
// DEEP_SLEEP.
type DeepSleepHandler func(ctx context.Context, progress ProgressFunc) error

// Vacuumable is implemented by any subsystem whose bounded history or
// statistics can be compacted during deep sleep (e.g. Triguna's history
// ring, Turiya's arm statistics). Nidra depends only on this narrow
// interface so it never imports the concrete subsystems that register
// for it (spec §4.5: deep-sleep maintenance is caller-supplied).
type Vacuumable interface {
	Vacuum()
}

// NewFactsVacuumHandler builds the in-core deep-sleep handler: it
// reports progress once per target and calls Vacuum on each. Callers
// pass it to New explicitly (internal/cogruntime does); when no
// deep-sleep handler is given, New substitutes a progress-only no-op.
func NewFactsVacuumHandler(targets ...Vacuumable) DeepSleepHandler {
	return func(ctx context.Context, progress ProgressFunc) error {
		n := len(targets)
		if n == 0 {
			progress("facts_vacuum", 1.0)
			return nil
		}
		for i, t := range targets {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			t.Vacuum()
			progress("facts_vacuum", float64(i+1)/float64(n))
		}
		return nil
	}
}

// NoopDreamHandler drives progress reporting without performing any
// consolidation, so the state machine's timing invariants hold even
// when the caller registers no dream handler (spec.md's memory
// consolidation content stays out of scope for this core).
func NoopDreamHandler(ctx context.Context, progress ProgressFunc) error {
	progress("idle", 1.0)
	return nil
}
