package supervisor

import (
	"time"

	"cogcore/internal/nidra"
)

// Crash marks the daemon crashed and begins the restart policy: an
// exponential backoff doubling on each consecutive attempt up to a
// cap; after the consecutive-attempt limit, a cooldown followed by
// self-heal diagnostics and one more try (spec §4.6).
func (s *Supervisor) Crash(reason string) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.transitionLocked(HealthCrashed, reason)
	s.mu.Unlock()

	s.scheduleRestart()
}

func (s *Supervisor) scheduleRestart() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.consecutiveAttempts++
	attempt := s.consecutiveAttempts
	cooling := attempt > s.cfg.MaxRestartAttempts
	var delay time.Duration
	if cooling {
		delay = time.Duration(s.cfg.CooldownMs) * time.Millisecond
	} else {
		delay = backoffDelay(s.cfg, attempt)
	}
	s.mu.Unlock()

	s.wg.Add(1)
	s.restartTimer = time.AfterFunc(delay, func() {
		defer s.wg.Done()
		if cooling {
			s.selfHeal()
		}
		s.restart()
	})
}

// backoffDelay doubles the initial delay on each consecutive attempt,
// capped at MaxRestartDelayMs.
func backoffDelay(cfg Config, attempt int) time.Duration {
	delay := cfg.InitialRestartDelayMs
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= cfg.MaxRestartDelayMs {
			delay = cfg.MaxRestartDelayMs
			break
		}
	}
	return time.Duration(delay) * time.Millisecond
}

// restart removes listeners from the prior daemon, stops it, runs
// self-heal, and starts a fresh one; on success the attempt counters
// reset (spec §4.6).
func (s *Supervisor) restart() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	prior := s.daemon
	s.mu.Unlock()

	if prior != nil {
		prior.Dispose() // drops all listeners, stops timers and in-flight work.
	}
	s.selfHeal()

	d, err := s.newDaemon()
	if err != nil {
		s.log.Warn("restart failed to construct daemon: %v", err)
		s.scheduleRestart()
		return
	}
	d.Start()

	s.mu.Lock()
	s.daemon = d
	s.consecutiveAttempts = 0
	s.restartCount++
	s.transitionLocked(HealthHealthy, "restarted")
	s.mu.Unlock()
}

// selfHeal runs best-effort database integrity checks and clears any
// stale consolidation lock row (spec §4.6). Both steps are best-effort:
// any failure is logged and swallowed.
func (s *Supervisor) selfHeal() {
	sqlStore, ok := s.store.(*nidra.SQLStore)
	if ok {
		if err := sqlStore.CheckIntegrity(); err != nil {
			s.log.Warn("self-heal integrity check failed: %v", err)
		}
	}

	row, exists, err := s.store.Load()
	if err != nil || !exists {
		return
	}
	if row.ConsolidationPhase == "" {
		return
	}
	if nowMs()-row.LastConsolidationStart < s.cfg.StaleConsolidationThresholdMs {
		return
	}
	row.ConsolidationPhase = ""
	row.ConsolidationProgress = 0
	if err := s.store.SaveFull(row); err != nil {
		s.log.Warn("self-heal failed to clear stale consolidation row: %v", err)
	}
}
