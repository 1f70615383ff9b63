package supervisor

import (
	"sync"
	"time"

	"cogcore/internal/logging"
	"cogcore/internal/nidra"
	"cogcore/internal/types"
)

// DaemonFactory builds a fresh managed daemon; called on Start and
// after every restart (spec §4.6: "start a fresh daemon").
type DaemonFactory func() (*nidra.Daemon, error)

// Supervisor (Prana) keeps a Nidra daemon alive, bounds its error rate
// via a sliding-window budget, and runs periodic background scans
// (spec §4.6).
type Supervisor struct {
	cfg       Config
	log       *logging.Logger
	newDaemon DaemonFactory
	store     nidra.Store
	broadcast BroadcastFunc
	scanner   ScanFunc

	mu                  sync.Mutex
	daemon              *nidra.Daemon
	health              Health
	restartCount        int
	consecutiveAttempts int
	errorTimestamps     []int64
	cooldownUntil       int64
	stopped             bool

	healthHandlers []func(HealthEvent)
	errorHandlers  []func(error)
	scanHandlers   []func(ScanEvent)

	restartTimer *time.Timer
	scanTimer    *time.Timer
	wg           sync.WaitGroup
}

// New constructs a Supervisor. scanner may be nil (scans become a
// no-op that still emits scan-start/scan-complete with zero items).
func New(cfg Config, newDaemon DaemonFactory, store nidra.Store, broadcast BroadcastFunc, scanner ScanFunc) *Supervisor {
	if scanner == nil {
		scanner = func() (int, error) { return 0, nil }
	}
	return &Supervisor{
		cfg:       cfg,
		log:       logging.Get(logging.CategorySupervisor),
		newDaemon: newDaemon,
		store:     store,
		broadcast: broadcast,
		scanner:   scanner,
		health:    HealthStopped,
	}
}

// Start is idempotent (spec §4.6).
func (s *Supervisor) Start() error {
	s.mu.Lock()
	if s.health != HealthStopped && s.daemon != nil {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	d, err := s.newDaemon()
	if err != nil {
		return err
	}
	d.Start()

	s.mu.Lock()
	s.daemon = d
	s.transitionLocked(HealthHealthy, "started")
	s.mu.Unlock()

	s.armScanTimer()
	return nil
}

// Stop cancels all timers, aborts in-flight work, and sets health to
// stopped (spec §4.6).
func (s *Supervisor) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	if s.restartTimer != nil && s.restartTimer.Stop() {
		s.wg.Done()
	}
	if s.scanTimer != nil && s.scanTimer.Stop() {
		s.wg.Done()
	}
	d := s.daemon
	s.transitionLocked(HealthStopped, "stop requested")
	s.mu.Unlock()

	if d != nil {
		d.Dispose()
	}
	s.wg.Wait()
}

// Health returns the current health state.
func (s *Supervisor) Health() Health {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.health
}

// RestartCount returns the number of restarts performed so far.
func (s *Supervisor) RestartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restartCount
}

// DaemonState returns the managed daemon's current state, or the zero
// value if no daemon is running (e.g. before Start or after Stop).
func (s *Supervisor) DaemonState() (types.NidraState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.daemon == nil {
		return "", false
	}
	return s.daemon.State(), true
}

// Subscribe registers a health-transition observer.
func (s *Supervisor) Subscribe(h func(HealthEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.healthHandlers = append(s.healthHandlers, h)
}

// SubscribeErrors registers an error observer.
func (s *Supervisor) SubscribeErrors(h func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorHandlers = append(s.errorHandlers, h)
}

// transitionLocked must be called with s.mu held.
func (s *Supervisor) transitionLocked(to Health, reason string) {
	from := s.health
	if from == to {
		return
	}
	s.health = to
	ev := HealthEvent{From: from, To: to, Reason: reason, Timestamp: nowMs(), RestartCount: s.restartCount}
	handlers := append([]func(HealthEvent){}, s.healthHandlers...)
	broadcast := s.broadcast
	go func() {
		for _, h := range handlers {
			safeInvoke(h, ev)
		}
		safeBroadcast(broadcast, severityFor(to), ev)
	}()
}

func safeInvoke(h func(HealthEvent), ev HealthEvent) {
	defer func() { _ = recover() }()
	h(ev)
}

func nowMs() int64 { return time.Now().UnixMilli() }
