package nidra

import "time"

// heartbeatLoop is the drift-correcting chain scheduler (spec §4.5):
// after each beat it computes drift = now - expectedTime, sets the next
// delay to max(0, nextInterval-drift), and advances
// expectedTime = now + nextDelay. It runs until stopCh is closed.
type heartbeatLoop struct {
	stopCh chan struct{}
	doneCh chan struct{}
}

func startHeartbeatLoop(intervalMs func() int64, beat func(now int64)) *heartbeatLoop {
	h := &heartbeatLoop{stopCh: make(chan struct{}), doneCh: make(chan struct{})}
	go h.run(intervalMs, beat)
	return h
}

func (h *heartbeatLoop) run(intervalMs func() int64, beat func(now int64)) {
	defer close(h.doneCh)

	interval := intervalMs()
	expected := nowMs() + interval
	timer := time.NewTimer(time.Duration(interval) * time.Millisecond)
	defer timer.Stop()

	for {
		select {
		case <-h.stopCh:
			return
		case <-timer.C:
			now := nowMs()
			beat(now)

			drift := now - expected
			next := intervalMs()
			delay := next - drift
			if delay < 0 {
				delay = 0
			}
			expected = now + delay
			timer.Reset(time.Duration(delay) * time.Millisecond)
		}
	}
}

func (h *heartbeatLoop) Stop() {
	close(h.stopCh)
	<-h.doneCh
}
