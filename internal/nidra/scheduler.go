package nidra

import (
	"sync"
	"time"
)

// maxSafeDelayMs bounds any single platform timer to comfortably under
// the ~24.855-day ceiling a 32-bit millisecond delay imposes, so
// absoluteTimer can represent arbitrarily distant targets by re-arming
// in chunks (spec §4.5).
const maxSafeDelayMs = 20 * 24 * 60 * 60 * 1000 // 20 days

// absoluteTimer fires fn at targetMs (a time.Now().UnixMilli() epoch
// value), re-checking the absolute target on each chunk so a long
// sleep remains accurate even though no single timer duration can span
// it directly.
type absoluteTimer struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func scheduleAbsolute(targetMs int64, fn func()) *absoluteTimer {
	t := &absoluteTimer{}
	t.arm(targetMs, fn)
	return t
}

func (t *absoluteTimer) arm(targetMs int64, fn func()) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	remaining := targetMs - nowMs()
	if remaining <= 0 {
		t.mu.Unlock()
		fn()
		return
	}
	delay := remaining
	if delay > maxSafeDelayMs {
		delay = maxSafeDelayMs
	}
	t.timer = time.AfterFunc(time.Duration(delay)*time.Millisecond, func() {
		t.arm(targetMs, fn)
	})
	t.mu.Unlock()
}

// Stop cancels the timer; subsequent re-arm attempts from in-flight
// chunks are also suppressed.
func (t *absoluteTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
	}
}

func nowMs() int64 {
	return time.Now().UnixMilli()
}
