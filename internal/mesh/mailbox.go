package mesh

import "sync"

// Mailbox is a 4-lane priority queue. Lane 3 is drained before lane 2,
// and so on; within a lane delivery is strictly FIFO (spec §4.9
// "Mailboxes").
type Mailbox struct {
	mu      sync.Mutex
	maxSize int
	lanes   [MaxPriority + 1][]Envelope
	notify  chan struct{}

	onOverflow func(dropped Envelope)
}

// NewMailbox builds a mailbox bounded at maxSize total envelopes
// across all four lanes.
func NewMailbox(maxSize int) *Mailbox {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &Mailbox{maxSize: maxSize, notify: make(chan struct{}, 1)}
}

// Notify returns a channel that receives a signal whenever Enqueue
// successfully adds an envelope, letting a consumer block instead of
// polling Dequeue.
func (mb *Mailbox) Notify() <-chan struct{} {
	return mb.notify
}

func (mb *Mailbox) size() int {
	n := 0
	for _, l := range mb.lanes {
		n += len(l)
	}
	return n
}

// Enqueue inserts env into its priority lane. If the mailbox is at
// capacity, the oldest message in the lowest-priority non-empty lane
// strictly below env's priority is evicted to make room. If no such
// lane exists, the incoming message itself is dropped and ok is false.
func (mb *Mailbox) Enqueue(env Envelope) (ok bool) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	p := clampPriority(env.Priority)
	if mb.size() < mb.maxSize {
		mb.lanes[p] = append(mb.lanes[p], env)
		mb.signal()
		return true
	}

	for lower := 0; lower < p; lower++ {
		if len(mb.lanes[lower]) > 0 {
			mb.lanes[lower] = mb.lanes[lower][1:]
			mb.lanes[p] = append(mb.lanes[p], env)
			mb.signal()
			return true
		}
	}

	if mb.onOverflow != nil {
		mb.onOverflow(env)
	}
	return false
}

func (mb *Mailbox) signal() {
	select {
	case mb.notify <- struct{}{}:
	default:
	}
}

// Dequeue removes and returns the oldest envelope from the
// highest-priority non-empty lane.
func (mb *Mailbox) Dequeue() (Envelope, bool) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	for p := MaxPriority; p >= 0; p-- {
		if len(mb.lanes[p]) > 0 {
			env := mb.lanes[p][0]
			mb.lanes[p] = mb.lanes[p][1:]
			return env, true
		}
	}
	return Envelope{}, false
}

// Len returns the total number of queued envelopes.
func (mb *Mailbox) Len() int {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.size()
}
