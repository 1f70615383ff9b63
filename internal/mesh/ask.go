package mesh

import (
	"context"
	"errors"
	"time"
)

var (
	errAskTimeout      = errors.New("mesh: ask timed out")
	errRouterDestroyed = errors.New("mesh: router destroyed")
)

type pendingAsk struct {
	replyCh chan Envelope
	errCh   chan error
	timer   *time.Timer
	fired   bool
}

func (p *pendingAsk) reject(err error) {
	select {
	case p.errCh <- err:
	default:
	}
}

// registerPendingIfAbsent inserts a pending-ask record keyed by id
// unless one already exists (Ask() pre-registers before Route, so a
// direct Route() call with type=ask is still handled idempotently).
func (r *Router) registerPendingIfAbsent(id string, timeout time.Duration, existing *pendingAsk) *pendingAsk {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.pending[id]; ok {
		return p
	}
	p := existing
	if p == nil {
		p = &pendingAsk{replyCh: make(chan Envelope, 1), errCh: make(chan error, 1)}
	}
	r.pending[id] = p
	p.timer = time.AfterFunc(timeout, func() {
		r.mu.Lock()
		_, stillPending := r.pending[id]
		if stillPending {
			delete(r.pending, id)
		}
		r.mu.Unlock()
		if stillPending {
			p.reject(errAskTimeout)
		}
	})
	return p
}

// resolvePending matches a reply to its pending ask by correlation id,
// cancels the timeout, and delivers the reply. Returns false if there
// was no matching pending entry (a late reply after timeout is itself
// dropped as undeliverable by the caller).
func (r *Router) resolvePending(correlationID string, reply Envelope) bool {
	r.mu.Lock()
	p, ok := r.pending[correlationID]
	if ok {
		delete(r.pending, correlationID)
	}
	r.mu.Unlock()

	if !ok {
		return false
	}
	p.timer.Stop()
	select {
	case p.replyCh <- reply:
	default:
	}
	return true
}

// Ask sends env (forced to type=ask) and blocks until a correlated
// reply arrives, the timeout elapses, ctx is cancelled, or the router
// is destroyed.
func (r *Router) Ask(ctx context.Context, env Envelope, timeout time.Duration) (Envelope, error) {
	if timeout <= 0 {
		timeout = r.defaultAskTimeout
	}
	env.Type = TypeAsk

	r.mu.Lock()
	destroyed := r.destroyed
	r.mu.Unlock()
	if destroyed {
		return Envelope{}, errRouterDestroyed
	}

	p := r.registerPendingIfAbsent(env.ID, timeout, nil)
	r.Route(env)

	select {
	case reply := <-p.replyCh:
		return reply, nil
	case err := <-p.errCh:
		return Envelope{}, err
	case <-ctx.Done():
		r.mu.Lock()
		delete(r.pending, env.ID)
		r.mu.Unlock()
		p.timer.Stop()
		return Envelope{}, ctx.Err()
	}
}
