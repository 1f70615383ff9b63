package actorsystem

import (
	"context"
	"sync"

	"cogcore/internal/logging"
	"cogcore/internal/mesh"
)

type becomeFunc func(Behavior)

type becomeKeyType struct{}

var becomeKey = becomeKeyType{}

// Become switches the calling actor's behavior effective from the
// next envelope it processes. It is a no-op outside an actor's own
// processing goroutine (ctx must be the one the system handed the
// behavior).
func Become(ctx context.Context, next Behavior) {
	if f, ok := ctx.Value(becomeKey).(becomeFunc); ok {
		f(next)
	}
}

// actor is the system's private runtime for one spawned actor. Only
// its ActorRef (an opaque id) ever crosses the package boundary.
type actor struct {
	ref      ActorRef
	mailbox  *mesh.Mailbox
	log      *logging.Logger
	system   *System

	mu       sync.Mutex
	behavior Behavior
	stopped  bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func (a *actor) ActorID() string          { return a.ref.id }
func (a *actor) Mailbox() *mesh.Mailbox   { return a.mailbox }

// run drains the mailbox serially until stopped, satisfying "a single
// actor processes one envelope at a time" (spec §4.9 concurrency note).
func (a *actor) run() {
	defer close(a.done)
	for {
		select {
		case <-a.ctx.Done():
			return
		default:
		}

		env, ok := a.mailbox.Dequeue()
		if !ok {
			select {
			case <-a.ctx.Done():
				return
			case <-a.mailbox.Notify():
			}
			continue
		}

		a.process(env)
	}
}

func (a *actor) process(env mesh.Envelope) {
	a.mu.Lock()
	behavior := a.behavior
	a.mu.Unlock()
	if behavior == nil {
		return
	}

	ctx := context.WithValue(a.ctx, becomeKey, becomeFunc(func(next Behavior) {
		a.mu.Lock()
		a.behavior = next
		a.mu.Unlock()
	}))

	outbound, err := safeInvokeBehavior(behavior, ctx, env, a.ref)
	if err != nil {
		a.system.reportError(a.ref, err)
	}
	for _, out := range outbound {
		if out.From == "" {
			out.From = a.ref.id
		}
		// The outbound envelope inherits the hop trail of the one that
		// triggered it, plus this actor, so a forward chain that loops
		// back on itself is detectable by Route's rule 4.
		out.Hops = append(append([]string{}, env.Hops...), a.ref.id)
		a.system.router.Route(out)
	}
}

func safeInvokeBehavior(b Behavior, ctx context.Context, env mesh.Envelope, self ActorRef) (out []mesh.Envelope, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError{r}
		}
	}()
	return b(ctx, env, self)
}

type recoveredError struct{ v interface{} }

func (e recoveredError) Error() string { return "actorsystem: behavior panicked" }
