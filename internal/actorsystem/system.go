package actorsystem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"cogcore/internal/gossip"
	"cogcore/internal/logging"
	"cogcore/internal/mesh"
)

// System owns the mesh router, the gossip peer-view table, and every
// locally spawned actor (spec §4.11).
type System struct {
	log    *logging.Logger
	router *mesh.Router
	peers  *gossip.Table

	mu     sync.Mutex
	actors map[string]*actor

	errHandlers []func(ActorRef, error)
}

// New constructs a System backed by a fresh router and peer table.
func New(peerCfg gossip.Config) *System {
	return &System{
		log:    logging.Get(logging.CategoryActor),
		router: mesh.New(),
		peers:  gossip.NewTable(peerCfg),
		actors: make(map[string]*actor),
	}
}

// Router exposes the underlying mesh router for peer-channel wiring.
func (s *System) Router() *mesh.Router { return s.router }

// Peers exposes the gossip peer-view table.
func (s *System) Peers() *gossip.Table { return s.peers }

// Spawn starts a new actor running behavior and returns its opaque ref.
func (s *System) Spawn(behavior Behavior, opts SpawnOptions) ActorRef {
	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	mailboxSize := opts.MailboxSize
	if mailboxSize <= 0 {
		mailboxSize = 256
	}

	ctx, cancel := context.WithCancel(context.Background())
	ref := ActorRef{id: id}
	a := &actor{
		ref:      ref,
		mailbox:  mesh.NewMailbox(mailboxSize),
		log:      s.log,
		system:   s,
		behavior: behavior,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	s.mu.Lock()
	s.actors[id] = a
	s.mu.Unlock()

	s.router.RegisterActor(a)
	go a.run()
	return ref
}

// Stop terminates an actor and removes it from routing.
func (s *System) Stop(ref ActorRef) {
	s.mu.Lock()
	a, ok := s.actors[ref.id]
	if ok {
		delete(s.actors, ref.id)
	}
	s.mu.Unlock()
	if !ok {
		return
	}
	s.router.RemoveActor(ref.id)
	a.mu.Lock()
	a.stopped = true
	a.mu.Unlock()
	a.cancel()
	<-a.done
}

// Broadcast sends payload to every local actor and peer channel.
func (s *System) Broadcast(from ActorRef, payload interface{}, opts BroadcastOptions) {
	s.router.Route(mesh.Envelope{
		ID:       uuid.NewString(),
		From:     from.id,
		To:       mesh.BroadcastTarget,
		Type:     mesh.TypeSignal,
		Payload:  payload,
		Priority: opts.Priority,
		TTLMs:    opts.TTLMs,
	})
}

// Subscribe adds ref as a subscriber of topic.
func (s *System) Subscribe(ref ActorRef, topic string) {
	s.router.Subscribe(ref.id, topic)
}

// SubscribeErrors registers an observer for behavior errors (including
// recovered panics).
func (s *System) SubscribeErrors(h func(ActorRef, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errHandlers = append(s.errHandlers, h)
}

func (s *System) reportError(ref ActorRef, err error) {
	s.mu.Lock()
	handlers := append([]func(ActorRef, error){}, s.errHandlers...)
	s.mu.Unlock()
	for _, h := range handlers {
		safeInvokeError(h, ref, err)
	}
}

func safeInvokeError(h func(ActorRef, error), ref ActorRef, err error) {
	defer func() { _ = recover() }()
	h(ref, err)
}

// Shutdown drains every actor's mailbox (waiting for it to empty) up
// to deadline, concurrently, then cancels whatever remains (spec
// §4.11 "drains mailboxes with a deadline then aborts").
func (s *System) Shutdown(deadline time.Duration) {
	s.mu.Lock()
	actors := make([]*actor, 0, len(s.actors))
	for _, a := range s.actors {
		actors = append(actors, a)
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), deadline)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, a := range actors {
		a := a
		g.Go(func() error {
			for a.mailbox.Len() > 0 {
				select {
				case <-gctx.Done():
					return nil
				case <-time.After(time.Millisecond):
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, a := range actors {
		s.Stop(a.ref)
	}
}
