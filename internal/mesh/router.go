package mesh

import (
	"sync"
	"time"

	"cogcore/internal/logging"
)

// LocalActor is anything the router can deliver an envelope to
// in-process.
type LocalActor interface {
	ActorID() string
	Mailbox() *Mailbox
}

// PeerChannel is an outbound transport to another mesh node.
type PeerChannel interface {
	PeerID() string
	Send(Envelope) error
}

// Router implements the ordered envelope-routing rules of spec §4.9.
// Route never suspends: delivery is enqueueing into a mailbox or
// handing off to a peer channel's Send, never waiting on a reply.
type Router struct {
	mu        sync.Mutex
	log       *logging.Logger
	actors    map[string]LocalActor
	peers     map[string]PeerChannel
	topics    map[string]map[string]struct{}
	pending   map[string]*pendingAsk
	observers []func(Event)
	destroyed bool

	defaultAskTimeout time.Duration
	now               func() int64
}

// New constructs an empty Router.
func New() *Router {
	return &Router{
		log:               logging.Get(logging.CategoryMesh),
		actors:            make(map[string]LocalActor),
		peers:             make(map[string]PeerChannel),
		topics:            make(map[string]map[string]struct{}),
		pending:           make(map[string]*pendingAsk),
		defaultAskTimeout: 30 * time.Second,
		now:               func() int64 { return time.Now().UnixMilli() },
	}
}

// RegisterActor adds a local actor the router can deliver to.
func (r *Router) RegisterActor(a LocalActor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actors[a.ActorID()] = a
}

// RemoveActor removes a local actor and drops its topic subscriptions.
func (r *Router) RemoveActor(actorID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.actors, actorID)
	for _, subs := range r.topics {
		delete(subs, actorID)
	}
}

// RegisterPeer adds an outbound peer channel.
func (r *Router) RegisterPeer(p PeerChannel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.peers[p.PeerID()] = p
}

// RemovePeer removes a peer channel (e.g. on gossip-detected death).
func (r *Router) RemovePeer(peerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.peers, peerID)
}

// PeerIDs lists currently registered peer channel ids.
func (r *Router) PeerIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.peers))
	for id := range r.peers {
		ids = append(ids, id)
	}
	return ids
}

// Subscribe adds actorID as a subscriber of topic.
func (r *Router) Subscribe(actorID, topic string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	subs, ok := r.topics[topic]
	if !ok {
		subs = make(map[string]struct{})
		r.topics[topic] = subs
	}
	subs[actorID] = struct{}{}
}

// Unsubscribe removes actorID from topic.
func (r *Router) Unsubscribe(actorID, topic string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if subs, ok := r.topics[topic]; ok {
		delete(subs, actorID)
	}
}

// AddObserver registers an event observer. Observer panics are
// swallowed (spec §4.9 "Observer exceptions are swallowed").
func (r *Router) AddObserver(h func(Event)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, h)
}

func (r *Router) emit(ev Event) {
	r.mu.Lock()
	observers := append([]func(Event){}, r.observers...)
	r.mu.Unlock()
	for _, h := range observers {
		safeInvokeEvent(h, ev)
	}
}

// Route applies the ordered envelope-routing rules and never suspends.
func (r *Router) Route(env Envelope) {
	if env.TimestampMs == 0 {
		env.TimestampMs = r.now()
	}

	// Rule 1: reply correlation. A reply with no matching pending ask
	// (already timed out, or no correlationId) is dropped as
	// undeliverable rather than falling through to point-to-point.
	if env.Type == TypeReply {
		if env.CorrelationID != "" && r.resolvePending(env.CorrelationID, env) {
			r.emit(Event{Type: EventDelivered, Envelope: env})
			return
		}
		r.emit(Event{Type: EventUndeliverable, Envelope: env, Reason: "No pending ask"})
		return
	}

	// Rule 2: ask hook (idempotent; Ask() may have already registered).
	if env.Type == TypeAsk {
		r.registerPendingIfAbsent(env.ID, r.defaultAskTimeout, nil)
	}

	// Rule 3: TTL.
	if env.TTLMs > 0 && r.now()-env.TimestampMs > env.TTLMs {
		r.emit(Event{Type: EventUndeliverable, Envelope: env, Reason: "TTL expired"})
		return
	}

	// Rule 4: loop prevention.
	if env.To != BroadcastTarget {
		for _, h := range env.Hops {
			if h == env.To {
				r.emit(Event{Type: EventUndeliverable, Envelope: env, Reason: "Routing loop detected"})
				return
			}
		}
	}

	// Rule 5: broadcast.
	if env.To == BroadcastTarget {
		r.routeBroadcast(env)
		return
	}

	// Rule 6: topic publish.
	if env.To == TopicTarget && env.Topic != "" {
		r.routeTopic(env)
		return
	}

	// Rule 7: point-to-point.
	r.routePointToPoint(env)
}

func (r *Router) routeBroadcast(env Envelope) {
	r.mu.Lock()
	actors := make([]LocalActor, 0, len(r.actors))
	for id, a := range r.actors {
		if id != env.From {
			actors = append(actors, a)
		}
	}
	peers := make([]PeerChannel, 0, len(r.peers))
	for id, p := range r.peers {
		if id != env.From {
			peers = append(peers, p)
		}
	}
	r.mu.Unlock()

	count := 0
	for _, a := range actors {
		if r.deliverLocal(a, env) {
			count++
		}
	}
	for _, p := range peers {
		if p.Send(env) == nil {
			count++
		}
	}
	r.emit(Event{Type: EventBroadcast, Envelope: env, RecipientCount: count})
}

func (r *Router) routeTopic(env Envelope) {
	r.mu.Lock()
	subs := r.topics[env.Topic]
	var targets []LocalActor
	for id := range subs {
		if id == env.From {
			continue
		}
		if a, ok := r.actors[id]; ok {
			targets = append(targets, a)
		}
	}
	r.mu.Unlock()

	if len(targets) == 0 {
		r.emit(Event{Type: EventUndeliverable, Envelope: env, Reason: "No subscribers"})
		return
	}
	for _, a := range targets {
		r.deliverLocal(a, env)
	}
}

func (r *Router) routePointToPoint(env Envelope) {
	r.mu.Lock()
	actor, actorOK := r.actors[env.To]
	peer, peerOK := r.peers[env.To]
	r.mu.Unlock()

	if actorOK {
		r.deliverLocal(actor, env)
		return
	}
	if peerOK {
		if err := peer.Send(env); err == nil {
			r.emit(Event{Type: EventDelivered, Envelope: env})
			return
		}
	}
	r.emit(Event{Type: EventUndeliverable, Envelope: env, Reason: "No local actor or peer channel"})
}

func (r *Router) deliverLocal(a LocalActor, env Envelope) bool {
	ok := a.Mailbox().Enqueue(env)
	if ok {
		r.emit(Event{Type: EventDelivered, Envelope: env})
	} else {
		r.emit(Event{Type: EventMailboxOverflow, Envelope: env})
	}
	return ok
}

// Destroy rejects all pending asks with "Router destroyed" (spec §4.9).
func (r *Router) Destroy() {
	r.mu.Lock()
	r.destroyed = true
	pending := r.pending
	r.pending = make(map[string]*pendingAsk)
	r.mu.Unlock()

	for _, p := range pending {
		p.reject(errRouterDestroyed)
	}
}
