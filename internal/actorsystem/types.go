// Package actorsystem owns the mesh router, the gossip peer-view
// table, and the set of locally spawned actor instances (spec §4.11).
// Raw behavior functions never cross the ActorRef boundary: callers
// only ever hold an opaque string identity.
package actorsystem

import (
	"context"

	"cogcore/internal/mesh"
)

// ActorRef is an opaque handle to a spawned actor. It carries no
// behavior, only identity.
type ActorRef struct {
	id string
}

// ID returns the actor's mesh-routable address.
func (r ActorRef) ID() string { return r.id }

// ExternalRef wraps an arbitrary mesh address (e.g. "supervisor",
// "cli") as an ActorRef, for callers outside the actor system that
// need to originate a Broadcast without having Spawned anything.
func ExternalRef(id string) ActorRef { return ActorRef{id: id} }

func (r ActorRef) String() string { return r.id }

// Behavior processes one envelope and returns any outbound envelopes
// plus an error. Returning a non-nil error does not stop the actor;
// it is reported to the system's error observers.
type Behavior func(ctx context.Context, env mesh.Envelope, self ActorRef) ([]mesh.Envelope, error)

// SpawnOptions configures a new actor.
type SpawnOptions struct {
	MailboxSize int
	ID          string // optional; generated if empty
}

// BroadcastOptions configures System.Broadcast.
type BroadcastOptions struct {
	Priority int
	TTLMs    int64
}
