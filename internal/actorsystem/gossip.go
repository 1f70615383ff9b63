package actorsystem

import (
	"github.com/google/uuid"

	"cogcore/internal/gossip"
	"cogcore/internal/mesh"
)

const gossipTopic = "__gossip__"

// routerTransport adapts the mesh router's peer channels to
// gossip.Transport, so the gossip package never imports mesh directly.
type routerTransport struct {
	router *mesh.Router
}

func (t routerTransport) PeerIDs() []string { return t.router.PeerIDs() }

func (t routerTransport) SendGossip(peerID string, views []gossip.PeerView) error {
	t.router.Route(mesh.Envelope{
		ID:      uuid.NewString(),
		From:    "",
		To:      peerID,
		Type:    mesh.TypeSignal,
		Topic:   gossipTopic,
		Payload: views,
	})
	return nil
}

// StartGossip wires a periodic gossiper over the system's peer table
// and router peer channels.
func (s *System) StartGossip(cfg gossip.Config) *gossip.Gossiper {
	g := gossip.NewGossiper(s.peers, routerTransport{router: s.router}, cfg)
	g.Start()
	return g
}

// IngestGossip merges an inbound gossip payload into the local peer
// table, wired to whatever delivers "__gossip__"-topic envelopes.
func (s *System) IngestGossip(views []gossip.PeerView) {
	for _, v := range views {
		s.peers.MergeIncoming(v)
	}
}
