package gossip

import (
	"math/rand"
	"sync"
	"time"
)

// Transport abstracts how a bounded view subset reaches a random peer;
// the actor system wires this onto mesh.Router's peer channels so
// gossip never depends on the mesh package directly.
type Transport interface {
	PeerIDs() []string
	SendGossip(peerID string, views []PeerView) error
}

// Gossiper periodically pushes a bounded subset of the local peer
// table to a random selection of peers (spec §4.10).
type Gossiper struct {
	table     *Table
	transport Transport
	cfg       Config

	mu      sync.Mutex
	stopped bool
	timer   *time.Timer
	wg      sync.WaitGroup
}

// NewGossiper wires a Table to a Transport under cfg's fanout/interval.
func NewGossiper(table *Table, transport Transport, cfg Config) *Gossiper {
	return &Gossiper{table: table, transport: transport, cfg: cfg}
}

// Start begins the periodic gossip loop.
func (g *Gossiper) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.timer != nil {
		return
	}
	g.armLocked()
}

func (g *Gossiper) armLocked() {
	g.wg.Add(1)
	g.timer = time.AfterFunc(time.Duration(g.cfg.IntervalMs)*time.Millisecond, g.tick)
}

func (g *Gossiper) tick() {
	defer g.wg.Done()
	g.mu.Lock()
	stopped := g.stopped
	g.mu.Unlock()
	if stopped {
		return
	}

	g.gossipOnce()

	g.mu.Lock()
	if !g.stopped {
		g.armLocked()
	}
	g.mu.Unlock()
}

func (g *Gossiper) gossipOnce() {
	views := g.table.Snapshot(g.cfg.FanoutCount * 4)
	if len(views) == 0 {
		return
	}
	peers := g.transport.PeerIDs()
	if len(peers) == 0 {
		return
	}
	n := g.cfg.FanoutCount
	if n > len(peers) {
		n = len(peers)
	}
	chosen := randomSubset(peers, n)
	for _, p := range chosen {
		_ = g.transport.SendGossip(p, views)
	}
}

func randomSubset(items []string, n int) []string {
	shuffled := append([]string{}, items...)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Stop cancels the gossip loop and waits for any in-flight tick.
func (g *Gossiper) Stop() {
	g.mu.Lock()
	g.stopped = true
	if g.timer != nil && g.timer.Stop() {
		g.wg.Done()
	}
	g.mu.Unlock()
	g.wg.Wait()
}
