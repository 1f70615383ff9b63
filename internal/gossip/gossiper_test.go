package gossip

import (
	"sync"
	"testing"
	"time"
)

type fakeTransport struct {
	mu   sync.Mutex
	ids  []string
	sent map[string]int
}

func (f *fakeTransport) PeerIDs() []string { return f.ids }
func (f *fakeTransport) SendGossip(peerID string, views []PeerView) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sent == nil {
		f.sent = make(map[string]int)
	}
	f.sent[peerID]++
	return nil
}

func TestGossiperSendsToPeersOnInterval(t *testing.T) {
	tbl := NewTable(DefaultConfig())
	tbl.Touch("peer-a", 0)

	transport := &fakeTransport{ids: []string{"p1", "p2"}}
	g := NewGossiper(tbl, transport, Config{FanoutCount: 2, IntervalMs: 10})
	g.Start()
	defer g.Stop()

	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		transport.mu.Lock()
		total := len(transport.sent)
		transport.mu.Unlock()
		if total > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	transport.mu.Lock()
	defer transport.mu.Unlock()
	if len(transport.sent) == 0 {
		t.Error("expected gossip to reach at least one peer")
	}
}

func TestGossiperStopIsIdempotentAndClean(t *testing.T) {
	tbl := NewTable(DefaultConfig())
	transport := &fakeTransport{ids: []string{"p1"}}
	g := NewGossiper(tbl, transport, Config{FanoutCount: 1, IntervalMs: 10})
	g.Start()
	g.Stop()
	g.Stop()
}
