package gossip

import (
	"sync"

	"cogcore/internal/logging"
)

// Config tunes suspicion timeouts and gossip fanout, all defaultable
// via internal/config (spec §6).
type Config struct {
	SuspectTimeoutMs int64 `yaml:"suspect_timeout_ms"`
	DeadTimeoutMs    int64 `yaml:"dead_timeout_ms"`
	FanoutCount      int   `yaml:"fanout_count"`
	IntervalMs       int64 `yaml:"interval_ms"`
}

// DefaultConfig is a conservative SWIM-style timing: 5s to suspect, a
// further 10s of silence to declare dead, gossiping 3 peers every 2s.
func DefaultConfig() Config {
	return Config{
		SuspectTimeoutMs: 5_000,
		DeadTimeoutMs:    10_000,
		FanoutCount:      3,
		IntervalMs:       2_000,
	}
}

// StatusChangeEvent is emitted whenever a tracked peer's status
// changes, consumed by the mesh router to add/remove peer channels.
type StatusChangeEvent struct {
	ActorID string
	From    Status
	To      Status
	View    PeerView
}

// Table owns the local node's view of every known peer and applies
// the SWIM merge rule and suspicion lifecycle over it.
type Table struct {
	mu       sync.Mutex
	cfg      Config
	log      *logging.Logger
	views    map[string]PeerView
	handlers []func(StatusChangeEvent)
}

// NewTable constructs an empty peer-view table.
func NewTable(cfg Config) *Table {
	return &Table{
		cfg:   cfg,
		log:   logging.Get(logging.CategoryGossip),
		views: make(map[string]PeerView),
	}
}

// Subscribe registers a status-change observer.
func (t *Table) Subscribe(h func(StatusChangeEvent)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handlers = append(t.handlers, h)
}

func (t *Table) emit(ev StatusChangeEvent) {
	t.mu.Lock()
	handlers := append([]func(StatusChangeEvent){}, t.handlers...)
	t.mu.Unlock()
	for _, h := range handlers {
		safeInvoke(h, ev)
	}
}

func safeInvoke(h func(StatusChangeEvent), ev StatusChangeEvent) {
	defer func() { _ = recover() }()
	h(ev)
}

// MergeIncoming applies the SWIM merge rule for a gossiped view of a
// peer, emitting a status-change event when the merged status differs
// from what was locally held.
func (t *Table) MergeIncoming(incoming PeerView) PeerView {
	t.mu.Lock()
	local, existed := t.views[incoming.ActorID]
	if !existed {
		local = PeerView{ActorID: incoming.ActorID, Status: StatusAlive}
	}
	merged := Merge(local, incoming)
	t.views[incoming.ActorID] = merged
	t.mu.Unlock()

	if !existed || merged.Status != local.Status {
		from := StatusAlive
		if existed {
			from = local.Status
		}
		t.emit(StatusChangeEvent{ActorID: incoming.ActorID, From: from, To: merged.Status, View: merged})
	}
	return merged
}

// Touch records direct liveness evidence for actorID (e.g. a
// successfully delivered envelope), resetting its silence clock and
// rehabilitating it to alive.
func (t *Table) Touch(actorID string, nowMs int64) {
	t.mu.Lock()
	view, existed := t.views[actorID]
	if !existed {
		view = PeerView{ActorID: actorID, Status: StatusAlive, Generation: 1}
	}
	prevStatus := view.Status
	view.Status = StatusAlive
	view.LastSeenMs = nowMs
	t.views[actorID] = view
	t.mu.Unlock()

	if prevStatus != StatusAlive {
		t.emit(StatusChangeEvent{ActorID: actorID, From: prevStatus, To: StatusAlive, View: view})
	}
}

// Tick advances the suspicion lifecycle for every tracked peer given
// no further liveness evidence (spec §4.10).
func (t *Table) Tick(nowMs int64) {
	t.mu.Lock()
	type transition struct {
		id   string
		from Status
		to   Status
		view PeerView
	}
	var transitions []transition

	for id, view := range t.views {
		elapsed := nowMs - view.LastSeenMs
		switch view.Status {
		case StatusAlive:
			if elapsed >= t.cfg.SuspectTimeoutMs {
				view.Status = StatusSuspect
				view.Generation++
				t.views[id] = view
				transitions = append(transitions, transition{id, StatusAlive, StatusSuspect, view})
			}
		case StatusSuspect:
			if elapsed >= t.cfg.SuspectTimeoutMs+t.cfg.DeadTimeoutMs {
				view.Status = StatusDead
				t.views[id] = view
				transitions = append(transitions, transition{id, StatusSuspect, StatusDead, view})
			}
		}
	}
	t.mu.Unlock()

	for _, tr := range transitions {
		t.emit(StatusChangeEvent{ActorID: tr.id, From: tr.from, To: tr.to, View: tr.view})
	}
}

// Snapshot returns a bounded random-order subset of views for periodic
// gossip (spec §4.10 "bounded subset ... to random peer channels").
func (t *Table) Snapshot(limit int) []PeerView {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]PeerView, 0, len(t.views))
	for _, v := range t.views {
		out = append(out, v)
		if len(out) >= limit && limit > 0 {
			break
		}
	}
	return out
}

// View returns the current view for actorID, if tracked.
func (t *Table) View(actorID string) (PeerView, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.views[actorID]
	return v, ok
}
