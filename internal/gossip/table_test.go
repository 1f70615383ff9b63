package gossip

import "testing"

func TestMergeHigherGenerationWins(t *testing.T) {
	local := PeerView{ActorID: "a", Status: StatusAlive, Generation: 3}
	incoming := PeerView{ActorID: "a", Status: StatusDead, Generation: 5}
	got := Merge(local, incoming)
	if got.Generation != 5 || got.Status != StatusDead {
		t.Errorf("Merge = %+v, want incoming to win on higher generation", got)
	}
}

func TestMergeEqualGenerationWorseStatusWins(t *testing.T) {
	local := PeerView{ActorID: "a", Status: StatusAlive, Generation: 2}
	incoming := PeerView{ActorID: "a", Status: StatusSuspect, Generation: 2}
	got := Merge(local, incoming)
	if got.Status != StatusSuspect {
		t.Errorf("Merge = %+v, want suspect (worse status at equal generation)", got)
	}
}

func TestMergeLowerGenerationLoses(t *testing.T) {
	local := PeerView{ActorID: "a", Status: StatusDead, Generation: 5}
	incoming := PeerView{ActorID: "a", Status: StatusAlive, Generation: 1}
	got := Merge(local, incoming)
	if got.Generation != 5 || got.Status != StatusDead {
		t.Errorf("Merge = %+v, want local to win on higher generation", got)
	}
}

func TestHigherGenerationAliveRehabilitates(t *testing.T) {
	local := PeerView{ActorID: "a", Status: StatusDead, Generation: 2}
	incoming := PeerView{ActorID: "a", Status: StatusAlive, Generation: 3}
	got := Merge(local, incoming)
	if got.Status != StatusAlive {
		t.Errorf("Merge = %+v, want rehabilitated to alive", got)
	}
}

func TestTickMarksSuspectAfterSilence(t *testing.T) {
	tbl := NewTable(Config{SuspectTimeoutMs: 100, DeadTimeoutMs: 100})
	tbl.Touch("a", 0)

	var events []StatusChangeEvent
	tbl.Subscribe(func(ev StatusChangeEvent) { events = append(events, ev) })

	tbl.Tick(50)
	if v, _ := tbl.View("a"); v.Status != StatusAlive {
		t.Errorf("status = %v, want still alive before timeout", v.Status)
	}

	tbl.Tick(150)
	v, _ := tbl.View("a")
	if v.Status != StatusSuspect {
		t.Errorf("status = %v, want suspect after silence", v.Status)
	}
	if v.Generation != 2 {
		t.Errorf("Generation = %d, want bumped to 2 on suspect transition", v.Generation)
	}
	if len(events) != 1 || events[0].To != StatusSuspect {
		t.Errorf("events = %+v, want one suspect transition", events)
	}
}

func TestTickMarksDeadAfterFurtherSilence(t *testing.T) {
	tbl := NewTable(Config{SuspectTimeoutMs: 100, DeadTimeoutMs: 100})
	tbl.Touch("a", 0)
	tbl.Tick(150)
	tbl.Tick(250)
	v, _ := tbl.View("a")
	if v.Status != StatusDead {
		t.Errorf("status = %v, want dead after suspect+dead timeouts elapse", v.Status)
	}
}

func TestTouchRehabilitatesSuspectedPeer(t *testing.T) {
	tbl := NewTable(DefaultConfig())
	tbl.Touch("a", 0)
	tbl.Tick(10_000)
	if v, _ := tbl.View("a"); v.Status != StatusSuspect {
		t.Fatalf("expected suspect before Touch")
	}
	tbl.Touch("a", 10_001)
	if v, _ := tbl.View("a"); v.Status != StatusAlive {
		t.Errorf("status after Touch = %v, want alive", v.Status)
	}
}

func TestMergeIncomingEmitsOnStatusChange(t *testing.T) {
	tbl := NewTable(DefaultConfig())
	var events []StatusChangeEvent
	tbl.Subscribe(func(ev StatusChangeEvent) { events = append(events, ev) })

	tbl.MergeIncoming(PeerView{ActorID: "a", Status: StatusSuspect, Generation: 1})
	if len(events) != 1 || events[0].To != StatusSuspect {
		t.Errorf("events = %+v, want one suspect event for newly seen peer", events)
	}
}
