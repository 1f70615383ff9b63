package nidra

import (
	"context"
	"testing"
)

type fakeVacuumable struct{ called bool }

func (f *fakeVacuumable) Vacuum() { f.called = true }

func TestFactsVacuumHandlerCallsEveryTarget(t *testing.T) {
	a, b := &fakeVacuumable{}, &fakeVacuumable{}
	handler := NewFactsVacuumHandler(a, b)

	var reports []float64
	err := handler(context.Background(), func(phase string, pct float64) {
		reports = append(reports, pct)
	})
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !a.called || !b.called {
		t.Error("not every target was vacuumed")
	}
	if len(reports) != 2 || reports[1] != 1.0 {
		t.Errorf("progress reports = %v, want final 1.0", reports)
	}
}

func TestFactsVacuumHandlerNoTargets(t *testing.T) {
	handler := NewFactsVacuumHandler()
	reported := false
	err := handler(context.Background(), func(string, float64) { reported = true })
	if err != nil || !reported {
		t.Errorf("err=%v reported=%v, want nil/true", err, reported)
	}
}
