package cogruntime

import (
	"testing"

	"cogcore/internal/config"
	"cogcore/internal/supervisor"
)

func TestNewBootsEveryComponent(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Logging.DebugMode = false

	rt, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer rt.Shutdown()

	if rt.Monitor() == nil {
		t.Error("Monitor() = nil")
	}
	if rt.Bandit() == nil {
		t.Error("Bandit() = nil")
	}
	if rt.Actors() == nil {
		t.Error("Actors() = nil")
	}

	snap := rt.Snapshot()
	if snap.SupervisorHealth != supervisor.HealthHealthy {
		t.Errorf("SupervisorHealth = %v, want healthy", snap.SupervisorHealth)
	}
}

func TestShutdownIsSafeAfterBoot(t *testing.T) {
	rt, err := New(config.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rt.Shutdown()

	snap := rt.Snapshot()
	if snap.SupervisorHealth != supervisor.HealthStopped {
		t.Errorf("SupervisorHealth after Shutdown = %v, want stopped", snap.SupervisorHealth)
	}
}
