// Package cogruntime assembles every subsystem into one running
// process: Triguna health monitor, Nidra sleep-cycle daemon wrapped by
// the Prana supervisor, the Turiya bandit, and an actor mesh gossiping
// peer liveness. It is the composition root the cmd/cogcore CLI drives;
// nothing else in the core imports it.
package cogruntime

import (
	"fmt"

	"cogcore/internal/actorsystem"
	"cogcore/internal/config"
	"cogcore/internal/gossip"
	"cogcore/internal/logging"
	"cogcore/internal/nidra"
	"cogcore/internal/supervisor"
	"cogcore/internal/triguna"
	"cogcore/internal/turiya"
	"cogcore/internal/types"
)

// Runtime owns every long-lived subsystem instance for one process.
type Runtime struct {
	cfg        config.Config
	log        *logging.Logger
	monitor    *triguna.Monitor
	bandit     *turiya.Router
	supervisor *supervisor.Supervisor
	actors     *actorsystem.System
	gossiper   *gossip.Gossiper
	sqlStore   *nidra.SQLStore
}

// Snapshot is a point-in-time read of every subsystem, returned by the
// status command.
type Snapshot struct {
	NidraState       types.NidraState
	SupervisorHealth supervisor.Health
	RestartCount     int
	GunaState        types.GunaState
	TuriyaStats      turiya.Stats
	MeshPeerIDs      []string
}

// New wires every subsystem together from cfg and starts the
// supervisor, the actor mesh, and its gossiper.
func New(cfg config.Config) (*Runtime, error) {
	if err := logging.Initialize(cfg.Logging); err != nil {
		return nil, fmt.Errorf("cogruntime: init logging: %w", err)
	}

	monitor := triguna.New(cfg.Triguna)
	bandit := turiya.New(cfg.Turiya)

	actors := actorsystem.New(cfg.Gossip)
	gossiper := actors.StartGossip(cfg.Gossip)

	var store nidra.Store
	var sqlStore *nidra.SQLStore
	if cfg.Core.DatabasePath != "" {
		opened, err := nidra.OpenSQLStore(cfg.Core.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("cogruntime: open nidra store: %w", err)
		}
		sqlStore = opened
		store = opened
	} else {
		store = nidra.NewMemStore()
	}

	daemonFactory := func() (*nidra.Daemon, error) {
		deepSleep := nidra.NewFactsVacuumHandler(monitor, bandit)
		d, err := nidra.New(cfg.Nidra, store, nidra.NoopDreamHandler, deepSleep)
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	broadcast := func(severity supervisor.Severity, ev supervisor.HealthEvent) {
		actors.Broadcast(actorsystem.ExternalRef("supervisor"), ev, actorsystem.BroadcastOptions{})
		_ = severity
	}

	sup := supervisor.New(cfg.Supervisor, daemonFactory, store, broadcast, nil)
	if err := sup.Start(); err != nil {
		return nil, fmt.Errorf("cogruntime: start supervisor: %w", err)
	}

	return &Runtime{
		cfg:        cfg,
		log:        logging.Get(logging.CategoryBoot),
		monitor:    monitor,
		bandit:     bandit,
		supervisor: sup,
		actors:     actors,
		gossiper:   gossiper,
		sqlStore:   sqlStore,
	}, nil
}

// Monitor exposes the Triguna monitor for callers that need to feed it
// observations.
func (r *Runtime) Monitor() *triguna.Monitor { return r.monitor }

// Bandit exposes the Turiya router for request-time classification.
func (r *Runtime) Bandit() *turiya.Router { return r.bandit }

// Actors exposes the actor mesh for spawning request-handling actors.
func (r *Runtime) Actors() *actorsystem.System { return r.actors }

// Snapshot reads every subsystem's current state without mutating any
// of it.
func (r *Runtime) Snapshot() Snapshot {
	nidraState, _ := r.supervisor.DaemonState()
	return Snapshot{
		NidraState:       nidraState,
		SupervisorHealth: r.supervisor.Health(),
		RestartCount:     r.supervisor.RestartCount(),
		GunaState:        r.monitor.State(),
		TuriyaStats:      r.bandit.GetStats(),
		MeshPeerIDs:      r.actors.Router().PeerIDs(),
	}
}

// Shutdown stops the supervisor (and its managed daemon) and drains the
// actor mesh within the configured deadline.
func (r *Runtime) Shutdown() {
	r.gossiper.Stop()
	r.supervisor.Stop()
	r.actors.Shutdown(r.cfg.GetShutdownDeadline())
	if r.sqlStore != nil {
		_ = r.sqlStore.Close()
	}
}
