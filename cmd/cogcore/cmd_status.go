package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cogcore/internal/cogruntime"
	"cogcore/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "boot the core, print a snapshot of every subsystem, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("cogcore: load config: %w", err)
		}

		rt, err := cogruntime.New(cfg)
		if err != nil {
			return fmt.Errorf("cogcore: build runtime: %w", err)
		}
		defer rt.Shutdown()

		snap := rt.Snapshot()
		fmt.Printf("nidra state:      %s\n", snap.NidraState)
		fmt.Printf("supervisor health: %s (restarts=%d)\n", snap.SupervisorHealth, snap.RestartCount)
		fmt.Printf("triguna state:    sattva=%.3f rajas=%.3f tamas=%.3f (dominant=%s)\n",
			snap.GunaState.Sattva, snap.GunaState.Rajas, snap.GunaState.Tamas, snap.GunaState.Dominant())
		fmt.Printf("turiya stats:     decisions=%d savings=%.1f%%\n",
			snap.TuriyaStats.TotalDecisions, snap.TuriyaStats.SavingsPercent)
		fmt.Printf("mesh peers:       %d\n", len(snap.MeshPeerIDs))
		return nil
	},
}
