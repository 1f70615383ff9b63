// Package main implements the cogcore CLI: a thin cobra front end over
// the cognitive runtime core (Triguna health, Nidra sleep cycle,
// Supervisor restart/budget, Marga routing, Turiya bandit, and the
// actor mesh). Subcommands are split across cmd_*.go files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	configPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cogcore",
	Short: "cogcore - a gossiping, self-healing cognitive runtime core",
	Long: `cogcore wires together the health monitor (Triguna), the sleep-cycle
daemon (Nidra), the restart supervisor (Prana), the routing pipeline
(Marga), the budget-aware bandit (Turiya), and the actor mesh into one
process.

Run without arguments for usage.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		built, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("cogcore: init logger: %w", err)
		}
		logger = built
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "cogcore.yaml", "path to the YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
