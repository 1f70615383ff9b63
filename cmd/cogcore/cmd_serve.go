package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"cogcore/internal/cogruntime"
	"cogcore/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "boot every subsystem and block until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("cogcore: load config: %w", err)
		}

		rt, err := cogruntime.New(cfg)
		if err != nil {
			return fmt.Errorf("cogcore: build runtime: %w", err)
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

		fmt.Fprintln(os.Stderr, "cogcore: running, press ctrl-c to stop")
		<-sig

		fmt.Fprintln(os.Stderr, "cogcore: shutting down")
		rt.Shutdown()
		return nil
	},
}
