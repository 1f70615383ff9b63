package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cogcore/internal/marga"
	"cogcore/internal/turiya"
)

var (
	routeHasTools  bool
	routeHasImages bool
	routePreferCheap bool
)

var routeCmd = &cobra.Command{
	Use:   "route <message>",
	Short: "run Marga classification and Turiya cascade on a single message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := args[0]

		decision := marga.Decide(marga.DecideRequest{
			Message:   message,
			HasTools:  routeHasTools,
			HasImages: routeHasImages,
		})

		pref := turiya.PreferNone
		if routePreferCheap {
			pref = turiya.PreferCheap
		}
		bandit := turiya.New(turiya.DefaultConfig())
		tCtx := turiya.ExtractContext([]turiya.Message{{Role: "user", Content: message}}, "", nil, 0)
		tDecision := bandit.Classify(tCtx, pref)
		cascade := bandit.CascadeDecision(tDecision, nil)

		out := map[string]interface{}{
			"marga":   decision,
			"turiya":  tDecision,
			"cascade": cascade,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("cogcore: encode route result: %w", err)
		}
		return nil
	},
}

func init() {
	routeCmd.Flags().BoolVar(&routeHasTools, "has-tools", false, "the request carries tool bindings")
	routeCmd.Flags().BoolVar(&routeHasImages, "has-images", false, "the request carries image attachments")
	routeCmd.Flags().BoolVar(&routePreferCheap, "prefer-cheap", false, "bias Turiya's classification toward cheaper tiers")
}
