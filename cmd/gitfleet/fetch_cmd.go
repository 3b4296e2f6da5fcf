package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nharms/gitfleet/internal/log"
	"github.com/nharms/gitfleet/internal/orchestrate"
	"github.com/nharms/gitfleet/internal/output"
	"github.com/nharms/gitfleet/internal/ui"
)

func newFetchCmd() *cobra.Command {
	var (
		roots       []string
		recurse     bool
		parallel    int
		timeoutSecs int
		filter      string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:     "fetch",
		Short:   "Fetch all repositories under the scan roots",
		Aliases: []string{"f"},
		Args:    cobra.NoArgs,
		Long: `Fetch remote-tracking refs for every discovered repository, with bounded
concurrency and a per-repository timeout.

Failures are reported per repository and never abort the rest of the fleet.
The command exits non-zero when any repository failed, so partial failure is
always visible to scripts.`,
		Example: `  gitfleet fetch                      # Fetch repos under configured roots
  gitfleet fetch -r ~/code -R         # Scan a subtree recursively
  gitfleet fetch -p 16 -t 60          # Wider pool, tighter timeout
  gitfleet fetch -f api --json        # Only repos matching "api", as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if !cmd.Flags().Changed("recurse") {
				recurse = cfg.Recurse
			}

			repos, err := discoverTargets(ctx, roots, recurse, filter)
			if err != nil {
				return err
			}

			log.FromContext(ctx).Printf("Fetching %d repositories...\n", len(repos))

			results, err := orchestrate.New().FetchAll(ctx, repos, runOptions(parallel, timeoutSecs))
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else {
				colored := isatty.IsTerminal(os.Stdout.Fd())
				out.Print(ui.FormatFetchTable(results, ui.DefaultStyles(colored)))
			}

			failed := 0
			for _, res := range results {
				if !res.Success {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d repositories failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&roots, "root", "r", nil, "Root path to scan (repeatable; default from config or \".\")")
	cmd.Flags().BoolVarP(&recurse, "recurse", "R", false, "Scan full subtrees instead of immediate children")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "Max concurrent fetches (default from config)")
	cmd.Flags().IntVarP(&timeoutSecs, "timeout", "t", 0, "Per-repository timeout in seconds (default from config)")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only repositories whose name fuzzy-matches")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

// runOptions merges flag values over configured defaults.
func runOptions(parallel, timeoutSecs int) orchestrate.Options {
	if parallel == 0 {
		parallel = cfg.MaxParallel
	}
	if timeoutSecs == 0 {
		timeoutSecs = cfg.TimeoutSeconds
	}
	return orchestrate.Options{
		MaxParallel: parallel,
		Timeout:     time.Duration(timeoutSecs) * time.Second,
	}
}
