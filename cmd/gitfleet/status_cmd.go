package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nharms/gitfleet/internal/orchestrate"
	"github.com/nharms/gitfleet/internal/output"
	"github.com/nharms/gitfleet/internal/ui"
)

func newStatusCmd() *cobra.Command {
	var (
		roots        []string
		recurse      bool
		parallel     int
		timeoutSecs  int
		filter       string
		includeClean bool
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show branch, changes, and ahead/behind for every repository",
		Aliases: []string{"st"},
		Args:    cobra.NoArgs,
		Long: `Query every discovered repository for its current branch, uncommitted
change count, and ahead/behind counts relative to the configured upstream.

Repositories with nothing to report are hidden unless --include-clean is set.`,
		Example: `  gitfleet status                     # Dirty repos under configured roots
  gitfleet status --include-clean     # Every repo, clean ones included
  gitfleet status -r ~/code -R --json # Recursive scan, JSON output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if !cmd.Flags().Changed("recurse") {
				recurse = cfg.Recurse
			}
			if !cmd.Flags().Changed("include-clean") {
				includeClean = cfg.IncludeClean
			}

			repos, err := discoverTargets(ctx, roots, recurse, filter)
			if err != nil {
				return err
			}

			opts := runOptions(parallel, timeoutSecs)
			opts.IncludeClean = includeClean

			results, err := orchestrate.New().StatusAll(ctx, repos, opts)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				if err := enc.Encode(results); err != nil {
					return err
				}
			} else if len(results) == 0 {
				out.Printf("All %d repositories are clean\n", len(repos))
			} else {
				colored := isatty.IsTerminal(os.Stdout.Fd())
				out.Print(ui.FormatStatusTable(results, ui.DefaultStyles(colored)))
			}

			failed := 0
			for _, res := range results {
				if res.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d repositories could not be queried", failed, len(repos))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&roots, "root", "r", nil, "Root path to scan (repeatable; default from config or \".\")")
	cmd.Flags().BoolVarP(&recurse, "recurse", "R", false, "Scan full subtrees instead of immediate children")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "Max concurrent status queries (default from config)")
	cmd.Flags().IntVarP(&timeoutSecs, "timeout", "t", 0, "Per-repository timeout in seconds (default from config)")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only repositories whose name fuzzy-matches")
	cmd.Flags().BoolVar(&includeClean, "include-clean", false, "Include clean repositories in the report")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
