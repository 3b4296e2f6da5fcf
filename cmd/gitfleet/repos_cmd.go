package main

import (
	"encoding/json"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nharms/gitfleet/internal/git"
	"github.com/nharms/gitfleet/internal/log"
	"github.com/nharms/gitfleet/internal/output"
	"github.com/nharms/gitfleet/internal/ui"
)

func newReposCmd() *cobra.Command {
	var (
		roots      []string
		recurse    bool
		filter     string
		jsonOutput bool
		pathsOnly  bool
	)

	cmd := &cobra.Command{
		Use:     "repos",
		Short:   "List discovered repositories",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  gitfleet repos                # List repos under configured roots
  gitfleet repos -r ~/code -R   # Recursive scan of ~/code
  gitfleet repos --paths        # Paths only, one per line
  gitfleet repos --json         # JSON output`,
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

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(repos)
			}

			if pathsOnly {
				for _, r := range repos {
					out.Println(r.Path)
				}
				return nil
			}

			branches := make([]string, len(repos))
			if err := git.CheckGit(); err != nil {
				log.FromContext(ctx).Warnf("%v", err)
			} else {
				for i, r := range repos {
					branch, _, err := git.CurrentBranch(ctx, r.Path)
					if err != nil {
						branches[i] = "?"
						continue
					}
					branches[i] = branch
				}
			}

			colored := isatty.IsTerminal(os.Stdout.Fd())
			out.Print(ui.FormatRepoTable(repos, branches, ui.DefaultStyles(colored)))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&roots, "root", "r", nil, "Root path to scan (repeatable; default from config or \".\")")
	cmd.Flags().BoolVarP(&recurse, "recurse", "R", false, "Scan full subtrees instead of immediate children")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only repositories whose name fuzzy-matches")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().BoolVar(&pathsOnly, "paths", false, "Print repository paths only, one per line")

	return cmd
}
