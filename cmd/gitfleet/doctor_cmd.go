package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nharms/gitfleet/internal/config"
	"github.com/nharms/gitfleet/internal/git"
	"github.com/nharms/gitfleet/internal/output"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that gitfleet can run on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			failed := 0
			check := func(name string, err error, detail string) {
				if err != nil {
					failed++
					out.Printf("✗ %s: %v\n", name, err)
					return
				}
				if detail != "" {
					out.Printf("✓ %s (%s)\n", name, detail)
				} else {
					out.Printf("✓ %s\n", name)
				}
			}

			gitErr := git.CheckGit()
			version := ""
			if gitErr == nil {
				version, gitErr = git.Version(ctx)
			}
			check("git executable", gitErr, version)

			path, pathErr := config.Path()
			if pathErr != nil {
				check("config file", pathErr, "")
			} else if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				out.Printf("✓ config file (none, using defaults)\n")
			} else {
				_, loadErr := config.LoadFrom(path)
				check("config file", loadErr, path)
			}

			for _, root := range cfg.Roots {
				info, err := os.Stat(root)
				if err == nil && !info.IsDir() {
					err = fmt.Errorf("not a directory")
				}
				check("root "+root, err, "")
			}

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}
