package main

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/nharms/gitfleet/internal/config"
	"github.com/nharms/gitfleet/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			path, err := config.Path()
			if err != nil {
				return err
			}
			out.Printf("# %s\n", path)

			return toml.NewEncoder(out.Writer()).Encode(cfg)
		},
	}

	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			path, err := config.Path()
			if err != nil {
				return err
			}
			if err := config.WriteStarter(path); err != nil {
				return err
			}
			out.Printf("Wrote %s\n", path)
			return nil
		},
	}
}
