package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xllink-go/internal/config"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <path>",
		Short: "Write the effective placement config to a file",
		Long: `Write the config the other commands would run with to a .yaml, .yml or
.toml file: the defaults, overlaid with --config and any placement flags.`,
		Example: `  xllink config xllink.yaml
  xllink config --config base.toml --start-row 4 --sheet Report report.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applyFlags(cmd)
			if err := config.Save(a.config, args[0]); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			a.log.Debug().Str("path", args[0]).Msg("saved config")
			return nil
		},
	}
	placementFlags(cmd)
	inputFlags(cmd)
	return cmd
}
