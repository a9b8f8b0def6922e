package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevmasajedi/complexible/foundation/core/config"
)

func (a *app) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after file, environment and defaults have been
merged, as TOML (default) or YAML.`,
		Args: exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				a.logger.LogError(err)
				return err
			}
			if f == config.FormatAuto {
				f = config.FormatTOML
			}
			if err := a.cfg.Encode(cmd.OutOrStdout(), f); err != nil {
				a.logger.LogError(err)
				return err
			}
			return nil
		},
	}
	showCmd.Flags().StringVar(&format, "format", "toml", "output format (toml, yaml)")

	pathsCmd := &cobra.Command{
		Use:   "paths",
		Short: "List the locations searched for a config file",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if p := a.cfg.Path(); p != "" {
				fmt.Fprintf(out, "loaded: %s\n", p)
			} else {
				fmt.Fprintln(out, "loaded: (defaults)")
			}
			for _, candidate := range config.ListPossibleConfigFiles(config.DefaultDiscoveryOptions()) {
				fmt.Fprintln(out, candidate)
			}
			return nil
		},
	}

	configCmd.AddCommand(showCmd, pathsCmd)
	return configCmd
}
