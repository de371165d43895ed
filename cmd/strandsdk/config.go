// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"strand-sdk/internal/config"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage strandsdk configuration",
		Long: `Manage strandsdk configuration.

Configuration lives in a CUE file in the platform config directory
(~/.config/strandsdk/config.cue on Linux). Recognized settings:

  sdk_path     SDK installation root (default: located automatically)
  use_bundle   load the precompiled bundle when present
  features     feature flags handed to the runtime instance
  ui           color_scheme and verbose`,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			fmt.Fprintln(cmd.OutOrStdout(), TitleStyle.Render("Configuration"))
			fmt.Fprintf(cmd.OutOrStdout(), "  sdk_path:   %s\n", orUnset(cfg.SDKPath.String()))
			fmt.Fprintf(cmd.OutOrStdout(), "  use_bundle: %v\n", cfg.UseBundle)
			fmt.Fprintf(cmd.OutOrStdout(), "  features:   %s\n", orUnset(strings.Join(cfg.Features, ", ")))
			fmt.Fprintf(cmd.OutOrStdout(), "  ui:\n")
			fmt.Fprintf(cmd.OutOrStdout(), "    color_scheme: %s\n", cfg.UI.ColorScheme)
			fmt.Fprintf(cmd.OutOrStdout(), "    verbose:      %v\n", cfg.UI.Verbose)
			return nil
		},
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show where the configuration file is read from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile != "" {
				fmt.Fprintln(cmd.OutOrStdout(), cfgFile)
				return nil
			}
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateDefaultConfig(); err != nil {
				return err
			}
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Wrote ")+filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt))
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}

// orUnset renders empty values as a muted placeholder.
func orUnset(s string) string {
	if s == "" {
		return SubtitleStyle.Render("(unset)")
	}
	return s
}
