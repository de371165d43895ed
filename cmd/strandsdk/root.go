// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for strandsdk.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"strand-sdk/internal/config"
	"strand-sdk/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// sdkPathFlag overrides the SDK installation root
	sdkPathFlag string

	// loadedConfig is the configuration resolved by initRootConfig.
	loadedConfig *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "strandsdk",
		Short: "Inspect and resolve Strand standard-library identifiers",
		Long: TitleStyle.Render("strandsdk") + SubtitleStyle.Render(" - Strand SDK catalog and resolution tool") + `

strandsdk builds the library catalog of a Strand SDK installation and
resolves "std:" identifiers against it, in both directions: identifier
to source file, and source file back to identifier.

The SDK root is found automatically from the executable's location; use
--sdk-path (or sdk_path in the config file) to point at a specific
installation.

` + SubtitleStyle.Render("Examples:") + `
  strandsdk list                      List every library in the catalog
  strandsdk resolve std:core          Show where std:core lives on disk
  strandsdk resolve std:core/list.sr  Resolve a file inside a library
  strandsdk reverse lib/core/list.sr  Map a path back to its identifier
  strandsdk locate                    Show the detected SDK root
  strandsdk config show               Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/strandsdk/config.cue)")
	rootCmd.PersistentFlags().StringVar(&sdkPathFlag, "sdk-path", "", "SDK installation root (default is located from the executable)")

	// Add subcommands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	cfg, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		cfg = config.DefaultConfig()
	}
	loadedConfig = cfg

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
