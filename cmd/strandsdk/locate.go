// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"strand-sdk/internal/issue"
	"strand-sdk/internal/locate"
	"strand-sdk/internal/resource"
	"strand-sdk/pkg/types"

	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show the SDK root the tool would use",
	Long: `Show the SDK installation root, after applying the usual precedence:
the --sdk-path flag, the sdk_path config entry, then the automatic search
from the executable's own location.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sdkPathFlag != "" {
			fmt.Fprintln(cmd.OutOrStdout(), sdkPathFlag+VerboseStyle.Render("  (from --sdk-path)"))
			return nil
		}
		if cfg := currentConfig(); cfg.SDKPath != "" {
			fmt.Fprintln(cmd.OutOrStdout(), cfg.SDKPath.String()+VerboseStyle.Render("  (from config)"))
			return nil
		}

		exec, err := os.Executable()
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("locate SDK installation").
				Wrap(err).
				Build()
		}

		root, ok := locate.FindRoot(types.FilesystemPath(exec), resource.NativeStyle(), resource.NewOS())
		if !ok {
			return &ExitError{Code: 1, Err: issue.NewErrorContext().
				WithOperation("locate SDK installation").
				WithResource(exec).
				WithSuggestion("Pass --sdk-path pointing at a Strand SDK root").
				WithSuggestion("Or set sdk_path in the config file").
				Build()}
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(root)+VerboseStyle.Render("  (located from executable)"))
		return nil
	},
}
