// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"strand-sdk/internal/issue"

	"github.com/spf13/cobra"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse <path>",
	Short: "Map a source file path back to its std: identifier",
	Long: `Map a source file path back to the standard-library identifier that
names it. The path is matched against each library's main file first, then
against library directory prefixes in catalog order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inst, err := newInstance(newSink())
		if err != nil {
			return err
		}

		uri, ok := inst.URIForPath(args[0])
		if !ok {
			return &ExitError{Code: 1, Err: issue.NewErrorContext().
				WithOperation("reverse-resolve path").
				WithResource(args[0]).
				WithSuggestion("Paths are matched relative to the SDK root, e.g. lib/core/list.sr").
				Build()}
		}

		fmt.Fprintln(cmd.OutOrStdout(), URIStyle.Render(string(uri)))
		return nil
	},
}
