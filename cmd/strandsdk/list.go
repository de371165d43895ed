// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// listAll includes internal libraries in the listing.
	listAll bool

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List the libraries in the SDK catalog",
		Long: `List every library the SDK's catalog knows, in catalog order.
Internal-category libraries are hidden unless --all is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst, err := newInstance(newSink())
			if err != nil {
				return err
			}

			libs := inst.Catalog().Libraries()
			if len(libs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("no libraries in catalog"))
				return nil
			}

			shown := 0
			for _, lib := range libs {
				if lib.Internal() && !listAll {
					continue
				}
				shown++
				line := URIStyle.Render(lib.ShortID) + "  " + lib.Path
				if verbose && lib.Category != "" {
					line += VerboseStyle.Render("  (" + lib.Category + ")")
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			if verbose {
				fmt.Fprintln(cmd.OutOrStdout(), VerboseStyle.Render(
					fmt.Sprintf("%d of %d libraries shown", shown, len(libs))))
			}
			return nil
		},
	}
)

func init() {
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "include internal libraries")
}
