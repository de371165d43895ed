// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"strand-sdk/internal/issue"
	"strand-sdk/pkg/types"

	"github.com/spf13/cobra"
)

var (
	// resolvePrint emits the source content instead of the path.
	resolvePrint bool

	resolveCmd = &cobra.Command{
		Use:   "resolve <uri>",
		Short: "Resolve a std: identifier to its source file",
		Long: `Resolve a standard-library identifier to its on-disk source file.

Identifiers have the form std:<name>[/<relativePath>]. Without a relative
path the library's own main file is resolved; with one, the named file
inside the library's directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri := types.LibraryURI(args[0])
			if ok, errs := uri.IsValid(); !ok {
				return issue.NewErrorContext().
					WithOperation("resolve library URI").
					WithResource(args[0]).
					WithSuggestion("Identifiers look like std:core or std:core/list.sr").
					Wrap(errs[0]).
					Build()
			}

			inst, err := newInstance(newSink())
			if err != nil {
				return err
			}

			src := inst.Resolve(uri)
			if src == nil {
				return &ExitError{Code: 1, Err: issue.NewErrorContext().
					WithOperation("resolve library URI").
					WithResource(args[0]).
					WithSuggestion("Run 'strandsdk list' to see the known libraries").
					Build()}
			}

			if resolvePrint {
				text, err := inst.ReadSource(src)
				if err != nil {
					return issue.NewErrorContext().
						WithOperation("read library source").
						WithResource(src.Path).
						Wrap(err).
						Build()
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), URIStyle.Render(src.URI)+" -> "+string(inst.SourcePath(src)))
			return nil
		},
	}
)

func init() {
	resolveCmd.Flags().BoolVar(&resolvePrint, "print", false, "print the resolved file's content instead of its path")
}
