package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newOptionsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List every selectable hierarchy path with its code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), root.repoDir)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			if !a.ws.Available() {
				fmt.Fprintln(out, noHierarchyData)
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, opt := range a.ws.Options() {
				fmt.Fprintf(tw, "%s\t%s\n", opt.Code, opt.DisplayLabel)
			}
			return tw.Flush()
		},
	}
}

const noHierarchyData = "No hierarchy data."
