package commands

import (
	"github.com/spf13/cobra"
)

func newSelectCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "select <name>...",
		Short: "Show the partial classification path for a tree node",
		Long: "Walks the tree from a root through the given node names and prints the\n" +
			"classification a ledger created under that node would receive.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), root.repoDir)
			if err != nil {
				return err
			}
			defer a.close()

			sel, err := a.ws.Select(args...)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), sel)
		},
	}
}
