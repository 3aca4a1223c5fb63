package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgertree/internal/model"
)

func newTreeCommand(root *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the hierarchy tree with tenant ledgers grafted in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), root.repoDir)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, a.ws.Tree())
			}
			if !a.ws.Available() {
				fmt.Fprintln(out, noHierarchyData)
			}
			printTree(out, a.ws.Tree(), 0)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the tree as JSON")
	return cmd
}

func printTree(w io.Writer, nodes []*model.TreeNode, indent int) {
	for _, n := range nodes {
		fmt.Fprintf(w, "%s%s", strings.Repeat("  ", indent), n.Name)
		if n.LedgerID != nil {
			fmt.Fprintf(w, " [ledger %d]", *n.LedgerID)
		}
		fmt.Fprintln(w)
		printTree(w, n.Children, indent+1)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
