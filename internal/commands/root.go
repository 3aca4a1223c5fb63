package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgertree/internal/buildinfo"
)

// rootOptions holds flags shared by every workspace command.
type rootOptions struct {
	repoDir string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "ledgertree",
		Short:   "Browse a chart-of-accounts hierarchy and create tenant ledgers",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.repoDir, "repo", ".", "workspace directory")

	rootCmd.AddCommand(
		newInitCommand(),
		newOptionsCommand(opts),
		newTreeCommand(opts),
		newSelectCommand(opts),
		newLedgerCommand(opts),
		newServeCommand(opts),
	)

	return rootCmd
}
