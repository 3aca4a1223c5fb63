package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgertree/internal/changelog"
	"github.com/cleared-dev/ledgertree/internal/config"
	"github.com/cleared-dev/ledgertree/internal/gitops"
	"github.com/cleared-dev/ledgertree/internal/ledgers"
	"github.com/cleared-dev/ledgertree/internal/model"
	"github.com/cleared-dev/ledgertree/internal/pathkey"
)

func newLedgerCommand(root *rootOptions) *cobra.Command {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Tenant ledger operations",
	}
	ledgerCmd.AddCommand(newLedgerAddCommand(root), newLedgerCheckCommand(root))
	return ledgerCmd
}

func newLedgerAddCommand(root *rootOptions) *cobra.Command {
	var name string
	var under string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a tenant ledger under a tree node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), root.repoDir)
			if err != nil {
				return err
			}
			defer a.close()

			path := pathkey.ParseLabel(under)
			created, err := a.ws.CreateLedger(cmd.Context(), path, name)
			if err != nil && created.ID == 0 {
				return err
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}

			msg := fmt.Sprintf("Created ledger %d %q under %s", created.ID, created.Name, pathkey.Label(path...))
			if a.cfg.Git.AutoCommit && gitops.IsRepo(a.root) {
				author := gitops.Author{Name: a.cfg.Git.AuthorName, Email: a.cfg.Git.AuthorEmail}
				hash, err := gitops.Commit(a.root, fmt.Sprintf("ledger: add %s", created.Name), author, existing(a.root, ledgers.File, changelog.File)...)
				if err != nil {
					return fmt.Errorf("committing ledger: %w", err)
				}
				msg += " (" + hash + ")"
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "ledger name (required)")
	cmd.Flags().StringVar(&under, "under", "", `node to create the ledger under, e.g. "Assets > Current Assets" (required)`)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("under")

	return cmd
}

// existing returns the paths that exist under root.
func existing(root string, paths ...string) []string {
	var out []string
	for _, p := range paths {
		if _, err := os.Stat(filepath.Join(root, p)); err == nil {
			out = append(out, p)
		}
	}
	return out
}

func newLedgerCheckCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report tenant ledgers that cannot be placed in the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), root.repoDir)
			if err != nil {
				return err
			}
			defer a.close()

			all, err := rawLedgers(a)
			if err != nil {
				return err
			}

			problems := ledgers.Validate(all)
			out := cmd.OutOrStdout()
			for _, p := range problems {
				fmt.Fprintln(out, p.Error())
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d problem(s) found", len(problems))
			}
			fmt.Fprintf(out, "%d ledgers OK\n", len(all))
			return nil
		},
	}
}

// rawLedgers returns the tenant ledgers before boundary validation drops
// any, so check can report them. Remote sources only expose what survived.
func rawLedgers(a *app) ([]model.TenantLedger, error) {
	if a.cfg.Source.Kind == config.SourceFile {
		svc, err := ledgers.Load(a.root)
		if err != nil {
			return nil, err
		}
		return svc.All(), nil
	}

	snap := a.ws.Snapshot()
	if !snap.LedgersAvailable {
		return nil, errors.New("tenant ledgers could not be loaded")
	}
	return snap.Ledgers, nil
}
