package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/ledgertree/internal/config"
	"github.com/cleared-dev/ledgertree/internal/gitops"
	"github.com/cleared-dev/ledgertree/internal/hierarchy"
	"github.com/cleared-dev/ledgertree/internal/ledgers"
)

var businessTypes = []string{"trading", "services"}

func newInitCommand() *cobra.Command {
	var name string
	var businessType string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledgertree workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if !validBusinessType(businessType) {
				return fmt.Errorf("unknown business type %q (want one of %v)", businessType, businessTypes)
			}

			hash, err := runInit(absDir, name, businessType)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledgertree workspace at %s (%s)\n", absDir, hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&businessType, "business-type", "trading", "business type seeding the taxonomy (trading, services)")

	return cmd
}

func validBusinessType(bt string) bool {
	for _, t := range businessTypes {
		if t == bt {
			return true
		}
	}
	return false
}

func runInit(dir, name, businessType string) (string, error) {
	for _, d := range []string{"taxonomy", "ledgers", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return "", fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write ledgertree.yaml.
	cfg := config.Default(name, businessType)
	if err := config.Save(filepath.Join(dir, config.File), cfg); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	// Seed the taxonomy.
	if err := hierarchy.Save(dir, hierarchy.DefaultTaxonomy(businessType)); err != nil {
		return "", fmt.Errorf("writing taxonomy: %w", err)
	}

	// Empty tenant ledger file.
	if err := ledgers.NewService(nil).Save(dir); err != nil {
		return "", fmt.Errorf("writing ledgers: %w", err)
	}

	// Write .gitignore.
	gitignore := ".env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return "", fmt.Errorf("writing .gitignore: %w", err)
	}

	// Write logs/.gitkeep.
	if err := os.WriteFile(filepath.Join(dir, "logs", ".gitkeep"), []byte{}, 0o644); err != nil {
		return "", fmt.Errorf("writing .gitkeep: %w", err)
	}

	// Initialize git and create initial commit.
	if err := gitops.Init(dir); err != nil {
		return "", err
	}

	author := gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
	hash, err := gitops.Commit(dir, "init: Initialize "+name, author)
	if err != nil {
		return "", fmt.Errorf("initial commit: %w", err)
	}
	return hash, nil
}
