// Package source fetches global hierarchy rows and tenant ledgers from a
// workspace on disk or a REST backend.
package source

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cleared-dev/ledgertree/internal/config"
	"github.com/cleared-dev/ledgertree/internal/model"
)

// HierarchySource returns the global taxonomy rows.
type HierarchySource interface {
	Hierarchy(ctx context.Context) ([]model.HierarchyRow, error)
}

// LedgerSource returns the tenant's ledger masters.
type LedgerSource interface {
	Ledgers(ctx context.Context) ([]model.TenantLedger, error)
}

// LedgerCreator persists a new tenant ledger and returns it as stored,
// with its assigned id.
type LedgerCreator interface {
	CreateLedger(ctx context.Context, n model.NewLedger) (model.TenantLedger, error)
}

// Source is a complete backend.
type Source interface {
	HierarchySource
	LedgerSource
	LedgerCreator
}

// New returns the source selected by cfg. File sources read the workspace at root.
func New(cfg config.SourceConfig, root string, log *zap.Logger) (Source, error) {
	switch cfg.Kind {
	case config.SourceFile:
		return NewFileSource(root, log), nil
	case config.SourceHTTP:
		return NewHTTPClient(cfg, log)
	}
	return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
}
