package source

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/cleared-dev/ledgertree/internal/hierarchy"
	"github.com/cleared-dev/ledgertree/internal/ledgers"
	"github.com/cleared-dev/ledgertree/internal/model"
)

// FileSource reads taxonomy/hierarchy.csv and ledgers/ledgers.csv from a
// workspace root.
type FileSource struct {
	root string
	log  *zap.Logger
	mu   sync.Mutex // serialises ledger file rewrites
}

// NewFileSource returns a FileSource over root.
func NewFileSource(root string, log *zap.Logger) *FileSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileSource{root: root, log: log}
}

// Hierarchy reads the workspace taxonomy.
func (s *FileSource) Hierarchy(ctx context.Context) ([]model.HierarchyRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return hierarchy.Load(s.root)
}

// Ledgers reads the workspace tenant ledgers. A missing file is an empty set.
func (s *FileSource) Ledgers(ctx context.Context) ([]model.TenantLedger, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	svc, err := ledgers.Load(s.root)
	if err != nil {
		return nil, err
	}
	return validLedgers(svc.All(), s.log), nil
}

// CreateLedger appends n to the ledger file and returns it with its new id.
// The ledger is on disk when CreateLedger returns.
func (s *FileSource) CreateLedger(ctx context.Context, n model.NewLedger) (model.TenantLedger, error) {
	n.Name = strings.TrimSpace(n.Name)
	if err := validateNewLedger(n); err != nil {
		return model.TenantLedger{}, fmt.Errorf("%w: %w", ledgers.ErrInvalid, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return model.TenantLedger{}, err
	}

	svc, err := ledgers.Load(s.root)
	if err != nil {
		return model.TenantLedger{}, err
	}
	l, err := svc.Add(n)
	if err != nil {
		return model.TenantLedger{}, err
	}
	if err := svc.Save(s.root); err != nil {
		return model.TenantLedger{}, err
	}

	s.log.Info("ledger created", zap.Int64("ledger_id", l.ID), zap.String("name", l.Name))
	return l, nil
}
