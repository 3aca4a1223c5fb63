package source

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cleared-dev/ledgertree/internal/metrics"
	"github.com/cleared-dev/ledgertree/internal/model"
)

// Snapshot is one joined fetch of both sources.
type Snapshot struct {
	Rows    []model.HierarchyRow
	Ledgers []model.TenantLedger
	// HierarchyAvailable is false when the hierarchy fetch failed; callers
	// show the "no hierarchy data" state.
	HierarchyAvailable bool
	LedgersAvailable   bool
}

// Loader fetches hierarchy rows and tenant ledgers concurrently.
type Loader struct {
	hierarchy HierarchySource
	ledgers   LedgerSource
	log       *zap.Logger
	metrics   *metrics.Metrics
}

// NewLoader returns a Loader over the given sources. m may be nil.
func NewLoader(h HierarchySource, l LedgerSource, log *zap.Logger, m *metrics.Metrics) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{hierarchy: h, ledgers: l, log: log, metrics: m}
}

// Load issues both fetches and waits for both. A failed fetch is logged and
// leaves its half of the snapshot empty. The only error is ctx's, returned
// when the caller gave up before the fetches completed; the partial
// snapshot must then be discarded.
func (l *Loader) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := l.hierarchy.Hierarchy(gctx)
		if err != nil {
			if ctx.Err() == nil {
				l.log.Warn("hierarchy fetch failed", zap.Error(err))
				l.metrics.RecordSourceFailure(metrics.SourceHierarchy)
			}
			return nil
		}
		snap.Rows = rows
		snap.HierarchyAvailable = true
		return nil
	})
	g.Go(func() error {
		ledgers, err := l.ledgers.Ledgers(gctx)
		if err != nil {
			if ctx.Err() == nil {
				l.log.Warn("tenant ledger fetch failed, continuing without tenant ledgers", zap.Error(err))
				l.metrics.RecordSourceFailure(metrics.SourceLedgers)
			}
			return nil
		}
		snap.Ledgers = ledgers
		snap.LedgersAvailable = true
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}
