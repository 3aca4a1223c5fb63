// Package workspace holds the derived hierarchy state (options and tree)
// for one set of sources and rebuilds it wholesale whenever inputs change.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/cleared-dev/ledgertree/internal/changelog"
	"github.com/cleared-dev/ledgertree/internal/hierarchy"
	"github.com/cleared-dev/ledgertree/internal/ledgers"
	"github.com/cleared-dev/ledgertree/internal/metrics"
	"github.com/cleared-dev/ledgertree/internal/model"
	"github.com/cleared-dev/ledgertree/internal/pathkey"
	"github.com/cleared-dev/ledgertree/internal/source"
)

// ErrNodeNotFound is returned when a selection path names no tree node.
var ErrNodeNotFound = errors.New("node not found")

// Option configures a Workspace.
type Option func(*Workspace)

// WithLocale sets the collation locale for options and roots.
func WithLocale(tag language.Tag) Option {
	return func(w *Workspace) { w.locale = tag }
}

// WithLogger sets the workspace logger.
func WithLogger(log *zap.Logger) Option {
	return func(w *Workspace) {
		if log != nil {
			w.log = log
		}
	}
}

// WithMetrics records rebuilds and creations in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Workspace) { w.metrics = m }
}

// WithChangelog appends every created ledger to the ledger log under root.
func WithChangelog(root string) Option {
	return func(w *Workspace) { w.changelogRoot = root }
}

// Workspace is the single writer of derived hierarchy state. Readers see
// either the previous or the next build, never a partial one.
type Workspace struct {
	loader        *source.Loader
	creator       source.LedgerCreator
	locale        language.Tag
	log           *zap.Logger
	metrics       *metrics.Metrics
	changelogRoot string
	now           func() time.Time

	refreshMu sync.Mutex // one load-and-build at a time

	mu    sync.RWMutex
	state state
}

type state struct {
	snapshot source.Snapshot
	options  []model.HierarchyOption
	roots    []*model.TreeNode
	builtAt  time.Time
}

// New returns a Workspace that loads through loader and creates ledgers
// through creator. Call Refresh before reading.
func New(loader *source.Loader, creator source.LedgerCreator, opts ...Option) *Workspace {
	w := &Workspace{
		loader:  loader,
		creator: creator,
		locale:  language.English,
		log:     zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Refresh reloads both sources and rebuilds options and tree. When ctx is
// canceled mid-load the previous state is kept.
func (w *Workspace) Refresh(ctx context.Context) error {
	w.refreshMu.Lock()
	defer w.refreshMu.Unlock()

	snap, err := w.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading hierarchy: %w", err)
	}

	opts := []hierarchy.Option{
		hierarchy.WithLocale(w.locale),
		hierarchy.WithLogger(w.log),
		hierarchy.OnSkip(func(s ledgers.Skipped) {
			w.metrics.RecordSkippedLedger(string(s.Reason))
		}),
	}
	next := state{
		snapshot: snap,
		options:  hierarchy.Flatten(snap.Rows, opts...),
		roots:    hierarchy.Build(snap.Rows, snap.Ledgers, opts...),
		builtAt:  w.now(),
	}

	w.mu.Lock()
	w.state = next
	w.mu.Unlock()

	nodes := hierarchy.Count(next.roots)
	w.metrics.RecordRebuild(nodes, len(next.options))
	w.log.Debug("hierarchy rebuilt",
		zap.Int("rows", len(snap.Rows)),
		zap.Int("tenant_ledgers", len(snap.Ledgers)),
		zap.Int("nodes", nodes),
		zap.Int("options", len(next.options)),
		zap.Bool("hierarchy_available", snap.HierarchyAvailable),
	)
	return nil
}

// Available reports whether the last refresh obtained hierarchy data.
func (w *Workspace) Available() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.snapshot.HierarchyAvailable
}

// Snapshot returns the inputs of the current build.
func (w *Workspace) Snapshot() source.Snapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.snapshot
}

// BuiltAt returns when the current build was made, zero before the first refresh.
func (w *Workspace) BuiltAt() time.Time {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.builtAt
}

// Options returns the flattened options of the current build. The slice
// is shared and must not be modified.
func (w *Workspace) Options() []model.HierarchyOption {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.options
}

// Tree returns the root nodes of the current build. Nodes are shared and
// must not be modified; a later refresh replaces them rather than mutating.
func (w *Workspace) Tree() []*model.TreeNode {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.state.roots
}

// Select projects the node reached by names.
func (w *Workspace) Select(names ...string) (model.Selection, error) {
	w.mu.RLock()
	node, ok := hierarchy.Find(w.state.roots, names...)
	w.mu.RUnlock()
	if !ok {
		return model.Selection{}, fmt.Errorf("%q: %w", pathkey.Label(names...), ErrNodeNotFound)
	}
	return hierarchy.Project(node), nil
}

// CreateLedger creates a ledger named name classified by the node at
// under. It returns once the creator has confirmed the ledger and the
// workspace has been rebuilt from sources that include it.
func (w *Workspace) CreateLedger(ctx context.Context, under []string, name string) (model.TenantLedger, error) {
	sel, err := w.Select(under...)
	if err != nil {
		return model.TenantLedger{}, err
	}

	created, err := w.creator.CreateLedger(ctx, sel.NewLedger(name))
	if err != nil {
		return model.TenantLedger{}, fmt.Errorf("creating ledger: %w", err)
	}
	w.metrics.RecordLedgerCreated()
	w.log.Info("ledger created",
		zap.Int64("ledger_id", created.ID),
		zap.String("name", created.Name),
		zap.String("under", pathkey.Label(under...)),
	)

	if w.changelogRoot != "" {
		entry := changelog.Entry{
			Timestamp:      w.now().UTC(),
			Action:         changelog.ActionCreateLedger,
			LedgerID:       created.ID,
			Name:           created.Name,
			ParentLedgerID: created.ParentLedgerID,
			Path:           pathkey.Label(under...),
		}
		if err := changelog.Append(w.changelogRoot, []changelog.Entry{entry}); err != nil {
			return created, fmt.Errorf("recording ledger: %w", err)
		}
	}

	if err := w.Refresh(ctx); err != nil {
		return created, fmt.Errorf("refreshing after create: %w", err)
	}
	if _, ok := w.FindLedger(created.ID); !ok {
		w.log.Warn("created ledger not in rebuilt tree", zap.Int64("ledger_id", created.ID))
	}
	return created, nil
}

// FindLedger returns the tree node materializing tenant ledger id.
func (w *Workspace) FindLedger(id int64) (*model.TreeNode, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	var found *model.TreeNode
	hierarchy.Walk(w.state.roots, func(n *model.TreeNode) bool {
		if found != nil {
			return false
		}
		if n.LedgerID != nil && *n.LedgerID == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}
