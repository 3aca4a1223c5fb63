package hierarchy

import (
	"go.uber.org/zap"

	"github.com/cleared-dev/ledgertree/internal/ledgers"
	"github.com/cleared-dev/ledgertree/internal/model"
	"github.com/cleared-dev/ledgertree/internal/pathkey"
)

// Build converts global hierarchy rows and tenant ledgers into a forest of
// tree nodes, roots sorted by name.
//
// Tenant ledgers without a parent become custom ledger-level nodes in the
// skeleton. Ledgers with a parent are grafted under their parent's node,
// parents before children, so nesting of any depth resolves regardless of
// input order. Ledgers on a parent cycle or under a missing parent are
// skipped. Build never fails; malformed rows contribute fewer nodes.
func Build(rows []model.HierarchyRow, tenant []model.TenantLedger, opts ...Option) []*model.TreeNode {
	o := newOptions(opts)
	b := &builder{
		nodes:    make(map[string]*model.TreeNode),
		byLedger: make(map[int64]*model.TreeNode),
		log:      o.log,
		onSkip:   o.onSkip,
	}

	for _, row := range MergeRows(rows, tenant) {
		b.addRow(row)
	}
	b.graft(tenant)

	sortByName(b.roots, o.locale, func(n *model.TreeNode) string { return n.Name })
	return b.roots
}

// MergeRows returns rows followed by one synthetic row per tenant ledger.
//
// A ledger without a parent is placed by its own classification with its
// name in the ledger slot. A nested ledger copies its parent's
// classification, puts the parent's name in the ledger slot and its own in
// custom_ledger.
func MergeRows(rows []model.HierarchyRow, tenant []model.TenantLedger) []model.HierarchyRow {
	byID := make(map[int64]model.TenantLedger, len(tenant))
	for _, l := range tenant {
		if _, dup := byID[l.ID]; !dup {
			byID[l.ID] = l
		}
	}

	merged := make([]model.HierarchyRow, 0, len(rows)+len(tenant))
	merged = append(merged, rows...)
	for _, l := range tenant {
		row := model.HierarchyRow{ID: l.ID, IsCustom: true}
		src := l
		if l.HasParent() {
			row.CustomLedger = l.Name
			parent, ok := byID[*l.ParentLedgerID]
			if !ok {
				merged = append(merged, row)
				continue
			}
			src = parent
		}
		row.MajorGroup = src.Category
		row.Group = src.Group
		row.SubGroup1 = src.SubGroup1
		row.SubGroup2 = src.SubGroup2
		row.SubGroup3 = src.SubGroup3
		row.Ledger = src.Name
		merged = append(merged, row)
	}
	return merged
}

type builder struct {
	nodes    map[string]*model.TreeNode // by path key
	roots    []*model.TreeNode
	byLedger map[int64]*model.TreeNode // tenant ledger id -> its node
	log      *zap.Logger
	onSkip   func(ledgers.Skipped)
}

// addRow materializes the skeleton for one row. Rows naming a custom
// ledger are left for graft.
func (b *builder) addRow(row model.HierarchyRow) {
	if row.CustomLedger != "" {
		return
	}

	key := ""
	for depth, name := range row.TreeLevels() {
		if name == "" {
			continue
		}
		parentKey := key
		key = pathkey.Append(key, name)
		tenantLedger := depth == model.DepthLedger && row.IsCustom

		node, ok := b.nodes[key]
		if !ok {
			node = &model.TreeNode{
				Name:     name,
				Children: []*model.TreeNode{},
				Depth:    depth,
				FullPath: row.Classification(),
			}
			if tenantLedger {
				node.IsCustom = true
				node.LedgerID = model.Int64(row.ID)
			}
			b.nodes[key] = node

			if parentKey == "" {
				b.roots = append(b.roots, node)
			} else if parent, ok := b.nodes[parentKey]; ok && !parent.HasChild(name) {
				parent.Children = append(parent.Children, node)
			}
		}

		if tenantLedger {
			b.byLedger[row.ID] = node
		}
	}
}

// graft attaches nested tenant ledgers under their parent ledger's node.
func (b *builder) graft(tenant []model.TenantLedger) {
	ordered, skipped := ledgers.GraftOrder(tenant)
	for _, s := range skipped {
		b.log.Warn("skipping nested ledger",
			zap.Int64("ledger_id", s.Ledger.ID),
			zap.String("name", s.Ledger.Name),
			zap.String("reason", string(s.Reason)),
		)
		if b.onSkip != nil {
			b.onSkip(s)
		}
	}

	for _, l := range ordered {
		parent, ok := b.byLedger[*l.ParentLedgerID]
		if !ok {
			b.log.Debug("parent ledger has no tree node",
				zap.Int64("ledger_id", l.ID),
				zap.Int64("parent_ledger_id", *l.ParentLedgerID),
			)
			continue
		}

		id := l.ID
		if existing, ok := childWithLedger(parent, l.Name, id); ok {
			b.byLedger[id] = existing
			continue
		}

		node := &model.TreeNode{
			Name:     l.Name,
			Children: []*model.TreeNode{},
			Depth:    parent.Depth + 1,
			IsCustom: true,
			LedgerID: &id,
			FullPath: l.Classification(),
		}
		parent.Children = append(parent.Children, node)
		b.byLedger[id] = node
	}
}

func childWithLedger(parent *model.TreeNode, name string, id int64) (*model.TreeNode, bool) {
	for _, c := range parent.Children {
		if c.Name == name && c.LedgerID != nil && *c.LedgerID == id {
			return c, true
		}
	}
	return nil, false
}
