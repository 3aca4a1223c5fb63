package ledgers

import (
	"sort"

	"github.com/cleared-dev/ledgertree/internal/model"
)

// SkipReason explains why a nested ledger cannot be grafted.
type SkipReason string

const (
	// SkipOrphan: the ledger's parent chain reaches a missing ledger.
	SkipOrphan SkipReason = "orphan"
	// SkipCycle: the ledger's parent chain loops.
	SkipCycle SkipReason = "cycle"
)

// Skipped is a nested ledger left out of the graft order.
type Skipped struct {
	Ledger model.TenantLedger
	Reason SkipReason
}

// GraftOrder returns the ledgers that declare a parent, ordered so every
// ledger comes after its parent (by nesting depth, then input order).
// Ledgers whose parent chain is broken or cyclic are returned in skipped.
func GraftOrder(ledgers []model.TenantLedger) (ordered []model.TenantLedger, skipped []Skipped) {
	byID := make(map[int64]model.TenantLedger, len(ledgers))
	for _, l := range ledgers {
		if _, dup := byID[l.ID]; !dup {
			byID[l.ID] = l
		}
	}

	r := resolver{
		byID:   byID,
		state:  make(map[int64]visit, len(ledgers)),
		depth:  make(map[int64]int, len(ledgers)),
		reason: make(map[int64]SkipReason),
	}

	type ranked struct {
		ledger model.TenantLedger
		depth  int
	}
	var nested []ranked
	for _, l := range ledgers {
		if !l.HasParent() {
			continue
		}
		d, reason := r.resolve(l.ID)
		if reason != "" {
			skipped = append(skipped, Skipped{Ledger: l, Reason: reason})
			continue
		}
		nested = append(nested, ranked{ledger: l, depth: d})
	}

	sort.SliceStable(nested, func(i, j int) bool {
		return nested[i].depth < nested[j].depth
	})

	ordered = make([]model.TenantLedger, len(nested))
	for i, n := range nested {
		ordered[i] = n.ledger
	}
	return ordered, skipped
}

type visit int

const (
	unvisited visit = iota
	visiting
	visited
)

// resolver computes nesting depth (0 = no parent) with memoization.
type resolver struct {
	byID   map[int64]model.TenantLedger
	state  map[int64]visit
	depth  map[int64]int
	reason map[int64]SkipReason
}

func (r *resolver) resolve(id int64) (int, SkipReason) {
	switch r.state[id] {
	case visited:
		return r.depth[id], r.reason[id]
	case visiting:
		return 0, SkipCycle
	}

	l := r.byID[id]
	if l.ParentLedgerID == nil {
		r.state[id] = visited
		return 0, ""
	}

	r.state[id] = visiting
	depth, reason := 0, SkipReason("")
	if _, ok := r.byID[*l.ParentLedgerID]; !ok {
		reason = SkipOrphan
	} else {
		var pd int
		pd, reason = r.resolve(*l.ParentLedgerID)
		depth = pd + 1
	}

	r.state[id] = visited
	r.depth[id] = depth
	if reason != "" {
		r.reason[id] = reason
	}
	return depth, reason
}
