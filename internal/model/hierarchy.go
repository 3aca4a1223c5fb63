package model

// HierarchyRow is one path through the chart-of-accounts taxonomy, either a
// global (vendor-seeded) row or a tenant-custom row. Empty strings mean the
// level is absent.
type HierarchyRow struct {
	ID                 int64  `json:"id"`
	BusinessType       string `json:"business_type"`
	FinancialReporting string `json:"financial_reporting"`
	MajorGroup         string `json:"major_group"`
	Group              string `json:"group"`
	SubGroup1          string `json:"sub_group_1"`
	SubGroup2          string `json:"sub_group_2"`
	SubGroup3          string `json:"sub_group_3"`
	Ledger             string `json:"ledger"`
	CustomLedger       string `json:"custom_ledger,omitempty"` // set only when nested under another tenant ledger
	Code               Code   `json:"code"`
	IsCustom           bool   `json:"isCustom"`
}

// NumLevels is the number of levels a row contributes to a flattened option.
const NumLevels = 8

// Levels returns the eight classification levels in order, business type
// through ledger. Absent levels are empty strings.
func (r HierarchyRow) Levels() [NumLevels]string {
	return [NumLevels]string{
		r.BusinessType,
		r.FinancialReporting,
		r.MajorGroup,
		r.Group,
		r.SubGroup1,
		r.SubGroup2,
		r.SubGroup3,
		r.Ledger,
	}
}

// Tree depths. A row contributes at most DepthLedger+1 levels to the tree;
// nested custom ledgers start at DepthNested.
const (
	DepthMajorGroup = 0
	DepthGroup      = 1
	DepthSubGroup1  = 2
	DepthSubGroup2  = 3
	DepthSubGroup3  = 4
	DepthLedger     = 5
	DepthNested     = 6
)

// TreeLevels returns the six levels used by the tree, major group through
// ledger, indexed by depth.
func (r HierarchyRow) TreeLevels() [DepthLedger + 1]string {
	return [DepthLedger + 1]string{
		r.MajorGroup,
		r.Group,
		r.SubGroup1,
		r.SubGroup2,
		r.SubGroup3,
		r.Ledger,
	}
}

// Classification returns the row's levels in ledger-master terms.
func (r HierarchyRow) Classification() ClassificationPath {
	return ClassificationPath{
		Category:   r.MajorGroup,
		Group:      r.Group,
		SubGroup1:  r.SubGroup1,
		SubGroup2:  r.SubGroup2,
		SubGroup3:  r.SubGroup3,
		LedgerType: r.Ledger,
	}
}

// TenantLedger is a ledger master owned by a tenant.
type TenantLedger struct {
	ID             int64  `json:"id" validate:"gt=0"`
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category"`
	Group          string `json:"group"`
	SubGroup1      string `json:"sub_group_1"`
	SubGroup2      string `json:"sub_group_2"`
	SubGroup3      string `json:"sub_group_3"`
	LedgerType     string `json:"ledger_type"`
	ParentLedgerID *int64 `json:"parent_ledger_id"`
}

// HasParent reports whether the ledger nests under another tenant ledger.
func (l TenantLedger) HasParent() bool {
	return l.ParentLedgerID != nil
}

// Classification returns the ledger's own classification fields and parent.
func (l TenantLedger) Classification() ClassificationPath {
	return ClassificationPath{
		Category:       l.Category,
		Group:          l.Group,
		SubGroup1:      l.SubGroup1,
		SubGroup2:      l.SubGroup2,
		SubGroup3:      l.SubGroup3,
		LedgerType:     l.LedgerType,
		ParentLedgerID: l.ParentLedgerID,
	}
}

// NewLedger is the input for creating a tenant ledger. The server assigns the ID.
type NewLedger struct {
	Name           string `json:"name" validate:"required"`
	Category       string `json:"category"`
	Group          string `json:"group"`
	SubGroup1      string `json:"sub_group_1"`
	SubGroup2      string `json:"sub_group_2"`
	SubGroup3      string `json:"sub_group_3"`
	LedgerType     string `json:"ledger_type"`
	ParentLedgerID *int64 `json:"parent_ledger_id"`
}

// Ledger returns a TenantLedger carrying n's fields under the given id.
func (n NewLedger) Ledger(id int64) TenantLedger {
	return TenantLedger{
		ID:             id,
		Name:           n.Name,
		Category:       n.Category,
		Group:          n.Group,
		SubGroup1:      n.SubGroup1,
		SubGroup2:      n.SubGroup2,
		SubGroup3:      n.SubGroup3,
		LedgerType:     n.LedgerType,
		ParentLedgerID: n.ParentLedgerID,
	}
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 {
	return &v
}
