package model

// ClassificationPath is the category..ledger_type snapshot carried by a tree
// node, plus the parent ledger for nested custom ledgers.
type ClassificationPath struct {
	Category       string `json:"category"`
	Group          string `json:"group"`
	SubGroup1      string `json:"sub_group_1"`
	SubGroup2      string `json:"sub_group_2"`
	SubGroup3      string `json:"sub_group_3"`
	LedgerType     string `json:"ledger_type"`
	ParentLedgerID *int64 `json:"parent_ledger_id,omitempty"`
}

// Field returns the classification value implied by depth, or "" past ledger.
func (p ClassificationPath) Field(depth int) string {
	switch depth {
	case DepthMajorGroup:
		return p.Category
	case DepthGroup:
		return p.Group
	case DepthSubGroup1:
		return p.SubGroup1
	case DepthSubGroup2:
		return p.SubGroup2
	case DepthSubGroup3:
		return p.SubGroup3
	case DepthLedger:
		return p.LedgerType
	}
	return ""
}

// TreeNode is one node of the hierarchy forest. Nodes are rebuilt on every
// refresh and carry no identity across builds.
type TreeNode struct {
	Name     string             `json:"name"`
	Children []*TreeNode        `json:"children"`
	Depth    int                `json:"level"`
	IsCustom bool               `json:"isCustom"`
	LedgerID *int64             `json:"ledgerId,omitempty"`
	FullPath ClassificationPath `json:"fullPath"`
}

// HasChild reports whether n already has a child with the given name.
func (n *TreeNode) HasChild(name string) bool {
	_, ok := n.Child(name)
	return ok
}

// Child returns the first child named name.
func (n *TreeNode) Child(name string) (*TreeNode, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// HierarchyOption is one selectable, deduplicated path from the flattener.
type HierarchyOption struct {
	Value        string   `json:"value"`
	DisplayLabel string   `json:"displayLabel"`
	Code         Code     `json:"code"`
	FullPath     []string `json:"fullPath"`
}
