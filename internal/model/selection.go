package model

// Selection is the partial path derived from a selected tree node. Nil
// classification fields are explicitly null: they lie deeper than the node.
type Selection struct {
	Value          string  `json:"value"`
	Depth          int     `json:"level"`
	Category       *string `json:"category"`
	Group          *string `json:"group"`
	SubGroup1      *string `json:"sub_group_1"`
	SubGroup2      *string `json:"sub_group_2"`
	SubGroup3      *string `json:"sub_group_3"`
	LedgerType     *string `json:"ledger_type"`
	ParentLedgerID *int64  `json:"parent_ledger_id"`
}

// Populated returns how many classification fields are non-null.
func (s Selection) Populated() int {
	n := 0
	for _, f := range []*string{s.Category, s.Group, s.SubGroup1, s.SubGroup2, s.SubGroup3, s.LedgerType} {
		if f != nil {
			n++
		}
	}
	return n
}

// NewLedger returns creation input for a ledger named name classified by s.
func (s Selection) NewLedger(name string) NewLedger {
	return NewLedger{
		Name:           name,
		Category:       deref(s.Category),
		Group:          deref(s.Group),
		SubGroup1:      deref(s.SubGroup1),
		SubGroup2:      deref(s.SubGroup2),
		SubGroup3:      deref(s.SubGroup3),
		LedgerType:     deref(s.LedgerType),
		ParentLedgerID: s.ParentLedgerID,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
