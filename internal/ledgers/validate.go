package ledgers

import (
	"fmt"
	"strings"

	"github.com/cleared-dev/ledgertree/internal/model"
)

// Rule names a ledger-master invariant.
type Rule string

const (
	RuleDuplicateID   Rule = "duplicate-id"
	RuleEmptyName     Rule = "empty-name"
	RuleSelfParent    Rule = "self-parent"
	RuleUnknownParent Rule = "unknown-parent"
	RuleParentCycle   Rule = "parent-cycle"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Rule        Rule
	LedgerID    int64
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s [%d]: %s", e.Rule, e.LedgerID, e.Description)
}

// Validate checks ledger masters for duplicate ids, empty names and broken
// parent references, including cycles through parent_ledger_id.
func Validate(ledgers []model.TenantLedger) []ValidationError {
	var errs []ValidationError

	byID := make(map[int64]model.TenantLedger, len(ledgers))
	for _, l := range ledgers {
		if _, dup := byID[l.ID]; dup {
			errs = append(errs, ValidationError{
				Rule:        RuleDuplicateID,
				LedgerID:    l.ID,
				Description: fmt.Sprintf("id %d is used by more than one ledger", l.ID),
			})
			continue
		}
		byID[l.ID] = l
	}

	for _, l := range ledgers {
		if strings.TrimSpace(l.Name) == "" {
			errs = append(errs, ValidationError{
				Rule:        RuleEmptyName,
				LedgerID:    l.ID,
				Description: "ledger has no name",
			})
		}

		if l.ParentLedgerID == nil {
			continue
		}
		pid := *l.ParentLedgerID

		if pid == l.ID {
			errs = append(errs, ValidationError{
				Rule:        RuleSelfParent,
				LedgerID:    l.ID,
				Description: "ledger declares itself as its parent",
			})
			continue
		}

		if _, ok := byID[pid]; !ok {
			errs = append(errs, ValidationError{
				Rule:        RuleUnknownParent,
				LedgerID:    l.ID,
				Description: fmt.Sprintf("parent %d does not exist", pid),
			})
			continue
		}

		if onCycle(l.ID, byID) {
			errs = append(errs, ValidationError{
				Rule:        RuleParentCycle,
				LedgerID:    l.ID,
				Description: fmt.Sprintf("ledger %q is its own ancestor", l.Name),
			})
		}
	}

	return errs
}

// onCycle reports whether following parent references from id leads back to id.
func onCycle(id int64, byID map[int64]model.TenantLedger) bool {
	seen := make(map[int64]bool)
	cur := byID[id]
	for cur.ParentLedgerID != nil {
		pid := *cur.ParentLedgerID
		if pid == id {
			return true
		}
		if seen[pid] {
			return false
		}
		seen[pid] = true

		next, ok := byID[pid]
		if !ok {
			return false
		}
		cur = next
	}
	return false
}
