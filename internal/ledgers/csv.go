package ledgers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cleared-dev/ledgertree/internal/model"
)

const (
	numFields     = 9
	colID         = 0
	colName       = 1
	colCategory   = 2
	colGroup      = 3
	colSubGroup1  = 4
	colSubGroup2  = 5
	colSubGroup3  = 6
	colLedgerType = 7
	colParent     = 8
)

var header = []string{"id", "name", "category", "group", "sub_group_1", "sub_group_2", "sub_group_3", "ledger_type", "parent_ledger_id"}

// ReadLedgers reads ledgers.csv.
func ReadLedgers(r io.Reader) ([]model.TenantLedger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledgers CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var ledgers []model.TenantLedger
	for i, rec := range records[1:] {
		l, err := UnmarshalLedger(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, nil
}

// WriteLedgers writes ledgers.csv.
func WriteLedgers(w io.Writer, ledgers []model.TenantLedger) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, l := range ledgers {
		if err := cw.Write(MarshalLedger(l)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalLedger converts a TenantLedger to a CSV row.
func MarshalLedger(l model.TenantLedger) []string {
	row := make([]string, numFields)
	row[colID] = strconv.FormatInt(l.ID, 10)
	row[colName] = l.Name
	row[colCategory] = l.Category
	row[colGroup] = l.Group
	row[colSubGroup1] = l.SubGroup1
	row[colSubGroup2] = l.SubGroup2
	row[colSubGroup3] = l.SubGroup3
	row[colLedgerType] = l.LedgerType
	if l.ParentLedgerID != nil {
		row[colParent] = strconv.FormatInt(*l.ParentLedgerID, 10)
	}
	return row
}

// UnmarshalLedger converts a CSV row to a TenantLedger.
func UnmarshalLedger(record []string) (model.TenantLedger, error) {
	if len(record) != numFields {
		return model.TenantLedger{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := strconv.ParseInt(record[colID], 10, 64)
	if err != nil {
		return model.TenantLedger{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	var parent *int64
	if record[colParent] != "" {
		pid, err := strconv.ParseInt(record[colParent], 10, 64)
		if err != nil {
			return model.TenantLedger{}, fmt.Errorf("parsing parent_ledger_id %q: %w", record[colParent], err)
		}
		parent = &pid
	}

	return model.TenantLedger{
		ID:             id,
		Name:           record[colName],
		Category:       record[colCategory],
		Group:          record[colGroup],
		SubGroup1:      record[colSubGroup1],
		SubGroup2:      record[colSubGroup2],
		SubGroup3:      record[colSubGroup3],
		LedgerType:     record[colLedgerType],
		ParentLedgerID: parent,
	}, nil
}
