package hierarchy

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cleared-dev/ledgertree/internal/model"
)

// File is the workspace-relative path of the taxonomy file.
var File = filepath.Join("taxonomy", "hierarchy.csv")

const (
	numFields       = 12
	colID           = 0
	colBusinessType = 1
	colFinancial    = 2
	colMajorGroup   = 3
	colGroup        = 4
	colSubGroup1    = 5
	colSubGroup2    = 6
	colSubGroup3    = 7
	colLedger       = 8
	colCustom       = 9
	colCode         = 10
	colIsCustom     = 11
)

var header = []string{
	"id", "business_type", "financial_reporting", "major_group", "group",
	"sub_group_1", "sub_group_2", "sub_group_3", "ledger", "custom_ledger", "code", "is_custom",
}

// ReadRows reads hierarchy.csv.
func ReadRows(r io.Reader) ([]model.HierarchyRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading hierarchy CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var rows []model.HierarchyRow
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes hierarchy.csv.
func WriteRows(w io.Writer, rows []model.HierarchyRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalRow converts a HierarchyRow to a CSV row.
func MarshalRow(row model.HierarchyRow) []string {
	rec := make([]string, numFields)
	if row.ID != 0 {
		rec[colID] = strconv.FormatInt(row.ID, 10)
	}
	rec[colBusinessType] = row.BusinessType
	rec[colFinancial] = row.FinancialReporting
	rec[colMajorGroup] = row.MajorGroup
	rec[colGroup] = row.Group
	rec[colSubGroup1] = row.SubGroup1
	rec[colSubGroup2] = row.SubGroup2
	rec[colSubGroup3] = row.SubGroup3
	rec[colLedger] = row.Ledger
	rec[colCustom] = row.CustomLedger
	rec[colCode] = row.Code.String()
	if row.IsCustom {
		rec[colIsCustom] = "true"
	}
	return rec
}

// UnmarshalRow converts a CSV row to a HierarchyRow.
func UnmarshalRow(record []string) (model.HierarchyRow, error) {
	if len(record) != numFields {
		return model.HierarchyRow{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var id int64
	if record[colID] != "" {
		var err error
		id, err = strconv.ParseInt(record[colID], 10, 64)
		if err != nil {
			return model.HierarchyRow{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
		}
	}

	code, err := model.NewCode(record[colCode])
	if err != nil {
		return model.HierarchyRow{}, err
	}

	var isCustom bool
	if record[colIsCustom] != "" {
		isCustom, err = strconv.ParseBool(record[colIsCustom])
		if err != nil {
			return model.HierarchyRow{}, fmt.Errorf("parsing is_custom %q: %w", record[colIsCustom], err)
		}
	}

	return model.HierarchyRow{
		ID:                 id,
		BusinessType:       record[colBusinessType],
		FinancialReporting: record[colFinancial],
		MajorGroup:         record[colMajorGroup],
		Group:              record[colGroup],
		SubGroup1:          record[colSubGroup1],
		SubGroup2:          record[colSubGroup2],
		SubGroup3:          record[colSubGroup3],
		Ledger:             record[colLedger],
		CustomLedger:       record[colCustom],
		Code:               code,
		IsCustom:           isCustom,
	}, nil
}

// Load reads taxonomy/hierarchy.csv from a workspace root.
func Load(root string) ([]model.HierarchyRow, error) {
	f, err := os.Open(filepath.Join(root, File))
	if err != nil {
		return nil, fmt.Errorf("opening hierarchy: %w", err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("reading hierarchy: %w", err)
	}
	return rows, nil
}

// Save writes rows to taxonomy/hierarchy.csv under root.
func Save(root string, rows []model.HierarchyRow) error {
	path := filepath.Join(root, File)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating taxonomy dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating hierarchy file: %w", err)
	}
	defer f.Close()

	if err := WriteRows(f, rows); err != nil {
		return fmt.Errorf("writing hierarchy: %w", err)
	}
	return nil
}
