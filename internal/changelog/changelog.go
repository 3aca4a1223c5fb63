package changelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Actions recorded in the log.
const (
	ActionCreateLedger = "create_ledger"
)

// Entry is one row in the ledger log.
type Entry struct {
	Timestamp      time.Time
	Action         string
	LedgerID       int64
	Name           string
	ParentLedgerID *int64
	Path           string // display label of the node the ledger was created under
}

// Header is the CSV header for ledger-log.csv.
const Header = "timestamp,action,ledger_id,name,parent_ledger_id,path"

const (
	numFields    = 6
	logDir       = "logs"
	colTimestamp = 0
	colAction    = 1
	colLedgerID  = 2
	colName      = 3
	colParentID  = 4
	colPath      = 5
)

// File is the workspace-relative path of the ledger log.
var File = filepath.Join(logDir, "ledger-log.csv")

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colAction] = e.Action
	row[colLedgerID] = strconv.FormatInt(e.LedgerID, 10)
	row[colName] = e.Name
	if e.ParentLedgerID != nil {
		row[colParentID] = strconv.FormatInt(*e.ParentLedgerID, 10)
	}
	row[colPath] = e.Path
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	id, err := strconv.ParseInt(record[colLedgerID], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing ledger_id %q: %w", record[colLedgerID], err)
	}

	var parent *int64
	if record[colParentID] != "" {
		p, err := strconv.ParseInt(record[colParentID], 10, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("parsing parent_ledger_id %q: %w", record[colParentID], err)
		}
		parent = &p
	}

	return Entry{
		Timestamp:      ts,
		Action:         record[colAction],
		LedgerID:       id,
		Name:           record[colName],
		ParentLedgerID: parent,
		Path:           record[colPath],
	}, nil
}

// Append writes entries to <root>/logs/ledger-log.csv, creating the file and header if needed.
func Append(root string, entries []Entry) error {
	if err := os.MkdirAll(filepath.Join(root, logDir), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(root, File)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <root>/logs/ledger-log.csv.
// Returns an empty slice if the file does not exist.
func Read(root string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(root, File))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening ledger log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
