package changelog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	parent := int64(3)
	return Entry{
		Timestamp:      testTime,
		Action:         ActionCreateLedger,
		LedgerID:       5,
		Name:           "Petty Cash Sub",
		ParentLedgerID: &parent,
		Path:           "Assets > Current Assets > Petty Cash",
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	err := Append(dir, []Entry{testEntry()})
	require.NoError(t, err)

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "Petty Cash Sub", entries[0].Name)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.LedgerID = 6
	e2.Name = "Float"
	e2.ParentLedgerID = nil
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(5), entries[0].LedgerID)
	assert.Equal(t, int64(6), entries[1].LedgerID)
	assert.Nil(t, entries[1].ParentLedgerID)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	require.NoError(t, Append(dir, []Entry{original}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.Action, got.Action)
	assert.Equal(t, original.LedgerID, got.LedgerID)
	assert.Equal(t, original.Name, got.Name)
	require.NotNil(t, got.ParentLedgerID)
	assert.Equal(t, int64(3), *got.ParentLedgerID)
	assert.Equal(t, original.Path, got.Path)
}

func TestRead_NotFound(t *testing.T) {
	dir := t.TempDir()
	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, File), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	assert.ErrorContains(t, err, "expected 6 fields")

	row := MarshalEntry(testEntry())
	row[colLedgerID] = "five"
	_, err = UnmarshalEntry(row)
	assert.ErrorContains(t, err, "parsing ledger_id")

	row = MarshalEntry(testEntry())
	row[colParentID] = "x"
	_, err = UnmarshalEntry(row)
	assert.ErrorContains(t, err, "parsing parent_ledger_id")
}

func TestMarshalEntry(t *testing.T) {
	row := MarshalEntry(testEntry())
	assert.Equal(t, []string{
		"2025-01-15T10:30:00Z", "create_ledger", "5", "Petty Cash Sub", "3", "Assets > Current Assets > Petty Cash",
	}, row)

	e := testEntry()
	e.ParentLedgerID = nil
	assert.Empty(t, MarshalEntry(e)[colParentID])
}

func TestAppend_CreatesDir(t *testing.T) {
	dir := t.TempDir()
	// logs/ dir does not exist yet
	err := Append(dir, []Entry{testEntry()})
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
