package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgertree/internal/config"
	"github.com/cleared-dev/ledgertree/internal/hierarchy"
	"github.com/cleared-dev/ledgertree/internal/ledgers"
	"github.com/cleared-dev/ledgertree/internal/model"
)

func newWorkspace(t *testing.T, tenant []model.TenantLedger) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, hierarchy.Save(root, hierarchy.DefaultTaxonomy("trading")))
	if tenant != nil {
		require.NoError(t, ledgers.NewService(tenant).Save(root))
	}
	return root
}

func TestFileSource_Hierarchy(t *testing.T) {
	src := NewFileSource(newWorkspace(t, nil), nil)

	rows, err := src.Hierarchy(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, len(hierarchy.DefaultTaxonomy("trading")))
}

func TestFileSource_HierarchyMissing(t *testing.T) {
	src := NewFileSource(t.TempDir(), nil)
	_, err := src.Hierarchy(context.Background())
	assert.Error(t, err)
}

func TestFileSource_LedgersMissingIsEmpty(t *testing.T) {
	src := NewFileSource(newWorkspace(t, nil), nil)

	got, err := src.Ledgers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileSource_LedgersDropsInvalid(t *testing.T) {
	root := newWorkspace(t, nil)
	content := "id,name,category,group,sub_group_1,sub_group_2,sub_group_3,ledger_type,parent_ledger_id\n" +
		"3,Petty Cash,Assets,Current Assets,,,,,\n" +
		"4,,Assets,,,,,,\n"
	require.NoError(t, os.MkdirAll(filepath.Join(root, "ledgers"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ledgers.File), []byte(content), 0o644))

	got, err := NewFileSource(root, nil).Ledgers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Petty Cash", got[0].Name)
}

func TestFileSource_CreateLedger(t *testing.T) {
	root := newWorkspace(t, []model.TenantLedger{
		{ID: 3, Name: "Petty Cash", Category: "Assets", Group: "Current Assets"},
	})
	src := NewFileSource(root, nil)
	ctx := context.Background()

	created, err := src.CreateLedger(ctx, model.NewLedger{
		Name:           "  Petty Cash Sub ",
		Category:       "Assets",
		ParentLedgerID: model.Int64(3),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
	assert.Equal(t, "Petty Cash Sub", created.Name)

	got, err := src.Ledgers(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, created, got[1])
}

func TestFileSource_CreateLedgerErrors(t *testing.T) {
	src := NewFileSource(newWorkspace(t, nil), nil)
	ctx := context.Background()

	_, err := src.CreateLedger(ctx, model.NewLedger{Name: "  "})
	assert.ErrorIs(t, err, ledgers.ErrInvalid)

	_, err = src.CreateLedger(ctx, model.NewLedger{Name: "Sub", ParentLedgerID: model.Int64(99)})
	assert.ErrorIs(t, err, ledgers.ErrNotFound)
}

func TestFileSource_Canceled(t *testing.T) {
	src := NewFileSource(newWorkspace(t, nil), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Hierarchy(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = src.Ledgers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = src.CreateLedger(ctx, model.NewLedger{Name: "X"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew(t *testing.T) {
	src, err := New(config.SourceConfig{Kind: config.SourceFile}, t.TempDir(), nil)
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	src, err = New(config.SourceConfig{Kind: config.SourceHTTP, BaseURL: "http://localhost"}, "", nil)
	require.NoError(t, err)
	assert.IsType(t, &HTTPClient{}, src)

	_, err = New(config.SourceConfig{Kind: "ftp"}, "", nil)
	assert.Error(t, err)
}
