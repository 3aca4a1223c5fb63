package hierarchy

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/cleared-dev/ledgertree/internal/model"
)

func labels(opts []model.HierarchyOption) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.DisplayLabel
	}
	return out
}

func TestFlatten_SingleRow(t *testing.T) {
	rows := []model.HierarchyRow{
		{MajorGroup: "Assets", Group: "Current Assets", Ledger: "Cash", Code: model.MustCode("101")},
	}

	got := Flatten(rows)
	require.Len(t, got, 1)
	assert.Equal(t, "Cash", got[0].Value)
	assert.Equal(t, "Assets > Current Assets > Cash", got[0].DisplayLabel)
	assert.Equal(t, "101", got[0].Code.String())
	assert.Equal(t, []string{"Assets", "Current Assets", "Cash"}, got[0].FullPath)
}

func TestFlatten_DuplicatePathFirstCodeWins(t *testing.T) {
	rows := []model.HierarchyRow{
		{MajorGroup: "A", Group: "B", Ledger: "C", Code: model.MustCode("1")},
		{MajorGroup: "A", Group: "B", Ledger: "C", Code: model.MustCode("2")},
	}

	got := Flatten(rows)
	require.Len(t, got, 1)
	assert.Equal(t, "A > B > C", got[0].DisplayLabel)
	assert.Equal(t, "1", got[0].Code.String())
}

func TestFlatten_DuplicateFirstSeenWithoutCode(t *testing.T) {
	rows := []model.HierarchyRow{
		{MajorGroup: "A", Ledger: "C"},
		{MajorGroup: "A", Ledger: "C", Code: model.MustCode("9")},
	}

	got := Flatten(rows)
	require.Len(t, got, 1)
	assert.False(t, got[0].Code.Valid)
}

func TestFlatten_AllEightLevels(t *testing.T) {
	rows := []model.HierarchyRow{{
		BusinessType:       "Trading",
		FinancialReporting: "Balance Sheet",
		MajorGroup:         "Assets",
		Group:              "Current Assets",
		SubGroup1:          "S1",
		SubGroup2:          "S2",
		SubGroup3:          "S3",
		Ledger:             "Cash",
		CustomLedger:       "ignored",
	}}

	got := Flatten(rows)
	require.Len(t, got, 1)
	assert.Len(t, got[0].FullPath, 8)
	assert.Equal(t, "Cash", got[0].Value)
	assert.NotContains(t, got[0].DisplayLabel, "ignored")
}

func TestFlatten_EdgeRows(t *testing.T) {
	rows := []model.HierarchyRow{
		{},
		{Code: model.MustCode("5")},
		{BusinessType: "Trading"},
		{MajorGroup: "Assets", Group: "", SubGroup1: "Cash-in-Hand"},
	}

	got := Flatten(rows)
	assert.Equal(t, []string{"Assets > Cash-in-Hand", "Trading"}, labels(got))
	assert.Equal(t, "Trading", got[1].Value)
	assert.Equal(t, []string{"Trading"}, got[1].FullPath)
}

func TestFlatten_PathIntegrity(t *testing.T) {
	for _, opt := range Flatten(DefaultTaxonomy("trading")) {
		assert.Equal(t, opt.DisplayLabel, strings.Join(opt.FullPath, " > "))
		assert.Equal(t, opt.FullPath[len(opt.FullPath)-1], opt.Value)
	}
}

func TestFlatten_CollatedOrder(t *testing.T) {
	rows := []model.HierarchyRow{
		{MajorGroup: "fig"},
		{MajorGroup: "Banana"},
		{MajorGroup: "Éclair"},
		{MajorGroup: "apple"},
	}

	got := Flatten(rows, WithLocale(language.English))
	assert.Equal(t, []string{"apple", "Banana", "Éclair", "fig"}, labels(got))
}

func TestFlatten_Deterministic(t *testing.T) {
	rows := DefaultTaxonomy("trading")
	want := Flatten(rows)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		shuffled := append([]model.HierarchyRow(nil), rows...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, Flatten(shuffled))
	}
}

func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, Flatten(nil))
}
