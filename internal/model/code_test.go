package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
		want  string
	}{
		{`101`, true, "101"},
		{`"101"`, true, "101"},
		{`"4010.5"`, true, "4010.5"},
		{`null`, false, ""},
		{`""`, false, ""},
	}
	for _, tt := range tests {
		var c Code
		require.NoError(t, json.Unmarshal([]byte(tt.in), &c), "Unmarshal(%s)", tt.in)
		assert.Equal(t, tt.valid, c.Valid, "Valid for %s", tt.in)
		assert.Equal(t, tt.want, c.String(), "String for %s", tt.in)
	}
}

func TestCodeUnmarshalJSON_Malformed(t *testing.T) {
	var c Code
	require.Error(t, json.Unmarshal([]byte(`"abc"`), &c))
}

func TestCodeMarshalJSON(t *testing.T) {
	data, err := json.Marshal(MustCode("101"))
	require.NoError(t, err)
	assert.JSONEq(t, `"101"`, string(data))

	data, err = json.Marshal(Code{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestCodeEqual(t *testing.T) {
	assert.True(t, Code{}.Equal(Code{}))
	assert.True(t, MustCode("1").Equal(MustCode("1.0")))
	assert.False(t, MustCode("1").Equal(MustCode("2")))
	assert.False(t, MustCode("1").Equal(Code{}))
}

func TestHierarchyRowDecode(t *testing.T) {
	raw := `{"id":7,"major_group":"Assets","group":"Current Assets","ledger":"Cash","code":101,"isCustom":false}`
	var row HierarchyRow
	require.NoError(t, json.Unmarshal([]byte(raw), &row))

	assert.Equal(t, int64(7), row.ID)
	assert.Equal(t, "Assets", row.MajorGroup)
	assert.Equal(t, "Cash", row.Ledger)
	assert.Equal(t, "101", row.Code.String())
	assert.Empty(t, row.CustomLedger)
}

func TestSelectionPopulated(t *testing.T) {
	a, b := "Assets", "Current Assets"
	s := Selection{Category: &a, Group: &b}
	assert.Equal(t, 2, s.Populated())

	nl := s.NewLedger("Petty Cash")
	assert.Equal(t, "Petty Cash", nl.Name)
	assert.Equal(t, "Assets", nl.Category)
	assert.Equal(t, "Current Assets", nl.Group)
	assert.Empty(t, nl.SubGroup1)
	assert.Nil(t, nl.ParentLedgerID)
}
