package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minidb/internal/sql"
)

func usersSchema() *TableSchema {
	return &TableSchema{
		Name: "users",
		Columns: []Column{
			{Name: "id", Type: sql.TypeInt, PrimaryKey: true},
			{Name: "email", Type: sql.TypeText, Unique: true},
			{Name: "name", Type: sql.TypeText},
		},
	}
}

func Test_AddTable_Duplicate(t *testing.T) {
	c := New()
	require.NoError(t, c.AddTable(usersSchema()))

	err := c.AddTable(usersSchema())
	assert.ErrorIs(t, err, ErrDuplicateTable)
}

func Test_AddTable_MultiplePrimaryKeys(t *testing.T) {
	c := New()
	err := c.AddTable(&TableSchema{
		Name: "bad",
		Columns: []Column{
			{Name: "a", Type: sql.TypeInt, PrimaryKey: true},
			{Name: "b", Type: sql.TypeInt, PrimaryKey: true},
		},
	})
	assert.ErrorIs(t, err, ErrSchema)
}

func Test_AddTable_DuplicateColumnNames(t *testing.T) {
	c := New()
	err := c.AddTable(&TableSchema{
		Name: "bad",
		Columns: []Column{
			{Name: "x", Type: sql.TypeInt},
			{Name: "x", Type: sql.TypeText},
		},
	})
	assert.ErrorIs(t, err, ErrSchema)
}

func Test_Get_Unknown(t *testing.T) {
	c := New()
	_, err := c.Get("missing")
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func Test_ListTables_Sorted(t *testing.T) {
	c := New()
	for _, name := range []string{"zebra", "alpha", "mango"} {
		require.NoError(t, c.AddTable(&TableSchema{
			Name:    name,
			Columns: []Column{{Name: "id", Type: sql.TypeInt}},
		}))
	}
	assert.Equal(t, []string{"alpha", "mango", "zebra"}, c.ListTables())
}

func Test_UniqueColumns_PKImpliesUnique(t *testing.T) {
	s := usersSchema()
	assert.Equal(t, []string{"id", "email"}, s.UniqueColumns())

	pk, ok := s.PKColumn()
	require.True(t, ok)
	assert.Equal(t, "id", pk)
}

func Test_Catalog_DocumentRoundTrip(t *testing.T) {
	c := New()
	require.NoError(t, c.AddTable(usersSchema()))

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"INT"`)

	loaded := New()
	require.NoError(t, json.Unmarshal(data, loaded))

	schema, err := loaded.Get("users")
	require.NoError(t, err)
	assert.Equal(t, usersSchema(), schema)
}
