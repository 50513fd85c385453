package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minidb/internal/catalog"
	"minidb/internal/sql"
	"minidb/internal/storage"
)

func newStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)
	return s, dir
}

func Test_EmptyTable(t *testing.T) {
	s, _ := newStore(t)

	n, err := s.CountRows("users")
	require.NoError(t, err)
	assert.Zero(t, n)

	rows, err := s.ReadRows("users")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func Test_AppendAssignsDenseRIDs(t *testing.T) {
	s, _ := newStore(t)

	for i := int64(0); i < 3; i++ {
		rid, err := s.AppendRow("users", storage.Row{"id": sql.IntValue(i)})
		require.NoError(t, err)
		assert.Equal(t, i, rid)
	}

	rows, err := s.ReadRows("users")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, r := range rows {
		assert.Equal(t, int64(i), r.RID)
		assert.Equal(t, sql.IntValue(int64(i)), r.Values.Get("id"))
	}
}

func Test_RowRecordRoundTrip(t *testing.T) {
	s, _ := newStore(t)

	row := storage.Row{
		"id":     sql.IntValue(1),
		"name":   sql.TextValue("Alice"),
		"active": sql.BoolValue(true),
		"bio":    sql.NullValue(),
	}
	_, err := s.AppendRow("users", row)
	require.NoError(t, err)

	rows, err := s.ReadRows("users")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	got := rows[0].Values
	assert.Equal(t, sql.IntValue(1), got.Get("id"))
	assert.Equal(t, sql.TextValue("Alice"), got.Get("name"))
	assert.Equal(t, sql.BoolValue(true), got.Get("active"))
	assert.True(t, got.Get("bio").IsNull())
}

func Test_RewriteReplacesContents(t *testing.T) {
	s, _ := newStore(t)

	for i := int64(0); i < 3; i++ {
		_, err := s.AppendRow("users", storage.Row{"id": sql.IntValue(i)})
		require.NoError(t, err)
	}

	err := s.RewriteRows("users", []storage.StoredRow{
		{RID: 0, Values: storage.Row{"id": sql.IntValue(2)}},
	})
	require.NoError(t, err)

	rows, err := s.ReadRows("users")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, sql.IntValue(2), rows[0].Values.Get("id"))

	// The next append continues from the rewritten count.
	rid, err := s.AppendRow("users", storage.Row{"id": sql.IntValue(9)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rid)
}

func Test_RewriteSameRowsIsByteIdentical(t *testing.T) {
	s, dir := newStore(t)

	for i := int64(0); i < 3; i++ {
		_, err := s.AppendRow("users", storage.Row{
			"id":   sql.IntValue(i),
			"name": sql.TextValue("row"),
		})
		require.NoError(t, err)
	}

	path := filepath.Join(dir, "users.jsonl")
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	rows, err := s.ReadRows("users")
	require.NoError(t, err)
	require.NoError(t, s.RewriteRows("users", rows))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func Test_CatalogPersistence(t *testing.T) {
	s, dir := newStore(t)

	// No document yet: an empty catalog.
	cat, err := s.LoadCatalog()
	require.NoError(t, err)
	assert.Empty(t, cat.ListTables())

	require.NoError(t, cat.AddTable(&catalog.TableSchema{
		Name: "users",
		Columns: []catalog.Column{
			{Name: "id", Type: sql.TypeInt, PrimaryKey: true},
		},
	}))
	require.NoError(t, s.SaveCatalog(cat))

	// A fresh store over the same directory sees the saved document.
	s2, err := New(dir)
	require.NoError(t, err)
	loaded, err := s2.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, loaded.ListTables())

	schema, err := loaded.Get("users")
	require.NoError(t, err)
	pk, ok := schema.PKColumn()
	require.True(t, ok)
	assert.Equal(t, "id", pk)
}
