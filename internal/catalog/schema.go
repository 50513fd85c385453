package catalog

import (
	"minidb/internal/sql"
)

// Column describes metadata for a single column in a table.
// PrimaryKey implies Unique for constraint purposes.
type Column struct {
	Name       string       `json:"name"`
	Type       sql.DataType `json:"type"`
	PrimaryKey bool         `json:"primary_key"`
	Unique     bool         `json:"unique"`
	NotNull    bool         `json:"not_null"`
}

// TableSchema is a table definition: name plus an ordered column list.
type TableSchema struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// PKColumn returns the name of the primary-key column, if any.
func (s *TableSchema) PKColumn() (string, bool) {
	for _, c := range s.Columns {
		if c.PrimaryKey {
			return c.Name, true
		}
	}
	return "", false
}

// UniqueColumns returns, in declaration order, the names of all columns
// whose values must be unique (UNIQUE or PRIMARY KEY).
func (s *TableSchema) UniqueColumns() []string {
	var out []string
	for _, c := range s.Columns {
		if c.Unique || c.PrimaryKey {
			out = append(out, c.Name)
		}
	}
	return out
}

// ColumnMap returns column name -> Column for fast lookup.
func (s *TableSchema) ColumnMap() map[string]Column {
	m := make(map[string]Column, len(s.Columns))
	for _, c := range s.Columns {
		m[c.Name] = c
	}
	return m
}

// ColumnNames returns the column names in declaration order.
func (s *TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}
