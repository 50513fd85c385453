package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateTable is returned when registering a table name twice.
	ErrDuplicateTable = errors.New("table already exists")
	// ErrUnknownTable is returned when looking up an unregistered table.
	ErrUnknownTable = errors.New("unknown table")
	// ErrSchema is returned for invalid table definitions (more than one
	// primary key, duplicate column names).
	ErrSchema = errors.New("invalid schema")
)

// Catalog is the schema registry: it maps table names to their schemas.
// Tables are only ever added; there is no DROP TABLE.
type Catalog struct {
	tables map[string]*TableSchema
}

func New() *Catalog {
	return &Catalog{tables: make(map[string]*TableSchema)}
}

// AddTable registers a new table schema. The schema must declare at most
// one primary-key column and no duplicate column names.
func (c *Catalog) AddTable(schema *TableSchema) error {
	if _, exists := c.tables[schema.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTable, schema.Name)
	}

	pkCount := 0
	seen := make(map[string]struct{}, len(schema.Columns))
	for _, col := range schema.Columns {
		if col.PrimaryKey {
			pkCount++
		}
		if _, dup := seen[col.Name]; dup {
			return fmt.Errorf("%w: duplicate column %q in table %s", ErrSchema, col.Name, schema.Name)
		}
		seen[col.Name] = struct{}{}
	}
	if pkCount > 1 {
		return fmt.Errorf("%w: table %s declares %d primary keys, at most one is supported", ErrSchema, schema.Name, pkCount)
	}

	c.tables[schema.Name] = schema
	return nil
}

// Get returns the schema for a table name.
func (c *Catalog) Get(name string) (*TableSchema, error) {
	schema, ok := c.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}
	return schema, nil
}

// ListTables returns all table names in lexicographic order.
func (c *Catalog) ListTables() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// document is the persisted shape of the catalog.
type document struct {
	Tables map[string]*TableSchema `json:"tables"`
}

func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{Tables: c.tables})
}

func (c *Catalog) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	c.tables = doc.Tables
	if c.tables == nil {
		c.tables = make(map[string]*TableSchema)
	}
	return nil
}
