package engine

import (
	"errors"
	"fmt"

	"minidb/internal/catalog"
	"minidb/internal/index"
	"minidb/internal/storage"
)

var (
	// ErrUnknownColumn is returned for a reference to a column the table
	// schema does not declare.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrNotNull is returned when a NOT NULL column would become NULL.
	ErrNotNull = errors.New("not-null constraint violation")
	// ErrUnsupportedOperator is returned for any WHERE operator other
	// than "=".
	ErrUnsupportedOperator = errors.New("unsupported operator")
)

// Engine executes statements against one store. It owns the loaded
// catalog and the uniqueness indexes for the lifetime of a session and is
// not safe for concurrent use; the caller runs one statement at a time.
type Engine struct {
	store   storage.Store
	catalog *catalog.Catalog

	// indexes[table][column] holds the uniqueness index for every
	// PRIMARY KEY or UNIQUE column.
	indexes map[string]map[string]*index.Unique
}

// Open loads the persisted catalog from the store and rebuilds every
// uniqueness index by scanning the persisted rows.
func Open(store storage.Store) (*Engine, error) {
	cat, err := store.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	e := &Engine{
		store:   store,
		catalog: cat,
		indexes: make(map[string]map[string]*index.Unique),
	}

	for _, table := range cat.ListTables() {
		if err := e.rebuildIndexes(table); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// rebuildIndexes discards the table's indexes and rebuilds them from the
// persisted rows. Called at startup and after any file rewrite.
func (e *Engine) rebuildIndexes(table string) error {
	schema, err := e.catalog.Get(table)
	if err != nil {
		return err
	}

	byColumn := make(map[string]*index.Unique)
	for _, col := range schema.UniqueColumns() {
		byColumn[col] = index.New()
	}
	e.indexes[table] = byColumn

	rows, err := e.store.ReadRows(table)
	if err != nil {
		return fmt.Errorf("read rows of %s: %w", table, err)
	}

	for _, row := range rows {
		for col, idx := range byColumn {
			v := row.Values.Get(col)
			if v.IsNull() {
				continue
			}
			if err := idx.Add(v, row.RID); err != nil {
				return fmt.Errorf("rebuild index %s.%s: %w", table, col, err)
			}
		}
	}
	return nil
}

// ListTables returns all known table names in lexicographic order.
func (e *Engine) ListTables() []string {
	return e.catalog.ListTables()
}

// Schema returns the schema of a table.
func (e *Engine) Schema(table string) (*catalog.TableSchema, error) {
	return e.catalog.Get(table)
}
