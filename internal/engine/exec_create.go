package engine

import (
	"fmt"

	"minidb/internal/catalog"
	"minidb/internal/index"
	"minidb/internal/sql"
)

// CreateTable registers the schema in the catalog, persists the updated
// catalog document and initializes an empty uniqueness index for every
// PRIMARY KEY or UNIQUE column. The new table has no rows yet.
func (e *Engine) CreateTable(schema *catalog.TableSchema) error {
	if err := e.catalog.AddTable(schema); err != nil {
		return err
	}
	if err := e.store.SaveCatalog(e.catalog); err != nil {
		return fmt.Errorf("persist catalog: %w", err)
	}

	byColumn := make(map[string]*index.Unique)
	for _, col := range schema.UniqueColumns() {
		byColumn[col] = index.New()
	}
	e.indexes[schema.Name] = byColumn
	return nil
}

func (e *Engine) executeCreateTable(stmt *sql.CreateTableStmt) (*Result, error) {
	columns := make([]catalog.Column, 0, len(stmt.Columns))
	for _, def := range stmt.Columns {
		columns = append(columns, catalog.Column{
			Name:       def.Name,
			Type:       def.Type,
			PrimaryKey: def.PrimaryKey,
			Unique:     def.Unique,
			NotNull:    def.NotNull,
		})
	}

	schema := &catalog.TableSchema{Name: stmt.TableName, Columns: columns}
	if err := e.CreateTable(schema); err != nil {
		return nil, err
	}

	return &Result{
		Message: fmt.Sprintf("OK (table '%s' created)", stmt.TableName),
	}, nil
}
