package engine

import (
	"fmt"

	"minidb/internal/index"
	"minidb/internal/sql"
	"minidb/internal/storage"
)

// Insert adds one row to a table, enforcing types and constraints.
// All checks run before the row is persisted or any index is mutated, so
// a failed insert leaves no partial state behind. Returns the assigned
// row identifier.
func (e *Engine) Insert(table string, row storage.Row) (int64, error) {
	schema, err := e.catalog.Get(table)
	if err != nil {
		return 0, err
	}
	cmap := schema.ColumnMap()

	for col := range row {
		if _, ok := cmap[col]; !ok {
			return 0, fmt.Errorf("%w: %s in INSERT into %s", ErrUnknownColumn, col, table)
		}
	}

	// Coerce every schema column (absent ones coerce from NULL) and
	// enforce NOT NULL.
	coerced := make(storage.Row, len(schema.Columns))
	for _, col := range schema.Columns {
		v, err := sql.Coerce(col.Type, row.Get(col.Name))
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", col.Name, err)
		}
		if col.NotNull && v.IsNull() {
			return 0, fmt.Errorf("%w: %s cannot be NULL", ErrNotNull, col.Name)
		}
		coerced[col.Name] = v
	}

	// Pre-check uniqueness against the indexes before any mutation.
	for _, ucol := range schema.UniqueColumns() {
		v := coerced.Get(ucol)
		if v.IsNull() {
			continue
		}
		if _, exists := e.indexes[table][ucol].Get(v); exists {
			return 0, fmt.Errorf("%w on %s=%s", index.ErrUniqueViolation, ucol, v)
		}
	}

	rid, err := e.store.AppendRow(table, coerced)
	if err != nil {
		return 0, fmt.Errorf("append row: %w", err)
	}

	for _, ucol := range schema.UniqueColumns() {
		v := coerced.Get(ucol)
		if v.IsNull() {
			continue
		}
		if err := e.indexes[table][ucol].Add(v, rid); err != nil {
			return 0, fmt.Errorf("index %s.%s: %w", table, ucol, err)
		}
	}
	return rid, nil
}

func (e *Engine) executeInsert(stmt *sql.InsertStmt) (*Result, error) {
	row, err := e.insertStmtRow(stmt)
	if err != nil {
		return nil, err
	}

	rid, err := e.Insert(stmt.TableName, row)
	if err != nil {
		return nil, err
	}

	return &Result{
		Count:   1,
		Message: fmt.Sprintf("OK (inserted, _rid=%d)", rid),
	}, nil
}

// insertStmtRow pairs the statement's positional values with column names.
// Without a column list, values must match the schema's column order.
func (e *Engine) insertStmtRow(stmt *sql.InsertStmt) (storage.Row, error) {
	columns := stmt.Columns
	if len(columns) == 0 {
		schema, err := e.catalog.Get(stmt.TableName)
		if err != nil {
			return nil, err
		}
		if len(stmt.Values) != len(schema.Columns) {
			return nil, fmt.Errorf("INSERT: value count %d does not match table columns %d",
				len(stmt.Values), len(schema.Columns))
		}
		columns = schema.ColumnNames()
	}

	if len(stmt.Values) != len(columns) {
		return nil, fmt.Errorf("INSERT: number of values %d does not match number of columns %d",
			len(stmt.Values), len(columns))
	}

	row := make(storage.Row, len(columns))
	for i, col := range columns {
		if _, dup := row[col]; dup {
			return nil, fmt.Errorf("INSERT: duplicate column %q in column list", col)
		}
		row[col] = stmt.Values[i]
	}
	return row, nil
}
