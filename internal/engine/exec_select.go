package engine

import (
	"fmt"

	"minidb/internal/sql"
	"minidb/internal/storage"
)

// Select returns the rows matching WHERE, projected to the requested
// columns (nil means all schema columns), in file order. The row
// identifier is never part of the output.
func (e *Engine) Select(table string, columns []string, where []sql.Condition) ([]storage.Row, error) {
	schema, err := e.catalog.Get(table)
	if err != nil {
		return nil, err
	}

	rows, err := e.store.ReadRows(table)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}

	// Fast path: a single equality test on an indexed column narrows the
	// candidates to at most one row before the general predicate runs.
	// NULL literals stay on the scan path since NULLs are never indexed.
	if len(where) == 1 && where[0].Op == "=" && !where[0].Value.IsNull() {
		if idx, ok := e.indexes[table][where[0].Column]; ok {
			rid, found := idx.Get(where[0].Value)
			if !found {
				return nil, nil
			}
			candidates := rows[:0:0]
			for _, r := range rows {
				if r.RID == rid {
					candidates = append(candidates, r)
				}
			}
			rows = candidates
		}
	}

	if columns == nil {
		columns = schema.ColumnNames()
	}

	var out []storage.Row
	for _, r := range rows {
		ok, err := matchWhere(r.Values, where)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, projectRow(r.Values, columns))
		}
	}
	return out, nil
}

func (e *Engine) executeSelect(stmt *sql.SelectStmt) (*Result, error) {
	rows, err := e.Select(stmt.TableName, stmt.Columns, stmt.Where)
	if err != nil {
		return nil, err
	}

	columns := stmt.Columns
	if columns == nil {
		schema, err := e.catalog.Get(stmt.TableName)
		if err != nil {
			return nil, err
		}
		columns = schema.ColumnNames()
	}

	return &Result{
		Columns: columns,
		Rows:    rows,
		Count:   int64(len(rows)),
	}, nil
}
