package engine

import (
	"fmt"

	"minidb/internal/index"
	"minidb/internal/sql"
	"minidb/internal/storage"
)

// Update applies the assignments to every row matching WHERE, rewrites
// the whole table file and rebuilds its indexes. Row identifiers are
// recomputed from file position by the rewrite, so surviving rows may be
// renumbered. Returns the number of rows matched.
//
// Uniqueness is validated against the full post-update row set before the
// file is touched, so a conflicting update fails with no side effects.
func (e *Engine) Update(table string, assignments []sql.Assignment, where []sql.Condition) (int64, error) {
	schema, err := e.catalog.Get(table)
	if err != nil {
		return 0, err
	}
	cmap := schema.ColumnMap()

	for _, a := range assignments {
		if _, ok := cmap[a.Column]; !ok {
			return 0, fmt.Errorf("%w: %s in UPDATE of %s", ErrUnknownColumn, a.Column, table)
		}
	}

	rows, err := e.store.ReadRows(table)
	if err != nil {
		return 0, fmt.Errorf("read rows: %w", err)
	}

	newRows := make([]storage.StoredRow, 0, len(rows))
	var matched int64

	for _, r := range rows {
		ok, err := matchWhere(r.Values, where)
		if err != nil {
			return 0, err
		}
		if !ok {
			newRows = append(newRows, r)
			continue
		}

		updated := r.Values.Clone()
		for _, a := range assignments {
			col := cmap[a.Column]
			v, err := sql.Coerce(col.Type, a.Value)
			if err != nil {
				return 0, fmt.Errorf("column %s: %w", a.Column, err)
			}
			if col.NotNull && v.IsNull() {
				return 0, fmt.Errorf("%w: %s cannot be NULL", ErrNotNull, a.Column)
			}
			updated[a.Column] = v
		}

		newRows = append(newRows, storage.StoredRow{RID: r.RID, Values: updated})
		matched++
	}

	// Simulate the post-rewrite index state before committing anything:
	// a duplicate among the new rows fails the whole statement here,
	// leaving file and indexes untouched.
	if err := checkUnique(schema.UniqueColumns(), newRows); err != nil {
		return 0, err
	}

	renumber(newRows)
	if err := e.store.RewriteRows(table, newRows); err != nil {
		return 0, fmt.Errorf("rewrite rows: %w", err)
	}
	if err := e.rebuildIndexes(table); err != nil {
		return 0, err
	}
	return matched, nil
}

// checkUnique verifies that no unique column holds the same non-null
// value twice across the given rows.
func checkUnique(uniqueCols []string, rows []storage.StoredRow) error {
	for _, col := range uniqueCols {
		seen := make(map[sql.Value]struct{}, len(rows))
		for _, r := range rows {
			v := r.Values.Get(col)
			if v.IsNull() {
				continue
			}
			if _, dup := seen[v]; dup {
				return fmt.Errorf("%w on %s=%s", index.ErrUniqueViolation, col, v)
			}
			seen[v] = struct{}{}
		}
	}
	return nil
}

// renumber reassigns every row identifier to the row's file position.
func renumber(rows []storage.StoredRow) {
	for i := range rows {
		rows[i].RID = int64(i)
	}
}
