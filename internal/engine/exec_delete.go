package engine

import (
	"fmt"

	"minidb/internal/sql"
	"minidb/internal/storage"
)

// Delete removes every row matching WHERE (all rows when WHERE is nil),
// rewrites the table file with the kept sequence and rebuilds its
// indexes. Surviving rows are renumbered by file position. Returns the
// number of rows removed.
func (e *Engine) Delete(table string, where []sql.Condition) (int64, error) {
	if _, err := e.catalog.Get(table); err != nil {
		return 0, err
	}

	rows, err := e.store.ReadRows(table)
	if err != nil {
		return 0, fmt.Errorf("read rows: %w", err)
	}

	kept := make([]storage.StoredRow, 0, len(rows))
	var deleted int64

	for _, r := range rows {
		ok, err := matchWhere(r.Values, where)
		if err != nil {
			return 0, err
		}
		if ok {
			deleted++
			continue
		}
		kept = append(kept, r)
	}

	renumber(kept)
	if err := e.store.RewriteRows(table, kept); err != nil {
		return 0, fmt.Errorf("rewrite rows: %w", err)
	}
	if err := e.rebuildIndexes(table); err != nil {
		return 0, err
	}
	return deleted, nil
}
