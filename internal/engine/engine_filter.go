package engine

import (
	"fmt"

	"minidb/internal/sql"
	"minidb/internal/storage"
)

// matchWhere reports whether a row satisfies every condition. An empty
// WHERE matches everything. Only the "=" operator is supported; values
// compare by canonical equality, and an absent column reads as NULL.
func matchWhere(row storage.Row, where []sql.Condition) (bool, error) {
	for _, cond := range where {
		if cond.Op != "=" {
			return false, fmt.Errorf("%w: %q in WHERE (only '=' is supported)", ErrUnsupportedOperator, cond.Op)
		}
		if row.Get(cond.Column) != cond.Value {
			return false, nil
		}
	}
	return true, nil
}

// projectRow returns a row holding only the requested columns, in that
// order of interest; requesting a column the row does not have yields
// NULL. A nil request projects all of the schema's columns.
func projectRow(row storage.Row, columns []string) storage.Row {
	out := make(storage.Row, len(columns))
	for _, col := range columns {
		out[col] = row.Get(col)
	}
	return out
}
