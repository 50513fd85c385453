package storage

import (
	"encoding/json"
	"fmt"

	"minidb/internal/sql"
)

// ridField is the reserved record field holding the row identifier.
const ridField = "_rid"

// Row maps column names to typed values. Columns resolved to NULL may be
// present with a null value or absent entirely; readers treat both alike.
type Row map[string]sql.Value

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Get returns the value for a column, or NULL if the column is absent.
func (r Row) Get(col string) sql.Value {
	if v, ok := r[col]; ok {
		return v
	}
	return sql.NullValue()
}

// StoredRow is a row as persisted: its values plus the engine-assigned
// row identifier.
type StoredRow struct {
	RID    int64
	Values Row
}

// MarshalJSON flattens the row into one object with the values and the
// "_rid" field side by side, the on-disk record format.
func (r StoredRow) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Values)+1)
	for k, v := range r.Values {
		m[k] = v
	}
	m[ridField] = r.RID
	return json.Marshal(m)
}

func (r *StoredRow) UnmarshalJSON(data []byte) error {
	var m map[string]sql.Value
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	rid, ok := m[ridField]
	if !ok || rid.Type != sql.TypeInt {
		return fmt.Errorf("row record is missing an integer %s field", ridField)
	}
	delete(m, ridField)

	r.RID = rid.I64
	r.Values = m
	return nil
}
