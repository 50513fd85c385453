package index

import (
	"errors"
	"fmt"

	"minidb/internal/sql"
)

// ErrUniqueViolation is returned when a value is added twice to a
// uniqueness index.
var ErrUniqueViolation = errors.New("unique constraint violation")

// Unique is an in-memory map from a column value to the identifier of the
// row holding it. One Unique exists per (table, PRIMARY KEY or UNIQUE
// column) pair. NULL values are never stored; callers skip them, matching
// SQL's NULL-is-distinct-from-NULL semantics.
//
// Values must be canonical (already coerced to the column's type) so that
// plain value equality is the lookup key.
type Unique struct {
	m map[sql.Value]int64
}

func New() *Unique {
	return &Unique{m: make(map[sql.Value]int64)}
}

// Add records value -> rid, failing if the value is already present.
func (u *Unique) Add(value sql.Value, rid int64) error {
	if _, exists := u.m[value]; exists {
		return fmt.Errorf("%w: value %s", ErrUniqueViolation, value)
	}
	u.m[value] = rid
	return nil
}

// Remove drops the mapping for value; removing an absent value is a no-op.
func (u *Unique) Remove(value sql.Value) {
	delete(u.m, value)
}

// Get returns the row identifier recorded for value.
func (u *Unique) Get(value sql.Value) (int64, bool) {
	rid, ok := u.m[value]
	return rid, ok
}

// Len reports the number of indexed values.
func (u *Unique) Len() int {
	return len(u.m)
}
