package storage

import (
	"minidb/internal/catalog"
)

// Store is a row store plus catalog persistence. It owns no in-memory row
// data; every call goes to the backing medium.
//
// Different implementations are possible:
//   - on-disk, one line-delimited file per table (filestore)
//   - in-memory, for fast tests and throwaway sessions (memstore)
type Store interface {
	// CountRows reports the number of persisted rows (0 if the table has
	// never been written).
	CountRows(table string) (int64, error)

	// AppendRow assigns the row the identifier CountRows(table), persists
	// it as one record and returns the assigned identifier.
	AppendRow(table string, row Row) (int64, error)

	// ReadRows returns all persisted rows in file order, an empty slice
	// if the table has never been written.
	ReadRows(table string) ([]StoredRow, error)

	// RewriteRows replaces the table's entire contents with the given
	// sequence, in the order given.
	RewriteRows(table string, rows []StoredRow) error

	// LoadCatalog reads the persisted schema registry, returning an empty
	// catalog if none has been saved yet.
	LoadCatalog() (*catalog.Catalog, error)

	// SaveCatalog rewrites the whole schema registry document.
	SaveCatalog(c *catalog.Catalog) error
}
