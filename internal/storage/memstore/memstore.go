package memstore

import (
	"sync"

	"minidb/internal/catalog"
	"minidb/internal/storage"
)

// MemStore keeps rows and the catalog in memory. It mirrors the file
// semantics of the on-disk store: a table that has never been written
// reads as empty, and row identifiers are assigned from the current row
// count.
type memStore struct {
	mu      sync.RWMutex
	tables  map[string][]storage.StoredRow
	catalog *catalog.Catalog
}

// New creates a new in-memory store.
func New() storage.Store {
	return &memStore{
		tables: make(map[string][]storage.StoredRow),
	}
}

func (s *memStore) CountRows(table string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.tables[table])), nil
}

func (s *memStore) AppendRow(table string, row storage.Row) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rid := int64(len(s.tables[table]))
	s.tables[table] = append(s.tables[table], storage.StoredRow{
		RID:    rid,
		Values: row.Clone(),
	})
	return rid, nil
}

func (s *memStore) ReadRows(table string) ([]storage.StoredRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.tables[table]
	if len(stored) == 0 {
		return nil, nil
	}

	// Return a deep copy to prevent callers from mutating stored data.
	rows := make([]storage.StoredRow, len(stored))
	for i, r := range stored {
		rows[i] = storage.StoredRow{RID: r.RID, Values: r.Values.Clone()}
	}
	return rows, nil
}

func (s *memStore) RewriteRows(table string, rows []storage.StoredRow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	newRows := make([]storage.StoredRow, len(rows))
	for i, r := range rows {
		newRows[i] = storage.StoredRow{RID: r.RID, Values: r.Values.Clone()}
	}
	s.tables[table] = newRows
	return nil
}

func (s *memStore) LoadCatalog() (*catalog.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.catalog == nil {
		return catalog.New(), nil
	}
	return s.catalog, nil
}

func (s *memStore) SaveCatalog(c *catalog.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = c
	return nil
}
