package filestore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"minidb/internal/catalog"
	"minidb/internal/storage"
)

const (
	catalogFileName = "catalog.json"
	tableFileExt    = ".jsonl"
)

// FileStore persists rows as line-delimited JSON records, one file per
// table, plus a single catalog.json document for the schema registry.
// It assumes exactly one process owns the data directory; there is no
// file locking.
type FileStore struct {
	dataDir string
}

// New creates the data directory if needed and returns a store rooted at it.
func New(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dataDir: dataDir}, nil
}

func (s *FileStore) tablePath(table string) string {
	return filepath.Join(s.dataDir, table+tableFileExt)
}

func (s *FileStore) catalogPath() string {
	return filepath.Join(s.dataDir, catalogFileName)
}

func (s *FileStore) CountRows(table string) (int64, error) {
	f, err := os.Open(s.tablePath(table))
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	var n int64
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			n++
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("scan table file: %w", err)
	}
	return n, nil
}

func (s *FileStore) AppendRow(table string, row storage.Row) (int64, error) {
	rid, err := s.CountRows(table)
	if err != nil {
		return 0, err
	}

	record, err := json.Marshal(storage.StoredRow{RID: rid, Values: row})
	if err != nil {
		return 0, fmt.Errorf("marshal row: %w", err)
	}

	f, err := os.OpenFile(s.tablePath(table), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(record, '\n')); err != nil {
		return 0, fmt.Errorf("append row: %w", err)
	}
	return rid, nil
}

func (s *FileStore) ReadRows(table string) ([]storage.StoredRow, error) {
	f, err := os.Open(s.tablePath(table))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	var rows []storage.StoredRow
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var row storage.StoredRow
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("decode row record in %s: %w", table, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan table file: %w", err)
	}
	return rows, nil
}

func (s *FileStore) RewriteRows(table string, rows []storage.StoredRow) error {
	var buf strings.Builder
	for _, row := range rows {
		record, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("marshal row: %w", err)
		}
		buf.Write(record)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(s.tablePath(table), []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("rewrite table file: %w", err)
	}
	return nil
}

func (s *FileStore) LoadCatalog() (*catalog.Catalog, error) {
	data, err := os.ReadFile(s.catalogPath())
	if os.IsNotExist(err) {
		return catalog.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	cat := catalog.New()
	if err := json.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return cat, nil
}

func (s *FileStore) SaveCatalog(c *catalog.Catalog) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(s.catalogPath(), data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}
