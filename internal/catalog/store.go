package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"linkboard/internal/logging"
)

// Store reads and writes the catalog file. Saves replace the whole file via
// a temp file and rename, so a failed write never corrupts the previous
// catalog. There is no cross-process locking: concurrent writers are
// last-writer-wins.
type Store struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewStore creates a store for the catalog file at path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logging.NewComponentLogger(logger, "catalog"),
	}
}

// Path returns the catalog file location.
func (s *Store) Path() string { return s.path }

// Load reads the full record list. A missing catalog file is not an error;
// it loads as an empty catalog.
func (s *Store) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("catalog file absent, starting empty", logging.String("path", s.path))
			return nil, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	s.logger.Debug("loaded catalog",
		logging.Int("record_count", len(records)),
		logging.String("path", s.path))
	return records, nil
}

// Save overwrites the catalog with the given records, written as indented
// JSON with stable field order.
func (s *Store) Save(records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if records == nil {
		records = []Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalog directory: %w", err)
		}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace catalog: %w", err)
	}

	s.logger.Debug("saved catalog",
		logging.Int("record_count", len(records)),
		logging.String("path", s.path))
	return nil
}

// Append loads the catalog, appends the record, and saves the whole file.
func (s *Store) Append(record Record) error {
	records, err := s.Load()
	if err != nil {
		return err
	}
	return s.Save(append(records, record))
}
