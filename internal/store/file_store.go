package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"primecount/internal/domain"
)

// FileStore keeps run history in a single JSON file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by path. The parent directory is
// created on first save.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// SaveRun appends run to the history file.
func (s *FileStore) SaveRun(run domain.Comparison) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var runs []domain.Comparison
	if err := readJSON(s.path, &runs); err != nil {
		return fmt.Errorf("load history %s: %w", s.path, err)
	}
	runs = append(runs, run)
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := writeJSON(s.path, runs, 0o644); err != nil {
		return fmt.Errorf("write history %s: %w", s.path, err)
	}
	return nil
}

// ListRuns returns stored runs, oldest first. A missing file is empty history.
func (s *FileStore) ListRuns() ([]domain.Comparison, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var runs []domain.Comparison
	if err := readJSON(s.path, &runs); err != nil {
		return nil, fmt.Errorf("load history %s: %w", s.path, err)
	}
	return runs, nil
}

// Close is a no-op; FileStore holds no open handles.
func (s *FileStore) Close() error { return nil }
