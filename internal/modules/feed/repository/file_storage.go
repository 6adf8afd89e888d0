package repository

import (
	"os"
	"path/filepath"
	"sync"

	sharedErrors "github.com/childsafetyawarenesswa-lgtm/childsafetyrss/internal/shared/errors"
	"github.com/samber/oops"
)

// FileStorage implements Repository on a single well-known file path.
type FileStorage struct {
	path string
	mu   sync.RWMutex
}

// NewFileStorage creates the artifact store, ensuring the parent directory
// exists.
func NewFileStorage(path string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, oops.With("output_path", path, "context", "failed to create output directory").Wrap(err)
	}
	return &FileStorage{path: path}, nil
}

// Exists reports whether the artifact file is present.
func (s *FileStorage) Exists() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, oops.With("output_path", s.path, "context", "failed to stat feed file").Wrap(err)
}

// Write stages the document next to the target and renames it into place,
// so a crash mid-write never leaves a partial feed behind.
func (s *FileStorage) Write(xmlText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(xmlText), 0644); err != nil {
		return oops.With("output_path", s.path, "context", "failed to write feed file").Wrap(err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return oops.With("output_path", s.path, "context", "failed to replace feed file").Wrap(err)
	}
	return nil
}

// Read returns the artifact contents.
func (s *FileStorage) Read() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", sharedErrors.ErrFeedNotPublished
		}
		return "", oops.With("output_path", s.path, "context", "failed to read feed file").Wrap(err)
	}
	return string(data), nil
}
