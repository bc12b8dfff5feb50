package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Storage abstracts where downloaded media lives. Names are relative,
// slash-separated paths like "gmaps_images/abc0.jpeg".
type Storage interface {
	// Exists reports whether a file is already stored under name.
	Exists(ctx context.Context, name string) bool

	// Save writes data under name, creating parent directories as needed.
	Save(ctx context.Context, name string, data []byte) error

	// Delete removes the file stored under name. Deleting a missing file
	// returns an error satisfying errors.Is(err, fs.ErrNotExist) on backends
	// that can tell the difference.
	Delete(ctx context.Context, name string) error
}

// LocalStorage keeps media on disk under a single root directory, matching
// the site's MEDIA_ROOT layout.
type LocalStorage struct {
	root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{root: root}
}

func (s *LocalStorage) Exists(_ context.Context, name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

func (s *LocalStorage) Save(_ context.Context, name string, data []byte) error {
	path := s.path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating media directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (s *LocalStorage) Delete(_ context.Context, name string) error {
	return os.Remove(s.path(name))
}

func (s *LocalStorage) path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}
