package imagestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"blog-app/internal/domain/blogs"

	"github.com/google/uuid"
)

// StorageError wraps a filesystem failure inside the store.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("imagestore: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store keeps uploaded blog images under a single directory. Filenames
// are derived here, never taken from the client.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes data under a fresh filename built from the current unix
// time, a slug of the hint (the blog title) and a random suffix, so two
// saves in the same clock tick cannot collide. The directory is created
// on first use.
func (s *Store) Save(data []byte, ext, hint string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &StorageError{Op: "mkdir", Path: s.dir, Err: err}
	}

	name := fmt.Sprintf("%d-%s-%s.%s",
		time.Now().Unix(),
		blogs.MakeSlug(hint),
		uuid.NewString()[:8],
		strings.ToLower(strings.TrimPrefix(ext, ".")),
	)

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", &StorageError{Op: "write", Path: path, Err: err}
	}
	return name, nil
}

// Delete removes a stored file. An empty name and an already-missing
// file are both no-ops, so callers can delete unconditionally.
func (s *Store) Delete(name string) error {
	if name == "" {
		return nil
	}
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &StorageError{Op: "remove", Path: path, Err: err}
	}
	return nil
}

// Exists reports whether a stored filename is present on disk.
func (s *Store) Exists(name string) bool {
	if name == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(name)))
	return err == nil
}
