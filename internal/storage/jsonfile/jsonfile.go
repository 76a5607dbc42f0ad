// Package jsonfile persists each table as one JSON document under a
// directory, rewritten whole on every mutation.
package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend stores table documents as <dir>/<table>.json files.
type Backend struct {
	dir string
}

// New returns a backend rooted at dir. The directory is created by Ensure.
func New(dir string) *Backend {
	return &Backend{dir: dir}
}

func (b *Backend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

// Ensure creates the storage directory if it does not exist.
func (b *Backend) Ensure() error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	return nil
}

// TableExists reports whether the table's document file is present.
func (b *Backend) TableExists(name string) (bool, error) {
	_, err := os.Stat(b.path(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", name, err)
}

// ReadTable returns the table's document file contents.
func (b *Backend) ReadTable(name string) ([]byte, error) {
	doc, err := os.ReadFile(b.path(name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return doc, nil
}

// WriteTable replaces the table's document file.
func (b *Backend) WriteTable(name string, doc []byte) error {
	if err := os.WriteFile(b.path(name), doc, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Close is a no-op; files are closed after every read and write.
func (b *Backend) Close() error { return nil }
