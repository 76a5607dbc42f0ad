// Package sqlite persists table documents as rows of a single SQLite file,
// one whole JSON document per table. SQLite's journal gives each document
// replacement atomicity the plain-file backend cannot.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Backend keeps every table document in one database file.
type Backend struct {
	db *sql.DB
}

// Open opens (creating if needed) the database file.
func Open(dbPath string) (*Backend, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("empty database path")
	}
	if err := ensureDir(dbPath); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	return &Backend{db: conn}, nil
}

func ensureDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Ensure creates the documents table if it does not exist.
func (b *Backend) Ensure() error {
	_, err := b.db.Exec(`CREATE TABLE IF NOT EXISTS documents (
        name TEXT PRIMARY KEY,
        doc BLOB NOT NULL,
        updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
    );`)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// TableExists reports whether a document row exists for the table.
func (b *Backend) TableExists(name string) (bool, error) {
	var one int
	err := b.db.QueryRow(`SELECT 1 FROM documents WHERE name = ?`, name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check document %s: %w", name, err)
	}
	return true, nil
}

// ReadTable returns the document stored for the table.
func (b *Backend) ReadTable(name string) ([]byte, error) {
	var doc []byte
	err := b.db.QueryRow(`SELECT doc FROM documents WHERE name = ?`, name).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %s not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", name, err)
	}
	return doc, nil
}

// WriteTable replaces the document stored for the table.
func (b *Backend) WriteTable(name string, doc []byte) error {
	_, err := b.db.Exec(`INSERT INTO documents(name, doc, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(name) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP`, name, doc)
	if err != nil {
		return fmt.Errorf("write document %s: %w", name, err)
	}
	return nil
}

// Close releases the database resources.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}
