package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"planner/internal/models"
)

// Logical table names. One durable document exists per table.
const (
	TableUsers       = "users"
	TableTeams       = "teams"
	TableMemberships = "user_teams"
	TableBoards      = "boards"
	TableTasks       = "tasks"
)

// Backend is the durable medium a Store writes through. The whole table is
// the unit of durability: WriteTable replaces the table's entire document.
type Backend interface {
	// Ensure prepares the medium (directory, schema) before first use.
	Ensure() error
	// TableExists reports whether a document for the table has been written.
	TableExists(name string) (bool, error)
	// ReadTable returns the table's current document.
	ReadTable(name string) ([]byte, error)
	// WriteTable durably replaces the table's document.
	WriteTable(name string, doc []byte) error
	// Close releases the medium's resources.
	Close() error
}

// Store hands out typed tables backed by a shared durable medium.
type Store struct {
	backend Backend
	logger  *slog.Logger
	now     func() time.Time
}

// Open prepares the backend and returns a store over it.
func Open(backend Backend, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := backend.Ensure(); err != nil {
		return nil, fmt.Errorf("ensure storage: %w", err)
	}
	return &Store{backend: backend, logger: logger, now: time.Now}, nil
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Record constrains table element types to structs embedding models.Meta.
type Record[T any] interface {
	*T
	GetMeta() *models.Meta
}

// Table is a typed view over one named table. Each table keeps an in-memory
// copy of its records behind a mutex; every mutation flushes the full
// document back to the backend before returning, so reads within the
// process always observe the last completed write.
type Table[T any, P Record[T]] struct {
	store  *Store
	name   string
	mu     sync.Mutex
	cache  map[string]T
	loaded bool
}

// NewTable binds a typed table to its named document in the store.
func NewTable[T any, P Record[T]](s *Store, name string) *Table[T, P] {
	return &Table[T, P]{store: s, name: name}
}

// load populates the cache from the backend on first use. Callers hold mu.
func (t *Table[T, P]) load() error {
	if t.loaded {
		return nil
	}
	exists, err := t.store.backend.TableExists(t.name)
	if err != nil {
		return fmt.Errorf("check table %s: %w", t.name, err)
	}
	records := make(map[string]T)
	if exists {
		doc, err := t.store.backend.ReadTable(t.name)
		if err != nil {
			return fmt.Errorf("read table %s: %w", t.name, err)
		}
		if len(doc) > 0 {
			if err := json.Unmarshal(doc, &records); err != nil {
				return fmt.Errorf("decode table %s: %w", t.name, err)
			}
		}
	}
	t.cache = records
	t.loaded = true
	return nil
}

// flush writes the full table document to the backend. Callers hold mu.
func (t *Table[T, P]) flush() error {
	doc, err := json.MarshalIndent(t.cache, "", "  ")
	if err != nil {
		return fmt.Errorf("encode table %s: %w", t.name, err)
	}
	if err := t.store.backend.WriteTable(t.name, doc); err != nil {
		return fmt.Errorf("write table %s: %w", t.name, err)
	}
	return nil
}

// Create assigns a fresh id and creation time, persists the record and
// returns the id.
func (t *Table[T, P]) Create(rec T) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.load(); err != nil {
		return "", err
	}

	meta := P(&rec).GetMeta()
	meta.ID = uuid.NewString()
	meta.CreationTime = t.store.now()

	t.cache[meta.ID] = rec
	if err := t.flush(); err != nil {
		delete(t.cache, meta.ID)
		return "", err
	}
	return meta.ID, nil
}

// Get returns the record with the given id, reporting absence without error.
func (t *Table[T, P]) Get(id string) (T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	if err := t.load(); err != nil {
		return zero, false, err
	}
	rec, ok := t.cache[id]
	return rec, ok, nil
}

// All returns every record in the table in no particular order.
func (t *Table[T, P]) All() ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.load(); err != nil {
		return nil, err
	}
	records := make([]T, 0, len(t.cache))
	for _, rec := range t.cache {
		records = append(records, rec)
	}
	return records, nil
}

// Update applies mutate to the stored record and persists the result. The
// record's id and creation time are preserved no matter what mutate does.
// Returns false without error when the id is absent.
func (t *Table[T, P]) Update(id string, mutate func(*T)) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.load(); err != nil {
		return false, err
	}
	prev, ok := t.cache[id]
	if !ok {
		return false, nil
	}

	rec := prev
	mutate(&rec)
	*P(&rec).GetMeta() = *P(&prev).GetMeta()

	t.cache[id] = rec
	if err := t.flush(); err != nil {
		t.cache[id] = prev
		return false, err
	}
	return true, nil
}

// Delete removes the record with the given id. Returns false without error
// when the id is absent.
func (t *Table[T, P]) Delete(id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.load(); err != nil {
		return false, err
	}
	prev, ok := t.cache[id]
	if !ok {
		return false, nil
	}
	delete(t.cache, id)
	if err := t.flush(); err != nil {
		t.cache[id] = prev
		return false, err
	}
	return true, nil
}

// Filter returns every record matching the predicate; an empty slice when
// none do.
func (t *Table[T, P]) Filter(pred func(T) bool) ([]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.load(); err != nil {
		return nil, err
	}
	matches := make([]T, 0)
	for _, rec := range t.cache {
		if pred(rec) {
			matches = append(matches, rec)
		}
	}
	return matches, nil
}
