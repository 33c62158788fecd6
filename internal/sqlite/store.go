// Package sqlite implements the validated persistence layer for the uplove
// relationship store. Every operation validates its inputs through
// internal/validate before touching storage, confirms existence before
// mutating, and fails with one of the typed errors from pkg/types.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/uplove-app/uplove/pkg/types"
)

// DBFileName is the database file created inside Config.DataDir.
const DBFileName = "uplove.db"

// dsnOptions is appended to the database path so the driver applies the
// pragmas on every connection it opens, not just the first one the pool
// hands out. Foreign key enforcement, WAL journaling, and fully synchronous
// writes are all per-connection state in SQLite.
const dsnOptions = "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(FULL)"

// Field length bounds shared by the entity operations.
const (
	nameMaxLen        = 255
	descriptionMaxLen = 1000
)

// Store is the data-access service backed by a single SQLite handle. The
// zero value is not usable; call New then Open. After Close, every
// operation returns types.ErrStoreClosed until the store is reopened.
type Store struct {
	mu    sync.RWMutex
	open  bool
	db    *sql.DB
	limit int
}

// New creates a Store. The store is closed; call Open with a Config.
func New() *Store {
	return &Store{}
}

// Open initializes the store: creates the data directory, opens the
// database with foreign key enforcement, WAL journaling, and full
// synchronous writes requested for every connection, verifies that
// enforcement took effect, and applies the schema.
// Returns types.ErrAlreadyOpen if the store is already open.
func (s *Store) Open(cfg types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(cfg.DataDir, DBFileName)+dsnOptions)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := verifyForeignKeys(db); err != nil {
		db.Close()
		return err
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("apply indexes: %w", err)
		}
	}

	s.db = db
	s.limit = cfg.EffectiveListLimit()
	s.open = true
	return nil
}

// verifyForeignKeys reads the foreign_keys flag back after opening. The DSN
// requests enforcement on every connection; an unconfirmed flag means
// referential integrity cannot be trusted and opening must fail.
func verifyForeignKeys(db *sql.DB) error {
	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys;").Scan(&fk); err != nil {
		return fmt.Errorf("read foreign_keys flag: %w", err)
	}
	if fk != 1 {
		return types.NewDataIntegrityError("foreign key constraints could not be enabled")
	}
	return nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	s.db = nil
	s.open = false
	return nil
}

// handle returns the database handle, or ErrStoreClosed when the store is
// not open.
func (s *Store) handle() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// listLimit returns the configured cap for getAll operations.
func (s *Store) listLimit() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.limit
}

// generateID generates a new UUID v7 for entity ids.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// toMillis converts a timestamp to the stored epoch-millisecond form.
func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// fromMillis converts a stored epoch-millisecond value back to a timestamp.
func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// rowExists reports whether the given query returns at least one row.
func rowExists(ctx context.Context, db *sql.DB, query string, args ...any) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("existence check: %w", err)
	}
	return true, nil
}
