package sqlite

import (
	"context"
	"fmt"
)

// Reset deletes every row from every table, children before parents, in one
// transaction. The schema stays in place, so the store is immediately usable
// afterwards. Reset is a maintenance operation: it targets tables directly
// and bypasses the per-entity validation.
func (s *Store) Reset(ctx context.Context) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range clearOrder {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing reset: %w", err)
	}
	return nil
}
