// Relationship metadata operations. The table holds at most one row with the
// fixed id 1; InitializeRelationshipMetadata upserts it, preserving the
// original creation time on replace.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uplove-app/uplove/internal/validate"
	"github.com/uplove-app/uplove/pkg/types"
)

// InitializeRelationshipMetadata creates or renames the singleton metadata
// row. Idempotent: repeated calls keep exactly one row carrying the latest
// name and the first creation time.
func (s *Store) InitializeRelationshipMetadata(ctx context.Context, name string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	sanitized, err := validate.String(name, "name", 1, nameMaxLen)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO relationship_metadata (id, name, created_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		sanitized, toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("initializing relationship metadata: %w", err)
	}
	return nil
}

// GetRelationshipMetadata returns the singleton metadata row, or nil if the
// relationship was never initialized.
func (s *Store) GetRelationshipMetadata(ctx context.Context) (*types.RelationshipMetadata, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var (
		name      string
		createdAt int64
	)
	err = db.QueryRowContext(ctx,
		"SELECT name, created_at FROM relationship_metadata WHERE id = 1",
	).Scan(&name, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting relationship metadata: %w", err)
	}

	return &types.RelationshipMetadata{
		Name:      name,
		CreatedAt: fromMillis(createdAt),
	}, nil
}

// UpdateRelationshipMetadata renames the relationship. Unlike the
// initializer, it requires the row to exist already.
func (s *Store) UpdateRelationshipMetadata(ctx context.Context, name string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	sanitized, err := validate.String(name, "name", 1, nameMaxLen)
	if err != nil {
		return err
	}

	return verifyThenAct("relationship metadata",
		func() (bool, error) {
			return rowExists(ctx, db, "SELECT 1 FROM relationship_metadata WHERE id = 1")
		},
		func() (int64, error) {
			return execAffected(ctx, db,
				"UPDATE relationship_metadata SET name = ? WHERE id = 1", sanitized)
		},
	)
}
