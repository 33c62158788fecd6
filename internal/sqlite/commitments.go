// Commitment operations. Todos and tokeeps share one table discriminated by
// a type tag; every read and write filters on it so the variants never mix.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uplove-app/uplove/internal/validate"
	"github.com/uplove-app/uplove/pkg/types"
)

// CreateTodo inserts a one-off task commitment.
func (s *Store) CreateTodo(ctx context.Context, description string, isDone bool) (*types.Commitment, error) {
	return s.createCommitment(ctx, types.CommitmentTodo, description, isDone)
}

// CreateToKeep inserts a standing-practice commitment.
func (s *Store) CreateToKeep(ctx context.Context, description string, isDone bool) (*types.Commitment, error) {
	return s.createCommitment(ctx, types.CommitmentToKeep, description, isDone)
}

func (s *Store) createCommitment(ctx context.Context, ct types.CommitmentType, description string, isDone bool) (*types.Commitment, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	sanitized, err := validate.String(description, "description", 1, descriptionMaxLen)
	if err != nil {
		return nil, err
	}

	id := generateID()
	if _, err := db.ExecContext(ctx,
		"INSERT INTO commitments (id, type, description, is_done) VALUES (?, ?, ?, ?)",
		id, string(ct), sanitized, boolToInt(isDone),
	); err != nil {
		return nil, fmt.Errorf("creating %s: %w", ct, err)
	}

	return &types.Commitment{ID: id, Type: ct, Description: sanitized, IsDone: isDone}, nil
}

// GetTodo fetches a todo by id. Returns nil, nil when absent or when the id
// belongs to the other variant.
func (s *Store) GetTodo(ctx context.Context, id string) (*types.Commitment, error) {
	return s.getCommitment(ctx, types.CommitmentTodo, id)
}

// GetToKeep fetches a tokeep by id. Returns nil, nil when absent or when the
// id belongs to the other variant.
func (s *Store) GetToKeep(ctx context.Context, id string) (*types.Commitment, error) {
	return s.getCommitment(ctx, types.CommitmentToKeep, id)
}

func (s *Store) getCommitment(ctx context.Context, ct types.CommitmentType, id string) (*types.Commitment, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var (
		c      types.Commitment
		isDone int
	)
	err = db.QueryRowContext(ctx,
		"SELECT id, description, is_done FROM commitments WHERE id = ? AND type = ?",
		id, string(ct),
	).Scan(&c.ID, &c.Description, &isDone)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", ct, id, err)
	}

	c.Type = ct
	c.IsDone = isDone == 1
	return &c, nil
}

// GetAllTodos fetches up to the configured list limit of todos.
func (s *Store) GetAllTodos(ctx context.Context) ([]types.Commitment, error) {
	return s.getAllCommitments(ctx, types.CommitmentTodo)
}

// GetAllToKeeps fetches up to the configured list limit of tokeeps.
func (s *Store) GetAllToKeeps(ctx context.Context) ([]types.Commitment, error) {
	return s.getAllCommitments(ctx, types.CommitmentToKeep)
}

func (s *Store) getAllCommitments(ctx context.Context, ct types.CommitmentType) ([]types.Commitment, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id, description, is_done FROM commitments WHERE type = ? LIMIT ?",
		string(ct), s.listLimit())
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", ct, err)
	}
	defer rows.Close()

	commitments := []types.Commitment{}
	for rows.Next() {
		var (
			c      types.Commitment
			isDone int
		)
		if err := rows.Scan(&c.ID, &c.Description, &isDone); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", ct, err)
		}
		c.Type = ct
		c.IsDone = isDone == 1
		commitments = append(commitments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing %ss: %w", ct, err)
	}
	return commitments, nil
}

// UpdateTodo replaces a todo's description and completion flag.
func (s *Store) UpdateTodo(ctx context.Context, id, description string, isDone bool) error {
	return s.updateCommitment(ctx, types.CommitmentTodo, id, description, isDone)
}

// UpdateToKeep replaces a tokeep's description and completion flag.
func (s *Store) UpdateToKeep(ctx context.Context, id, description string, isDone bool) error {
	return s.updateCommitment(ctx, types.CommitmentToKeep, id, description, isDone)
}

func (s *Store) updateCommitment(ctx context.Context, ct types.CommitmentType, id, description string, isDone bool) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	sanitized, err := validate.String(description, "description", 1, descriptionMaxLen)
	if err != nil {
		return err
	}

	return verifyThenAct(string(ct),
		func() (bool, error) {
			return rowExists(ctx, db,
				"SELECT 1 FROM commitments WHERE id = ? AND type = ?", id, string(ct))
		},
		func() (int64, error) {
			return execAffected(ctx, db,
				"UPDATE commitments SET description = ?, is_done = ? WHERE id = ? AND type = ?",
				sanitized, boolToInt(isDone), id, string(ct))
		},
	)
}

// DeleteTodo removes a todo.
func (s *Store) DeleteTodo(ctx context.Context, id string) error {
	return s.deleteCommitment(ctx, types.CommitmentTodo, id)
}

// DeleteToKeep removes a tokeep.
func (s *Store) DeleteToKeep(ctx context.Context, id string) error {
	return s.deleteCommitment(ctx, types.CommitmentToKeep, id)
}

func (s *Store) deleteCommitment(ctx context.Context, ct types.CommitmentType, id string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	return verifyThenAct(string(ct),
		func() (bool, error) {
			return rowExists(ctx, db,
				"SELECT 1 FROM commitments WHERE id = ? AND type = ?", id, string(ct))
		},
		func() (int64, error) {
			return execAffected(ctx, db,
				"DELETE FROM commitments WHERE id = ? AND type = ?", id, string(ct))
		},
	)
}

// boolToInt converts a flag to its stored 0/1 form.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
