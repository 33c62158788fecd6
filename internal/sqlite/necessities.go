// Necessity operations. Every necessity belongs to exactly one person;
// creation confirms the owner exists first.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uplove-app/uplove/internal/validate"
	"github.com/uplove-app/uplove/pkg/types"
)

// CreateNecessity inserts a necessity owned by the given person. Fails with
// NotFoundError when the person does not exist.
func (s *Store) CreateNecessity(ctx context.Context, personID, name, description string) (*types.Necessity, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	sanitizedName, err := validate.String(name, "name", 1, nameMaxLen)
	if err != nil {
		return nil, err
	}
	sanitizedDescription, err := validate.String(description, "description", 1, descriptionMaxLen)
	if err != nil {
		return nil, err
	}

	ok, err := rowExists(ctx, db, "SELECT 1 FROM persons WHERE id = ?", personID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, types.NewNotFoundError("person")
	}

	id := generateID()
	if _, err := db.ExecContext(ctx,
		"INSERT INTO necessities (id, person_id, name, description) VALUES (?, ?, ?, ?)",
		id, personID, sanitizedName, sanitizedDescription,
	); err != nil {
		return nil, fmt.Errorf("creating necessity: %w", err)
	}

	return &types.Necessity{ID: id, PersonID: personID, Name: sanitizedName, Description: sanitizedDescription}, nil
}

// GetNecessity fetches a necessity by id. Returns nil, nil when absent.
func (s *Store) GetNecessity(ctx context.Context, id string) (*types.Necessity, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var n types.Necessity
	err = db.QueryRowContext(ctx,
		"SELECT id, person_id, name, description FROM necessities WHERE id = ?", id,
	).Scan(&n.ID, &n.PersonID, &n.Name, &n.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting necessity %s: %w", id, err)
	}
	return &n, nil
}

// GetNecessitiesByPerson fetches all necessities owned by the given person.
// Fails with NotFoundError when the person does not exist.
func (s *Store) GetNecessitiesByPerson(ctx context.Context, personID string) ([]types.Necessity, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	ok, err := rowExists(ctx, db, "SELECT 1 FROM persons WHERE id = ?", personID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, types.NewNotFoundError("person")
	}

	return necessitiesByPerson(ctx, db, personID)
}

func necessitiesByPerson(ctx context.Context, db *sql.DB, personID string) ([]types.Necessity, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT id, person_id, name, description FROM necessities WHERE person_id = ?", personID)
	if err != nil {
		return nil, fmt.Errorf("listing necessities for person %s: %w", personID, err)
	}
	defer rows.Close()

	necessities := []types.Necessity{}
	for rows.Next() {
		var n types.Necessity
		if err := rows.Scan(&n.ID, &n.PersonID, &n.Name, &n.Description); err != nil {
			return nil, fmt.Errorf("scanning necessity: %w", err)
		}
		necessities = append(necessities, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing necessities for person %s: %w", personID, err)
	}
	return necessities, nil
}

// UpdateNecessity replaces the necessity's name and description.
func (s *Store) UpdateNecessity(ctx context.Context, id, name, description string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	sanitizedName, err := validate.String(name, "name", 1, nameMaxLen)
	if err != nil {
		return err
	}
	sanitizedDescription, err := validate.String(description, "description", 1, descriptionMaxLen)
	if err != nil {
		return err
	}

	return verifyThenAct("necessity",
		func() (bool, error) {
			return rowExists(ctx, db, "SELECT 1 FROM necessities WHERE id = ?", id)
		},
		func() (int64, error) {
			return execAffected(ctx, db,
				"UPDATE necessities SET name = ?, description = ? WHERE id = ?",
				sanitizedName, sanitizedDescription, id)
		},
	)
}

// DeleteNecessity removes a necessity.
func (s *Store) DeleteNecessity(ctx context.Context, id string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	return verifyThenAct("necessity",
		func() (bool, error) {
			return rowExists(ctx, db, "SELECT 1 FROM necessities WHERE id = ?", id)
		},
		func() (int64, error) {
			return execAffected(ctx, db, "DELETE FROM necessities WHERE id = ?", id)
		},
	)
}
