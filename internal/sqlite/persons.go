// Person operations. A person carries their necessities on every read;
// GetAllPersons fetches them for the whole page in one batched query rather
// than one query per person.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/uplove-app/uplove/internal/validate"
	"github.com/uplove-app/uplove/pkg/types"
)

// CreatePerson inserts a new person and returns it with an empty necessity
// list.
func (s *Store) CreatePerson(ctx context.Context, name string) (*types.Person, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	sanitized, err := validate.String(name, "name", 1, nameMaxLen)
	if err != nil {
		return nil, err
	}

	id := generateID()
	if _, err := db.ExecContext(ctx,
		"INSERT INTO persons (id, name) VALUES (?, ?)", id, sanitized,
	); err != nil {
		return nil, fmt.Errorf("creating person: %w", err)
	}

	return &types.Person{ID: id, Name: sanitized, Necessities: []types.Necessity{}}, nil
}

// GetPerson fetches a person with their necessities. Returns nil, nil when
// the id does not exist.
func (s *Store) GetPerson(ctx context.Context, id string) (*types.Person, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return getPerson(ctx, db, id)
}

func getPerson(ctx context.Context, db *sql.DB, id string) (*types.Person, error) {
	var person types.Person
	err := db.QueryRowContext(ctx,
		"SELECT id, name FROM persons WHERE id = ?", id,
	).Scan(&person.ID, &person.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting person %s: %w", id, err)
	}

	necessities, err := necessitiesByPerson(ctx, db, id)
	if err != nil {
		return nil, err
	}
	person.Necessities = necessities
	return &person, nil
}

// GetAllPersons fetches up to the configured list limit of persons, each with
// their necessities. Necessities for the whole page come from a single query
// keyed by the returned person ids.
func (s *Store) GetAllPersons(ctx context.Context) ([]types.Person, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id, name FROM persons LIMIT ?", s.listLimit())
	if err != nil {
		return nil, fmt.Errorf("listing persons: %w", err)
	}
	defer rows.Close()

	persons := []types.Person{}
	for rows.Next() {
		var p types.Person
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		p.Necessities = []types.Necessity{}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing persons: %w", err)
	}
	if len(persons) == 0 {
		return persons, nil
	}

	ids := make([]any, len(persons))
	placeholders := make([]string, len(persons))
	for i, p := range persons {
		ids[i] = p.ID
		placeholders[i] = "?"
	}

	necessityRows, err := db.QueryContext(ctx,
		"SELECT id, person_id, name, description FROM necessities WHERE person_id IN ("+
			strings.Join(placeholders, ",")+")",
		ids...,
	)
	if err != nil {
		return nil, fmt.Errorf("listing necessities: %w", err)
	}
	defer necessityRows.Close()

	byPerson := make(map[string][]types.Necessity)
	for necessityRows.Next() {
		var n types.Necessity
		if err := necessityRows.Scan(&n.ID, &n.PersonID, &n.Name, &n.Description); err != nil {
			return nil, fmt.Errorf("scanning necessity: %w", err)
		}
		byPerson[n.PersonID] = append(byPerson[n.PersonID], n)
	}
	if err := necessityRows.Err(); err != nil {
		return nil, fmt.Errorf("listing necessities: %w", err)
	}

	for i := range persons {
		if necessities, ok := byPerson[persons[i].ID]; ok {
			persons[i].Necessities = necessities
		}
	}
	return persons, nil
}

// UpdatePerson replaces the person's name.
func (s *Store) UpdatePerson(ctx context.Context, id, name string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	sanitized, err := validate.String(name, "name", 1, nameMaxLen)
	if err != nil {
		return err
	}

	return verifyThenAct("person",
		func() (bool, error) {
			return rowExists(ctx, db, "SELECT 1 FROM persons WHERE id = ?", id)
		},
		func() (int64, error) {
			return execAffected(ctx, db,
				"UPDATE persons SET name = ? WHERE id = ?", sanitized, id)
		},
	)
}

// DeletePerson removes a person. The engine cascades the delete to the
// person's necessities.
func (s *Store) DeletePerson(ctx context.Context, id string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	return verifyThenAct("person",
		func() (bool, error) {
			return rowExists(ctx, db, "SELECT 1 FROM persons WHERE id = ?", id)
		},
		func() (int64, error) {
			return execAffected(ctx, db, "DELETE FROM persons WHERE id = ?", id)
		},
	)
}
