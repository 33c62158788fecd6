// Pillar operations, plus the per-priority satisfaction summary.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uplove-app/uplove/internal/validate"
	"github.com/uplove-app/uplove/pkg/types"
)

// CreatePillar inserts a new pillar. Satisfaction outside [1,10] is
// rejected, never clamped.
func (s *Store) CreatePillar(ctx context.Context, name, priority string, satisfaction int) (*types.Pillar, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	sanitized, err := validate.String(name, "name", 1, nameMaxLen)
	if err != nil {
		return nil, err
	}
	validPriority, err := validate.Priority(priority)
	if err != nil {
		return nil, err
	}
	if err := validate.Satisfaction(satisfaction); err != nil {
		return nil, err
	}

	id := generateID()
	if _, err := db.ExecContext(ctx,
		"INSERT INTO pillars (id, name, priority, satisfaction) VALUES (?, ?, ?, ?)",
		id, sanitized, string(validPriority), satisfaction,
	); err != nil {
		return nil, fmt.Errorf("creating pillar: %w", err)
	}

	return &types.Pillar{ID: id, Name: sanitized, Priority: validPriority, Satisfaction: satisfaction}, nil
}

// GetPillar fetches a pillar by id. Returns nil, nil when absent.
func (s *Store) GetPillar(ctx context.Context, id string) (*types.Pillar, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return getPillar(ctx, db, id)
}

func getPillar(ctx context.Context, db *sql.DB, id string) (*types.Pillar, error) {
	var p types.Pillar
	err := db.QueryRowContext(ctx,
		"SELECT id, name, priority, satisfaction FROM pillars WHERE id = ?", id,
	).Scan(&p.ID, &p.Name, &p.Priority, &p.Satisfaction)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting pillar %s: %w", id, err)
	}
	return &p, nil
}

// GetAllPillars fetches up to the configured list limit of pillars.
func (s *Store) GetAllPillars(ctx context.Context) ([]types.Pillar, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id, name, priority, satisfaction FROM pillars LIMIT ?", s.listLimit())
	if err != nil {
		return nil, fmt.Errorf("listing pillars: %w", err)
	}
	defer rows.Close()

	pillars := []types.Pillar{}
	for rows.Next() {
		var p types.Pillar
		if err := rows.Scan(&p.ID, &p.Name, &p.Priority, &p.Satisfaction); err != nil {
			return nil, fmt.Errorf("scanning pillar: %w", err)
		}
		pillars = append(pillars, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing pillars: %w", err)
	}
	return pillars, nil
}

// UpdatePillar replaces the pillar's name, priority, and satisfaction.
func (s *Store) UpdatePillar(ctx context.Context, id, name, priority string, satisfaction int) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	sanitized, err := validate.String(name, "name", 1, nameMaxLen)
	if err != nil {
		return err
	}
	validPriority, err := validate.Priority(priority)
	if err != nil {
		return err
	}
	if err := validate.Satisfaction(satisfaction); err != nil {
		return err
	}

	return verifyThenAct("pillar",
		func() (bool, error) {
			return rowExists(ctx, db, "SELECT 1 FROM pillars WHERE id = ?", id)
		},
		func() (int64, error) {
			return execAffected(ctx, db,
				"UPDATE pillars SET name = ?, priority = ?, satisfaction = ? WHERE id = ?",
				sanitized, string(validPriority), satisfaction, id)
		},
	)
}

// DeletePillar removes a pillar. The engine refuses the delete while any
// check-in still references the pillar; that surfaces as a DataIntegrityError
// since it means the caller is about to orphan stored references.
func (s *Store) DeletePillar(ctx context.Context, id string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	referenced, err := rowExists(ctx, db,
		"SELECT 1 FROM up_love_pillars WHERE pillar_id = ?", id)
	if err != nil {
		return err
	}
	if referenced {
		return types.NewDataIntegrityError("pillar %s is referenced by a check-in", id)
	}

	return verifyThenAct("pillar",
		func() (bool, error) {
			return rowExists(ctx, db, "SELECT 1 FROM pillars WHERE id = ?", id)
		},
		func() (int64, error) {
			return execAffected(ctx, db, "DELETE FROM pillars WHERE id = ?", id)
		},
	)
}

// GetPillarStats aggregates pillar counts and mean satisfaction per priority
// bucket. Every priority level appears in the result, including empty ones.
func (s *Store) GetPillarStats(ctx context.Context) (*types.PillarStats, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT priority, COUNT(*), AVG(satisfaction) FROM pillars GROUP BY priority")
	if err != nil {
		return nil, fmt.Errorf("aggregating pillars: %w", err)
	}
	defer rows.Close()

	byPriority := make(map[types.Priority]types.PriorityStats)
	total := 0
	for rows.Next() {
		var (
			priority types.Priority
			count    int
			mean     float64
		)
		if err := rows.Scan(&priority, &count, &mean); err != nil {
			return nil, fmt.Errorf("scanning pillar stats: %w", err)
		}
		byPriority[priority] = types.PriorityStats{
			Priority:         priority,
			Count:            count,
			MeanSatisfaction: mean,
		}
		total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregating pillars: %w", err)
	}

	stats := &types.PillarStats{Total: total}
	for _, p := range types.Priorities {
		bucket, ok := byPriority[p]
		if !ok {
			bucket = types.PriorityStats{Priority: p}
		}
		stats.ByPriority = append(stats.ByPriority, bucket)
	}
	return stats, nil
}
