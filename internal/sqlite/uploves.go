// UpLove (check-in) operations. Creating or replacing a snapshot writes the
// row, its pillar associations, and its item lists in one transaction, so a
// partial snapshot is never observable.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uplove-app/uplove/internal/validate"
	"github.com/uplove-app/uplove/pkg/types"
)

// CreateUpLove inserts a dated check-in snapshot referencing up to ten
// pillars. Every referenced pillar must exist; a dangling id fails the whole
// create with NotFoundError naming the missing pillar.
func (s *Store) CreateUpLove(ctx context.Context, date time.Time, pillarIDs, toImprove, toPraise []string) (*types.UpLove, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	if err := validate.Date(date, "date", true); err != nil {
		return nil, err
	}
	if err := validate.ArrayLen(len(pillarIDs), "pillarIds", 0, types.MaxUpLovePillars); err != nil {
		return nil, err
	}
	sanitizedImprove, err := validate.StringArray(toImprove, "toImprove", 0, types.MaxUpLoveItems)
	if err != nil {
		return nil, err
	}
	sanitizedPraise, err := validate.StringArray(toPraise, "toPraise", 0, types.MaxUpLoveItems)
	if err != nil {
		return nil, err
	}

	pillars, err := resolvePillars(ctx, db, pillarIDs)
	if err != nil {
		return nil, err
	}

	id := generateID()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO up_loves (id, date) VALUES (?, ?)", id, toMillis(date),
	); err != nil {
		return nil, fmt.Errorf("inserting check-in: %w", err)
	}
	if err := insertAssociations(ctx, tx, id, pillarIDs, sanitizedImprove, sanitizedPraise); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing check-in: %w", err)
	}

	return &types.UpLove{
		ID:        id,
		Date:      date,
		Pillars:   pillars,
		ToImprove: sanitizedImprove,
		ToPraise:  sanitizedPraise,
	}, nil
}

// resolvePillars fetches each referenced pillar, failing with NotFoundError
// naming the first id that does not resolve.
func resolvePillars(ctx context.Context, db *sql.DB, pillarIDs []string) ([]types.Pillar, error) {
	pillars := make([]types.Pillar, 0, len(pillarIDs))
	for _, pillarID := range pillarIDs {
		pillar, err := getPillar(ctx, db, pillarID)
		if err != nil {
			return nil, err
		}
		if pillar == nil {
			return nil, types.NewNotFoundError("pillar " + pillarID)
		}
		pillars = append(pillars, *pillar)
	}
	return pillars, nil
}

// insertAssociations writes the pillar references and both item lists for a
// snapshot inside the caller's transaction.
func insertAssociations(ctx context.Context, tx *sql.Tx, id string, pillarIDs, toImprove, toPraise []string) error {
	for _, pillarID := range pillarIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO up_love_pillars (up_love_id, pillar_id) VALUES (?, ?)",
			id, pillarID,
		); err != nil {
			return fmt.Errorf("inserting pillar reference: %w", err)
		}
	}
	for _, item := range toImprove {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO up_love_items (up_love_id, item_type, content) VALUES (?, ?, ?)",
			id, string(types.ItemToImprove), item,
		); err != nil {
			return fmt.Errorf("inserting to-improve item: %w", err)
		}
	}
	for _, item := range toPraise {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO up_love_items (up_love_id, item_type, content) VALUES (?, ?, ?)",
			id, string(types.ItemToPraise), item,
		); err != nil {
			return fmt.Errorf("inserting to-praise item: %w", err)
		}
	}
	return nil
}

// GetUpLove reconstructs a check-in by re-resolving its pillar references.
// Returns nil, nil when the id does not exist. A stored reference that no
// longer resolves means the store let an integrity-violating delete through,
// so it surfaces as DataIntegrityError rather than NotFoundError.
func (s *Store) GetUpLove(ctx context.Context, id string) (*types.UpLove, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}
	return getUpLove(ctx, db, id)
}

func getUpLove(ctx context.Context, db *sql.DB, id string) (*types.UpLove, error) {
	var dateMillis int64
	err := db.QueryRowContext(ctx,
		"SELECT date FROM up_loves WHERE id = ?", id,
	).Scan(&dateMillis)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting check-in %s: %w", id, err)
	}

	pillarIDs, err := associatedPillarIDs(ctx, db, id)
	if err != nil {
		return nil, err
	}

	pillars := make([]types.Pillar, 0, len(pillarIDs))
	for _, pillarID := range pillarIDs {
		pillar, err := getPillar(ctx, db, pillarID)
		if err != nil {
			return nil, err
		}
		if pillar == nil {
			return nil, types.NewDataIntegrityError(
				"pillar %s referenced by check-in %s no longer exists", pillarID, id)
		}
		pillars = append(pillars, *pillar)
	}

	toImprove, err := itemContents(ctx, db, id, types.ItemToImprove)
	if err != nil {
		return nil, err
	}
	toPraise, err := itemContents(ctx, db, id, types.ItemToPraise)
	if err != nil {
		return nil, err
	}

	return &types.UpLove{
		ID:        id,
		Date:      fromMillis(dateMillis),
		Pillars:   pillars,
		ToImprove: toImprove,
		ToPraise:  toPraise,
	}, nil
}

func associatedPillarIDs(ctx context.Context, db *sql.DB, id string) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT pillar_id FROM up_love_pillars WHERE up_love_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("listing pillar references: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var pillarID string
		if err := rows.Scan(&pillarID); err != nil {
			return nil, fmt.Errorf("scanning pillar reference: %w", err)
		}
		ids = append(ids, pillarID)
	}
	return ids, rows.Err()
}

// itemContents reads one item list in insertion order.
func itemContents(ctx context.Context, db *sql.DB, id string, itemType types.UpLoveItemType) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT content FROM up_love_items WHERE up_love_id = ? AND item_type = ? ORDER BY rowid",
		id, string(itemType))
	if err != nil {
		return nil, fmt.Errorf("listing %s items: %w", itemType, err)
	}
	defer rows.Close()

	contents := []string{}
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("scanning %s item: %w", itemType, err)
		}
		contents = append(contents, content)
	}
	return contents, rows.Err()
}

// GetAllUpLoves fetches up to the configured list limit of check-ins, oldest
// first, each fully reconstructed.
func (s *Store) GetAllUpLoves(ctx context.Context) ([]types.UpLove, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id FROM up_loves ORDER BY date LIMIT ?", s.listLimit())
	if err != nil {
		return nil, fmt.Errorf("listing check-ins: %w", err)
	}
	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning check-in id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("listing check-ins: %w", err)
	}
	rows.Close()

	upLoves := []types.UpLove{}
	for _, id := range ids {
		upLove, err := getUpLove(ctx, db, id)
		if err != nil {
			return nil, err
		}
		if upLove == nil {
			return nil, types.NewDataIntegrityError("check-in %s vanished during listing", id)
		}
		upLoves = append(upLoves, *upLove)
	}
	return upLoves, nil
}

// UpdateUpLove replaces a check-in's pillar references and item lists in one
// transaction: prior association and item rows are deleted, then the new
// sets inserted. The snapshot date is not mutable.
func (s *Store) UpdateUpLove(ctx context.Context, id string, pillarIDs, toImprove, toPraise []string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	if err := validate.ArrayLen(len(pillarIDs), "pillarIds", 0, types.MaxUpLovePillars); err != nil {
		return err
	}
	sanitizedImprove, err := validate.StringArray(toImprove, "toImprove", 0, types.MaxUpLoveItems)
	if err != nil {
		return err
	}
	sanitizedPraise, err := validate.StringArray(toPraise, "toPraise", 0, types.MaxUpLoveItems)
	if err != nil {
		return err
	}

	ok, err := rowExists(ctx, db, "SELECT 1 FROM up_loves WHERE id = ?", id)
	if err != nil {
		return err
	}
	if !ok {
		return types.NewNotFoundError("check-in")
	}

	if _, err := resolvePillars(ctx, db, pillarIDs); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM up_love_items WHERE up_love_id = ?", id,
	); err != nil {
		return fmt.Errorf("clearing items: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM up_love_pillars WHERE up_love_id = ?", id,
	); err != nil {
		return fmt.Errorf("clearing pillar references: %w", err)
	}
	if err := insertAssociations(ctx, tx, id, pillarIDs, sanitizedImprove, sanitizedPraise); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing check-in update: %w", err)
	}
	return nil
}

// DeleteUpLove removes a check-in. The engine cascades the delete to the
// association and item rows.
func (s *Store) DeleteUpLove(ctx context.Context, id string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	return verifyThenAct("check-in",
		func() (bool, error) {
			return rowExists(ctx, db, "SELECT 1 FROM up_loves WHERE id = ?", id)
		},
		func() (int64, error) {
			return execAffected(ctx, db, "DELETE FROM up_loves WHERE id = ?", id)
		},
	)
}
