package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uplove-app/uplove/pkg/types"
)

// verifyThenAct is the shared shape of every single-row update and delete:
// confirm the target exists, run the statement, and require at least one
// affected row. A missing target is the caller's problem (NotFoundError); a
// zero affected-row count after confirmed existence is not, so it surfaces
// as DataIntegrityError.
func verifyThenAct(resource string, exists func() (bool, error), act func() (int64, error)) error {
	ok, err := exists()
	if err != nil {
		return err
	}
	if !ok {
		return types.NewNotFoundError(resource)
	}

	affected, err := act()
	if err != nil {
		return err
	}
	if affected == 0 {
		return types.NewDataIntegrityError("%s write affected no rows", resource)
	}
	return nil
}

// execAffected runs stmt and returns the affected-row count.
func execAffected(ctx context.Context, db *sql.DB, stmt string, args ...any) (int64, error) {
	res, err := db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}
