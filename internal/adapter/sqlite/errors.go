package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/sqlscan"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// MapError converts database/sql and SQLite errors to domain errors.
// context.DeadlineExceeded and context.Canceled pass through.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, sql.ErrNoRows) || sqlscan.NotFound(err) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch code := sqliteErr.Code(); {
		case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case code == sqlite3.SQLITE_CONSTRAINT_CHECK:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case code&0xff == sqlite3.SQLITE_BUSY, code&0xff == sqlite3.SQLITE_LOCKED:
			return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrConflict, err)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
