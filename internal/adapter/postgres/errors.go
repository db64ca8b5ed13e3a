package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// sqlState maps a SQLSTATE code to a domain sentinel. Retryable codes keep
// the driver error in the chain.
type sqlState struct {
	err       error
	retryable bool
}

var sqlStates = map[string]sqlState{
	"23505": {err: domain.ErrAlreadyExists},             // unique_violation
	"23503": {err: domain.ErrNotFound},                  // foreign_key_violation
	"23514": {err: domain.ErrValidation},                // check_violation (documents_data_object)
	"22P02": {err: domain.ErrValidation},                // invalid_text_representation in a JSON cast
	"40001": {err: domain.ErrConflict, retryable: true}, // serialization_failure
	"40P01": {err: domain.ErrConflict, retryable: true}, // deadlock_detected
	"55P03": {err: domain.ErrConflict, retryable: true}, // lock_not_available
}

// MapError wraps a driver error with the collection and document id and
// translates it to a domain sentinel where one applies. Context errors pass
// through unchanged in the chain.
func MapError(err error, collection, id string) error {
	if err == nil {
		return nil
	}
	wrap := func(e error) error { return fmt.Errorf("%s %s: %w", collection, id, e) }

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return wrap(err)
	}
	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if st, ok := sqlStates[pgErr.Code]; ok {
			if st.retryable {
				return fmt.Errorf("%s %s: %w: %w", collection, id, st.err, err)
			}
			return wrap(st.err)
		}
	}
	return wrap(err)
}
