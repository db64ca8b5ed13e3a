// Package document implements the document store on a SQLite table with
// JSON text bodies.
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tourcrew-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/tourcrew-backend/internal/docstore"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

const tableName = "documents"

var columns = []string{"id", "data", "created_at", "updated_at"}

type row struct {
	ID        string `db:"id"`
	Data      string `db:"data"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func (r row) toDocument() docstore.Document {
	return docstore.Document{
		ID:        r.ID,
		Data:      json.RawMessage(r.Data),
		CreatedAt: time.Unix(0, r.CreatedAt).UTC(),
		UpdatedAt: time.Unix(0, r.UpdatedAt).UTC(),
	}
}

// Store provides document operations backed by SQLite.
// Timestamps are stored as Unix nanoseconds.
type Store struct {
	db  sqlite.Querier
	now func() time.Time
}

// New creates a new document store.
func New(db sqlite.Querier) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) q(ctx context.Context) sqlite.Querier {
	return sqlite.QuerierFromCtx(ctx, s.db)
}

// Query returns every document in collection matching all filters,
// ordered by creation time then id.
func (s *Store) Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]docstore.Document, error) {
	where, err := whereClause(collection, filters)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select(columns...).
		From(tableName).
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := sqlscan.Select(ctx, s.q(ctx), &rows, query, args...); err != nil {
		return nil, sqlite.MapError(err, collection, "query")
	}

	docs := make([]docstore.Document, len(rows))
	for i, r := range rows {
		docs[i] = r.toDocument()
	}
	return docs, nil
}

// Count returns the number of documents in collection matching all filters.
func (s *Store) Count(ctx context.Context, collection string, filters ...docstore.Filter) (int, error) {
	where, err := whereClause(collection, filters)
	if err != nil {
		return 0, err
	}

	query, args, err := sq.Select("count(*)").From(tableName).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := s.q(ctx).QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, sqlite.MapError(err, collection, "count")
	}
	return n, nil
}

// Get returns a document by id.
func (s *Store) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	query, args, err := sq.Select(columns...).
		From(tableName).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var r row
	if err := sqlscan.Get(ctx, s.q(ctx), &r, query, args...); err != nil {
		return nil, sqlite.MapError(err, collection, id)
	}

	doc := r.toDocument()
	return &doc, nil
}

// GetForUpdate is Get: the single-connection pool already serializes
// transactions, so the surrounding transaction owns the database.
func (s *Store) GetForUpdate(ctx context.Context, collection, id string) (*docstore.Document, error) {
	return s.Get(ctx, collection, id)
}

// Insert stores data as a new document with a generated id.
// data must marshal to a JSON object.
func (s *Store) Insert(ctx context.Context, collection string, data any) (*docstore.Document, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal %s document: %w", collection, err)
	}

	id := uuid.NewString()
	now := s.now().UTC()

	query, args, err := sq.Insert(tableName).
		Columns("collection", "id", "data", "created_at", "updated_at").
		Values(collection, id, string(body), now.UnixNano(), now.UnixNano()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if _, err := s.q(ctx).ExecContext(ctx, query, args...); err != nil {
		return nil, sqlite.MapError(err, collection, id)
	}

	ts := time.Unix(0, now.UnixNano()).UTC()
	return &docstore.Document{ID: id, Data: body, CreatedAt: ts, UpdatedAt: ts}, nil
}

// Update merges patch into the stored document. Each patch key replaces
// the stored top-level value.
func (s *Store) Update(ctx context.Context, collection, id string, patch docstore.Patch) error {
	set, err := jsonSet(patch)
	if err != nil {
		return fmt.Errorf("%s %s: %w", collection, id, err)
	}

	query, args, err := sq.Update(tableName).
		Set("data", set).
		Set("updated_at", s.now().UTC().UnixNano()).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	res, err := s.q(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return sqlite.MapError(err, collection, id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s: rows affected: %w", collection, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", collection, id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	query, args, err := sq.Delete(tableName).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := s.q(ctx).ExecContext(ctx, query, args...); err != nil {
		return sqlite.MapError(err, collection, id)
	}
	return nil
}

// DeleteWhere removes every document in collection matching all filters
// and returns how many were removed.
func (s *Store) DeleteWhere(ctx context.Context, collection string, filters ...docstore.Filter) (int64, error) {
	where, err := whereClause(collection, filters)
	if err != nil {
		return 0, err
	}

	query, args, err := sq.Delete(tableName).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	res, err := s.q(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlite.MapError(err, collection, "delete")
	}
	return res.RowsAffected()
}

// Lock is a no-op: the database has a single connection, so a transaction
// already excludes every other writer until it ends.
func (s *Store) Lock(ctx context.Context, key string) error {
	return ctx.Err()
}

// jsonPath builds a literal JSON path for a validated top-level field, so
// expressions match the expression indexes.
func jsonPath(field string) string {
	return "'$." + field + "'"
}

func whereClause(collection string, filters []docstore.Filter) (sq.And, error) {
	where := sq.And{sq.Eq{"collection": collection}}
	for _, f := range filters {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		switch f.Op {
		case docstore.OpEq:
			where = append(where, sq.Expr("json_extract(data, "+jsonPath(f.Field)+") = ?", f.Value))
		case docstore.OpLt:
			where = append(where, sq.Expr("json_extract(data, "+jsonPath(f.Field)+") < ?", f.Value))
		}
	}
	return where, nil
}

// jsonSet renders patch as json_set(data, path, json(?), ...) with keys
// in sorted order.
func jsonSet(patch docstore.Patch) (sq.Sqlizer, error) {
	if len(patch) == 0 {
		return sq.Expr("data"), nil
	}

	sql := "json_set(data"
	args := make([]any, 0, len(patch))
	for _, key := range slices.Sorted(maps.Keys(patch)) {
		if err := docstore.ValidateField(key); err != nil {
			return nil, err
		}
		value, err := json.Marshal(patch[key])
		if err != nil {
			return nil, fmt.Errorf("marshal patch %s: %w", key, err)
		}
		sql += ", " + jsonPath(key) + ", json(?)"
		args = append(args, string(value))
	}
	sql += ")"
	return sq.Expr(sql, args...), nil
}
