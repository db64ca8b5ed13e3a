// Package document implements the document store on a PostgreSQL JSONB table.
package document

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/tourcrew-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tourcrew-backend/internal/docstore"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// psql is a squirrel statement builder configured for PostgreSQL ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const tableName = "documents"

var columns = []string{"id", "data", "created_at", "updated_at"}

type row struct {
	ID        string    `db:"id"`
	Data      []byte    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDocument() docstore.Document {
	return docstore.Document{
		ID:        r.ID,
		Data:      json.RawMessage(r.Data),
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}
}

// Store provides document operations backed by PostgreSQL.
type Store struct {
	db postgres.Querier
}

// New creates a new document store.
func New(db postgres.Querier) *Store {
	return &Store{db: db}
}

func (s *Store) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, s.db)
}

// Query returns every document in collection matching all filters,
// ordered by creation time then id.
func (s *Store) Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]docstore.Document, error) {
	where, err := whereClause(collection, filters)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Select(columns...).
		From(tableName).
		Where(where).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, s.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, collection, "query")
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

	query, args, err := psql.Select("count(*)").From(tableName).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := s.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, collection, "count")
	}
	return n, nil
}

// Get returns a document by id.
func (s *Store) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	return s.get(ctx, collection, id, "")
}

// GetForUpdate returns a document by id and locks its row until the
// surrounding transaction ends.
func (s *Store) GetForUpdate(ctx context.Context, collection, id string) (*docstore.Document, error) {
	return s.get(ctx, collection, id, "FOR UPDATE")
}

func (s *Store) get(ctx context.Context, collection, id, suffix string) (*docstore.Document, error) {
	b := psql.Select(columns...).
		From(tableName).
		Where(sq.Eq{"collection": collection, "id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var r row
	if err := pgxscan.Get(ctx, s.q(ctx), &r, query, args...); err != nil {
		return nil, postgres.MapError(err, collection, id)
	}

	doc := r.toDocument()
	return &doc, nil
}

// Insert stores data as a new document with a generated id.
// data must marshal to a JSON object.
func (s *Store) Insert(ctx context.Context, collection string, data any) (*docstore.Document, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal %s document: %w", collection, err)
	}

	id := uuid.NewString()

	query, args, err := psql.Insert(tableName).
		Columns("collection", "id", "data").
		Values(collection, id, string(body)).
		Suffix("RETURNING id, data, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var r row
	if err := pgxscan.Get(ctx, s.q(ctx), &r, query, args...); err != nil {
		return nil, postgres.MapError(err, collection, id)
	}

	doc := r.toDocument()
	return &doc, nil
}

// Update merges patch into the stored document.
func (s *Store) Update(ctx context.Context, collection, id string, patch docstore.Patch) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal %s patch: %w", collection, err)
	}

	query, args, err := psql.Update(tableName).
		Set("data", sq.Expr("data || ?::jsonb", string(body))).
		Set("updated_at", sq.Expr("clock_timestamp()")).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := s.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, collection, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", collection, id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	query, args, err := psql.Delete(tableName).
		Where(sq.Eq{"collection": collection, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := s.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, collection, id)
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

	query, args, err := psql.Delete(tableName).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := s.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, collection, "delete")
	}
	return tag.RowsAffected(), nil
}

// Lock takes a transaction-scoped advisory lock on key. Callers that check
// then write across documents, such as a per-owner count limit, hold it so
// concurrent transactions with the same key run one after another.
func (s *Store) Lock(ctx context.Context, key string) error {
	if _, err := s.q(ctx).Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", key); err != nil {
		return postgres.MapError(err, "lock", key)
	}
	return nil
}

// field renders data ->> 'name' for a validated top-level field. The name is
// a literal so filters match the expression indexes on documents.
func field(name string) string {
	return "data ->> '" + name + "'"
}

func whereClause(collection string, filters []docstore.Filter) (sq.And, error) {
	where := sq.And{sq.Eq{"collection": collection}}
	for _, f := range filters {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		switch f.Op {
		case docstore.OpEq:
			where = append(where, sq.Expr(field(f.Field)+" = ?", f.Value))
		case docstore.OpLt:
			where = append(where, sq.Expr("("+field(f.Field)+")::numeric < ?", f.Value))
		}
	}
	return where, nil
}
