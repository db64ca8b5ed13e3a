// Package docstore defines the document model shared by the storage adapters:
// schemaless JSON documents grouped into named collections, addressed by a
// store-assigned string id, with equality filters on top-level fields.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// Document is one stored record.
// CreatedAt and UpdatedAt are maintained by the store.
type Document struct {
	ID        string
	Data      json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Decode unmarshals the document body into v.
func (d Document) Decode(v any) error {
	if err := json.Unmarshal(d.Data, v); err != nil {
		return fmt.Errorf("decode document %s: %w", d.ID, err)
	}
	return nil
}

// Op is a filter comparison operator.
type Op int

const (
	// OpEq compares the field's text value for equality.
	OpEq Op = iota
	// OpLt compares the field's numeric value.
	OpLt
)

// Filter restricts a query to documents whose top-level field matches.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Eq matches documents whose field equals value.
func Eq(field, value string) Filter {
	return Filter{Field: field, Op: OpEq, Value: value}
}

// Lt matches documents whose numeric field is strictly less than value.
func Lt(field string, value int64) Filter {
	return Filter{Field: field, Op: OpLt, Value: value}
}

var fieldPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateField rejects top-level field names that are not plain identifiers.
// Adapters may splice validated names into JSON paths.
func ValidateField(name string) error {
	if !fieldPattern.MatchString(name) {
		return fmt.Errorf("docstore: invalid field %q", name)
	}
	return nil
}

// Validate rejects field names that are not plain identifiers.
func (f Filter) Validate() error {
	if err := ValidateField(f.Field); err != nil {
		return err
	}
	if f.Op != OpEq && f.Op != OpLt {
		return fmt.Errorf("docstore: unknown filter op %d", f.Op)
	}
	return nil
}

// Patch is a shallow merge: each top-level key replaces the stored value.
type Patch map[string]any

// Store is the contract implemented by the PostgreSQL and SQLite adapters.
//
// Get and GetForUpdate return an error wrapping domain.ErrNotFound for a
// missing document, as does Update. Delete of a missing document is a no-op.
// Query returns documents oldest first.
type Store interface {
	Query(ctx context.Context, collection string, filters ...Filter) ([]Document, error)
	Count(ctx context.Context, collection string, filters ...Filter) (int, error)
	Get(ctx context.Context, collection, id string) (*Document, error)
	// GetForUpdate reads a document and locks it until the surrounding
	// transaction ends. Outside a transaction it behaves like Get.
	GetForUpdate(ctx context.Context, collection, id string) (*Document, error)
	Insert(ctx context.Context, collection string, data any) (*Document, error)
	Update(ctx context.Context, collection, id string, patch Patch) error
	Delete(ctx context.Context, collection, id string) error
	DeleteWhere(ctx context.Context, collection string, filters ...Filter) (int64, error)
	// Lock serializes transactions that lock the same key until the
	// surrounding transaction ends. Outside a transaction it has no lasting
	// effect.
	Lock(ctx context.Context, key string) error
}

// TxManager runs fn in a transaction carried by the context passed to fn.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
