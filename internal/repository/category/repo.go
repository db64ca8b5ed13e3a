// Package category stores titled, owner-scoped categories whose entries are
// kept as one ordered array inside the category document.
//
// Repo is generic over the entry type and instantiated once per list domain
// (to-do, to-buy, inventory). Every entry mutation is a read-modify-write of
// the whole array, run in a transaction that locks the category document, so
// concurrent writers to one category are serialized.
package category

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourcrew-backend/internal/docstore"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

const ownerField = "userId"

// Kind configures the storage layout of one list domain.
type Kind struct {
	Collection   string
	EntriesField string
	IDPrefix     string
}

// Predefined list domains.
var (
	Todos     = Kind{Collection: "user_todos_personal", EntriesField: "todos", IDPrefix: "todo_"}
	ToBuys    = Kind{Collection: "user_to_buy", EntriesField: "tobuys", IDPrefix: "tobuy_"}
	Inventory = Kind{Collection: "user_inventory_personal", EntriesField: "data", IDPrefix: "item_"}
)

type documentStore interface {
	Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]docstore.Document, error)
	Count(ctx context.Context, collection string, filters ...docstore.Filter) (int, error)
	Get(ctx context.Context, collection, id string) (*docstore.Document, error)
	GetForUpdate(ctx context.Context, collection, id string) (*docstore.Document, error)
	Insert(ctx context.Context, collection string, data any) (*docstore.Document, error)
	Update(ctx context.Context, collection, id string, patch docstore.Patch) error
	Delete(ctx context.Context, collection, id string) error
	Lock(ctx context.Context, key string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides category and entry operations for one list domain.
// Ownership is not checked here; callers pass ids they have authorized.
type Repo[E domain.Orderable[E]] struct {
	store documentStore
	tx    txManager
	kind  Kind
}

// New creates a repository for the given list domain.
func New[E domain.Orderable[E]](store documentStore, tx txManager, kind Kind) *Repo[E] {
	return &Repo[E]{store: store, tx: tx, kind: kind}
}

// Kind returns the storage layout the repository was built with.
func (r *Repo[E]) Kind() Kind { return r.kind }

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// ListCategories returns the owner's categories oldest first, each with its
// entries sorted by order.
func (r *Repo[E]) ListCategories(ctx context.Context, ownerID string) ([]domain.Category[E], error) {
	docs, err := r.store.Query(ctx, r.kind.Collection, docstore.Eq(ownerField, ownerID))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := make([]domain.Category[E], 0, len(docs))
	for _, doc := range docs {
		c, err := r.decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

// CountCategories returns how many categories the owner has.
func (r *Repo[E]) CountCategories(ctx context.Context, ownerID string) (int, error) {
	n, err := r.store.Count(ctx, r.kind.Collection, docstore.Eq(ownerField, ownerID))
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// AddCategory creates an empty category. The title is trimmed and must not
// be empty.
func (r *Repo[E]) AddCategory(ctx context.Context, ownerID, title string) (*domain.Category[E], error) {
	return r.AddCategoryLimited(ctx, ownerID, title, 0)
}

// AddCategoryLimited is AddCategory that fails with a validation error when
// the owner already has limit categories. The count and the insert run under a
// per-owner lock, so concurrent callers cannot overshoot. limit <= 0 means no
// limit.
func (r *Repo[E]) AddCategoryLimited(ctx context.Context, ownerID, title string, limit int) (*domain.Category[E], error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.NewValidationError("title", "required")
	}

	var doc *docstore.Document
	insert := func(ctx context.Context) error {
		var err error
		doc, err = r.store.Insert(ctx, r.kind.Collection, map[string]any{
			ownerField:          ownerID,
			"title":             title,
			r.kind.EntriesField: []E{},
		})
		return err
	}

	var err error
	if limit <= 0 {
		err = insert(ctx)
	} else {
		err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
			if err := r.store.Lock(ctx, r.kind.Collection+":"+ownerID); err != nil {
				return err
			}
			n, err := r.store.Count(ctx, r.kind.Collection, docstore.Eq(ownerField, ownerID))
			if err != nil {
				return err
			}
			if n >= limit {
				return domain.NewValidationError("categories", fmt.Sprintf("limit reached (max %d)", limit))
			}
			return insert(ctx)
		})
	}
	if err != nil {
		return nil, fmt.Errorf("add category: %w", err)
	}

	return &domain.Category[E]{
		ID:        doc.ID,
		OwnerID:   ownerID,
		Title:     title,
		Entries:   []E{},
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// GetCategory returns one category by id.
func (r *Repo[E]) GetCategory(ctx context.Context, categoryID string) (*domain.Category[E], error) {
	doc, err := r.store.Get(ctx, r.kind.Collection, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return r.decode(*doc)
}

// RenameCategory sets a new trimmed, non-empty title.
func (r *Repo[E]) RenameCategory(ctx context.Context, categoryID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.NewValidationError("title", "required")
	}

	if err := r.store.Update(ctx, r.kind.Collection, categoryID, docstore.Patch{"title": title}); err != nil {
		return fmt.Errorf("rename category: %w", err)
	}
	return nil
}

// DeleteCategory removes the category and its embedded entries.
// Deleting a missing category succeeds.
func (r *Repo[E]) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := r.store.Delete(ctx, r.kind.Collection, categoryID); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Entries
// ---------------------------------------------------------------------------

// AddEntry appends entry to the category. An empty id is replaced with a
// generated one; the order is set to the current entry count.
func (r *Repo[E]) AddEntry(ctx context.Context, categoryID string, entry E) (E, error) {
	return r.AddEntryLimited(ctx, categoryID, entry, 0)
}

// AddEntryLimited is AddEntry that fails with a validation error when the
// category already holds limit entries. The check runs on the locked document.
// limit <= 0 means no limit.
func (r *Repo[E]) AddEntryLimited(ctx context.Context, categoryID string, entry E, limit int) (E, error) {
	if entry.EntryID() == "" {
		entry = entry.WithID(r.kind.IDPrefix + uuid.NewString())
	}

	_, err := r.mutate(ctx, categoryID, func(entries []E) ([]E, error) {
		if limit > 0 && len(entries) >= limit {
			return nil, domain.NewValidationError("entries", fmt.Sprintf("limit reached (max %d)", limit))
		}
		if domain.IndexOf(entries, entry.EntryID()) >= 0 {
			return nil, fmt.Errorf("entry %s: %w", entry.EntryID(), domain.ErrAlreadyExists)
		}
		entry = entry.WithOrder(len(entries))
		return append(entries, entry), nil
	})
	if err != nil {
		var zero E
		return zero, fmt.Errorf("add entry: %w", err)
	}
	return entry, nil
}

// UpdateEntry replaces the entry with apply(entry). The entry keeps its id
// and order whatever apply returns.
func (r *Repo[E]) UpdateEntry(ctx context.Context, categoryID, entryID string, apply func(E) E) (E, error) {
	var updated E
	_, err := r.mutate(ctx, categoryID, func(entries []E) ([]E, error) {
		i := domain.IndexOf(entries, entryID)
		if i < 0 {
			return nil, fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
		}
		old := entries[i]
		updated = apply(old).WithID(old.EntryID()).WithOrder(old.EntryOrder())
		entries[i] = updated
		return entries, nil
	})
	if err != nil {
		var zero E
		return zero, fmt.Errorf("update entry: %w", err)
	}
	return updated, nil
}

// DeleteEntry removes the entry and closes the gap in the order sequence.
func (r *Repo[E]) DeleteEntry(ctx context.Context, categoryID, entryID string) error {
	_, err := r.mutate(ctx, categoryID, func(entries []E) ([]E, error) {
		i := domain.IndexOf(entries, entryID)
		if i < 0 {
			return nil, fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
		}
		return append(entries[:i], entries[i+1:]...), nil
	})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// ReorderEntries rearranges the entries to follow orderedIDs, which must name
// every stored entry exactly once.
func (r *Repo[E]) ReorderEntries(ctx context.Context, categoryID string, orderedIDs []string) error {
	_, err := r.mutate(ctx, categoryID, func(entries []E) ([]E, error) {
		return domain.ApplyOrder(entries, orderedIDs)
	})
	if err != nil {
		return fmt.Errorf("reorder entries: %w", err)
	}
	return nil
}

// MoveEntry moves one entry to index to and returns the resulting entries.
func (r *Repo[E]) MoveEntry(ctx context.Context, categoryID, entryID string, to int) ([]E, error) {
	entries, err := r.mutate(ctx, categoryID, func(entries []E) ([]E, error) {
		from := domain.IndexOf(entries, entryID)
		if from < 0 {
			return nil, fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
		}
		return domain.MoveEntry(entries, from, to)
	})
	if err != nil {
		return nil, fmt.Errorf("move entry: %w", err)
	}
	return entries, nil
}

// mutate runs fn on the category's entries under a row lock and writes the
// renumbered result back.
func (r *Repo[E]) mutate(ctx context.Context, categoryID string, fn func([]E) ([]E, error)) ([]E, error) {
	var result []E
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		doc, err := r.store.GetForUpdate(ctx, r.kind.Collection, categoryID)
		if err != nil {
			return err
		}
		c, err := r.decode(*doc)
		if err != nil {
			return err
		}

		entries, err := fn(c.Entries)
		if err != nil {
			return err
		}
		result = domain.Renumber(entries)

		return r.store.Update(ctx, r.kind.Collection, categoryID, docstore.Patch{
			r.kind.EntriesField: result,
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo[E]) decode(doc docstore.Document) (*domain.Category[E], error) {
	var fields map[string]json.RawMessage
	if err := doc.Decode(&fields); err != nil {
		return nil, err
	}

	c := &domain.Category[E]{
		ID:        doc.ID,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	if err := decodeField(fields, ownerField, &c.OwnerID); err != nil {
		return nil, fmt.Errorf("category %s: %w", doc.ID, err)
	}
	if err := decodeField(fields, "title", &c.Title); err != nil {
		return nil, fmt.Errorf("category %s: %w", doc.ID, err)
	}
	if err := decodeField(fields, r.kind.EntriesField, &c.Entries); err != nil {
		return nil, fmt.Errorf("category %s: %w", doc.ID, err)
	}
	if c.Entries == nil {
		c.Entries = []E{}
	}
	domain.SortByOrder(c.Entries)
	return c, nil
}

// decodeField unmarshals fields[key] into dst; a missing key leaves dst unchanged.
func decodeField(fields map[string]json.RawMessage, key string, dst any) error {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
