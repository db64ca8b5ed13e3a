// Package manual stores equipment manual links in "manuals".
package manual

import (
	"context"
	"fmt"

	"github.com/heartmarshall/tourcrew-backend/internal/docstore"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// Collection holds one document per manual, scoped by userId.
const Collection = "manuals"

type documentStore interface {
	Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]docstore.Document, error)
	Count(ctx context.Context, collection string, filters ...docstore.Filter) (int, error)
	Get(ctx context.Context, collection, id string) (*docstore.Document, error)
	Insert(ctx context.Context, collection string, data any) (*docstore.Document, error)
	Update(ctx context.Context, collection, id string, patch docstore.Patch) error
	Delete(ctx context.Context, collection, id string) error
}

type record struct {
	UserID string `json:"userId"`
	Title  string `json:"title"`
	Link   string `json:"link"`
}

// Repo provides manual persistence.
type Repo struct {
	store documentStore
}

// New creates a new manual repository.
func New(store documentStore) *Repo {
	return &Repo{store: store}
}

// List returns the owner's manuals in creation order.
func (r *Repo) List(ctx context.Context, ownerID string) ([]domain.Manual, error) {
	docs, err := r.store.Query(ctx, Collection, docstore.Eq("userId", ownerID))
	if err != nil {
		return nil, fmt.Errorf("list manuals: %w", err)
	}

	out := make([]domain.Manual, 0, len(docs))
	for _, doc := range docs {
		m, err := toDomain(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, nil
}

// Count returns how many manuals the owner has.
func (r *Repo) Count(ctx context.Context, ownerID string) (int, error) {
	n, err := r.store.Count(ctx, Collection, docstore.Eq("userId", ownerID))
	if err != nil {
		return 0, fmt.Errorf("count manuals: %w", err)
	}
	return n, nil
}

// Get returns one manual by id.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Manual, error) {
	doc, err := r.store.Get(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	return toDomain(*doc)
}

// Create stores a new manual owned by m.OwnerID. The link is stored as given.
func (r *Repo) Create(ctx context.Context, m *domain.Manual) (*domain.Manual, error) {
	doc, err := r.store.Insert(ctx, Collection, record{
		UserID: m.OwnerID,
		Title:  m.Title,
		Link:   m.Link,
	})
	if err != nil {
		return nil, fmt.Errorf("create manual: %w", err)
	}
	return toDomain(*doc)
}

// Update overwrites title and link and returns the updated manual.
func (r *Repo) Update(ctx context.Context, id, title, link string) (*domain.Manual, error) {
	err := r.store.Update(ctx, Collection, id, docstore.Patch{
		"title": title,
		"link":  link,
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes a manual.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, Collection, id)
}

func toDomain(doc docstore.Document) (*domain.Manual, error) {
	var rec record
	if err := doc.Decode(&rec); err != nil {
		return nil, err
	}
	return &domain.Manual{
		ID:        doc.ID,
		OwnerID:   rec.UserID,
		Title:     rec.Title,
		Link:      rec.Link,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
