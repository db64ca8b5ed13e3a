// Package contact stores a user's useful contacts in "usefulContacts".
package contact

import (
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/tourcrew-backend/internal/docstore"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// Collection holds one document per contact, scoped by userId.
const Collection = "usefulContacts"

type documentStore interface {
	Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]docstore.Document, error)
	Count(ctx context.Context, collection string, filters ...docstore.Filter) (int, error)
	Get(ctx context.Context, collection, id string) (*docstore.Document, error)
	Insert(ctx context.Context, collection string, data any) (*docstore.Document, error)
	Update(ctx context.Context, collection, id string, patch docstore.Patch) error
	Delete(ctx context.Context, collection, id string) error
}

type record struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Notes    string `json:"notes"`
	City     string `json:"city"`
}

// Changes lists the contact fields to overwrite; nil fields are kept.
type Changes struct {
	Name     *string
	Category *string
	Phone    *string
	Email    *string
	Notes    *string
	City     *string
}

func (c Changes) patch() docstore.Patch {
	p := docstore.Patch{}
	for key, v := range map[string]*string{
		"name":     c.Name,
		"category": c.Category,
		"phone":    c.Phone,
		"email":    c.Email,
		"notes":    c.Notes,
		"city":     c.City,
	} {
		if v != nil {
			p[key] = *v
		}
	}
	return p
}

// Filter narrows List to exact category and city matches. Empty fields
// match everything.
type Filter struct {
	Category string
	City     string
}

func (f Filter) filters(ownerID string) []docstore.Filter {
	out := []docstore.Filter{docstore.Eq("userId", ownerID)}
	if f.Category != "" {
		out = append(out, docstore.Eq("category", f.Category))
	}
	if f.City != "" {
		out = append(out, docstore.Eq("city", f.City))
	}
	return out
}

// Repo provides contact persistence.
type Repo struct {
	store documentStore
}

// New creates a new contact repository.
func New(store documentStore) *Repo {
	return &Repo{store: store}
}

// List returns the owner's contacts matching f, newest first.
func (r *Repo) List(ctx context.Context, ownerID string, f Filter) ([]domain.Contact, error) {
	docs, err := r.store.Query(ctx, Collection, f.filters(ownerID)...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	out := make([]domain.Contact, 0, len(docs))
	for _, doc := range docs {
		c, err := toDomain(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	// Query returns oldest first.
	slices.Reverse(out)
	return out, nil
}

// Count returns how many contacts the owner has.
func (r *Repo) Count(ctx context.Context, ownerID string) (int, error) {
	n, err := r.store.Count(ctx, Collection, docstore.Eq("userId", ownerID))
	if err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}

// Get returns one contact by id.
func (r *Repo) Get(ctx context.Context, id string) (*domain.Contact, error) {
	doc, err := r.store.Get(ctx, Collection, id)
	if err != nil {
		return nil, err
	}
	return toDomain(*doc)
}

// Create stores a new contact owned by c.OwnerID.
func (r *Repo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	doc, err := r.store.Insert(ctx, Collection, record{
		UserID:   c.OwnerID,
		Name:     c.Name,
		Category: c.Category,
		Phone:    c.Phone,
		Email:    c.Email,
		Notes:    c.Notes,
		City:     c.City,
	})
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return toDomain(*doc)
}

// Update applies changes and returns the updated contact.
func (r *Repo) Update(ctx context.Context, id string, ch Changes) (*domain.Contact, error) {
	if err := r.store.Update(ctx, Collection, id, ch.patch()); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes a contact.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, Collection, id)
}

func toDomain(doc docstore.Document) (*domain.Contact, error) {
	var rec record
	if err := doc.Decode(&rec); err != nil {
		return nil, err
	}
	return &domain.Contact{
		ID:        doc.ID,
		OwnerID:   rec.UserID,
		Name:      rec.Name,
		Category:  rec.Category,
		Phone:     rec.Phone,
		Email:     rec.Email,
		Notes:     rec.Notes,
		City:      rec.City,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
