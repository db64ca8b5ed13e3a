// Package user stores user profiles in the "users" collection.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourcrew-backend/internal/docstore"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// Collection holds one document per user; email is unique.
const Collection = "users"

type documentStore interface {
	Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]docstore.Document, error)
	Get(ctx context.Context, collection, id string) (*docstore.Document, error)
	Insert(ctx context.Context, collection string, data any) (*docstore.Document, error)
	Update(ctx context.Context, collection, id string, patch docstore.Patch) error
}

type record struct {
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// Repo provides user persistence.
type Repo struct {
	store documentStore
}

// New creates a new user repository.
func New(store documentStore) *Repo {
	return &Repo{store: store}
}

// GetByID returns a user by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	doc, err := r.store.Get(ctx, Collection, id.String())
	if err != nil {
		return nil, err
	}
	return toDomain(*doc)
}

// GetByEmail returns the user with the given normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	docs, err := r.store.Query(ctx, Collection, docstore.Eq("email", email))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return toDomain(docs[0])
}

// Create inserts the user and returns it with its store-assigned id.
// A taken email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	doc, err := r.store.Insert(ctx, Collection, record{
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	})
	if err != nil {
		return nil, err
	}
	return toDomain(*doc)
}

// Update changes the name and avatar when non-nil and returns the stored user.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name *string, avatarURL *string) (*domain.User, error) {
	patch := docstore.Patch{}
	if name != nil {
		patch["name"] = *name
	}
	if avatarURL != nil {
		patch["avatarUrl"] = *avatarURL
	}
	if len(patch) > 0 {
		if err := r.store.Update(ctx, Collection, id.String(), patch); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

func toDomain(doc docstore.Document) (*domain.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("user %s: invalid id: %w", doc.ID, err)
	}
	var rec record
	if err := doc.Decode(&rec); err != nil {
		return nil, err
	}
	return &domain.User{
		ID:        id,
		Email:     rec.Email,
		Name:      rec.Name,
		AvatarURL: rec.AvatarURL,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
