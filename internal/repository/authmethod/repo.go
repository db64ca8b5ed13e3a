// Package authmethod stores user credentials (password hashes and OAuth
// provider ids) in the "auth_methods" collection.
package authmethod

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourcrew-backend/internal/docstore"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// Collection holds one document per credential. An OAuth (method,
// providerId) pair is unique.
const Collection = "auth_methods"

type documentStore interface {
	Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]docstore.Document, error)
	Insert(ctx context.Context, collection string, data any) (*docstore.Document, error)
}

type record struct {
	UserID       string  `json:"userId"`
	Method       string  `json:"method"`
	ProviderID   *string `json:"providerId,omitempty"`
	PasswordHash *string `json:"passwordHash,omitempty"`
}

// Repo provides auth method persistence.
type Repo struct {
	store documentStore
}

// New creates a new auth method repository.
func New(store documentStore) *Repo {
	return &Repo{store: store}
}

// GetByOAuth returns the credential linked to an OAuth provider account.
func (r *Repo) GetByOAuth(ctx context.Context, method domain.AuthMethodType, providerID string) (*domain.AuthMethod, error) {
	return r.first(ctx, method.String()+":"+providerID,
		docstore.Eq("method", method.String()),
		docstore.Eq("providerId", providerID),
	)
}

// GetByUserAndMethod returns the user's credential of the given type.
func (r *Repo) GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error) {
	return r.first(ctx, userID.String()+":"+method.String(),
		docstore.Eq("userId", userID.String()),
		docstore.Eq("method", method.String()),
	)
}

// Create stores a credential.
func (r *Repo) Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	if err := am.Validate(); err != nil {
		return nil, err
	}
	doc, err := r.store.Insert(ctx, Collection, record{
		UserID:       am.UserID.String(),
		Method:       am.Method.String(),
		ProviderID:   am.ProviderID,
		PasswordHash: am.PasswordHash,
	})
	if err != nil {
		return nil, err
	}
	return toDomain(*doc)
}

func (r *Repo) first(ctx context.Context, key string, filters ...docstore.Filter) (*domain.AuthMethod, error) {
	docs, err := r.store.Query(ctx, Collection, filters...)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("auth method %s: %w", key, domain.ErrNotFound)
	}
	return toDomain(docs[0])
}

func toDomain(doc docstore.Document) (*domain.AuthMethod, error) {
	var rec record
	if err := doc.Decode(&rec); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("auth method %s: invalid id: %w", doc.ID, err)
	}
	userID, err := uuid.Parse(rec.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth method %s: invalid user id: %w", doc.ID, err)
	}
	return &domain.AuthMethod{
		ID:           id,
		UserID:       userID,
		Method:       domain.AuthMethodType(rec.Method),
		ProviderID:   rec.ProviderID,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}
