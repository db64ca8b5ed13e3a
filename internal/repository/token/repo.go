// Package token stores hashed refresh tokens in the "refresh_tokens" collection.
package token

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourcrew-backend/internal/docstore"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// Collection holds one document per issued refresh token.
const Collection = "refresh_tokens"

const (
	statusActive  = "active"
	statusRevoked = "revoked"
)

type documentStore interface {
	Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]docstore.Document, error)
	GetForUpdate(ctx context.Context, collection, id string) (*docstore.Document, error)
	Insert(ctx context.Context, collection string, data any) (*docstore.Document, error)
	Update(ctx context.Context, collection, id string, patch docstore.Patch) error
	DeleteWhere(ctx context.Context, collection string, filters ...docstore.Filter) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type record struct {
	UserID        string `json:"userId"`
	TokenHash     string `json:"tokenHash"`
	ExpiresAtUnix int64  `json:"expiresAtUnix"`
	Status        string `json:"status"`
	RevokedAtUnix *int64 `json:"revokedAtUnix,omitempty"`
}

// Repo provides refresh token persistence.
type Repo struct {
	store documentStore
	tx    txManager
	now   func() time.Time
}

// New creates a new refresh token repository.
func New(store documentStore, tx txManager) *Repo {
	return &Repo{store: store, tx: tx, now: time.Now}
}

// Create stores a new active token.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	doc, err := r.store.Insert(ctx, Collection, record{
		UserID:        t.UserID.String(),
		TokenHash:     t.TokenHash,
		ExpiresAtUnix: t.ExpiresAt.Unix(),
		Status:        statusActive,
	})
	if err != nil {
		return err
	}
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return fmt.Errorf("refresh token %s: invalid id: %w", doc.ID, err)
	}
	t.ID = id
	t.CreatedAt = doc.CreatedAt
	return nil
}

// GetByHash returns the active token with the given hash.
// Revoked tokens are reported as not found.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	docs, err := r.store.Query(ctx, Collection,
		docstore.Eq("tokenHash", tokenHash),
		docstore.Eq("status", statusActive),
	)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("refresh token: %w", domain.ErrNotFound)
	}
	return toDomain(docs[0])
}

// RevokeByID marks one active token revoked. The token is read under a row
// lock, so of two concurrent calls for the same token only one succeeds; the
// other, like a call for a token that is missing or already revoked, returns
// an error wrapping domain.ErrNotFound.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		doc, err := r.store.GetForUpdate(ctx, Collection, id.String())
		if err != nil {
			return err
		}
		var rec record
		if err := doc.Decode(&rec); err != nil {
			return err
		}
		if rec.Status != statusActive {
			return fmt.Errorf("refresh token %s: %w", id, domain.ErrNotFound)
		}
		return r.store.Update(ctx, Collection, id.String(), r.revokePatch())
	})
}

// RevokeAllByUser marks every active token of the user revoked.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		docs, err := r.store.Query(ctx, Collection,
			docstore.Eq("userId", userID.String()),
			docstore.Eq("status", statusActive),
		)
		if err != nil {
			return err
		}
		patch := r.revokePatch()
		for _, doc := range docs {
			if err := r.store.Update(ctx, Collection, doc.ID, patch); err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteExpired removes expired and revoked tokens and returns how many
// were deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	var total int64
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		expired, err := r.store.DeleteWhere(ctx, Collection, docstore.Lt("expiresAtUnix", r.now().Unix()))
		if err != nil {
			return fmt.Errorf("delete expired: %w", err)
		}
		revoked, err := r.store.DeleteWhere(ctx, Collection, docstore.Eq("status", statusRevoked))
		if err != nil {
			return fmt.Errorf("delete revoked: %w", err)
		}
		total = expired + revoked
		return nil
	})
	return int(total), err
}

func (r *Repo) revokePatch() docstore.Patch {
	return docstore.Patch{
		"status":        statusRevoked,
		"revokedAtUnix": r.now().Unix(),
	}
}

func toDomain(doc docstore.Document) (*domain.RefreshToken, error) {
	var rec record
	if err := doc.Decode(&rec); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("refresh token %s: invalid id: %w", doc.ID, err)
	}
	userID, err := uuid.Parse(rec.UserID)
	if err != nil {
		return nil, fmt.Errorf("refresh token %s: invalid user id: %w", doc.ID, err)
	}

	t := &domain.RefreshToken{
		ID:        id,
		UserID:    userID,
		TokenHash: rec.TokenHash,
		ExpiresAt: time.Unix(rec.ExpiresAtUnix, 0).UTC(),
		CreatedAt: doc.CreatedAt,
	}
	if rec.Status == statusRevoked && rec.RevokedAtUnix != nil {
		at := time.Unix(*rec.RevokedAtUnix, 0).UTC()
		t.RevokedAt = &at
	}
	return t, nil
}
