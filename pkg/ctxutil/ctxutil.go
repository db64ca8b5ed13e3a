// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

// key is a typed context key; the type parameter pins what it stores.
type key[T any] struct{ name string }

var (
	userIDKey    = key[uuid.UUID]{"user_id"}
	requestIDKey = key[string]{"request_id"}
)

func with[T any](ctx context.Context, k key[T], v T) context.Context {
	return context.WithValue(ctx, k, v)
}

func from[T any](ctx context.Context, k key[T]) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

// WithUserID stores the authenticated user's id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return with(ctx, userIDKey, id)
}

// UserIDFromCtx returns the authenticated user's id. A missing or nil id
// reports false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := from(ctx, userIDKey)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// OwnerID returns the authenticated user's id in the string form that
// scopes owned documents.
func OwnerID(ctx context.Context) (string, bool) {
	id, ok := UserIDFromCtx(ctx)
	if !ok {
		return "", false
	}
	return id.String(), true
}

// WithRequestID stores the request correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return with(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request correlation id, or "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := from(ctx, requestIDKey)
	return id
}
