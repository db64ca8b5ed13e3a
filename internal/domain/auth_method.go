package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthMethodType names a kind of credential.
type AuthMethodType string

const (
	AuthMethodPassword AuthMethodType = "password"
	AuthMethodGoogle   AuthMethodType = "google"
)

func (m AuthMethodType) String() string { return string(m) }

// IsValid reports whether m is a supported credential kind.
func (m AuthMethodType) IsValid() bool {
	return m == AuthMethodPassword || m.IsOAuth()
}

// IsOAuth reports whether m is verified by an external provider.
func (m AuthMethodType) IsOAuth() bool {
	return m == AuthMethodGoogle
}

// AuthMethod is one way a user can sign in. A user holds at most one per
// type; an OAuth method is also unique by ProviderID.
type AuthMethod struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Method       AuthMethodType
	ProviderID   *string
	PasswordHash *string
	CreatedAt    time.Time
}

// Validate checks that the credential carries what its type needs: a
// provider id for OAuth, a password hash otherwise.
func (a *AuthMethod) Validate() error {
	switch {
	case !a.Method.IsValid():
		return NewValidationError("method", "unsupported")
	case a.UserID == uuid.Nil:
		return NewValidationError("user_id", "required")
	case a.Method.IsOAuth() && (a.ProviderID == nil || *a.ProviderID == ""):
		return NewValidationError("provider_id", "required for "+a.Method.String())
	case !a.Method.IsOAuth() && (a.PasswordHash == nil || *a.PasswordHash == ""):
		return NewValidationError("password_hash", "required")
	}
	return nil
}
