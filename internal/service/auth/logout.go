package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourcrew-backend/internal/auth"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/pkg/ctxutil"
)

// Logout revokes all refresh tokens for the authenticated user and publishes
// a sign-out event. Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	s.sessions.Publish(ctx, auth.SessionEvent{
		Kind:   auth.SignedOut,
		UserID: userID,
		At:     time.Now().UTC(),
	})
	return nil
}

// ValidateToken validates an access token and returns the user ID.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// CleanupExpiredTokens removes expired and revoked refresh tokens.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}

	return count, nil
}
