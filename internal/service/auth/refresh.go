package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/tourcrew-backend/internal/auth"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued in the same transaction. The revoke only succeeds while the
// token is still active, so concurrent refreshes with one token issue at most
// one new pair.
// An unknown or revoked token is treated as reuse and logged; it, an expired
// token, and a token of a deleted user all yield ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeByID(txCtx, token.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.WarnContext(ctx, "refresh token reuse attempted",
					slog.String("user_id", token.UserID.String()))
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("revoke token: %w", err)
		}
		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if errors.Is(err, domain.ErrUnauthorized) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
