package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// decoyHash is compared against when no password hash exists, so an unknown
// email costs the same bcrypt work as a wrong password.
var decoyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("tourcrew decoy password"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("auth: decoy hash: %v", err))
	}
	return h
})

// LoginWithPassword signs in with email and password. Unknown emails,
// OAuth-only accounts and wrong passwords all report ErrUnauthorized.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, hash, err := s.passwordCredentials(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}

	if hash == nil {
		_ = bcrypt.CompareHashAndPassword(decoyHash(), []byte(input.Password))
		s.log.WarnContext(ctx, "password login rejected", slog.String("reason", "no password credential"))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(input.Password)); err != nil {
		s.log.WarnContext(ctx, "password login rejected",
			slog.String("reason", "wrong password"),
			slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via password", slog.String("user_id", user.ID.String()))
	s.signedIn(ctx, user, domain.AuthMethodPassword)

	return result, nil
}

// passwordCredentials returns the user and stored password hash for email.
// A missing user or password method yields a nil hash and no error.
func (s *Service) passwordCredentials(ctx context.Context, email string) (*domain.User, []byte, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	am, err := s.authMethods.GetByUserAndMethod(ctx, user.ID, domain.AuthMethodPassword)
	if errors.Is(err, domain.ErrNotFound) {
		return user, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get auth method: %w", err)
	}
	if am.PasswordHash == nil {
		return user, nil, nil
	}
	return user, []byte(*am.PasswordHash), nil
}
