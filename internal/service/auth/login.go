package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourcrew-backend/internal/auth"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// Login performs OAuth authentication and returns access/refresh tokens.
// If the user doesn't exist, creates the user and its auth method in a transaction.
// If the user exists, updates their profile if it changed.
// If a user with the same email already exists (password-registered), links the OAuth method.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if input.Provider == "" {
		input.Provider = domain.AuthMethodGoogle.String()
	}

	// Validate input
	if err := input.Validate(s.cfg.AllowedProviders()); err != nil {
		return nil, err
	}

	// Verify OAuth code with provider
	identity, err := s.oauth.VerifyCode(ctx, input.Code)
	if err != nil {
		return nil, fmt.Errorf("auth.Login oauth verification: %w", err)
	}

	method := domain.AuthMethodType(input.Provider)

	// Check if an auth method already exists for this OAuth identity
	am, err := s.authMethods.GetByOAuth(ctx, method, identity.ProviderID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Login get auth method: %w", err)
	}

	if am != nil {
		// Existing OAuth user: load and refresh the profile.
		user, err := s.users.GetByID(ctx, am.UserID)
		if err != nil {
			return nil, fmt.Errorf("auth.Login get user: %w", err)
		}

		if profileChanged(user, identity) {
			user, err = s.users.Update(ctx, user.ID, nameOrNil(identity.Name), identity.AvatarURL)
			if err != nil {
				return nil, fmt.Errorf("auth.Login update profile: %w", err)
			}
		}

		return s.finishLogin(ctx, user, method, "user logged in via oauth")
	}

	// No auth method yet. Link to an existing user with the same email.
	identity.Email = domain.NormalizeEmail(identity.Email)
	user, err := s.users.GetByEmail(ctx, identity.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Login get user by email: %w", err)
	}

	if user != nil {
		err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			newAM := &domain.AuthMethod{
				UserID:     user.ID,
				Method:     method,
				ProviderID: &identity.ProviderID,
			}
			if _, err := s.authMethods.Create(txCtx, newAM); err != nil {
				return fmt.Errorf("link oauth: %w", err)
			}

			if profileChanged(user, identity) {
				user, err = s.users.Update(txCtx, user.ID, nameOrNil(identity.Name), identity.AvatarURL)
				if err != nil {
					return fmt.Errorf("update profile: %w", err)
				}
			}
			return nil
		})
		if err != nil && !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Login link oauth: %w", err)
		}
		// ErrAlreadyExists: a concurrent login linked the method first.

		return s.finishLogin(ctx, user, method, "oauth linked to existing account")
	}

	// New user, registered in one transaction.
	user, err = s.registerOAuthUser(ctx, identity, method)
	if err != nil {
		return nil, err
	}

	return s.finishLogin(ctx, user, method, "user registered via oauth")
}

func (s *Service) finishLogin(ctx context.Context, user *domain.User, method domain.AuthMethodType, msg string) (*AuthResult, error) {
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, msg,
		slog.String("user_id", user.ID.String()),
		slog.String("provider", method.String()))
	s.signedIn(ctx, user, method)

	return result, nil
}

// registerOAuthUser creates a new user and its auth method in a transaction.
func (s *Service) registerOAuthUser(ctx context.Context, identity *auth.OAuthIdentity, method domain.AuthMethodType) (*domain.User, error) {
	var createdUser *domain.User

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:        uuid.New(),
			Email:     identity.Email,
			Name:      identity.DisplayName(),
			AvatarURL: identity.AvatarURL,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		am := &domain.AuthMethod{
			UserID:     user.ID,
			Method:     method,
			ProviderID: &identity.ProviderID,
		}
		if _, err := s.authMethods.Create(txCtx, am); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}

		createdUser = user
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Race condition: retry lookup
			am, retryErr := s.authMethods.GetByOAuth(ctx, method, identity.ProviderID)
			if retryErr == nil {
				user, retryErr := s.users.GetByID(ctx, am.UserID)
				if retryErr == nil {
					return user, nil
				}
			}
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("auth.Login register user: %w", err)
	}

	return createdUser, nil
}
