package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// Register creates a new user with email + password authentication.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.Name = domain.CollapseSpaces(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}
	hashStr := string(hash)

	name := input.Name
	if name == "" {
		name = domain.NameFromEmail(input.Email)
	}

	// Email uniqueness is enforced by a unique index in the store.
	var createdUser *domain.User

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:        uuid.New(),
			Email:     input.Email,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		am := &domain.AuthMethod{
			UserID:       user.ID,
			Method:       domain.AuthMethodPassword,
			PasswordHash: &hashStr,
		}
		if _, err := s.authMethods.Create(txCtx, am); err != nil {
			return fmt.Errorf("create auth method: %w", err)
		}

		createdUser = user
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueTokens(ctx, createdUser)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered via password",
		slog.String("user_id", createdUser.ID.String()))
	s.signedIn(ctx, createdUser, domain.AuthMethodPassword)

	return result, nil
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
