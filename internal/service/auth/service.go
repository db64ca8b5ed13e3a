package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourcrew-backend/internal/auth"
	"github.com/heartmarshall/tourcrew-backend/internal/config"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, name *string, avatarURL *string) (*domain.User, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// authMethodRepo defines the auth method repository interface needed by auth service.
type authMethodRepo interface {
	GetByOAuth(ctx context.Context, method domain.AuthMethodType, providerID string) (*domain.AuthMethod, error)
	GetByUserAndMethod(ctx context.Context, userID uuid.UUID, method domain.AuthMethodType) (*domain.AuthMethod, error)
	Create(ctx context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// oauthVerifier exchanges an authorization code for a verified identity.
type oauthVerifier interface {
	VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// sessionPublisher receives sign-in and sign-out notifications.
type sessionPublisher interface {
	Publish(ctx context.Context, ev auth.SessionEvent)
}

// AuthResult is the session handed out by every sign-in path and by Refresh.
// RefreshToken is the raw value; only its hash is stored.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

// Service implements auth operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	tokens      tokenRepo
	authMethods authMethodRepo
	tx          txManager
	oauth       oauthVerifier
	jwt         jwtManager
	sessions    sessionPublisher
	cfg         config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	authMethods authMethodRepo,
	tx txManager,
	oauth oauthVerifier,
	jwt jwtManager,
	sessions sessionPublisher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		users:       users,
		tokens:      tokens,
		authMethods: authMethods,
		tx:          tx,
		oauth:       oauth,
		jwt:         jwt,
		sessions:    sessions,
		cfg:         cfg,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefresh,
		ExpiresAt: time.Now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}

// signedIn publishes a sign-in event for user.
func (s *Service) signedIn(ctx context.Context, user *domain.User, method domain.AuthMethodType) {
	s.sessions.Publish(ctx, auth.SessionEvent{
		Kind:   auth.SignedIn,
		UserID: user.ID,
		Method: method.String(),
		At:     time.Now().UTC(),
	})
}

// ptrStringNotEqual compares *string with *string, treating nil as distinct from "".
func ptrStringNotEqual(a, b *string) bool {
	if a == nil && b == nil {
		return false
	}
	if a == nil || b == nil {
		return true
	}
	return *a != *b
}

// profileChanged checks if the OAuth identity profile differs from the stored user profile.
func profileChanged(user *domain.User, identity *auth.OAuthIdentity) bool {
	if identity.Name != "" && identity.Name != user.Name {
		return true
	}
	if identity.AvatarURL != nil && ptrStringNotEqual(identity.AvatarURL, user.AvatarURL) {
		return true
	}
	return false
}

// nameOrNil returns nil for an empty name so the stored name is kept.
func nameOrNil(name string) *string {
	if name == "" {
		return nil
	}
	return &name
}
