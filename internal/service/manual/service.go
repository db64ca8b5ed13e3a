// Package manual manages a user's links to equipment manuals.
package manual

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/pkg/ctxutil"
)

type manualRepo interface {
	List(ctx context.Context, ownerID string) ([]domain.Manual, error)
	Get(ctx context.Context, id string) (*domain.Manual, error)
	Create(ctx context.Context, m *domain.Manual) (*domain.Manual, error)
	Update(ctx context.Context, id, title, link string) (*domain.Manual, error)
	Delete(ctx context.Context, id string) error
}

// Service provides manual operations.
type Service struct {
	log     *slog.Logger
	manuals manualRepo
}

// NewService creates a new manual service.
func NewService(logger *slog.Logger, manuals manualRepo) *Service {
	return &Service{
		log:     logger.With("service", "manual"),
		manuals: manuals,
	}
}

// List returns the caller's manuals.
func (s *Service) List(ctx context.Context) ([]domain.Manual, error) {
	ownerID, ok := ctxutil.OwnerID(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.manuals.List(ctx, ownerID)
}

// Create adds a manual. A link without an http(s) scheme gets "https://".
func (s *Service) Create(ctx context.Context, input Input) (*domain.Manual, error) {
	ownerID, ok := ctxutil.OwnerID(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := s.manuals.Create(ctx, &domain.Manual{
		OwnerID: ownerID,
		Title:   domain.CollapseSpaces(input.Title),
		Link:    domain.NormalizeLink(input.Link),
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "manual created",
		slog.String("user_id", ownerID),
		slog.String("manual_id", m.ID),
	)
	return m, nil
}

// Update replaces the title and link of one of the caller's manuals.
func (s *Service) Update(ctx context.Context, manualID string, input Input) (*domain.Manual, error) {
	if err := s.owned(ctx, manualID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.manuals.Update(ctx, manualID, domain.CollapseSpaces(input.Title), domain.NormalizeLink(input.Link))
}

// Delete removes one of the caller's manuals.
func (s *Service) Delete(ctx context.Context, manualID string) error {
	if err := s.owned(ctx, manualID); err != nil {
		return err
	}
	return s.manuals.Delete(ctx, manualID)
}

func (s *Service) owned(ctx context.Context, manualID string) error {
	ownerID, ok := ctxutil.OwnerID(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if manualID == "" {
		return domain.NewValidationError("manual_id", "required")
	}
	m, err := s.manuals.Get(ctx, manualID)
	if err != nil {
		return err
	}
	if m.OwnerID != ownerID {
		return fmt.Errorf("manual %s: %w", manualID, domain.ErrNotFound)
	}
	return nil
}
