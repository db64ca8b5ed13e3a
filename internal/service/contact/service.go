// Package contact manages a user's useful contacts (venues, promoters, techs).
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	contactrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/contact"
	"github.com/heartmarshall/tourcrew-backend/pkg/ctxutil"
)

type contactRepo interface {
	List(ctx context.Context, ownerID string, f contactrepo.Filter) ([]domain.Contact, error)
	Get(ctx context.Context, id string) (*domain.Contact, error)
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	Update(ctx context.Context, id string, ch contactrepo.Changes) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

// Service provides contact operations.
type Service struct {
	log      *slog.Logger
	contacts contactRepo
}

// NewService creates a new contact service.
func NewService(logger *slog.Logger, contacts contactRepo) *Service {
	return &Service{
		log:      logger.With("service", "contact"),
		contacts: contacts,
	}
}

// List returns the caller's contacts matching input, newest first.
// Category and city match exactly; name matches as a case-insensitive
// substring.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Contact, error) {
	ownerID, ok := ctxutil.OwnerID(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	contacts, err := s.contacts.List(ctx, ownerID, contactrepo.Filter{
		Category: strings.TrimSpace(input.Category),
		City:     strings.TrimSpace(input.City),
	})
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(strings.TrimSpace(input.Name))
	if name == "" {
		return contacts, nil
	}
	return slices.DeleteFunc(contacts, func(c domain.Contact) bool {
		return !strings.Contains(strings.ToLower(c.Name), name)
	}), nil
}

// Create adds a contact for the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Contact, error) {
	ownerID, ok := ctxutil.OwnerID(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.contacts.Create(ctx, &domain.Contact{
		OwnerID:  ownerID,
		Name:     domain.CollapseSpaces(input.Name),
		Category: strings.TrimSpace(input.Category),
		Phone:    strings.TrimSpace(input.Phone),
		Email:    domain.NormalizeEmail(input.Email),
		Notes:    strings.TrimSpace(input.Notes),
		City:     strings.TrimSpace(input.City),
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "contact created",
		slog.String("user_id", ownerID),
		slog.String("contact_id", c.ID),
	)
	return c, nil
}

// Update changes the given fields of one of the caller's contacts.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Contact, error) {
	if err := s.owned(ctx, input.ContactID); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ch := contactrepo.Changes{
		Category: trimmed(input.Category),
		Phone:    trimmed(input.Phone),
		Notes:    trimmed(input.Notes),
		City:     trimmed(input.City),
	}
	if input.Name != nil {
		name := domain.CollapseSpaces(*input.Name)
		ch.Name = &name
	}
	if input.Email != nil {
		email := domain.NormalizeEmail(*input.Email)
		ch.Email = &email
	}
	return s.contacts.Update(ctx, input.ContactID, ch)
}

// Delete removes one of the caller's contacts.
func (s *Service) Delete(ctx context.Context, contactID string) error {
	if err := s.owned(ctx, contactID); err != nil {
		return err
	}
	if err := s.contacts.Delete(ctx, contactID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "contact deleted", slog.String("contact_id", contactID))
	return nil
}

// owned reports a contact that belongs to someone else as not found.
func (s *Service) owned(ctx context.Context, contactID string) error {
	ownerID, ok := ctxutil.OwnerID(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if contactID == "" {
		return domain.NewValidationError("contact_id", "required")
	}
	c, err := s.contacts.Get(ctx, contactID)
	if err != nil {
		return err
	}
	if c.OwnerID != ownerID {
		return fmt.Errorf("contact %s: %w", contactID, domain.ErrNotFound)
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
