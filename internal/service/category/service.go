// Package category holds the owner-checked category operations shared by the
// checklist and inventory services. Entry-specific input handling lives in
// those packages; this one enforces identity, ownership and list limits.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tourcrew-backend/internal/config"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/pkg/ctxutil"
)

// Repo is the category repository contract for one list domain.
type Repo[E domain.Orderable[E]] interface {
	ListCategories(ctx context.Context, ownerID string) ([]domain.Category[E], error)
	CountCategories(ctx context.Context, ownerID string) (int, error)
	AddCategoryLimited(ctx context.Context, ownerID, title string, limit int) (*domain.Category[E], error)
	GetCategory(ctx context.Context, categoryID string) (*domain.Category[E], error)
	RenameCategory(ctx context.Context, categoryID, title string) error
	DeleteCategory(ctx context.Context, categoryID string) error
	AddEntryLimited(ctx context.Context, categoryID string, entry E, limit int) (E, error)
	UpdateEntry(ctx context.Context, categoryID, entryID string, apply func(E) E) (E, error)
	DeleteEntry(ctx context.Context, categoryID, entryID string) error
	ReorderEntries(ctx context.Context, categoryID string, orderedIDs []string) error
	MoveEntry(ctx context.Context, categoryID, entryID string, to int) ([]E, error)
}

// Service provides category operations for one list domain.
type Service[E domain.Orderable[E]] struct {
	log    *slog.Logger
	repo   Repo[E]
	limits config.ListsConfig
}

// NewService creates a category service. name identifies the list domain in logs.
func NewService[E domain.Orderable[E]](
	logger *slog.Logger,
	name string,
	repo Repo[E],
	limits config.ListsConfig,
) *Service[E] {
	return &Service[E]{
		log:    logger.With("service", name),
		repo:   repo,
		limits: limits,
	}
}

// Limits returns the configured list limits.
func (s *Service[E]) Limits() config.ListsConfig { return s.limits }

// Log returns the service logger.
func (s *Service[E]) Log() *slog.Logger { return s.log }

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// ListCategories returns the caller's categories.
func (s *Service[E]) ListCategories(ctx context.Context) ([]domain.Category[E], error) {
	ownerID, ok := ctxutil.OwnerID(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.ListCategories(ctx, ownerID)
}

// CountCategories returns how many categories the caller has.
func (s *Service[E]) CountCategories(ctx context.Context) (int, error) {
	ownerID, ok := ctxutil.OwnerID(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	return s.repo.CountCategories(ctx, ownerID)
}

// CreateCategory adds an empty category for the caller.
func (s *Service[E]) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category[E], error) {
	ownerID, ok := ctxutil.OwnerID(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	c, err := s.repo.AddCategoryLimited(ctx, ownerID, input.Title, s.limits.MaxCategoriesPerUser)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", ownerID),
		slog.String("category_id", c.ID),
	)
	return c, nil
}

// RenameCategory sets a new title on one of the caller's categories.
func (s *Service[E]) RenameCategory(ctx context.Context, input RenameCategoryInput) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(s.limits); err != nil {
		return err
	}
	if _, err := s.Owned(ctx, input.CategoryID); err != nil {
		return err
	}
	return s.repo.RenameCategory(ctx, input.CategoryID, input.Title)
}

// DeleteCategory removes one of the caller's categories. Deleting a category
// that no longer exists succeeds.
func (s *Service[E]) DeleteCategory(ctx context.Context, categoryID string) error {
	if _, err := s.Owned(ctx, categoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.repo.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "category deleted", slog.String("category_id", categoryID))
	return nil
}

// Owned returns the category if it belongs to the caller. A category owned by
// someone else is reported as not found.
func (s *Service[E]) Owned(ctx context.Context, categoryID string) (*domain.Category[E], error) {
	ownerID, ok := ctxutil.OwnerID(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(categoryID) == "" {
		return nil, domain.NewValidationError("category_id", "required")
	}

	c, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != ownerID {
		return nil, fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Entries
// ---------------------------------------------------------------------------

// AddEntry appends a validated entry to one of the caller's categories.
func (s *Service[E]) AddEntry(ctx context.Context, categoryID string, entry E) (E, error) {
	var zero E
	if _, err := s.Owned(ctx, categoryID); err != nil {
		return zero, err
	}

	added, err := s.repo.AddEntryLimited(ctx, categoryID, entry, s.limits.MaxEntriesPerList)
	if err != nil {
		return zero, err
	}

	s.log.InfoContext(ctx, "entry added",
		slog.String("category_id", categoryID),
		slog.String("entry_id", added.EntryID()),
	)
	return added, nil
}

// UpdateEntry applies a validated change to one entry.
func (s *Service[E]) UpdateEntry(ctx context.Context, categoryID, entryID string, apply func(E) E) (E, error) {
	var zero E
	if _, err := s.Owned(ctx, categoryID); err != nil {
		return zero, err
	}
	return s.repo.UpdateEntry(ctx, categoryID, entryID, apply)
}

// DeleteEntry removes one entry and re-indexes the rest.
func (s *Service[E]) DeleteEntry(ctx context.Context, categoryID, entryID string) error {
	if _, err := s.Owned(ctx, categoryID); err != nil {
		return err
	}
	if err := s.repo.DeleteEntry(ctx, categoryID, entryID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("category_id", categoryID),
		slog.String("entry_id", entryID),
	)
	return nil
}

// ReorderEntries stores the caller's full ordering of a category's entries.
func (s *Service[E]) ReorderEntries(ctx context.Context, input ReorderInput) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}
	if _, err := s.Owned(ctx, input.CategoryID); err != nil {
		return err
	}
	return s.repo.ReorderEntries(ctx, input.CategoryID, input.EntryIDs)
}

// MoveEntry moves one entry to a new index and returns the reordered entries.
func (s *Service[E]) MoveEntry(ctx context.Context, input MoveInput) ([]E, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.Owned(ctx, input.CategoryID); err != nil {
		return nil, err
	}
	return s.repo.MoveEntry(ctx, input.CategoryID, input.EntryID, input.To)
}

// CheckText validates a required, length-limited text field.
func CheckText(field, value string, maxLen int) *domain.FieldError {
	value = strings.TrimSpace(value)
	if value == "" {
		return &domain.FieldError{Field: field, Message: "required"}
	}
	if utf8.RuneCountInString(value) > maxLen {
		return &domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxLen)}
	}
	return nil
}
