// Package checklist serves the to-do and to-buy lists. Both share the
// TodoEntry shape; one Service is built per list domain.
package checklist

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tourcrew-backend/internal/config"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/internal/service/category"
)

// Service provides checklist operations. Category operations are promoted
// from the embedded category service.
type Service struct {
	*category.Service[domain.TodoEntry]
}

// NewService creates a checklist service; name is "todos" or "tobuys".
func NewService(
	logger *slog.Logger,
	name string,
	repo category.Repo[domain.TodoEntry],
	limits config.ListsConfig,
) *Service {
	return &Service{Service: category.NewService(logger, name, repo, limits)}
}

// AddEntry appends an unchecked item to a category.
func (s *Service) AddEntry(ctx context.Context, input AddEntryInput) (domain.TodoEntry, error) {
	if err := input.Validate(s.Limits()); err != nil {
		return domain.TodoEntry{}, err
	}
	return s.Service.AddEntry(ctx, input.CategoryID, domain.TodoEntry{
		Text: strings.TrimSpace(input.Text),
	})
}

// UpdateEntry changes an item's text and/or completion state.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (domain.TodoEntry, error) {
	if err := input.Validate(s.Limits()); err != nil {
		return domain.TodoEntry{}, err
	}

	updated, err := s.Service.UpdateEntry(ctx, input.CategoryID, input.EntryID, func(e domain.TodoEntry) domain.TodoEntry {
		if input.Text != nil {
			e.Text = strings.TrimSpace(*input.Text)
		}
		if input.Completed != nil {
			e.Completed = *input.Completed
		}
		return e
	})
	if err != nil {
		return domain.TodoEntry{}, err
	}

	if input.Completed != nil {
		s.Log().InfoContext(ctx, "entry completion changed",
			slog.String("category_id", input.CategoryID),
			slog.String("entry_id", input.EntryID),
			slog.Bool("completed", *input.Completed),
		)
	}
	return updated, nil
}
