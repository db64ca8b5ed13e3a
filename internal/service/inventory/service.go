// Package inventory serves the personal inventory: categories of counted items.
package inventory

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/tourcrew-backend/internal/config"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/internal/service/category"
)

// Service provides inventory operations. Category operations are promoted
// from the embedded category service.
type Service struct {
	*category.Service[domain.InventoryEntry]
}

// NewService creates an inventory service.
func NewService(
	logger *slog.Logger,
	repo category.Repo[domain.InventoryEntry],
	limits config.ListsConfig,
) *Service {
	return &Service{Service: category.NewService(logger, "inventory", repo, limits)}
}

// AddEntry appends an item to a category.
func (s *Service) AddEntry(ctx context.Context, input AddEntryInput) (domain.InventoryEntry, error) {
	if err := input.Validate(s.Limits()); err != nil {
		return domain.InventoryEntry{}, err
	}
	return s.Service.AddEntry(ctx, input.CategoryID, domain.InventoryEntry{
		Name:   domain.CollapseSpaces(input.Name),
		Number: input.Number,
	})
}

// UpdateEntry changes an item's name and/or count.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (domain.InventoryEntry, error) {
	if err := input.Validate(s.Limits()); err != nil {
		return domain.InventoryEntry{}, err
	}
	return s.Service.UpdateEntry(ctx, input.CategoryID, input.EntryID, func(e domain.InventoryEntry) domain.InventoryEntry {
		if input.Name != nil {
			e.Name = domain.CollapseSpaces(*input.Name)
		}
		if input.Number != nil {
			e.Number = *input.Number
		}
		return e
	})
}
