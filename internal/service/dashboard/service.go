// Package dashboard builds the home page summary.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/pkg/ctxutil"
)

type categoryCounter interface {
	CountCategories(ctx context.Context, ownerID string) (int, error)
}

type ownerCounter interface {
	Count(ctx context.Context, ownerID string) (int, error)
}

type tourCounter interface {
	CountTours(ctx context.Context) (int, error)
}

// Summary holds the caller's item counts. Tours counts every tour.
type Summary struct {
	TodoCategories      int
	ToBuyCategories     int
	InventoryCategories int
	Contacts            int
	Manuals             int
	Tours               int
}

// Service computes dashboard summaries.
type Service struct {
	log       *slog.Logger
	todos     categoryCounter
	tobuys    categoryCounter
	inventory categoryCounter
	contacts  ownerCounter
	manuals   ownerCounter
	tours     tourCounter
}

// NewService creates a new dashboard service.
func NewService(
	logger *slog.Logger,
	todos, tobuys, inventory categoryCounter,
	contacts, manuals ownerCounter,
	tours tourCounter,
) *Service {
	return &Service{
		log:       logger.With("service", "dashboard"),
		todos:     todos,
		tobuys:    tobuys,
		inventory: inventory,
		contacts:  contacts,
		manuals:   manuals,
		tours:     tours,
	}
}

// Summary counts the caller's lists, contacts and manuals, and all tours.
// The counts are fetched concurrently; the first failure cancels the rest.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	owner, ok := ctxutil.OwnerID(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var out Summary
	g, gctx := errgroup.WithContext(ctx)

	count := func(name string, dst *int, fn func(context.Context) (int, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", name, err)
			}
			*dst = n
			return nil
		})
	}

	count("todos", &out.TodoCategories, func(ctx context.Context) (int, error) {
		return s.todos.CountCategories(ctx, owner)
	})
	count("tobuys", &out.ToBuyCategories, func(ctx context.Context) (int, error) {
		return s.tobuys.CountCategories(ctx, owner)
	})
	count("inventory", &out.InventoryCategories, func(ctx context.Context) (int, error) {
		return s.inventory.CountCategories(ctx, owner)
	})
	count("contacts", &out.Contacts, func(ctx context.Context) (int, error) {
		return s.contacts.Count(ctx, owner)
	})
	count("manuals", &out.Manuals, func(ctx context.Context) (int, error) {
		return s.manuals.Count(ctx, owner)
	})
	count("tours", &out.Tours, s.tours.CountTours)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
