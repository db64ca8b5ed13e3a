package tour

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	tourrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/tour"
	"github.com/heartmarshall/tourcrew-backend/pkg/ctxutil"
)

// ListTours returns all tours sorted by name.
func (s *Service) ListTours(ctx context.Context) ([]domain.Tour, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.tours.ListTours(ctx)
}

// GetTour returns a tour by id.
func (s *Service) GetTour(ctx context.Context, tourID string) (*domain.Tour, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if tourID == "" {
		return nil, domain.NewValidationError("tour_id", "required")
	}
	return s.tours.GetTour(ctx, tourID)
}

// CreateTour adds a tour.
func (s *Service) CreateTour(ctx context.Context, input CreateTourInput) (*domain.Tour, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.tours.CreateTour(ctx, &domain.Tour{
		Name:        domain.CollapseSpaces(input.Name),
		StagePlot:   trimLink(input.StagePlot),
		ChannelList: trimLink(input.ChannelList),
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tour created",
		slog.String("user_id", userID.String()),
		slog.String("tour_id", t.ID),
		slog.String("name", t.Name),
	)
	return t, nil
}

// UpdateTour changes the given fields of a tour. An empty link clears it.
func (s *Service) UpdateTour(ctx context.Context, input UpdateTourInput) (*domain.Tour, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ch := tourrepo.TourChanges{}
	if input.Name != nil {
		name := domain.CollapseSpaces(*input.Name)
		ch.Name = &name
	}
	if input.StagePlot != nil {
		v := trimLink(*input.StagePlot)
		ch.StagePlot = &v
	}
	if input.ChannelList != nil {
		v := trimLink(*input.ChannelList)
		ch.ChannelList = &v
	}

	return s.tours.UpdateTour(ctx, input.TourID, ch)
}

// DeleteTour removes a tour together with its artists.
func (s *Service) DeleteTour(ctx context.Context, tourID string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if tourID == "" {
		return domain.NewValidationError("tour_id", "required")
	}

	var removed int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.tours.DeleteArtistsByTour(ctx, tourID)
		if err != nil {
			return err
		}
		removed = n
		return s.tours.DeleteTour(ctx, tourID)
	})
	if err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}

	s.log.InfoContext(ctx, "tour deleted",
		slog.String("user_id", userID.String()),
		slog.String("tour_id", tourID),
		slog.Int64("artists_deleted", removed),
	)
	return nil
}

// requireTour reports ErrNotFound when the tour does not exist.
func (s *Service) requireTour(ctx context.Context, tourID string) error {
	if _, err := s.tours.GetTour(ctx, tourID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("tour %s: %w", tourID, domain.ErrNotFound)
		}
		return err
	}
	return nil
}
