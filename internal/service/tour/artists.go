package tour

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	tourrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/tour"
	"github.com/heartmarshall/tourcrew-backend/pkg/ctxutil"
)

// ListArtists returns the artists of an existing tour sorted by name.
func (s *Service) ListArtists(ctx context.Context, tourID string) ([]domain.TourArtist, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if tourID == "" {
		return nil, domain.NewValidationError("tour_id", "required")
	}
	if err := s.requireTour(ctx, tourID); err != nil {
		return nil, err
	}
	return s.tours.ListArtists(ctx, tourID)
}

// GetArtist returns an artist by id.
func (s *Service) GetArtist(ctx context.Context, artistID string) (*domain.TourArtist, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if artistID == "" {
		return nil, domain.NewValidationError("artist_id", "required")
	}
	return s.tours.GetArtist(ctx, artistID)
}

// AddArtist attaches a new artist to an existing tour.
func (s *Service) AddArtist(ctx context.Context, input AddArtistInput) (*domain.TourArtist, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireTour(ctx, input.TourID); err != nil {
		return nil, err
	}

	a, err := s.tours.CreateArtist(ctx, &domain.TourArtist{
		TourID: input.TourID,
		Name:   domain.CollapseSpaces(input.Name),
		Role:   strings.TrimSpace(input.Role),
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "artist added",
		slog.String("tour_id", a.TourID),
		slog.String("artist_id", a.ID),
	)
	return a, nil
}

// UpdateArtist changes an artist's name and/or role.
func (s *Service) UpdateArtist(ctx context.Context, input UpdateArtistInput) (*domain.TourArtist, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ch := tourrepo.ArtistChanges{}
	if input.Name != nil {
		name := domain.CollapseSpaces(*input.Name)
		ch.Name = &name
	}
	if input.Role != nil {
		role := strings.TrimSpace(*input.Role)
		ch.Role = &role
	}
	return s.tours.UpdateArtist(ctx, input.ArtistID, ch)
}

// DeleteArtist removes an artist.
func (s *Service) DeleteArtist(ctx context.Context, artistID string) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if artistID == "" {
		return domain.NewValidationError("artist_id", "required")
	}
	return s.tours.DeleteArtist(ctx, artistID)
}
