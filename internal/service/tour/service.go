// Package tour manages the shared tour list and each tour's artists.
// Tours are global: every signed-in user may read and change them.
package tour

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	tourrepo "github.com/heartmarshall/tourcrew-backend/internal/repository/tour"
)

// MaxNameLength bounds tour, artist and role names.
const MaxNameLength = 100

type tourRepo interface {
	ListTours(ctx context.Context) ([]domain.Tour, error)
	GetTour(ctx context.Context, id string) (*domain.Tour, error)
	CreateTour(ctx context.Context, t *domain.Tour) (*domain.Tour, error)
	UpdateTour(ctx context.Context, id string, ch tourrepo.TourChanges) (*domain.Tour, error)
	DeleteTour(ctx context.Context, id string) error
	ListArtists(ctx context.Context, tourID string) ([]domain.TourArtist, error)
	GetArtist(ctx context.Context, id string) (*domain.TourArtist, error)
	CreateArtist(ctx context.Context, a *domain.TourArtist) (*domain.TourArtist, error)
	UpdateArtist(ctx context.Context, id string, ch tourrepo.ArtistChanges) (*domain.TourArtist, error)
	DeleteArtist(ctx context.Context, id string) error
	DeleteArtistsByTour(ctx context.Context, tourID string) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides tour and artist operations.
type Service struct {
	log   *slog.Logger
	tours tourRepo
	tx    txManager
}

// NewService creates a new tour service.
func NewService(logger *slog.Logger, tours tourRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "tour"),
		tours: tours,
		tx:    tx,
	}
}
