// Package tour stores tours in the global "tours" collection and their
// artists in "tour_artists", keyed by tourId.
package tour

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/tourcrew-backend/internal/docstore"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// Collections.
const (
	ToursCollection   = "tours"
	ArtistsCollection = "tour_artists"
)

type documentStore interface {
	Query(ctx context.Context, collection string, filters ...docstore.Filter) ([]docstore.Document, error)
	Count(ctx context.Context, collection string, filters ...docstore.Filter) (int, error)
	Get(ctx context.Context, collection, id string) (*docstore.Document, error)
	Insert(ctx context.Context, collection string, data any) (*docstore.Document, error)
	Update(ctx context.Context, collection, id string, patch docstore.Patch) error
	Delete(ctx context.Context, collection, id string) error
	DeleteWhere(ctx context.Context, collection string, filters ...docstore.Filter) (int64, error)
}

type tourRecord struct {
	Name        string `json:"name"`
	StagePlot   string `json:"stagePlot"`
	ChannelList string `json:"channelList"`
}

type artistRecord struct {
	TourID string `json:"tourId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// TourChanges lists the tour fields to overwrite; nil fields are kept.
type TourChanges struct {
	Name        *string
	StagePlot   *string
	ChannelList *string
}

// ArtistChanges lists the artist fields to overwrite; nil fields are kept.
type ArtistChanges struct {
	Name *string
	Role *string
}

// Repo provides tour and tour artist persistence.
type Repo struct {
	store documentStore
}

// New creates a new tour repository.
func New(store documentStore) *Repo {
	return &Repo{store: store}
}

// ---------------------------------------------------------------------------
// Tours
// ---------------------------------------------------------------------------

// ListTours returns every tour sorted by name.
func (r *Repo) ListTours(ctx context.Context) ([]domain.Tour, error) {
	docs, err := r.store.Query(ctx, ToursCollection)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}

	out := make([]domain.Tour, 0, len(docs))
	for _, doc := range docs {
		t, err := tourToDomain(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	slices.SortStableFunc(out, func(a, b domain.Tour) int {
		return compareNames(a.Name, b.Name)
	})
	return out, nil
}

// CountTours returns the number of tours.
func (r *Repo) CountTours(ctx context.Context) (int, error) {
	n, err := r.store.Count(ctx, ToursCollection)
	if err != nil {
		return 0, fmt.Errorf("count tours: %w", err)
	}
	return n, nil
}

// GetTour returns one tour by id.
func (r *Repo) GetTour(ctx context.Context, id string) (*domain.Tour, error) {
	doc, err := r.store.Get(ctx, ToursCollection, id)
	if err != nil {
		return nil, err
	}
	return tourToDomain(*doc)
}

// CreateTour stores a new tour.
func (r *Repo) CreateTour(ctx context.Context, t *domain.Tour) (*domain.Tour, error) {
	doc, err := r.store.Insert(ctx, ToursCollection, tourRecord{
		Name:        t.Name,
		StagePlot:   t.StagePlot,
		ChannelList: t.ChannelList,
	})
	if err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}
	return tourToDomain(*doc)
}

// UpdateTour applies changes and returns the updated tour.
func (r *Repo) UpdateTour(ctx context.Context, id string, ch TourChanges) (*domain.Tour, error) {
	patch := docstore.Patch{}
	setIf(patch, "name", ch.Name)
	setIf(patch, "stagePlot", ch.StagePlot)
	setIf(patch, "channelList", ch.ChannelList)

	if err := r.store.Update(ctx, ToursCollection, id, patch); err != nil {
		return nil, err
	}
	return r.GetTour(ctx, id)
}

// DeleteTour removes a tour. Artists are not touched; see DeleteArtistsByTour.
func (r *Repo) DeleteTour(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ToursCollection, id)
}

// ---------------------------------------------------------------------------
// Artists
// ---------------------------------------------------------------------------

// ListArtists returns the artists of a tour sorted by name.
func (r *Repo) ListArtists(ctx context.Context, tourID string) ([]domain.TourArtist, error) {
	docs, err := r.store.Query(ctx, ArtistsCollection, docstore.Eq("tourId", tourID))
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}

	out := make([]domain.TourArtist, 0, len(docs))
	for _, doc := range docs {
		a, err := artistToDomain(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	slices.SortStableFunc(out, func(a, b domain.TourArtist) int {
		return compareNames(a.Name, b.Name)
	})
	return out, nil
}

// GetArtist returns one artist by id.
func (r *Repo) GetArtist(ctx context.Context, id string) (*domain.TourArtist, error) {
	doc, err := r.store.Get(ctx, ArtistsCollection, id)
	if err != nil {
		return nil, err
	}
	return artistToDomain(*doc)
}

// CreateArtist stores a new artist under a.TourID.
func (r *Repo) CreateArtist(ctx context.Context, a *domain.TourArtist) (*domain.TourArtist, error) {
	doc, err := r.store.Insert(ctx, ArtistsCollection, artistRecord{
		TourID: a.TourID,
		Name:   a.Name,
		Role:   a.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("create artist: %w", err)
	}
	return artistToDomain(*doc)
}

// UpdateArtist applies changes and returns the updated artist.
func (r *Repo) UpdateArtist(ctx context.Context, id string, ch ArtistChanges) (*domain.TourArtist, error) {
	patch := docstore.Patch{}
	setIf(patch, "name", ch.Name)
	setIf(patch, "role", ch.Role)

	if err := r.store.Update(ctx, ArtistsCollection, id, patch); err != nil {
		return nil, err
	}
	return r.GetArtist(ctx, id)
}

// DeleteArtist removes one artist.
func (r *Repo) DeleteArtist(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ArtistsCollection, id)
}

// DeleteArtistsByTour removes every artist of a tour and returns the count.
func (r *Repo) DeleteArtistsByTour(ctx context.Context, tourID string) (int64, error) {
	n, err := r.store.DeleteWhere(ctx, ArtistsCollection, docstore.Eq("tourId", tourID))
	if err != nil {
		return 0, fmt.Errorf("delete artists of tour %s: %w", tourID, err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func setIf(p docstore.Patch, key string, v *string) {
	if v != nil {
		p[key] = *v
	}
}

// compareNames orders case-insensitively, falling back to the raw name.
func compareNames(a, b string) int {
	if c := cmp.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}

func tourToDomain(doc docstore.Document) (*domain.Tour, error) {
	var rec tourRecord
	if err := doc.Decode(&rec); err != nil {
		return nil, err
	}
	return &domain.Tour{
		ID:          doc.ID,
		Name:        rec.Name,
		StagePlot:   rec.StagePlot,
		ChannelList: rec.ChannelList,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func artistToDomain(doc docstore.Document) (*domain.TourArtist, error) {
	var rec artistRecord
	if err := doc.Decode(&rec); err != nil {
		return nil, err
	}
	return &domain.TourArtist{
		ID:        doc.ID,
		TourID:    rec.TourID,
		Name:      rec.Name,
		Role:      rec.Role,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
