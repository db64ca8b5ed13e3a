package tour_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tourcrew-backend/internal/adapter/sqlite/document"
	"github.com/heartmarshall/tourcrew-backend/internal/adapter/sqlite/testhelper"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/internal/repository/tour"
)

func newRepo(t *testing.T) *tour.Repo {
	t.Helper()
	return tour.New(document.New(testhelper.SetupTestDB(t)))
}

func ptr(s string) *string { return &s }

func TestRepo_ListTours_SortedByName(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	for _, name := range []string{"zeta Tour", "Alpha Tour", "beta tour"} {
		_, err := repo.CreateTour(ctx, &domain.Tour{Name: name})
		require.NoError(t, err)
	}

	tours, err := repo.ListTours(ctx)
	require.NoError(t, err)

	names := make([]string, len(tours))
	for i, tr := range tours {
		names[i] = tr.Name
	}
	if diff := cmp.Diff([]string{"Alpha Tour", "beta tour", "zeta Tour"}, names); diff != "" {
		t.Errorf("ListTours order mismatch (-want +got):\n%s", diff)
	}

	n, err := repo.CountTours(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRepo_UpdateTour_Partial(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.CreateTour(ctx, &domain.Tour{
		Name:      "Summer",
		StagePlot: "https://example.com/plot.pdf",
	})
	require.NoError(t, err)

	got, err := repo.UpdateTour(ctx, created.ID, tour.TourChanges{ChannelList: ptr("https://example.com/ch.pdf")})
	require.NoError(t, err)
	assert.Equal(t, "Summer", got.Name)
	assert.Equal(t, "https://example.com/plot.pdf", got.StagePlot)
	assert.Equal(t, "https://example.com/ch.pdf", got.ChannelList)

	_, err = repo.UpdateTour(ctx, "missing", tour.TourChanges{Name: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Artists(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	tr, err := repo.CreateTour(ctx, &domain.Tour{Name: "Winter"})
	require.NoError(t, err)
	other, err := repo.CreateTour(ctx, &domain.Tour{Name: "Other"})
	require.NoError(t, err)

	drums, err := repo.CreateArtist(ctx, &domain.TourArtist{TourID: tr.ID, Name: "Marco", Role: "drums"})
	require.NoError(t, err)
	_, err = repo.CreateArtist(ctx, &domain.TourArtist{TourID: tr.ID, Name: "Anna", Role: "vocals"})
	require.NoError(t, err)
	_, err = repo.CreateArtist(ctx, &domain.TourArtist{TourID: other.ID, Name: "Luca", Role: "bass"})
	require.NoError(t, err)

	artists, err := repo.ListArtists(ctx, tr.ID)
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "Anna", artists[0].Name)
	assert.Equal(t, "Marco", artists[1].Name)

	got, err := repo.UpdateArtist(ctx, drums.ID, tour.ArtistChanges{Role: ptr("percussion")})
	require.NoError(t, err)
	assert.Equal(t, "Marco", got.Name)
	assert.Equal(t, "percussion", got.Role)
	assert.Equal(t, tr.ID, got.TourID)

	n, err := repo.DeleteArtistsByTour(ctx, tr.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	artists, err = repo.ListArtists(ctx, tr.ID)
	require.NoError(t, err)
	assert.Empty(t, artists)

	artists, err = repo.ListArtists(ctx, other.ID)
	require.NoError(t, err)
	assert.Len(t, artists, 1)
}

func TestRepo_DeleteAndGet(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	tr, err := repo.CreateTour(ctx, &domain.Tour{Name: "Gone"})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteTour(ctx, tr.ID))

	_, err = repo.GetTour(ctx, tr.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetArtist(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
