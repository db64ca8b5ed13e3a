package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tourcrew-backend/internal/adapter/sqlite/document"
	"github.com/heartmarshall/tourcrew-backend/internal/adapter/sqlite/testhelper"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
	"github.com/heartmarshall/tourcrew-backend/internal/repository/user"
)

func newRepo(t *testing.T) *user.Repo {
	t.Helper()
	return user.New(document.New(testhelper.SetupTestDB(t)))
}

func ptr(s string) *string { return &s }

func TestRepo_CreateAndGet(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{
		Email:     "fo@example.com",
		Name:      "Front of House",
		AvatarURL: ptr("https://example.com/a.png"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, byID.Email)
	assert.Equal(t, "Front of House", byID.Name)
	require.NotNil(t, byID.AvatarURL)

	byEmail, err := repo.GetByEmail(ctx, "fo@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestRepo_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.User{Email: "dup@example.com", Name: "A"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Email: "dup@example.com", Name: "B"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestRepo_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepo_Update(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	u, err := repo.Create(ctx, &domain.User{Email: "lx@example.com", Name: "Old"})
	require.NoError(t, err)

	got, err := repo.Update(ctx, u.ID, ptr("Lighting"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Lighting", got.Name)
	assert.Nil(t, got.AvatarURL)

	got, err = repo.Update(ctx, u.ID, nil, ptr("https://example.com/lx.png"))
	require.NoError(t, err)
	assert.Equal(t, "Lighting", got.Name)
	require.NotNil(t, got.AvatarURL)
	assert.Equal(t, "https://example.com/lx.png", *got.AvatarURL)

	_, err = repo.Update(ctx, uuid.New(), ptr("x"), nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
