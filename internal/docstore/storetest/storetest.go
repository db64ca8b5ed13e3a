// Package storetest is a behavioural test suite run against every
// docstore.Store implementation.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/tourcrew-backend/internal/docstore"
	"github.com/heartmarshall/tourcrew-backend/internal/domain"
)

// Factory returns a store and the transaction manager sharing its database.
type Factory func(t *testing.T) (docstore.Store, docstore.TxManager)

// Run executes the suite. Every test uses its own collection, so stores
// backed by a shared database are safe to pass.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s docstore.Store, tx docstore.TxManager)
	}{
		{"InsertGetQuery", testInsertGetQuery},
		{"GetMissing", testGetMissing},
		{"UpdateShallowMerge", testUpdateShallowMerge},
		{"UpdateMissing", testUpdateMissing},
		{"DeleteAndDeleteWhere", testDeleteAndDeleteWhere},
		{"LtFilter", testLtFilter},
		{"InvalidFilterField", testInvalidFilterField},
		{"UniqueEmail", testUniqueEmail},
		{"RollbackDiscardsWrites", testRollbackDiscardsWrites},
		{"LockedReadModifyWrite", testLockedReadModifyWrite},
		{"LockedCountThenInsert", testLockedCountThenInsert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, tx := newStore(t)
			tt.fn(t, s, tx)
		})
	}
}

func uniqueCollection(prefix string) string {
	return prefix + "_" + uuid.NewString()[:8]
}

func testInsertGetQuery(t *testing.T, s docstore.Store, _ docstore.TxManager) {
	ctx := context.Background()
	coll := uniqueCollection("lists")

	a, err := s.Insert(ctx, coll, map[string]any{"userId": "u1", "title": "First"})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.False(t, a.CreatedAt.IsZero())

	time.Sleep(time.Millisecond)
	_, err = s.Insert(ctx, coll, map[string]any{"userId": "u2", "title": "Other"})
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	b, err := s.Insert(ctx, coll, map[string]any{"userId": "u1", "title": "Second"})
	require.NoError(t, err)

	got, err := s.Get(ctx, coll, a.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":"u1","title":"First"}`, string(got.Data))

	docs, err := s.Query(ctx, coll, docstore.Eq("userId", "u1"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, a.ID, docs[0].ID)
	assert.Equal(t, b.ID, docs[1].ID)

	n, err := s.Count(ctx, coll)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = s.Count(ctx, coll, docstore.Eq("userId", "nobody"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func testGetMissing(t *testing.T, s docstore.Store, _ docstore.TxManager) {
	_, err := s.Get(context.Background(), uniqueCollection("tours"), "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func testUpdateShallowMerge(t *testing.T, s docstore.Store, _ docstore.TxManager) {
	ctx := context.Background()
	coll := uniqueCollection("lists")

	doc, err := s.Insert(ctx, coll, map[string]any{
		"title": "Old",
		"meta":  map[string]any{"a": 1, "b": 2},
		"todos": []any{map[string]any{"id": "x"}},
	})
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, coll, doc.ID, docstore.Patch{
		"todos": []any{},
		"meta":  map[string]any{"a": 9},
	}))

	got, err := s.Get(ctx, coll, doc.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Old","meta":{"a":9},"todos":[]}`, string(got.Data))
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func testUpdateMissing(t *testing.T, s docstore.Store, _ docstore.TxManager) {
	err := s.Update(context.Background(), uniqueCollection("tours"), "missing", docstore.Patch{"name": "x"})
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func testDeleteAndDeleteWhere(t *testing.T, s docstore.Store, _ docstore.TxManager) {
	ctx := context.Background()
	coll := uniqueCollection("artists")

	for range 3 {
		_, err := s.Insert(ctx, coll, map[string]any{"tourId": "t1"})
		require.NoError(t, err)
	}
	keep, err := s.Insert(ctx, coll, map[string]any{"tourId": "t2"})
	require.NoError(t, err)

	n, err := s.DeleteWhere(ctx, coll, docstore.Eq("tourId", "t1"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	require.NoError(t, s.Delete(ctx, coll, keep.ID))
	require.NoError(t, s.Delete(ctx, coll, keep.ID), "second delete must be a no-op")

	_, err = s.Get(ctx, coll, keep.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func testLtFilter(t *testing.T, s docstore.Store, _ docstore.TxManager) {
	ctx := context.Background()
	coll := uniqueCollection("tokens")

	for _, exp := range []int64{5, 50, 500} {
		_, err := s.Insert(ctx, coll, map[string]any{"expiresAtUnix": exp, "status": "active"})
		require.NoError(t, err)
	}

	n, err := s.Count(ctx, coll, docstore.Lt("expiresAtUnix", 100))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	removed, err := s.DeleteWhere(ctx, coll, docstore.Lt("expiresAtUnix", 100), docstore.Eq("status", "active"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func testInvalidFilterField(t *testing.T, s docstore.Store, _ docstore.TxManager) {
	_, err := s.Query(context.Background(), "tours", docstore.Eq("name') OR 1=1 --", "x"))
	assert.Error(t, err)
}

func testUniqueEmail(t *testing.T, s docstore.Store, _ docstore.TxManager) {
	ctx := context.Background()
	email := "dup-" + uuid.NewString()[:8] + "@example.com"

	_, err := s.Insert(ctx, "users", map[string]any{"email": email})
	require.NoError(t, err)

	_, err = s.Insert(ctx, "users", map[string]any{"email": email})
	assert.True(t, errors.Is(err, domain.ErrAlreadyExists), "got %v", err)
}

func testRollbackDiscardsWrites(t *testing.T, s docstore.Store, tx docstore.TxManager) {
	ctx := context.Background()
	coll := uniqueCollection("tours")
	sentinel := errors.New("abort")

	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.Insert(ctx, coll, map[string]any{"name": "Ghost"}); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	n, err := s.Count(ctx, coll)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func testLockedReadModifyWrite(t *testing.T, s docstore.Store, tx docstore.TxManager) {
	ctx := context.Background()
	coll := uniqueCollection("counter")

	doc, err := s.Insert(ctx, coll, map[string]any{"n": 0})
	require.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tx.RunInTx(ctx, func(ctx context.Context) error {
				cur, err := s.GetForUpdate(ctx, coll, doc.ID)
				if err != nil {
					return err
				}
				var v struct {
					N int `json:"n"`
				}
				if err := cur.Decode(&v); err != nil {
					return err
				}
				return s.Update(ctx, coll, doc.ID, docstore.Patch{"n": v.N + 1})
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, coll, doc.ID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":10}`, string(got.Data))
}

func testLockedCountThenInsert(t *testing.T, s docstore.Store, tx docstore.TxManager) {
	ctx := context.Background()
	coll := uniqueCollection("capped")
	const limit, workers = 3, 10

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tx.RunInTx(ctx, func(ctx context.Context) error {
				if err := s.Lock(ctx, coll+":u1"); err != nil {
					return err
				}
				n, err := s.Count(ctx, coll, docstore.Eq("userId", "u1"))
				if err != nil {
					return err
				}
				if n >= limit {
					return nil
				}
				_, err = s.Insert(ctx, coll, map[string]any{"userId": "u1"})
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	n, err := s.Count(ctx, coll, docstore.Eq("userId", "u1"))
	require.NoError(t, err)
	assert.Equal(t, limit, n)
}
