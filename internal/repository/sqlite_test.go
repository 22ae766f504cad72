package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"lunadocs/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func newTestStore(t *testing.T) SectionStore {
	t.Helper()
	store, err := NewSQLiteOpener(filepath.Join(t.TempDir(), "data", "docs.db"))(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_SeedsDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(defaultSections))
	assert.Equal(t, "introduction", all[0].Slug)
	assert.Equal(t, "chat-vision", all[len(all)-1].Slug)
	assert.True(t, all[6].IsSubItem)

	list, err := store.ListModels(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "lunaby", list[0].Name)
	assert.Equal(t, 100, list[0].RateLimit)
}

func TestSQLiteStore_CreateAppendsOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	prev := 0
	all, _ := store.GetAll(ctx)
	for _, s := range all {
		if s.OrderIndex > prev {
			prev = s.OrderIndex
		}
	}

	for _, slug := range []string{"one", "two", "three"} {
		sec, err := store.Create(ctx, &models.NewSection{Title: slug, Slug: slug, GroupName: "API", IsPublished: true})
		require.NoError(t, err)
		assert.Greater(t, sec.OrderIndex, prev)
		prev = sec.OrderIndex
		assert.Nil(t, sec.Content)
		assert.False(t, sec.CreatedAt.IsZero())
	}
}

func TestSQLiteStore_DuplicateSlug(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Create(context.Background(), &models.NewSection{Title: "x", Slug: "introduction", GroupName: "General"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestSQLiteStore_UpdatePartial(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	before, err := store.GetBySlug(ctx, "quickstart")
	require.NoError(t, err)

	published := false
	after, err := store.Update(ctx, before.ID, models.SectionPatch{
		Content:     strp("# Quick\n\nBody"),
		IsPublished: &published,
	})
	require.NoError(t, err)

	assert.Equal(t, before.Title, after.Title)
	assert.Equal(t, before.OrderIndex, after.OrderIndex)
	require.NotNil(t, after.Content)
	assert.Equal(t, "# Quick\n\nBody", *after.Content)
	assert.False(t, after.IsPublished)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))

	pub, err := store.GetPublished(ctx)
	require.NoError(t, err)
	for _, s := range pub {
		assert.NotEqual(t, "quickstart", s.Slug)
	}

	_, err = store.Update(ctx, 9999, models.SectionPatch{Title: strp("nope")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_DeleteFreesSlug(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sec, err := store.GetBySlug(ctx, "ecosystem")
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, sec.ID))

	_, err = store.GetBySlug(ctx, "ecosystem")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, sec.ID), ErrNotFound)

	_, err = store.Create(ctx, &models.NewSection{Title: "Ecosystem", Slug: "ecosystem", GroupName: "General", IsPublished: true})
	assert.NoError(t, err)
}

func TestSQLiteStore_SwapOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	a, b := all[2], all[3]

	require.NoError(t, store.SwapOrder(ctx, a.ID, b.ID))

	after, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(all))
	for i := range all {
		switch i {
		case 2:
			assert.Equal(t, b.Slug, after[i].Slug)
		case 3:
			assert.Equal(t, a.Slug, after[i].Slug)
		default:
			assert.Equal(t, all[i].Slug, after[i].Slug)
		}
	}

	assert.ErrorIs(t, store.SwapOrder(ctx, a.ID, 4242), ErrNotFound)
}

func TestSQLiteStore_ConcurrentCreate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	created := make([]*models.Section, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			slug := fmt.Sprintf("parallel-%d", i)
			created[i], errs[i] = store.Create(ctx, &models.NewSection{Title: slug, Slug: slug, GroupName: "API", IsPublished: true})
		}(i)
	}
	wg.Wait()

	orders := make([]int, 0, n)
	for i := range errs {
		require.NoError(t, errs[i], "create %d", i)
		orders = append(orders, created[i].OrderIndex)
	}
	sort.Ints(orders)
	for i := 1; i < len(orders); i++ {
		assert.Greater(t, orders[i], orders[i-1])
	}
	assert.Greater(t, orders[0], len(defaultSections))

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(defaultSections)+n)
}

func TestSQLiteStore_ConcurrentSwap(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.SwapOrder(ctx, all[0].ID, all[1].ID)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}

	// an even number of swaps restores the original order
	after, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all[0].Slug, after[0].Slug)
	assert.Equal(t, all[1].Slug, after[1].Slug)
}
