package service_test

import (
	"testing"

	"github.com/craftly/storefront/internal/adapter/storage"
	"github.com/craftly/storefront/internal/core/domain"
	"github.com/craftly/storefront/internal/core/port"
	"github.com/craftly/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistRepo(t *testing.T) port.WishlistRepository {
	t.Helper()
	return storage.NewWishlistRepository(storage.NewMemBackend(), newWishlistSerde(t))
}

func newWishlistService(t *testing.T) (*service.WishlistService, *recordNotifier) {
	t.Helper()

	notifier := &recordNotifier{}
	wishlist, err := service.NewWishlist(t.Context(), newWishlistRepo(t), notifier)
	require.NoError(t, err)
	return wishlist, notifier
}

func TestWishlistAdd(t *testing.T) {
	bowl := testProduct(t, 1, "Bowl", "Ceramics", "10", false)

	t.Run("AddsSnapshot", func(t *testing.T) {
		wishlist, notifier := newWishlistService(t)

		require.NoError(t, wishlist.Add(t.Context(), bowl))

		assert.True(t, wishlist.Contains(bowl.ID))
		assert.Equal(t, 1, wishlist.Count())
		require.Len(t, wishlist.Items(), 1)
		assert.Equal(t, bowl.Title, wishlist.Items()[0].Title)
		assert.Equal(t, []domain.EventKind{domain.EventWishlistAdded}, notifier.kinds())
	})

	t.Run("DuplicateIsNoop", func(t *testing.T) {
		wishlist, notifier := newWishlistService(t)

		require.NoError(t, wishlist.Add(t.Context(), bowl))
		require.NoError(t, wishlist.Add(t.Context(), bowl))

		assert.Equal(t, 1, wishlist.Count())
		assert.Equal(t,
			[]domain.EventKind{domain.EventWishlistAdded, domain.EventWishlistExists},
			notifier.kinds(),
		)
	})
}

func TestWishlistRemove(t *testing.T) {
	bowl := testProduct(t, 1, "Bowl", "Ceramics", "10", false)

	t.Run("RemovesAndNotifiesByName", func(t *testing.T) {
		wishlist, notifier := newWishlistService(t)

		require.NoError(t, wishlist.Add(t.Context(), bowl))
		require.NoError(t, wishlist.Remove(t.Context(), bowl.ID))

		assert.False(t, wishlist.Contains(bowl.ID))
		assert.Equal(t, 0, wishlist.Count())
		last := notifier.events[len(notifier.events)-1]
		assert.Equal(t, domain.EventWishlistRemoved, last.Kind)
		assert.Contains(t, last.Message, "Bowl")
	})

	t.Run("AbsentIsNoop", func(t *testing.T) {
		wishlist, notifier := newWishlistService(t)

		require.NoError(t, wishlist.Remove(t.Context(), 777))

		assert.Empty(t, notifier.events)
	})
}

func TestWishlistClear(t *testing.T) {
	bowl := testProduct(t, 1, "Bowl", "Ceramics", "10", false)
	vase := testProduct(t, 2, "Vase", "Ceramics", "30", true)

	wishlist, notifier := newWishlistService(t)
	require.NoError(t, wishlist.Add(t.Context(), bowl))
	require.NoError(t, wishlist.Add(t.Context(), vase))

	require.NoError(t, wishlist.Clear(t.Context()))

	assert.Equal(t, 0, wishlist.Count())
	assert.Contains(t, notifier.kinds(), domain.EventWishlistCleared)
}

func TestWishlistRehydration(t *testing.T) {
	bowl := testProduct(t, 1, "Bowl", "Ceramics", "10.25", false)
	vase := testProduct(t, 2, "Vase", "Ceramics", "30.50", true)

	repo := newWishlistRepo(t)

	first, err := service.NewWishlist(t.Context(), repo, nil)
	require.NoError(t, err)
	require.NoError(t, first.Add(t.Context(), bowl))
	require.NoError(t, first.Add(t.Context(), vase))

	second, err := service.NewWishlist(t.Context(), repo, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, second.Count())
	assert.True(t, second.Contains(bowl.ID))
	assert.True(t, second.Contains(vase.ID))

	items := second.Items()
	require.Len(t, items, 2)
	assert.Equal(t, bowl.ID, items[0].ID)
	assert.True(t, items[0].Price.Equal(bowl.Price))
}
