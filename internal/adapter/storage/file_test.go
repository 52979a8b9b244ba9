package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/craftly/storefront/internal/adapter/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend(t *testing.T) {
	t.Run("ReadMissingKey", func(t *testing.T) {
		b, err := storage.NewFileBackend(t.TempDir())
		require.NoError(t, err)

		_, found, err := b.Read(t.Context(), "nothing")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("WriteThenRead", func(t *testing.T) {
		b, err := storage.NewFileBackend(t.TempDir())
		require.NoError(t, err)

		blob := []byte("payload")
		require.NoError(t, b.Write(t.Context(), storage.CartKey, blob))

		got, found, err := b.Read(t.Context(), storage.CartKey)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, blob, got)
	})

	t.Run("WriteReplacesWholeBlob", func(t *testing.T) {
		b, err := storage.NewFileBackend(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, b.Write(t.Context(), storage.CartKey, []byte("a longer first payload")))
		require.NoError(t, b.Write(t.Context(), storage.CartKey, []byte("short")))

		got, found, err := b.Read(t.Context(), storage.CartKey)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("short"), got)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		b, err := storage.NewFileBackend(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, b.Write(t.Context(), storage.CartKey, []byte("cart")))
		require.NoError(t, b.Write(t.Context(), storage.WishlistKey, []byte("wishlist")))

		got, _, err := b.Read(t.Context(), storage.CartKey)
		require.NoError(t, err)
		assert.Equal(t, []byte("cart"), got)
	})

	t.Run("CreatesStorageDir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "store")

		b, err := storage.NewFileBackend(dir)
		require.NoError(t, err)
		require.NoError(t, b.Write(t.Context(), "k", []byte("v")))
	})
}
