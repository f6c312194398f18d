package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		store := NewMemoryStore()

		wc, err := store.Create(ctx, "a")
		require.NoError(t, err)
		_, err = wc.Write([]byte("hello"))
		require.NoError(t, err)
		require.NoError(t, wc.Close())

		rc, err := store.Open(ctx, "a")
		require.NoError(t, err)

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("OpenMissing", func(t *testing.T) {
		store := NewMemoryStore()

		_, err := store.Open(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		store := NewMemoryStore()

		wc, err := store.Create(ctx, "a")
		require.NoError(t, err)
		require.NoError(t, wc.Close())

		require.NoError(t, store.Delete(ctx, "a"))

		_, err = store.Open(ctx, "a")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		store := NewMemoryStore()

		for _, name := range []string{"t/b", "t/a", "x/c"} {
			wc, err := store.Create(ctx, name)
			require.NoError(t, err)
			require.NoError(t, wc.Close())
		}

		names, err := store.List(ctx, "t/")
		require.NoError(t, err)
		assert.Equal(t, []string{"t/a", "t/b"}, names)
	})
}
