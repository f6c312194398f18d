package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		store, err := NewLocalStore(t.TempDir())
		require.NoError(t, err)

		wc, err := store.Create(ctx, "trees/a.kdtree")
		require.NoError(t, err)
		_, err = wc.Write([]byte("0\n0\n1 2\n-1\n-1\n"))
		require.NoError(t, err)
		require.NoError(t, wc.Close())

		rc, err := store.Open(ctx, "trees/a.kdtree")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "0\n0\n1 2\n-1\n-1\n", string(data))
	})

	t.Run("InvisibleUntilClose", func(t *testing.T) {
		root := t.TempDir()
		store, err := NewLocalStore(root)
		require.NoError(t, err)

		wc, err := store.Create(ctx, "b.kdtree")
		require.NoError(t, err)
		_, err = wc.Write([]byte("-1\n"))
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(root, "b.kdtree"))
		assert.True(t, os.IsNotExist(err))

		require.NoError(t, wc.Close())

		_, err = os.Stat(filepath.Join(root, "b.kdtree"))
		assert.NoError(t, err)
	})

	t.Run("OpenMissing", func(t *testing.T) {
		store, err := NewLocalStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Open(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		store, err := NewLocalStore(t.TempDir())
		require.NoError(t, err)

		assert.NoError(t, store.Delete(ctx, "missing"))
	})

	t.Run("List", func(t *testing.T) {
		store, err := NewLocalStore(t.TempDir())
		require.NoError(t, err)

		for _, name := range []string{"trees/b", "trees/a", "other/c"} {
			wc, err := store.Create(ctx, name)
			require.NoError(t, err)
			require.NoError(t, wc.Close())
		}

		names, err := store.List(ctx, "trees/")
		require.NoError(t, err)
		assert.Equal(t, []string{"trees/a", "trees/b"}, names)
	})
}
