package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottledStore(t *testing.T) {
	ctx := context.Background()

	t.Run("PassThrough", func(t *testing.T) {
		store := NewThrottledStore(NewMemoryStore(), 1<<20)

		wc, err := store.Create(ctx, "a")
		require.NoError(t, err)
		_, err = wc.Write([]byte("throttled"))
		require.NoError(t, err)
		require.NoError(t, wc.Close())

		rc, err := store.Open(ctx, "a")
		require.NoError(t, err)

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, "throttled", string(data))

		names, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, names)

		assert.NoError(t, store.Delete(ctx, "a"))
	})

	t.Run("CanceledContext", func(t *testing.T) {
		store := NewThrottledStore(NewMemoryStore(), 1)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		wc, err := store.Create(canceled, "a")
		require.NoError(t, err)

		_, err = wc.Write(make([]byte, 16))
		assert.Error(t, err)
	})
}
