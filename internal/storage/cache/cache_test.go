package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/deskwalk/internal/storage"
	"github.com/mmynk/deskwalk/internal/storage/memory"
)

const cacheSize = 1024 * 1024

func TestBackend_ReadThrough(t *testing.T) {
	next := memory.New()
	ctx := context.Background()
	require.NoError(t, next.Set(ctx, "k", []byte("v1")))

	b := New(next, cacheSize)

	value, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)

	// Served from cache even though the backend is gone.
	next.SetAvailable(false)
	value, err = b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), value)
	assert.InDelta(t, 0.5, b.HitRate(), 0.001)
}

func TestBackend_WriteThrough(t *testing.T) {
	next := memory.New()
	ctx := context.Background()
	b := New(next, cacheSize)

	require.NoError(t, b.Set(ctx, "k", []byte("v2")))
	stored, err := next.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), stored)

	require.NoError(t, b.Delete(ctx, "k"))
	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestBackend_FailedWriteInvalidates(t *testing.T) {
	next := memory.New()
	ctx := context.Background()
	b := New(next, cacheSize)

	require.NoError(t, b.Set(ctx, "k", []byte("old")))
	next.SetAvailable(false)

	err := b.Set(ctx, "k", []byte("new"))
	assert.ErrorIs(t, err, storage.ErrUnavailable)

	// The stale cached value must not be served.
	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrUnavailable)
}
