// Package cache provides a read-through storage.Backend decorator backed by
// an in-process freecache.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/coocood/freecache"

	"github.com/mmynk/deskwalk/internal/storage"
)

// Ensure Backend implements storage.Backend
var _ storage.Backend = (*Backend)(nil)

// Backend caches values read from or written to next. Every write goes
// through to next before the cache is updated.
type Backend struct {
	next  storage.Backend
	cache *freecache.Cache
}

// New wraps next with a cache of sizeBytes. freecache enforces a 512KB minimum.
func New(next storage.Backend, sizeBytes int) *Backend {
	return &Backend{
		next:  next,
		cache: freecache.NewCache(sizeBytes),
	}
}

// Get serves key from the cache, falling back to next on a miss.
// Missing keys are not cached.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := b.cache.Get([]byte(key))
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, freecache.ErrNotFound) {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	value, err = b.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	// A value too large for the cache is simply not cached.
	_ = b.cache.Set([]byte(key), value, 0)
	return value, nil
}

// Set writes value to next, then caches it.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	if err := b.next.Set(ctx, key, value); err != nil {
		b.cache.Del([]byte(key))
		return err
	}
	if err := b.cache.Set([]byte(key), value, 0); err != nil {
		b.cache.Del([]byte(key))
	}
	return nil
}

// Delete removes key from next and from the cache.
func (b *Backend) Delete(ctx context.Context, key string) error {
	b.cache.Del([]byte(key))
	return b.next.Delete(ctx, key)
}

// Close clears the cache and closes next.
func (b *Backend) Close() error {
	b.cache.Clear()
	return b.next.Close()
}

// HitRate returns the fraction of Get calls served from the cache.
func (b *Backend) HitRate() float64 {
	return b.cache.HitRate()
}
