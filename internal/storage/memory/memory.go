// Package memory provides an in-process implementation of storage.Backend.
// Nothing survives the process; it backs tests and throwaway sessions.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mmynk/deskwalk/internal/storage"
)

// Ensure Backend implements storage.Backend
var _ storage.Backend = (*Backend)(nil)

// Backend is a map-backed storage.Backend.
type Backend struct {
	mu          sync.Mutex
	data        map[string][]byte
	unavailable bool
}

// New creates an empty Backend.
func New() *Backend {
	return &Backend{data: make(map[string][]byte)}
}

// SetAvailable toggles whether operations succeed. While unavailable, every
// operation returns storage.ErrUnavailable and the data is left untouched.
func (b *Backend) SetAvailable(available bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unavailable = !available
}

// Get returns a copy of the value stored under key.
func (b *Backend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unavailable {
		return nil, storage.ErrUnavailable
	}
	value, ok := b.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return slices.Clone(value), nil
}

// Set stores a copy of value under key.
func (b *Backend) Set(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unavailable {
		return storage.ErrUnavailable
	}
	b.data[key] = slices.Clone(value)
	return nil
}

// Delete removes key.
func (b *Backend) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unavailable {
		return storage.ErrUnavailable
	}
	delete(b.data, key)
	return nil
}

// Close is a no-op.
func (b *Backend) Close() error {
	return nil
}
