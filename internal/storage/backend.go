package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by a Backend when a key holds no value.
	ErrNotFound = errors.New("key not found")

	// ErrUnavailable is returned when a Backend has no persistent context to
	// read from or write to (e.g., the database could not be opened or the
	// Redis server is unreachable).
	ErrUnavailable = errors.New("storage unavailable")
)

// Backend is a string-keyed byte store. Each record collection lives under
// a single key and is rewritten as a whole on every mutation.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Unavailable returns a Backend that fails every operation with ErrUnavailable.
// It stands in for a backend that could not be opened.
func Unavailable() Backend {
	return unavailableBackend{}
}

type unavailableBackend struct{}

func (unavailableBackend) Get(context.Context, string) ([]byte, error) { return nil, ErrUnavailable }
func (unavailableBackend) Set(context.Context, string, []byte) error { return ErrUnavailable }
func (unavailableBackend) Delete(context.Context, string) error { return ErrUnavailable }
func (unavailableBackend) Close() error { return nil }
