// Package middleware provides storage.Backend decorators that observe every
// backend operation without changing its result.
package middleware

import (
	"errors"

	"github.com/mmynk/deskwalk/internal/storage"
)

// Middleware wraps a storage.Backend.
type Middleware func(next storage.Backend) storage.Backend

// Chain applies mws to backend so that the first middleware is outermost.
func Chain(backend storage.Backend, mws ...Middleware) storage.Backend {
	for i := len(mws) - 1; i >= 0; i-- {
		backend = mws[i](backend)
	}
	return backend
}

// result classifies an operation outcome for logs and metric labels.
func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, storage.ErrNotFound):
		return "not_found"
	case errors.Is(err, storage.ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
