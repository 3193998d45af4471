package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/deskwalk/internal/storage"
)

// Logging returns a Middleware that logs every backend operation.
// It logs the operation, key, value size, duration, and any error.
func Logging() Middleware {
	return func(next storage.Backend) storage.Backend {
		return &loggingBackend{next: next}
	}
}

type loggingBackend struct {
	next storage.Backend
}

func (b *loggingBackend) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := b.next.Get(ctx, key)
	logOp(ctx, "get", key, len(value), start, err)
	return value, err
}

func (b *loggingBackend) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := b.next.Set(ctx, key, value)
	logOp(ctx, "set", key, len(value), start, err)
	return err
}

func (b *loggingBackend) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := b.next.Delete(ctx, key)
	logOp(ctx, "delete", key, 0, start, err)
	return err
}

func (b *loggingBackend) Close() error {
	err := b.next.Close()
	if err != nil {
		slog.Error("Backend close failed", "error", err)
	}
	return err
}

func logOp(ctx context.Context, op, key string, size int, start time.Time, err error) {
	duration := time.Since(start).Milliseconds()
	switch outcome := result(err); outcome {
	case "ok", "not_found":
		slog.DebugContext(ctx, "Backend op",
			"op", op,
			"key", key,
			"bytes", size,
			"result", outcome,
			"duration_ms", duration,
		)
	case "unavailable":
		slog.WarnContext(ctx, "Backend op unavailable",
			"op", op,
			"key", key,
			"error", err,
			"duration_ms", duration,
		)
	default:
		slog.ErrorContext(ctx, "Backend op error",
			"op", op,
			"key", key,
			"error", err,
			"duration_ms", duration,
		)
	}
}
