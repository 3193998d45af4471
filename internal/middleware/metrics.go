package middleware

import (
	"context"
	"time"

	"github.com/mmynk/deskwalk/internal/metrics"
	"github.com/mmynk/deskwalk/internal/storage"
)

// Instrument returns a Middleware that counts and times every backend
// operation, labeled by operation and result.
func Instrument(m *metrics.Manager) Middleware {
	return func(next storage.Backend) storage.Backend {
		return &instrumentedBackend{next: next, metrics: m}
	}
}

type instrumentedBackend struct {
	next    storage.Backend
	metrics *metrics.Manager
}

func (b *instrumentedBackend) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := b.next.Get(ctx, key)
	b.observe("get", start, err)
	return value, err
}

func (b *instrumentedBackend) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := b.next.Set(ctx, key, value)
	b.observe("set", start, err)
	return err
}

func (b *instrumentedBackend) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := b.next.Delete(ctx, key)
	b.observe("delete", start, err)
	return err
}

func (b *instrumentedBackend) Close() error {
	return b.next.Close()
}

func (b *instrumentedBackend) observe(op string, start time.Time, err error) {
	b.metrics.CounterBackendOps.WithLabelValues(op, result(err)).Inc()
	b.metrics.HistBackendOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
