// Package metrics holds the Prometheus collectors for the storage layer.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterBackendOps *prometheus.CounterVec

	// gauges
	GaugeRecords *prometheus.GaugeVec

	// histograms
	HistBackendOpDuration *prometheus.HistogramVec
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("deskwalk", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterBackendOps := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "backend_operations_total",
		Help:      "The total number of storage backend operations",
	}, []string{"op", "result"})

	gaugeRecords := factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "records",
		Help:      "Number of records in a collection as of its last load or write",
	}, []string{"collection"})

	histBackendOpDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "backend_operation_duration_seconds",
		Help:      "Storage backend operation latency",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"op"})

	return &Manager{
		CounterBackendOps:     counterBackendOps,
		GaugeRecords:          gaugeRecords,
		HistBackendOpDuration: histBackendOpDuration,
	}
}

// ObserveCollection records the current size of a collection.
func (m *Manager) ObserveCollection(key string, size int) {
	m.GaugeRecords.WithLabelValues(key).Set(float64(size))
}

// WriteTextfile writes every metric gathered by g to path in the text
// exposition format, for pickup by node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
