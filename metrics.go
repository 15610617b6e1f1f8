package handlemap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for observing store operations.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each Add. duration is the total time taken,
	// err is nil if successful.
	RecordAdd(duration time.Duration, err error)

	// RecordRemove is called after each Remove that released an item.
	RecordRemove(duration time.Duration)

	// RecordGet is called after each Get. hit reports whether the handle
	// resolved to a live item.
	RecordGet(hit bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// It is the default when no collector is configured.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration, error) {}
func (NoopMetricsCollector) RecordRemove(time.Duration)     {}
func (NoopMetricsCollector) RecordGet(bool)                 {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// Counters use atomics so a collector may be shared across stores.
type BasicMetricsCollector struct {
	AddCount         atomic.Int64
	AddErrors        atomic.Int64
	AddTotalNanos    atomic.Int64
	RemoveCount      atomic.Int64
	RemoveTotalNanos atomic.Int64
	GetHits          atomic.Int64
	GetMisses        atomic.Int64
}

func (c *BasicMetricsCollector) RecordAdd(duration time.Duration, err error) {
	c.AddCount.Add(1)
	c.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		c.AddErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordRemove(duration time.Duration) {
	c.RemoveCount.Add(1)
	c.RemoveTotalNanos.Add(duration.Nanoseconds())
}

func (c *BasicMetricsCollector) RecordGet(hit bool) {
	if hit {
		c.GetHits.Add(1)
	} else {
		c.GetMisses.Add(1)
	}
}
