package cubego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSet is called after each fact write.
	// duration is the total time taken, err is nil if successful.
	RecordSet(duration time.Duration, err error)

	// RecordSetMany is called after each batch write.
	// count is the number of facts attempted, duration is the total time taken.
	RecordSetMany(count int, duration time.Duration, err error)

	// RecordScan is called after a scan finishes or is materialized.
	// produced is the number of rows handed to the consumer.
	RecordScan(produced int, duration time.Duration)

	// RecordResolve is called after a single-row resolution (At).
	RecordResolve(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSet(time.Duration, error)          {}
func (NoopMetricsCollector) RecordSetMany(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordScan(int, time.Duration)           {}
func (NoopMetricsCollector) RecordResolve(time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SetCount       atomic.Int64
	SetErrors      atomic.Int64
	SetTotalNanos  atomic.Int64
	SetManyCount   atomic.Int64
	SetManyFacts   atomic.Int64
	SetManyErrors  atomic.Int64
	ScanCount      atomic.Int64
	ScanRows       atomic.Int64
	ScanTotalNanos atomic.Int64
	ResolveCount   atomic.Int64
	ResolveErrors  atomic.Int64
}

// RecordSet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSet(duration time.Duration, err error) {
	b.SetCount.Add(1)
	b.SetTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SetErrors.Add(1)
	}
}

// RecordSetMany implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSetMany(count int, duration time.Duration, err error) {
	b.SetManyCount.Add(1)
	b.SetManyFacts.Add(int64(count))
	if err != nil {
		b.SetManyErrors.Add(1)
	}
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(produced int, duration time.Duration) {
	b.ScanCount.Add(1)
	b.ScanRows.Add(int64(produced))
	b.ScanTotalNanos.Add(duration.Nanoseconds())
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(duration time.Duration, err error) {
	b.ResolveCount.Add(1)
	if err != nil {
		b.ResolveErrors.Add(1)
	}
}
