package pairscan

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFind is called after each FindClosestPair call.
	// count is the number of input points, comparisons the number of
	// distance evaluations, err is nil if successful.
	RecordFind(count int, comparisons int64, duration time.Duration, err error)

	// RecordExact is called after each BruteForce or DivideAndConquer call.
	RecordExact(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFind(int, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordExact(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FindCount       atomic.Int64
	FindErrors      atomic.Int64
	FindPoints      atomic.Int64
	FindComparisons atomic.Int64
	FindTotalNanos  atomic.Int64
	ExactCount      atomic.Int64
	ExactErrors     atomic.Int64
	ExactTotalNanos atomic.Int64
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(count int, comparisons int64, duration time.Duration, err error) {
	b.FindCount.Add(1)
	b.FindTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FindErrors.Add(1)
		return
	}
	b.FindPoints.Add(int64(count))
	b.FindComparisons.Add(comparisons)
}

// RecordExact implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExact(count int, duration time.Duration, err error) {
	b.ExactCount.Add(1)
	b.ExactTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ExactErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FindCount:       b.FindCount.Load(),
		FindErrors:      b.FindErrors.Load(),
		FindPoints:      b.FindPoints.Load(),
		FindComparisons: b.FindComparisons.Load(),
		FindAvgNanos:    avg(b.FindTotalNanos.Load(), b.FindCount.Load()),
		ExactCount:      b.ExactCount.Load(),
		ExactErrors:     b.ExactErrors.Load(),
		ExactAvgNanos:   avg(b.ExactTotalNanos.Load(), b.ExactCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FindCount       int64
	FindErrors      int64
	FindPoints      int64
	FindComparisons int64
	FindAvgNanos    int64
	ExactCount      int64
	ExactErrors     int64
	ExactAvgNanos   int64
}
