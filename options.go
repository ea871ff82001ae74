package pairscan

import (
	"log/slog"

	"github.com/hupe1980/pairscan/internal/sorter"
)

// SortStrategy selects how the packed key array is sorted.
type SortStrategy = sorter.Strategy

const (
	// SortAuto uses radix sort for large inputs and pdqsort otherwise.
	SortAuto = sorter.StrategyAuto
	// SortComparison always uses a comparison sort (pdqsort).
	SortComparison = sorter.StrategyComparison
	// SortRadix always uses an LSD radix sort.
	SortRadix = sorter.StrategyRadix
)

type options struct {
	bits             int
	window           int
	bitsSet          bool
	windowSet        bool
	workers          int
	sortStrategy     SortStrategy
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a closest-pair search.
type Option func(*options)

// WithBits fixes the number of bits allotted to each coordinate in a packed key.
//
// By default the width is derived per call as the bit length of the largest
// coordinate. A fixed width must be in [1, MaxBits] and every coordinate must
// fit in it; otherwise the search fails with ErrInvalidInput.
func WithBits(bits int) Option {
	return func(o *options) {
		o.bits = bits
		o.bitsSet = true
	}
}

// WithWindow sets how many sorted positions ahead of each point are compared.
//
// Defaults to the bit width. Larger windows raise the chance of finding the
// true closest pair at linear extra cost; a window of len(points)-1 compares
// every pair.
func WithWindow(window int) Option {
	return func(o *options) {
		o.window = window
		o.windowSet = true
	}
}

// WithWorkers enables the chunked parallel scan with up to workers goroutines.
// Chunks overlap by the window size, so the result is identical to the
// sequential scan.
//
// If workers <= 1, the scan runs on the calling goroutine (default).
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithSortStrategy selects the sort algorithm for the packed keys.
// All strategies produce the same order.
func WithSortStrategy(s SortStrategy) Option {
	return func(o *options) {
		o.sortStrategy = s
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &pairscan.BasicMetricsCollector{}
//	res, _ := pairscan.FindClosestPair(points, pairscan.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.FindCount, stats.FindAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := pairscan.NewJSONLogger(slog.LevelDebug)
//	res, _ := pairscan.FindClosestPair(points, pairscan.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		sortStrategy:     SortAuto,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
