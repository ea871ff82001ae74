package pairscan

import (
	"math"
	"time"

	"github.com/hupe1980/pairscan/internal/conv"
	"github.com/hupe1980/pairscan/internal/exact"
	"github.com/hupe1980/pairscan/internal/pack"
	"github.com/hupe1980/pairscan/internal/scan"
	"github.com/hupe1980/pairscan/internal/sorter"
)

const (
	// KeyBits is the width of a packed key.
	KeyBits = pack.KeyBits

	// MaxBits is the largest per-coordinate bit width. Coordinates must be
	// below 2^MaxBits.
	MaxBits = pack.MaxBits
)

// Integer is the set of coordinate types accepted by Point.
type Integer = conv.Integer

// Point is a 2D point with non-negative integer coordinates.
type Point[T Integer] struct {
	X, Y T
}

// Result is the closest pair found by a search.
type Result[T Integer] struct {
	// I and J are the original indices of the pair, I < J.
	I, J int

	// P and Q are the points at I and J.
	P, Q Point[T]

	// SquaredDistance is the squared Euclidean distance between P and Q.
	// It saturates at math.MaxUint64, which only happens for coordinate
	// deltas close to 2^32; Distance stays accurate in that case.
	SquaredDistance uint64

	// Bits is the per-coordinate width the keys were packed with.
	// Zero for the exact algorithms.
	Bits int

	// Window is the number of sorted positions scanned ahead of each point.
	// Zero for the exact algorithms.
	Window int

	// Comparisons is the number of point pairs examined.
	Comparisons int64

	// Exhaustive is true when every pair was compared, i.e. the result is
	// guaranteed to be the true closest pair.
	Exhaustive bool

	dist scan.Distance
}

// Distance returns the Euclidean distance between P and Q.
func (r Result[T]) Distance() float64 {
	return math.Sqrt(r.dist.Float64())
}

// FindClosestPair finds the closest pair of points by packing each point into
// a single key, sorting the keys and comparing every point with the next
// window points in key order.
//
// The result is exact when the window covers all pairs (Result.Exhaustive)
// and, for typical inputs, when the window equals the bit width (the
// default). For smaller windows it is a best-effort approximation: two
// nearby points whose coordinates straddle a power-of-two boundary can land
// far apart in key order and be missed.
//
// Among pairs at the minimum distance found, the one first reached in scan
// order is returned, so results are reproducible for a given input and
// configuration regardless of sort strategy or worker count.
//
// All precondition violations are reported eagerly as errors matching
// ErrInvalidInput: fewer than two points, negative coordinates, coordinates
// that do not fit the bit width, and invalid bit width or window settings.
func FindClosestPair[T Integer](points []Point[T], optFns ...Option) (Result[T], error) {
	o := applyOptions(optFns)
	start := time.Now()

	res, err := findClosestPair(points, o)

	elapsed := time.Since(start)
	o.metricsCollector.RecordFind(len(points), res.Comparisons, elapsed, err)
	o.logger.LogFind(len(points), res.Bits, res.Window, res.Comparisons, elapsed, err)
	return res, err
}

func findClosestPair[T Integer](points []Point[T], o options) (Result[T], error) {
	if o.windowSet && o.window < 1 {
		return Result[T]{}, &ErrInvalidWindow{Window: o.window}
	}

	in, bits, err := prepare(points, o)
	if err != nil {
		return Result[T]{}, err
	}

	window := bits
	if o.windowSet {
		window = o.window
	}

	in.Entries = sorter.Build(in.Xs, in.Ys, bits)
	sorter.Sort(in.Entries, bits, o.sortStrategy)

	var (
		c     scan.Candidate
		stats scan.Stats
	)
	if o.workers > 1 {
		c, stats = scan.Parallel(in, window, o.workers)
	} else {
		c, stats = scan.Scan(in, window)
	}

	res := newResult(points, c.A, c.B, c.Dist)
	res.Bits = bits
	res.Window = window
	res.Comparisons = stats.Comparisons
	res.Exhaustive = window >= len(points)-1
	return res, nil
}

// BruteForce finds the exact closest pair by comparing every pair.
//
// Among pairs at the minimum distance, the one with the lowest I, then the
// lowest J, is returned. Only logging and metrics options apply.
func BruteForce[T Integer](points []Point[T], optFns ...Option) (Result[T], error) {
	return runExact(points, "brute_force", exact.BruteForce, optFns)
}

// DivideAndConquer finds the exact closest pair in O(n log n) by recursively
// splitting the points at the median x coordinate. Inputs with coincident
// points are resolved by a single pass over the x-sorted points.
//
// Ties resolve as in BruteForce. Only logging and metrics options apply.
func DivideAndConquer[T Integer](points []Point[T], optFns ...Option) (Result[T], error) {
	return runExact(points, "divide_and_conquer", exact.DivideAndConquer, optFns)
}

func runExact[T Integer](points []Point[T], name string, fn func(xs, ys []uint64) exact.Pair, optFns []Option) (Result[T], error) {
	o := applyOptions(optFns)
	o.bitsSet, o.windowSet = false, false
	start := time.Now()

	res, err := func() (Result[T], error) {
		in, _, err := prepare(points, o)
		if err != nil {
			return Result[T]{}, err
		}
		p := fn(in.Xs, in.Ys)
		r := newResult(points, p.A, p.B, p.Dist)
		r.Comparisons = p.Comparisons
		r.Exhaustive = true
		return r, nil
	}()

	elapsed := time.Since(start)
	o.metricsCollector.RecordExact(len(points), elapsed, err)
	o.logger.LogExact(name, len(points), res.Comparisons, elapsed, err)
	return res, err
}

// prepare validates points and converts them to uint64 coordinates. It
// returns the resolved bit width.
func prepare[T Integer](points []Point[T], o options) (scan.Input, int, error) {
	if len(points) < 2 {
		return scan.Input{}, 0, &ErrTooFewPoints{Count: len(points)}
	}
	if o.bitsSet && !pack.ValidBits(o.bits) {
		return scan.Input{}, 0, &ErrInvalidBits{Bits: o.bits}
	}

	xs := make([]uint64, len(points))
	ys := make([]uint64, len(points))
	for i, p := range points {
		x, err := conv.ToUint64(p.X)
		if err != nil {
			return scan.Input{}, 0, &ErrNegativeCoordinate{Index: i, Axis: "x", cause: err}
		}
		y, err := conv.ToUint64(p.Y)
		if err != nil {
			return scan.Input{}, 0, &ErrNegativeCoordinate{Index: i, Axis: "y", cause: err}
		}
		xs[i], ys[i] = x, y
	}

	bits := o.bits
	if !o.bitsSet {
		b, err := pack.SelectBits(pack.MaxCoordinate(xs, ys))
		if err != nil {
			// Too wide for any key; the check below names the point.
			b = MaxBits
		}
		bits = b
	}

	for i := range xs {
		if !pack.Fits(xs[i], bits) {
			return scan.Input{}, 0, &ErrCoordinateOverflow{Index: i, Value: xs[i], Bits: bits}
		}
		if !pack.Fits(ys[i], bits) {
			return scan.Input{}, 0, &ErrCoordinateOverflow{Index: i, Value: ys[i], Bits: bits}
		}
	}

	return scan.Input{Xs: xs, Ys: ys}, bits, nil
}

func newResult[T Integer](points []Point[T], a, b int, d scan.Distance) Result[T] {
	i, j := min(a, b), max(a, b)
	return Result[T]{
		I:               i,
		J:               j,
		P:               points[i],
		Q:               points[j],
		SquaredDistance: d.Uint64(),
		dist:            d,
	}
}
