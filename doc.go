// Package pairscan finds the closest pair of 2D integer points by reducing the
// search to one dimension.
//
// Each point (x, y) is packed into a single key (x << bits) | y, where bits is
// the number of bits needed for the largest coordinate. The keys are sorted
// and every point is compared with the next window points in key order, using
// the true Euclidean distance on the original coordinates. The total cost is
// O(n log n + n·window).
//
// # Quick Start
//
//	points := []pairscan.Point[uint32]{{0, 0}, {5, 5}, {1, 1}, {100, 100}}
//	res, err := pairscan.FindClosestPair(points)
//	// res.I == 0, res.J == 2, res.SquaredDistance == 2
//
// # Accuracy
//
// Packing is not distance preserving. Two neighbouring points whose
// coordinates straddle a power-of-two boundary can receive keys that are far
// apart, so the scan looks window positions ahead rather than only at the
// adjacent key. The default window equals the bit width, which finds the true
// closest pair for typical inputs, but this is a heuristic:
//
//   - Result.Exhaustive is true when the window covered every pair; only then
//     is the result guaranteed exact.
//   - Otherwise the result is the best pair among those compared, and
//     enlarging the window never makes it worse.
//
// BruteForce and DivideAndConquer compute the exact answer for validation.
//
// # Configuration
//
//	res, err := pairscan.FindClosestPair(points,
//	    pairscan.WithBits(16),        // fixed key width per coordinate
//	    pairscan.WithWindow(64),      // look further ahead
//	    pairscan.WithWorkers(8),      // chunked parallel scan
//	    pairscan.WithSortStrategy(pairscan.SortRadix),
//	)
//
// # Errors
//
// Every precondition violation is reported before any work is done and
// matches ErrInvalidInput:
//
//	if errors.Is(err, pairscan.ErrInvalidInput) { ... }
//
// Coordinates that do not fit the bit width are rejected rather than masked.
package pairscan
