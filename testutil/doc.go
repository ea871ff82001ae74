// Package testutil provides testing utilities for pairscan.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible point sets and measuring
// how often the window scan reproduces the exact closest-pair distance.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	xs, ys := rng.UniformCoordinates(1000, 16)   // coordinates in [0, 2^16)
//	xs, ys = rng.ClusteredCoordinates(1000, 8, 4, 16)
//
// # Recall
//
//	recall := testutil.ComputeRecall(exactDistances, approxDistances)
package testutil
