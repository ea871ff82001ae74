// Package scan implements the windowed nearest-neighbour scan over a sorted
// packed key array.
//
// For every sorted position i the scanner compares the point at i with the
// points at positions i+1 .. i+window and keeps the pair with the smallest
// squared Euclidean distance, computed on the original coordinates.
//
// The result is exact only when every truly closest pair lies within window
// positions of each other in key order. With window equal to the packing bit
// width this holds for most inputs, but no general guarantee exists: a
// smaller window trades recall for speed, and any window below n-1 can miss
// pairs separated by a key discontinuity.
//
// Ties are resolved in scan order (lowest i, then lowest j), so sequential
// and chunked parallel scans return the same pair.
package scan
