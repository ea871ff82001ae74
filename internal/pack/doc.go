// Package pack folds a 2D point into a single sortable uint64 key.
//
// A key is the x coordinate shifted left by bits, OR-ed with y:
//
//	key = (x << bits) | y
//
// Sorting keys orders points by x first and y second, which keeps points
// that share their high-order x bits close together. It is not a distance
// preserving embedding: two points one unit apart may receive keys that are
// far apart whenever their coordinates straddle a bit boundary. The window
// scan compensates for these discontinuities.
//
// Bit widths range from 1 to MaxBits so that two coordinates always fit in
// one KeyBits-wide key.
package pack
