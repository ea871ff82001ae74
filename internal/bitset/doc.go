// Package bitset provides a small resettable bitset over point indices.
//
// Used internally for:
//   - Splitting a y-ordered index list into left and right halves during
//     the divide-and-conquer closest-pair search
package bitset
