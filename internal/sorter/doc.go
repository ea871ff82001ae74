// Package sorter builds and orders the packed key array scanned for the
// closest pair.
//
// Each Entry keeps a back-reference to the point it was packed from. Entries
// are ordered by ascending key and, among equal keys, by ascending original
// index. The secondary order makes the result independent of the sort
// strategy: the comparison sort and the (stable) radix sort produce the same
// sequence for the same input.
package sorter
