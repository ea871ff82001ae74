package scan

import (
	"github.com/hupe1980/pairscan/internal/sorter"
)

// Stats describes the work done by a scan.
type Stats struct {
	Comparisons int64
	Chunks      int
}

// Input bundles the sorted entries with the original coordinates they refer to.
type Input struct {
	Entries []sorter.Entry
	Xs, Ys  []uint64
}

// Len returns the number of entries.
func (in Input) Len() int {
	return len(in.Entries)
}

// Scan runs a sequential window scan over all positions.
func Scan(in Input, window int) (Candidate, Stats) {
	c, cmp := ScanRange(in, window, 0, in.Len())
	return c, Stats{Comparisons: cmp, Chunks: 1}
}

// ScanRange scans start positions [lo, hi). Each start position i is compared
// with positions up to min(i+window, limit-1), where limit is the total
// number of entries, so a range reads past hi by at most window entries.
func ScanRange(in Input, window, lo, hi int) (Candidate, int64) {
	return scanBounded(in, window, lo, hi, in.Len())
}

// scanBounded is ScanRange with an explicit exclusive upper bound on j.
func scanBounded(in Input, window, lo, hi, limit int) (Candidate, int64) {
	var (
		best Candidate
		cmp  int64
	)
	if window < 1 {
		return best, 0
	}

	entries := in.Entries
	hi = min(hi, limit)
	window = min(window, limit)
	for i := lo; i < hi; i++ {
		a := entries[i].Index
		ax, ay := in.Xs[a], in.Ys[a]

		end := min(i+window, limit-1)
		for j := i + 1; j <= end; j++ {
			b := entries[j].Index
			d := SquaredDistance(ax, ay, in.Xs[b], in.Ys[b])
			cmp++

			// Strict comparison keeps the earliest pair on ties.
			if !best.Found || d.Less(best.Dist) {
				best = Candidate{Dist: d, I: i, J: j, A: a, B: b, Found: true}
			}
		}
	}
	return best, cmp
}
