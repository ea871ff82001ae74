package sorter

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hupe1980/pairscan/internal/pack"
)

// Entry is a packed key tagged with the index of its originating point.
type Entry struct {
	Key   uint64
	Index int
}

// Strategy selects the sort algorithm.
type Strategy int

const (
	// StrategyAuto uses radix sort for large inputs and pdqsort otherwise.
	StrategyAuto Strategy = iota
	// StrategyComparison always uses a comparison sort.
	StrategyComparison
	// StrategyRadix always uses an LSD radix sort.
	StrategyRadix
)

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "Auto"
	case StrategyComparison:
		return "Comparison"
	case StrategyRadix:
		return "Radix"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// radixThreshold is the input size above which StrategyAuto switches to radix sort.
const radixThreshold = 4096

// Build packs every (xs[i], ys[i]) pair with the given bit width.
// Coordinates must already be validated against bits.
func Build(xs, ys []uint64, bits int) []Entry {
	entries := make([]Entry, len(xs))
	for i := range xs {
		entries[i] = Entry{Key: pack.Pack(xs[i], ys[i], bits), Index: i}
	}
	return entries
}

// Sort orders entries by key, then by index. bits is the per-coordinate
// width the keys were packed with; radix sort only visits the bytes it spans.
func Sort(entries []Entry, bits int, s Strategy) {
	if len(entries) < 2 {
		return
	}
	switch s {
	case StrategyRadix:
		radixSort(entries, 2*bits)
	case StrategyComparison:
		slices.SortFunc(entries, compare)
	default:
		if len(entries) > radixThreshold {
			radixSort(entries, 2*bits)
		} else {
			slices.SortFunc(entries, compare)
		}
	}
}

func compare(a, b Entry) int {
	if c := cmp.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}

// isSorted reports whether entries are in the order produced by Sort.
func isSorted(entries []Entry) bool {
	return slices.IsSortedFunc(entries, compare)
}
