package exact

import (
	"cmp"
	"slices"

	"github.com/hupe1980/pairscan/internal/bitset"
	"github.com/hupe1980/pairscan/internal/scan"
)

// Pair is the closest pair found, as original indices with A < B.
type Pair struct {
	A, B int
	Dist scan.Distance

	// Comparisons is the number of point pairs examined.
	Comparisons int64
}

// BruteForce compares every pair. Ties go to the lowest A, then lowest B.
// xs and ys must have the same length, at least 2.
func BruteForce(xs, ys []uint64) Pair {
	return bruteForce(xs, ys, identity(len(xs)))
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// bruteForce compares every pair among idx.
func bruteForce(xs, ys []uint64, idx []int) Pair {
	k := int64(len(idx))
	best := Pair{A: -1, Comparisons: k * (k - 1) / 2}
	for i := range idx {
		a := idx[i]
		for _, b := range idx[i+1:] {
			d := scan.SquaredDistance(xs[a], ys[a], xs[b], ys[b])
			if p := (Pair{A: min(a, b), B: max(a, b), Dist: d}); best.A < 0 || p.better(best) {
				best.A, best.B, best.Dist = p.A, p.B, p.Dist
			}
		}
	}
	return best
}

func (p Pair) better(o Pair) bool {
	if p.Dist != o.Dist {
		return p.Dist.Less(o.Dist)
	}
	if p.A != o.A {
		return p.A < o.A
	}
	return p.B < o.B
}

// DivideAndConquer finds the closest pair in O(n log n).
//
// Among pairs at the minimum distance it returns the one with the lowest A,
// then lowest B, matching BruteForce.
func DivideAndConquer(xs, ys []uint64) Pair {
	n := len(xs)
	byX := identity(n)
	slices.SortFunc(byX, func(a, b int) int {
		return cmp.Or(cmp.Compare(xs[a], xs[b]), cmp.Compare(ys[a], ys[b]), cmp.Compare(a, b))
	})

	// Coincident points are adjacent in byX. Any of them gives distance
	// zero, and the recursion below only stays O(n log n) on distinct points.
	if p, ok := coincident(xs, ys, byX); ok {
		return p
	}

	byY := identity(n)
	slices.SortFunc(byY, func(a, b int) int {
		return cmp.Or(cmp.Compare(ys[a], ys[b]), cmp.Compare(xs[a], xs[b]), cmp.Compare(a, b))
	})

	s := &solver{xs: xs, ys: ys, left: bitset.New(n), buf: make([]int, n)}
	p := s.solve(byX, byY)
	p.Comparisons = s.comparisons + int64(n-1)
	return p
}

// coincident returns the lowest (A, B) pair of identical points, if any.
// byX must be ordered by x, then y, then index, so each group of identical
// points is a run in ascending index order and its lowest pair is adjacent.
func coincident(xs, ys []uint64, byX []int) (Pair, bool) {
	best := Pair{A: -1}
	for k := 1; k < len(byX); k++ {
		a, b := byX[k-1], byX[k]
		if xs[a] != xs[b] || ys[a] != ys[b] {
			continue
		}
		if p := (Pair{A: a, B: b}); best.A < 0 || p.better(best) {
			best = p
		}
	}
	if best.A < 0 {
		return Pair{}, false
	}
	best.Comparisons = int64(len(byX) - 1)
	return best, true
}

type solver struct {
	xs, ys      []uint64
	left        *bitset.Set
	buf         []int
	comparisons int64
}

// solve returns the closest pair among byX; byY holds the same indices
// ordered by y. Points must be pairwise distinct, which bounds the strip
// scan to a constant number of neighbours per point.
func (s *solver) solve(byX, byY []int) Pair {
	n := len(byX)
	if n <= 3 {
		p := bruteForce(s.xs, s.ys, byX)
		s.comparisons += p.Comparisons
		return p
	}

	mid := n / 2
	midX := s.xs[byX[mid]]

	// Partition byY by membership in the left half of byX. Splitting on
	// index membership instead of x keeps halves balanced when many
	// points share the median x.
	for _, i := range byX[:mid] {
		s.left.Add(i)
	}
	yl := make([]int, 0, mid)
	yr := make([]int, 0, n-mid)
	for _, i := range byY {
		if s.left.Contains(i) {
			yl = append(yl, i)
		} else {
			yr = append(yr, i)
		}
	}
	s.left.Reset()

	best := s.solve(byX[:mid], yl)
	if r := s.solve(byX[mid:], yr); r.better(best) {
		best = r
	}

	// Strip: points whose horizontal distance to the split line is within
	// the best distance, in y order. Equal distances are kept so ties resolve
	// the same way as BruteForce.
	strip := s.buf[:0]
	for _, i := range byY {
		dx := scan.SquaredDistance(s.xs[i], 0, midX, 0)
		if !best.Dist.Less(dx) {
			strip = append(strip, i)
		}
	}

	for k, a := range strip {
		for _, b := range strip[k+1:] {
			dy := scan.SquaredDistance(0, s.ys[a], 0, s.ys[b])
			if best.Dist.Less(dy) {
				break
			}
			d := scan.SquaredDistance(s.xs[a], s.ys[a], s.xs[b], s.ys[b])
			s.comparisons++
			if p := (Pair{A: min(a, b), B: max(a, b), Dist: d}); p.better(best) {
				best = p
			}
		}
	}
	return best
}
