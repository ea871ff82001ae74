package exact

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pairscan/testutil"
)

type algorithm struct {
	name string
	fn   func(xs, ys []uint64) Pair
}

var algorithms = []algorithm{
	{"BruteForce", BruteForce},
	{"DivideAndConquer", DivideAndConquer},
}

func TestKnownSets(t *testing.T) {
	grid := func(size int) ([]uint64, []uint64) {
		var xs, ys []uint64
		for x := range size {
			for y := range size {
				xs = append(xs, uint64(x))
				ys = append(ys, uint64(y))
			}
		}
		return xs, ys
	}
	gx, gy := grid(5)

	tests := []struct {
		name   string
		xs, ys []uint64
		want   uint64
		a, b   int
	}{
		{"small set", []uint64{0, 3, 0, 10}, []uint64{0, 0, 4, 10}, 9, 0, 1},
		{"single pair", []uint64{5, 8}, []uint64{10, 14}, 25, 0, 1},
		{"collinear", []uint64{1, 3, 5, 7, 9}, []uint64{1, 3, 5, 7, 9}, 8, 0, 1},
		{"grid", gx, gy, 1, 0, 1},
		{"duplicates", []uint64{10, 30, 10, 50}, []uint64{20, 40, 20, 60}, 0, 0, 2},
		{"large range", []uint64{0, 10000, 20000, 20005}, []uint64{0, 10000, 20000, 20005}, 50, 2, 3},
		{"example", []uint64{0, 5, 1, 100}, []uint64{0, 5, 1, 100}, 2, 0, 2},
	}

	for _, alg := range algorithms {
		for _, tt := range tests {
			t.Run(alg.name+"/"+tt.name, func(t *testing.T) {
				p := alg.fn(tt.xs, tt.ys)
				assert.Equal(t, tt.want, p.Dist.Uint64())
				assert.Equal(t, tt.a, p.A)
				assert.Equal(t, tt.b, p.B)
			})
		}
	}
}

func TestDivideAndConquer_MatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for round := range 40 {
		n := 2 + rng.Intn(300)
		var xs, ys []uint64
		if round%2 == 0 {
			xs, ys = rng.UniformCoordinates(n, 6) // dense: many ties
		} else {
			xs, ys = rng.ClusteredCoordinates(n, 5, 10, 20)
		}

		want := BruteForce(xs, ys)
		got := DivideAndConquer(xs, ys)
		require.Equal(t, want.Dist, got.Dist, "round %d, n=%d", round, n)
		require.Equal(t, want.A, got.A, "round %d, n=%d", round, n)
		require.Equal(t, want.B, got.B, "round %d, n=%d", round, n)
		require.Equal(t, int64(n*(n-1)/2), want.Comparisons)
	}
}

func TestDivideAndConquer_SharedX(t *testing.T) {
	// All points on one vertical line: every split has the same median x.
	xs := []uint64{4, 4, 4, 4, 4, 4, 4}
	ys := []uint64{90, 10, 55, 30, 13, 70, 0}

	p := DivideAndConquer(xs, ys)

	assert.Equal(t, uint64(9), p.Dist.Uint64())
	assert.Equal(t, 1, p.A)
	assert.Equal(t, 4, p.B)
}

func TestDivideAndConquer_AllIdentical(t *testing.T) {
	xs := []uint64{7, 7, 7, 7, 7, 7}
	ys := []uint64{3, 3, 3, 3, 3, 3}

	p := DivideAndConquer(xs, ys)

	assert.Equal(t, uint64(0), p.Dist.Uint64())
	assert.Equal(t, 0, p.A)
	assert.Equal(t, 1, p.B)
}

func TestDivideAndConquer_Coincident(t *testing.T) {
	const n = 40000

	t.Run("all identical", func(t *testing.T) {
		xs, ys := make([]uint64, n), make([]uint64, n)
		for i := range n {
			xs[i], ys[i] = 7, 7
		}

		p := DivideAndConquer(xs, ys)

		assert.Zero(t, p.Dist.Uint64())
		assert.Equal(t, 0, p.A)
		assert.Equal(t, 1, p.B)
		assert.Equal(t, int64(n-1), p.Comparisons)
	})

	t.Run("collinear pairs", func(t *testing.T) {
		// Every y value appears twice on one vertical line.
		xs, ys := make([]uint64, n), make([]uint64, n)
		for i := range n {
			xs[i], ys[i] = 3, uint64(n-1-i)/2
		}

		p := DivideAndConquer(xs, ys)

		assert.Zero(t, p.Dist.Uint64())
		assert.Equal(t, 0, p.A)
		assert.Equal(t, 1, p.B)
		assert.Equal(t, int64(n-1), p.Comparisons)
	})

	t.Run("late duplicate", func(t *testing.T) {
		xs, ys := make([]uint64, 200), make([]uint64, 200)
		for i := range 200 {
			xs[i], ys[i] = uint64(i*3), uint64(i%7)
		}
		xs[150], ys[150] = xs[42], ys[42]
		xs[199], ys[199] = xs[10], ys[10]

		want := BruteForce(xs, ys)
		got := DivideAndConquer(xs, ys)

		assert.Zero(t, got.Dist.Uint64())
		assert.Equal(t, 10, got.A)
		assert.Equal(t, 199, got.B)
		assert.Equal(t, want.A, got.A)
		assert.Equal(t, want.B, got.B)
	})
}

func TestDivideAndConquer_CollinearDistinct(t *testing.T) {
	const n = 40000
	xs, ys := make([]uint64, n), make([]uint64, n)
	for i := range n {
		xs[i], ys[i] = 3, uint64(n-1-i)
	}

	p := DivideAndConquer(xs, ys)

	assert.Equal(t, uint64(1), p.Dist.Uint64())
	assert.Equal(t, 0, p.A)
	assert.Equal(t, 1, p.B)
	// Every split shares the median x, so each strip holds all of its
	// points; each still only reaches its next neighbour in y.
	assert.Less(t, p.Comparisons, int64(2*n*bits.Len(n)))
}

func BenchmarkExact(b *testing.B) {
	xs, ys := testutil.NewRNG(1).UniformCoordinates(2000, 31)

	for _, alg := range algorithms {
		b.Run(alg.name, func(b *testing.B) {
			for b.Loop() {
				alg.fn(xs, ys)
			}
		})
	}
}
