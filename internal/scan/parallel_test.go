package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pairscan/testutil"
)

func TestParallel_MatchesSequential(t *testing.T) {
	rng := testutil.NewRNG(4711)
	xs, ys := rng.ClusteredCoordinates(5000, 50, 8, 16)
	in := newInput(xs, ys, 16)

	want, wantStats := Scan(in, 16)

	for _, chunks := range []int{2, 3, 7, 16, 64, 5000} {
		got, stats := ParallelWith(in, 16, ParallelOptions{Workers: 4, Chunks: chunks, Overlap: 16})
		assert.Equal(t, want, got, "chunks=%d", chunks)
		assert.Equal(t, wantStats.Comparisons, stats.Comparisons, "chunks=%d", chunks)
		assert.Equal(t, chunks, stats.Chunks)
	}
}

func TestParallel_Deterministic(t *testing.T) {
	// Many exact ties: the reduction must still pick the first pair in scan order.
	rng := testutil.NewRNG(1)
	xs, ys := rng.UniformCoordinates(3000, 4)
	in := newInput(xs, ys, 4)

	want, _ := Scan(in, 4)
	for range 20 {
		got, _ := ParallelWith(in, 4, ParallelOptions{Workers: 8, Chunks: 12, Overlap: 4})
		require.Equal(t, want, got)
	}
}

func TestParallel_DefaultChunking(t *testing.T) {
	xs, ys := testutil.NewRNG(5).UniformCoordinates(10, 8)
	in := newInput(xs, ys, 8)

	want, _ := Scan(in, 8)
	got, stats := Parallel(in, 8, 4)

	// Too small to split.
	assert.Equal(t, want, got)
	assert.Equal(t, 1, stats.Chunks)
}

func TestParallel_OverlapAtChunkBoundary(t *testing.T) {
	// Sorted positions 0..3; two chunks split between positions 1 and 2,
	// exactly where the closest pair (10,0)-(11,0) sits.
	xs := []uint64{0, 10, 11, 30}
	ys := []uint64{0, 0, 0, 0}
	in := newInput(xs, ys, 5)

	seq, _ := Scan(in, 5)
	require.Equal(t, uint64(1), seq.Dist.Uint64())

	t.Run("overlap equals window", func(t *testing.T) {
		got, _ := ParallelWith(in, 5, ParallelOptions{Workers: 2, Chunks: 2, Overlap: 5})
		assert.Equal(t, seq, got)
	})

	t.Run("zero overlap misses the straddling pair", func(t *testing.T) {
		got, _ := ParallelWith(in, 5, ParallelOptions{Workers: 2, Chunks: 2, Overlap: 0})
		require.True(t, got.Found)
		assert.Equal(t, uint64(100), got.Dist.Uint64())
		assert.NotEqual(t, seq.Dist, got.Dist)
	})
}

func BenchmarkScan(b *testing.B) {
	rng := testutil.NewRNG(1)
	xs, ys := rng.UniformCoordinates(200_000, 31)
	in := newInput(xs, ys, 31)

	b.Run("Sequential", func(b *testing.B) {
		for b.Loop() {
			Scan(in, 31)
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		for b.Loop() {
			Parallel(in, 31, 0)
		}
	})
}
