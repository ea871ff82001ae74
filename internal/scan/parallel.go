package scan

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// minChunkSize keeps chunks large enough that goroutine overhead stays small
// relative to the scan work.
const minChunkSize = 1024

// ParallelOptions configures a chunked scan.
type ParallelOptions struct {
	// Workers bounds the number of concurrently scanned chunks.
	// If <= 0, GOMAXPROCS is used.
	Workers int

	// Chunks is the number of contiguous chunks. If <= 0 it is derived from
	// Workers and the input size.
	Chunks int

	// Overlap is how many entries past its end a chunk may read.
	// Anything below the window misses pairs that straddle a chunk boundary;
	// Parallel uses the window itself. Exposed for tests.
	Overlap int
}

// Parallel splits the start positions into contiguous chunks, scans them
// concurrently with an overlap equal to window and reduces the per-chunk
// minima. The result is identical to Scan.
func Parallel(in Input, window, workers int) (Candidate, Stats) {
	return ParallelWith(in, window, ParallelOptions{Workers: workers, Overlap: window})
}

// ParallelWith is Parallel with explicit chunking.
func ParallelWith(in Input, window int, opts ParallelOptions) (Candidate, Stats) {
	n := in.Len()
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunks := opts.Chunks
	if chunks <= 0 {
		chunks = min(workers, max(1, n/minChunkSize))
	}
	chunks = max(1, min(chunks, n))

	if chunks == 1 {
		return Scan(in, window)
	}

	type partial struct {
		best Candidate
		cmp  int64
	}

	// One slot per chunk; the only synchronisation is g.Wait.
	partials := make([]partial, chunks)
	size := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(workers)

	for c := range chunks {
		lo := c * size
		hi := min(lo+size, n)
		if lo >= hi {
			continue
		}
		limit := min(hi+min(max(0, opts.Overlap), n), n)

		g.Go(func() error {
			best, cmp := scanBounded(in, window, lo, hi, limit)
			partials[c] = partial{best: best, cmp: cmp}
			return nil
		})
	}
	_ = g.Wait() // chunk scans never fail

	var (
		best  Candidate
		stats = Stats{Chunks: chunks}
	)
	for _, p := range partials {
		best = Merge(best, p.best)
		stats.Comparisons += p.cmp
	}
	return best, stats
}
