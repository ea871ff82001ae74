package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// UniformCoordinates generates num points with both coordinates uniform in
// [0, 2^bits). bits must be in [1, 32].
func (r *RNG) UniformCoordinates(num, bits int) (xs, ys []uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := int64(1) << uint(bits)
	xs = make([]uint64, num)
	ys = make([]uint64, num)
	for i := range num {
		xs[i] = uint64(r.rand.Int63n(limit))
		ys[i] = uint64(r.rand.Int63n(limit))
	}
	return xs, ys
}

// ClusteredCoordinates generates num points grouped around clusters random
// centres, each point offset by at most spread in both axes. Coordinates are
// clamped to [0, 2^bits).
//
// Dense clusters put many points a few units apart, which is where packed
// keys are most likely to straddle a bit boundary.
func (r *RNG) ClusteredCoordinates(num, clusters, spread, bits int) (xs, ys []uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	limit := int64(1) << uint(bits)
	cx := make([]int64, clusters)
	cy := make([]int64, clusters)
	for c := range clusters {
		cx[c] = r.rand.Int63n(limit)
		cy[c] = r.rand.Int63n(limit)
	}

	xs = make([]uint64, num)
	ys = make([]uint64, num)
	for i := range num {
		c := i % clusters
		xs[i] = uint64(clamp(cx[c]+r.offsetLocked(spread), limit))
		ys[i] = uint64(clamp(cy[c]+r.offsetLocked(spread), limit))
	}
	return xs, ys
}

// offsetLocked returns a value in [-spread, spread] (caller must hold lock).
func (r *RNG) offsetLocked(spread int) int64 {
	if spread <= 0 {
		return 0
	}
	return int64(r.rand.Intn(2*spread+1) - spread)
}

func clamp(v, limit int64) int64 {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}

// ComputeRecall returns the fraction of runs in which the approximate
// squared distance equals the exact one.
func ComputeRecall(exact, approximate []uint64) float64 {
	if len(exact) == 0 || len(approximate) == 0 {
		if len(exact) == 0 && len(approximate) == 0 {
			return 1.0
		}
		return 0.0
	}

	n := min(len(exact), len(approximate))
	hits := 0
	for i := range n {
		if exact[i] == approximate[i] {
			hits++
		}
	}
	return float64(hits) / float64(n)
}
