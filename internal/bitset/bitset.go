package bitset

import "math/bits"

// Set is a non-thread-safe bitset over point indices.
// It remembers which bits it set so Reset costs O(K) for K set bits, which
// lets one Set be reused across every level of a recursion.
type Set struct {
	words []uint64
	dirty []int
}

// New creates a Set sized for indices in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		words: make([]uint64, (capacity+63)/64),
		dirty: make([]int, 0, 64),
	}
}

// Add marks index i.
func (s *Set) Add(i int) {
	w := i >> 6
	mask := uint64(1) << (uint(i) & 63)

	if w >= len(s.words) {
		s.grow(w + 1)
	}

	if s.words[w]&mask == 0 {
		s.words[w] |= mask
		s.dirty = append(s.dirty, i)
	}
}

// Contains reports whether index i is marked.
func (s *Set) Contains(i int) bool {
	w := i >> 6
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(uint64(1)<<(uint(i)&63)) != 0
}

// count returns the number of marked indices.
func (s *Set) count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Reset clears all marked indices.
func (s *Set) Reset() {
	for _, i := range s.dirty {
		s.words[i>>6] &^= uint64(1) << (uint(i) & 63)
	}
	s.dirty = s.dirty[:0]
}

func (s *Set) grow(newLen int) {
	newCap := max(len(s.words)*2, newLen)
	words := make([]uint64, newCap)
	copy(words, s.words)
	s.words = words
}
