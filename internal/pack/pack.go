package pack

import (
	"fmt"
	"math/bits"
)

const (
	// KeyBits is the width of a packed key.
	KeyBits = 64

	// MaxBits is the largest per-coordinate width that still fits two
	// coordinates in one key.
	MaxBits = KeyBits / 2
)

// ErrBitsOutOfRange indicates a bit width outside [1, MaxBits].
type ErrBitsOutOfRange struct {
	Bits int
}

func (e *ErrBitsOutOfRange) Error() string {
	return fmt.Sprintf("bit width %d out of range [1, %d]", e.Bits, MaxBits)
}

// ValidBits reports whether b is an allowed per-coordinate width.
func ValidBits(b int) bool {
	return b >= 1 && b <= MaxBits
}

// Mask returns a mask with the low b bits set.
func Mask(b int) uint64 {
	if b >= KeyBits {
		return ^uint64(0)
	}
	return (uint64(1) << uint(b)) - 1
}

// Fits reports whether v is representable in b bits.
func Fits(v uint64, b int) bool {
	return v&^Mask(b) == 0
}

// Pack combines x and y into one key using b bits per coordinate.
//
// Bits above b are masked off. Callers that must not lose data check Fits
// first; Pack itself never fails.
func Pack(x, y uint64, b int) uint64 {
	m := Mask(b)
	return ((x & m) << uint(b)) | (y & m)
}

// Unpack splits a key produced by Pack back into its coordinates.
func Unpack(key uint64, b int) (x, y uint64) {
	m := Mask(b)
	return (key >> uint(b)) & m, key & m
}

// BitLength returns the number of bits needed to represent v.
// BitLength(0) is 0.
func BitLength(v uint64) int {
	return bits.Len64(v)
}

// SelectBits returns the smallest width that represents maxCoord, never less
// than one bit.
func SelectBits(maxCoord uint64) (int, error) {
	b := max(1, BitLength(maxCoord))
	if b > MaxBits {
		return 0, &ErrBitsOutOfRange{Bits: b}
	}
	return b, nil
}

// MaxCoordinate returns the largest value across xs and ys.
func MaxCoordinate(xs, ys []uint64) uint64 {
	var m uint64
	for i := range xs {
		m = max(m, xs[i], ys[i])
	}
	return m
}
