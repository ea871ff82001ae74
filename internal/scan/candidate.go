package scan

import (
	"math"
	"math/bits"
)

// Distance is an exact squared Euclidean distance.
//
// Two 32-bit coordinate deltas square to at most 2^65, so the sum carries
// one bit beyond uint64 in Hi.
type Distance struct {
	Hi, Lo uint64
}

// SquaredDistance returns the exact squared distance between (x1, y1) and (x2, y2).
// Coordinates must be below 2^32.
func SquaredDistance(x1, y1, x2, y2 uint64) Distance {
	dx := absDiff(x1, x2)
	dy := absDiff(y1, y2)
	lo, carry := bits.Add64(dx*dx, dy*dy, 0)
	return Distance{Hi: carry, Lo: lo}
}

// Less reports whether d is strictly smaller than o.
func (d Distance) Less(o Distance) bool {
	if d.Hi != o.Hi {
		return d.Hi < o.Hi
	}
	return d.Lo < o.Lo
}

// Uint64 returns the distance, saturated at math.MaxUint64.
func (d Distance) Uint64() uint64 {
	if d.Hi != 0 {
		return math.MaxUint64
	}
	return d.Lo
}

// Float64 returns the distance as a float64.
func (d Distance) Float64() float64 {
	return float64(d.Hi)*0x1p64 + float64(d.Lo)
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// Candidate is the running minimum of a scan.
//
// I and J are sorted positions (I < J); A and B are the original indices of
// the points at those positions.
type Candidate struct {
	Dist  Distance
	I, J  int
	A, B  int
	Found bool
}

// Better reports whether c should replace o as the minimum: a smaller
// distance wins, equal distances go to the pair seen first in scan order.
func (c Candidate) Better(o Candidate) bool {
	if !c.Found {
		return false
	}
	if !o.Found {
		return true
	}
	if c.Dist != o.Dist {
		return c.Dist.Less(o.Dist)
	}
	if c.I != o.I {
		return c.I < o.I
	}
	return c.J < o.J
}

// Merge returns the better of c and o.
func Merge(c, o Candidate) Candidate {
	if o.Better(c) {
		return o
	}
	return c
}
