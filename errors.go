package pairscan

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the single error kind reported for precondition
	// violations. Every error returned by this package matches it via errors.Is.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrTooFewPoints indicates fewer than two points were supplied.
type ErrTooFewPoints struct {
	Count int
}

func (e *ErrTooFewPoints) Error() string {
	return fmt.Sprintf("%v: need at least 2 points, got %d", ErrInvalidInput, e.Count)
}

func (e *ErrTooFewPoints) Unwrap() error { return ErrInvalidInput }

// ErrNegativeCoordinate indicates a point with a negative coordinate.
//
// The original conversion error (if any) can be accessed via errors.Unwrap.
type ErrNegativeCoordinate struct {
	Index int
	Axis  string
	cause error
}

func (e *ErrNegativeCoordinate) Error() string {
	return fmt.Sprintf("%v: point %d has negative %s coordinate", ErrInvalidInput, e.Index, e.Axis)
}

func (e *ErrNegativeCoordinate) Unwrap() []error { return []error{ErrInvalidInput, e.cause} }

// ErrCoordinateOverflow indicates a coordinate that does not fit the bit width.
type ErrCoordinateOverflow struct {
	Index int
	Value uint64
	Bits  int
}

func (e *ErrCoordinateOverflow) Error() string {
	return fmt.Sprintf("%v: point %d coordinate %d does not fit in %d bits", ErrInvalidInput, e.Index, e.Value, e.Bits)
}

func (e *ErrCoordinateOverflow) Unwrap() error { return ErrInvalidInput }

// ErrInvalidBits indicates an explicit bit width outside [1, MaxBits].
type ErrInvalidBits struct {
	Bits int
}

func (e *ErrInvalidBits) Error() string {
	return fmt.Sprintf("%v: bit width %d out of range [1, %d]", ErrInvalidInput, e.Bits, MaxBits)
}

func (e *ErrInvalidBits) Unwrap() error { return ErrInvalidInput }

// ErrInvalidWindow indicates an explicit window size below 1.
type ErrInvalidWindow struct {
	Window int
}

func (e *ErrInvalidWindow) Error() string {
	return fmt.Sprintf("%v: window %d must be positive", ErrInvalidInput, e.Window)
}

func (e *ErrInvalidWindow) Unwrap() error { return ErrInvalidInput }
