package conv

import (
	"errors"
	"fmt"
)

// ErrNegative is returned when a negative value is converted to an unsigned type.
var ErrNegative = errors.New("negative value")

// Integer is the set of Go integer types accepted as point coordinates.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// ToUint64 converts any integer to uint64 safely.
func ToUint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64: %w", v, ErrNegative)
	}
	return uint64(v), nil
}
