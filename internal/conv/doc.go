// Package conv provides safe integer type conversion utilities.
//
// Coordinates arrive as arbitrary Go integer types; the kernel works on uint64.
// ToUint64 rejects negative values instead of wrapping them, so a caller-side
// sign error surfaces as a validation failure rather than a huge coordinate.
package conv
