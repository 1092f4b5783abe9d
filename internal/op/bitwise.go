package op

import (
	"math"

	"jsexpr/value"
)

// Bitwise coerces both operands to signed 32-bit integers and applies the
// given operation. Shift operations must mask their right operand with 0x1F
// inside the closure.
func Bitwise(left, right value.Value, operator func(l, r int32) int32) (value.Value, error) {
	l := toInt32(value.ToNumber(left))
	r := toInt32(value.ToNumber(right))
	return value.Number(float64(operator(l, r)))
}

// UnsignedRightShift coerces the left operand to an unsigned 32-bit integer
// and logically shifts it by the masked right operand.
func UnsignedRightShift(left, right value.Value) (value.Value, error) {
	l := uint32(toInt32(value.ToNumber(left)))
	r := toUint32(value.ToNumber(right)) & 0x1F
	return value.Number(float64(l >> r))
}

// Float-to-integer truncation saturates at the type bounds and maps NaN to
// zero, mirroring the source language's cast semantics.

func toInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= math.MinInt32:
		return math.MinInt32
	case f >= math.MaxInt32:
		return math.MaxInt32
	}
	return int32(f)
}

func toInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= math.MinInt64:
		return math.MinInt64
	case f >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(f)
}

func toUint32(f float64) uint32 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(f)
}
