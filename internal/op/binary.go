// Package op implements the binary and unary operators of the expression
// language as pure functions over values. The package never inspects the
// binding environment; all type conversions go through the value package.
package op

import (
	"math"

	"jsexpr/value"
)

// Add applies the addition operator. Both operands reduce to primitives
// first; if either primitive is a string the result is the concatenation of
// their string coercions, otherwise the numeric sum.
func Add(left, right value.Value) (value.Value, error) {
	lp := value.ToPrimitive(left)
	rp := value.ToPrimitive(right)
	if lp.Kind() == value.KindString || rp.Kind() == value.KindString {
		return value.String(value.ToString(lp) + value.ToString(rp)), nil
	}
	return value.Number(value.ToNumber(lp) + value.ToNumber(rp))
}

// Sub applies the subtraction operator.
func Sub(left, right value.Value) (value.Value, error) {
	return value.Number(value.ToNumber(left) - value.ToNumber(right))
}

// Mul applies the multiplication operator.
func Mul(left, right value.Value) (value.Value, error) {
	return value.Number(value.ToNumber(left) * value.ToNumber(right))
}

// Pow applies the exponentiation operator.
func Pow(left, right value.Value) (value.Value, error) {
	return value.Number(math.Pow(value.ToNumber(left), value.ToNumber(right)))
}

// Div applies the division operator. A zero divisor yields null for a zero
// dividend and the signed infinity otherwise.
func Div(left, right value.Value) (value.Value, error) {
	lnum := value.ToNumber(left)
	rnum := value.ToNumber(right)
	if rnum == 0 {
		switch {
		case lnum == 0:
			return value.Null(), nil
		case lnum > 0:
			return value.Number(math.Inf(1))
		default:
			return value.Number(math.Inf(-1))
		}
	}
	return value.Number(lnum / rnum)
}

// Rem applies the remainder operator. A zero dividend yields null, covering
// the 0 % 0 case and, deliberately, 0 % x for any x.
func Rem(left, right value.Value) (value.Value, error) {
	lnum := value.ToNumber(left)
	rnum := value.ToNumber(right)
	if lnum == 0 {
		return value.Null(), nil
	}
	return value.Number(math.Mod(lnum, rnum))
}
