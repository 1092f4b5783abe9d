package value

import (
	"math"
	"strconv"
	"strings"
)

// ObjectString is the primitive form of every object value.
const ObjectString = "[object Object]"

// ToPrimitive reduces compound values for the addition operator: objects
// become "[object Object]", arrays become their comma-joined flat string.
// Everything else passes through unchanged.
func ToPrimitive(v Value) Value {
	switch v.kind {
	case KindObject:
		return String(ObjectString)
	case KindArray:
		return String(JoinFlat(v.arr))
	default:
		return v
	}
}

// JoinFlat produces the comma-joined concatenation of each element's flat
// string form. Nested arrays flatten recursively with no added brackets.
func JoinFlat(xs []Value) string {
	parts := make([]string, len(xs))
	for i, v := range xs {
		switch v.kind {
		case KindNull:
			parts[i] = ""
		case KindBool:
			parts[i] = strconv.FormatBool(v.b)
		case KindNumber:
			parts[i] = FormatNumber(v.n)
		case KindString:
			parts[i] = v.s
		case KindArray:
			parts[i] = JoinFlat(v.arr)
		case KindObject:
			parts[i] = ObjectString
		}
	}
	return strings.Join(parts, ",")
}

// ToString is the full string coercion.
func ToString(v Value) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return FormatNumber(v.n)
	case KindString:
		return v.s
	case KindArray:
		return JoinFlat(v.arr)
	default:
		return ObjectString
	}
}

// ToNumber is the full numeric coercion. It is total: unparseable strings
// and non-numeric arrays coerce to 0. Objects coerce to NaN, the only NaN
// source in the model; operators that would then construct a NaN number
// surface the construction error instead.
func ToNumber(v Value) float64 {
	switch v.kind {
	case KindNull:
		return 0
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindNumber:
		return v.n
	case KindString:
		f, ok := ParseNumber(v.s)
		if !ok {
			return 0
		}
		return f
	case KindArray:
		f, ok := ArrayToNumber(v.arr)
		if !ok {
			return 0
		}
		return f
	default:
		return math.NaN()
	}
}

// ArrayToNumber applies the unary-plus rule to an array: empty yields 0, a
// single element unwraps recursively, anything longer is not numeric.
// ok is false when the outcome is the "NaN" string rather than a number.
func ArrayToNumber(xs []Value) (float64, bool) {
	if len(xs) == 0 {
		return 0, true
	}
	if len(xs) > 1 {
		return 0, false
	}
	first := xs[0]
	switch first.kind {
	case KindNull:
		return 0, true
	case KindBool:
		if first.b {
			return 1, true
		}
		return 0, true
	case KindNumber:
		return first.n, true
	case KindObject:
		return 0, true
	case KindString:
		f, ok := ParseNumber(first.s)
		if !ok {
			return 0, false
		}
		return f, true
	default:
		return ArrayToNumber(first.arr)
	}
}

// ToBool is the truthiness rule: null is false, numbers are true when
// nonzero, strings and arrays when nonempty, objects always.
func ToBool(v Value) bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindNumber:
		return v.n != 0
	case KindString:
		return v.s != ""
	case KindArray:
		return len(v.arr) > 0
	default:
		return true
	}
}

// ParseNumber parses a string as a decimal floating-point number.
func ParseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FormatNumber renders a double the way the language does: integral values
// with no decimal point (negative zero renders as "0"), everything else in
// shortest round-trip form, and the two infinities spelled out.
func FormatNumber(f float64) string {
	switch {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}
