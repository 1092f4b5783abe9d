package op

import (
	"jsexpr/value"
)

// UnaryPlus applies the unary plus operator. Strings that do not parse as
// numbers yield the string "NaN", and so do arrays with more than one
// element; an empty array is 0, a single-element array unwraps recursively.
func UnaryPlus(v value.Value) (value.Value, error) {
	switch v.Kind() {
	case value.KindArray:
		f, ok := value.ArrayToNumber(v.Elems())
		if !ok {
			return value.String("NaN"), nil
		}
		return value.Number(f)
	case value.KindBool:
		if v.Bool() {
			return value.Int(1), nil
		}
		return value.Int(0), nil
	case value.KindNull:
		return value.Int(0), nil
	case value.KindNumber:
		return v, nil
	case value.KindObject:
		return value.Int(0), nil
	default:
		f, ok := value.ParseNumber(v.Str())
		if !ok {
			return value.String("NaN"), nil
		}
		return value.Number(f)
	}
}

// UnaryNegation computes unary plus and negates a numeric result; any other
// result becomes null.
func UnaryNegation(v value.Value) (value.Value, error) {
	plus, err := UnaryPlus(v)
	if err != nil {
		return value.Value{}, err
	}
	if plus.Kind() != value.KindNumber {
		return value.Null(), nil
	}
	return value.Number(-plus.Float())
}

// BitwiseNot coerces to a signed 64-bit integer and complements it.
func BitwiseNot(v value.Value) (value.Value, error) {
	n := toInt64(value.ToNumber(v))
	return value.Number(float64(^n))
}
