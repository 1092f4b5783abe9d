//go:build !jsexpr_nomath

package jsexpr

import (
	"math"

	"github.com/pkg/errors"

	"jsexpr/internal/op"
	"jsexpr/value"
)

func init() {
	mathFunctionFn = evalMathFunction
}

// evalMathFunction dispatches scalar math on the first argument as the
// receiver. One total argument selects the unary table, two the binary
// table.
func evalMathFunction(name string, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Value{}, errors.Errorf("%q not found in function context", name)
	}
	receiver := args[0]
	rest := args[1:]
	switch len(rest) {
	case 0:
		return mathUnary(name, receiver)
	case 1:
		return mathBinary(name, receiver, rest[0])
	default:
		return value.Value{}, errors.Errorf("%q not found in function context", name)
	}
}

func mathUnary(name string, v value.Value) (value.Value, error) {
	switch name {
	case "floor":
		return unaryFunction(v, math.Floor)
	case "ceil":
		return unaryFunction(v, math.Ceil)
	case "round":
		return unaryFunction(v, math.Round)
	case "sin":
		return unaryFunction(v, math.Sin)
	case "cos":
		return unaryFunction(v, math.Cos)
	case "tan":
		return unaryFunction(v, math.Tan)
	case "asin":
		return unaryFunction(v, math.Asin)
	case "acos":
		return unaryFunction(v, math.Acos)
	case "atan":
		return unaryFunction(v, math.Atan)
	case "sqrt":
		return unaryFunction(v, math.Sqrt)
	case "abs":
		return unaryFunction(v, math.Abs)
	case "clamp":
		return unaryFunction(v, clamp01)
	case "bitwiseNot":
		return op.BitwiseNot(v)
	default:
		return value.Value{}, errors.Errorf("%q not found in function context", name)
	}
}

func mathBinary(name string, first, second value.Value) (value.Value, error) {
	switch name {
	case "atan2":
		return binaryFunction(first, second, math.Atan2)
	case "min":
		return binaryFunction(first, second, math.Min)
	case "max":
		return binaryFunction(first, second, math.Max)
	case "mod":
		return op.Rem(first, second)
	case "pow":
		return binaryFunction(first, second, math.Pow)
	case "bitwiseAnd":
		return op.Bitwise(first, second, func(l, r int32) int32 { return l & r })
	case "bitwiseOr":
		return op.Bitwise(first, second, func(l, r int32) int32 { return l | r })
	case "bitwiseLeft":
		return op.Bitwise(first, second, func(l, r int32) int32 { return l << uint32(r&0x1F) })
	case "bitwiseRight":
		return op.Bitwise(first, second, func(l, r int32) int32 { return l >> uint32(r&0x1F) })
	default:
		return value.Value{}, errors.Errorf("%q not found in function context", name)
	}
}

func unaryFunction(v value.Value, f func(float64) float64) (value.Value, error) {
	return value.Number(f(value.ToNumber(v)))
}

func binaryFunction(first, second value.Value, f func(float64, float64) float64) (value.Value, error) {
	return value.Number(f(value.ToNumber(first), value.ToNumber(second)))
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
