//go:build !jsexpr_nomath && !jsexpr_nostring

package jsexpr

import (
	"testing"

	"github.com/go-quicktest/qt"

	"jsexpr/value"
)

func mathEnv(t *testing.T) Env {
	t.Helper()
	b, err := value.Number(-12.3)
	if err != nil {
		t.Fatal(err)
	}
	return Env{
		"a": Var(value.String("Hello World!")),
		"b": Var(b),
	}
}

func TestMathUnaryFunctions(t *testing.T) {
	env := mathEnv(t)
	tests := []struct {
		expression string
		want       string
	}{
		// A numeric string receiver reaches the math table through the
		// string-method fallback.
		{"floor('-12.3')", "-13"},
		{"ceil(b)", "-12"},
		{"round(b)", "-12"},
		{"sin(90)", "0.893996663600558"},
		{"cos(90)", "-0.4480736161291701"},
		{"tan(90)", "-1.995200412208242"},
		{"asin(1)", "1.5707963267948966"},
		{"acos(0)", "1.5707963267948966"},
		{"atan(1)", "0.7853981633974483"},
		{"sqrt(64)", "8"},
		{"abs(b)", "12.3"},
		{"clamp(b)", "0"},
		{"clamp(0.5)", "0.5"},
		{"clamp(7)", "1"},
		{"bitwiseNot(b)", "11"},
	}
	for _, tt := range tests {
		qt.Assert(t, qt.Equals(evalJSON(t, env, tt.expression), tt.want),
			qt.Commentf("expression: %s", tt.expression))
	}
}

func TestMathBinaryFunctions(t *testing.T) {
	env := mathEnv(t)
	tests := []struct {
		expression string
		want       string
	}{
		{"atan2(1, 1)", "0.7853981633974483"},
		{"min(3, 5)", "3"},
		{"max(3, 5)", "5"},
		{"mod(7, 3)", "1"},
		{"mod(0, 3)", "null"},
		{"pow(2, 10)", "1024"},
		{"bitwiseAnd(6, 3)", "2"},
		{"bitwiseOr(6, 3)", "7"},
		{"bitwiseLeft(1, 5)", "32"},
		{"bitwiseRight(-8, 1)", "-4"},
	}
	for _, tt := range tests {
		qt.Assert(t, qt.Equals(evalJSON(t, env, tt.expression), tt.want),
			qt.Commentf("expression: %s", tt.expression))
	}
}

func TestMathFunctionErrors(t *testing.T) {
	env := mathEnv(t)
	_, err := New(env).Evaluate("frobnicate(1)")
	qt.Assert(t, qt.ErrorMatches(err, `"frobnicate" not found in function context`))

	_, err = New(env).Evaluate("floor(1, 2, 3)")
	qt.Assert(t, qt.ErrorMatches(err, `"floor" not found in function context`))

	// sqrt of a negative number would be NaN, which is unrepresentable.
	_, err = New(env).Evaluate("sqrt(-1)")
	qt.Assert(t, qt.ErrorMatches(err, "Invalid float number: NaN"))
}
