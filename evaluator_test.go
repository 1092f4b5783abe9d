package jsexpr

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"jsexpr/value"
)

// testEnv mirrors the environment used throughout the suite: a couple of
// variables plus a host callable that multiplies by ten.
func testEnv(t *testing.T) Env {
	t.Helper()
	inner := value.NewObject()
	inner.Set("a", value.Int(32))
	outer := value.NewObject()
	outer.Set("b", inner.Value())

	return Env{
		"a": Var(value.Int(24)),
		"b": Var(value.String("24")),
		"c": Var(outer.Value()),
		"mul": Fn(func(args []value.Value) value.Value {
			v, err := value.Number(args[0].Float() * 10)
			if err != nil {
				t.Fatalf("mul: %v", err)
			}
			return v
		}),
	}
}

func eval(t *testing.T, env Env, expression string) value.Value {
	t.Helper()
	result, err := New(env).Evaluate(expression)
	if err != nil {
		t.Fatalf("Evaluate(%q): %v", expression, err)
	}
	return result
}

// evalJSON evaluates and renders the result as JSON text for compact
// comparisons.
func evalJSON(t *testing.T, env Env, expression string) string {
	t.Helper()
	return eval(t, env, expression).String()
}

func TestScenarios(t *testing.T) {
	env := testEnv(t)
	tests := []struct {
		expression string
		want       string
	}{
		{"a + mul(2)", "44"},
		{`"b"+"a"+ +"a"+"a"`, `"baNaNa"`},
		{`["t"] < ["abacv"]`, "false"},
		{`["abacv"] < ["t"]`, "true"},
		{`["abacv"] > {1:{2:3},4:5}`, "true"},
		{"-5 >>> 1", "2147483645"},
		{`"-5" >>> 1`, "2147483645"},
		{`[["-5"]] >>> 1`, "2147483645"},
		{"c.b?.d", "null"},
		{"settings?.ok", "null"},
		{`+[[["2.5"]]]`, "2.5"},
		{`~"-1.2"`, "0"},
		{"(2 + 3) * a", "120"},
	}
	for _, tt := range tests {
		qt.Assert(t, qt.Equals(evalJSON(t, env, tt.expression), tt.want),
			qt.Commentf("expression: %s", tt.expression))
	}
}

func TestLiteralsAndCollections(t *testing.T) {
	env := testEnv(t)
	tests := []struct {
		expression string
		want       string
	}{
		{"null", "null"},
		{"true", "true"},
		{"24", "24"},
		{"2.5", "2.5"},
		{`"hi"`, `"hi"`},
		{"[1, 'x', null]", `[1,"x",null]`},
		{"{a: 1, 'b': 2}", `{"a":1,"b":2}`},
		// Non-string keys serialize to their JSON text form.
		{"{1: {2: 3}, 4: 5}", `{"1":{"2":3},"4":5}`},
		// Later duplicates overwrite.
		{"{a: 1, a: 2}", `{"a":2}`},
	}
	for _, tt := range tests {
		qt.Assert(t, qt.Equals(evalJSON(t, env, tt.expression), tt.want),
			qt.Commentf("expression: %s", tt.expression))
	}
}

func TestUnaryOperators(t *testing.T) {
	env := testEnv(t)
	tests := []struct {
		expression string
		want       string
	}{
		{"+[2.4]", "2.4"},
		{`+[["2.5"]]`, "2.5"},
		{`+"2.6"`, "2.6"},
		{"+a", "24"},
		{"+b", "24"},
		{"+true", "1"},
		{"+false", "0"},

		{"-[2]", "-2"},
		{"-[[[[[[4]]]]]]", "-4"},
		{`-[[[[[["4.5"]]]]]]`, "-4.5"},
		{`-"-1.2"`, "1.2"},
		{"-true", "-1"},
		{"-false", "0"},
		{"-null", "0"},

		{"~[2]", "-3"},
		{"~[[[[[[4]]]]]]", "-5"},
		{`~[[[[[["4.5"]]]]]]`, "-5"},
		{`~"-1.2"`, "0"},
		{"~true", "-2"},
		{"~false", "-1"},
		{"~null", "-1"},
		{`~"4444.2"`, "-4445"},
		{"~26.5", "-27"},

		{"!26.5", "false"},
		{"!0", "true"},
		{"!''", "true"},
	}
	for _, tt := range tests {
		qt.Assert(t, qt.Equals(evalJSON(t, env, tt.expression), tt.want),
			qt.Commentf("expression: %s", tt.expression))
	}
}

func TestBinaryOperators(t *testing.T) {
	env := testEnv(t)
	tests := []struct {
		expression string
		want       string
	}{
		{"1 + 2 * 3", "7"},
		{"2 ** 3 ** 2", "512"},
		{"7 % 3", "1"},
		{"0 % 5", "null"},
		{"0 / 0", "null"},
		{"5 / 0", "Infinity"},
		{"-5 / 0", "-Infinity"},
		{"6 & 3", "2"},
		{"6 | 3", "7"},
		{"6 ^ 3", "5"},
		{"1 << 5", "32"},
		{"-8 >> 1", "-4"},
		{"[2] + [3]", `"23"`},
		{"a == '24'", "true"},
		{"a === '24'", "false"},
		{"a != '24'", "false"},
		{"a !== '24'", "true"},
		// Numbers compare by their text renderings.
		{"10 < 9", "true"},
		{"a >= 24", "true"},
	}
	for _, tt := range tests {
		qt.Assert(t, qt.Equals(evalJSON(t, env, tt.expression), tt.want),
			qt.Commentf("expression: %s", tt.expression))
	}
}

func TestLogicalAndConditional(t *testing.T) {
	env := testEnv(t)
	tests := []struct {
		expression string
		want       string
	}{
		{"a == 24 ? 1 : 4", "1"},
		{"a == 25 ? 1 : 4", "4"},
		{"1 && 'x'", "true"},
		{"0 && 1", "false"},
		// || preserves the winning operand.
		{"'x' || 'y'", `"x"`},
		{"0 || 'y'", `"y"`},
		{"null ?? 'fallback'", `"fallback"`},
		{"0 ?? 'fallback'", "0"},
		{"'' ?? 'fallback'", `""`},
	}
	for _, tt := range tests {
		qt.Assert(t, qt.Equals(evalJSON(t, env, tt.expression), tt.want),
			qt.Commentf("expression: %s", tt.expression))
	}
}

func TestMemberAccess(t *testing.T) {
	env := testEnv(t)

	qt.Assert(t, qt.Equals(evalJSON(t, env, "c.b.a"), "32"))

	// Member access on a non-object returns the receiver itself.
	qt.Assert(t, qt.Equals(evalJSON(t, env, "a.anything"), "24"))

	_, err := New(env).Evaluate("c.missing")
	var propErr *PropertyNotFoundError
	qt.Assert(t, qt.IsTrue(errors.As(err, &propErr)))
	qt.Assert(t, qt.Equals(propErr.Property, "missing"))

	_, err = New(env).Evaluate("settings.ok")
	var varErr *VariableNotFoundError
	qt.Assert(t, qt.IsTrue(errors.As(err, &varErr)))
	qt.Assert(t, qt.Equals(varErr.Name, "settings"))
}

// Optional chains ending at a missing name or property always yield null,
// never an error.
func TestOptionalChains(t *testing.T) {
	env := testEnv(t)
	for _, expression := range []string{
		"c.b?.d",
		"settings?.ok",
		"settings?.ok?.deeper",
	} {
		qt.Assert(t, qt.Equals(evalJSON(t, env, expression), "null"),
			qt.Commentf("expression: %s", expression))
	}
}

func TestDirectiveFallback(t *testing.T) {
	env := Env{}
	qt.Assert(t, qt.Equals(evalJSON(t, env, "'hello'"), `"hello"`))
	qt.Assert(t, qt.Equals(evalJSON(t, env, `"1.0.0"`), `"1.0.0"`))
}

func TestHostCallables(t *testing.T) {
	env := testEnv(t)
	qt.Assert(t, qt.Equals(evalJSON(t, env, "mul(mul(2))"), "200"))

	// A host callable is not a variable.
	_, err := New(env).Evaluate("mul")
	var varErr *VariableNotFoundError
	qt.Assert(t, qt.IsTrue(errors.As(err, &varErr)))

	// Environment reads are clones: mutating a result must not leak back.
	first := eval(t, env, "c")
	first.Obj().Set("b", value.Null())
	qt.Assert(t, qt.Equals(evalJSON(t, env, "c.b.a"), "32"))
}

func TestErrors(t *testing.T) {
	env := testEnv(t)
	tests := []struct {
		expression string
		prefix     string
	}{
		{"1 +", "Parsing error:"},
		{"$ %% @", "Parsing error:"},
		{"", "No statements found"},
		{"a[0]", "Unsupported expression:"},
		{"nope(1, 2)", `"nope" not found in function context`},
		{"{} - 1", "Invalid float number:"},
		{"5 % 0", "Invalid float number:"},
	}
	for _, tt := range tests {
		_, err := New(env).Evaluate(tt.expression)
		if err == nil {
			t.Errorf("Evaluate(%q) succeeded", tt.expression)
			continue
		}
		if !strings.HasPrefix(err.Error(), tt.prefix) {
			t.Errorf("Evaluate(%q) = %q, want prefix %q", tt.expression, err, tt.prefix)
		}
	}
}

func TestStructuredResult(t *testing.T) {
	env := testEnv(t)

	inner := value.NewObject()
	inner.Set("2", value.Int(3))
	want := value.NewObject()
	want.Set("1", inner.Value())
	want.Set("4", value.Int(5))

	got := eval(t, env, "{1:{2:3},4:5}")
	if diff := cmp.Diff(want.Value(), got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	gotArr := eval(t, env, "[1, [2, 'x'], null]")
	wantArr := value.Array(value.Int(1), value.Array(value.Int(2), value.String("x")), value.Null())
	if diff := cmp.Diff(wantArr, gotArr); diff != "" {
		t.Errorf("array mismatch (-want +got):\n%s", diff)
	}
}

func TestInfinityRoundTrip(t *testing.T) {
	env := testEnv(t)
	result := eval(t, env, "1 / 0")
	qt.Assert(t, qt.IsTrue(math.IsInf(result.Float(), 1)))
	qt.Assert(t, qt.Equals(result.String(), "Infinity"))
}

// Sharing one environment across goroutines is safe as long as nobody
// mutates it.
func TestConcurrentEvaluations(t *testing.T) {
	env := testEnv(t)
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				result, err := New(env).Evaluate("a + mul(2)")
				if err == nil && result.Float() != 44 {
					err = errors.New("wrong result")
				}
				if err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}
