// Package jsexpr is an embeddable evaluator for a strict subset of
// JavaScript expressions. The host supplies an Env of named variables and
// host callables, then asks for the value of a textual expression; the
// result is a dynamic JSON-shaped value with the coercion and operator
// semantics of the host scripting language.
//
// Evaluation is a pure synchronous computation: no goroutines, no I/O, no
// mutable global state. Deeply nested expressions recurse correspondingly
// deep; the practical limit is the goroutine stack.
package jsexpr

import (
	stderrors "errors"
	"strings"

	"github.com/pkg/errors"

	"jsexpr/internal/lexer"
	"jsexpr/internal/op"
	"jsexpr/internal/parser"
	"jsexpr/value"
)

// Optional feature bundles install their dispatch hooks here from init in
// their build-tag-gated files. A nil hook means the bundle was compiled
// out; only dispatch changes, never core semantics.
var (
	stringMethodFn    func(recv, name string, args []value.Value) (value.Value, error)
	arrayMethodFn     func(recv []value.Value, name string, args []value.Value) (value.Value, error)
	mathFunctionFn    func(name string, args []value.Value) (value.Value, error)
	semverConstructFn func(args []value.Value) (value.Value, error)
	semverCompareFn   func(operator string, left, right value.Value) (value.Value, bool, error)
)

// Evaluator evaluates expressions against a fixed binding environment.
type Evaluator struct {
	env Env
}

// New constructs an evaluator over a prepared environment. The evaluator
// only ever reads the environment.
func New(env Env) *Evaluator {
	return &Evaluator{env: env}
}

// Evaluate parses and evaluates one expression. A program with zero
// statements falls back to its first directive string, so a lone quoted
// string is a valid program yielding that string.
func (e *Evaluator) Evaluate(expression string) (value.Value, error) {
	scanner := lexer.NewScanner(expression)
	tokens := scanner.ScanTokens()
	p := parser.NewParser(tokens)
	program := p.Parse()

	diags := append(scanner.Errors, p.Errors...)
	if len(diags) > 0 {
		msgs := make([]string, len(diags))
		for i, d := range diags {
			msgs[i] = d.Error()
		}
		return value.Value{}, errors.Errorf("Parsing error: %s", strings.Join(msgs, "; "))
	}

	if len(program.Body) == 0 {
		if len(program.Directives) > 0 {
			return value.String(program.Directives[0]), nil
		}
		return value.Value{}, errors.New("No statements found")
	}
	switch stmt := program.Body[0].(type) {
	case *parser.ExprStmt:
		return e.evalExpr(stmt.Expr)
	default:
		return value.Value{}, errors.Errorf("Unsupported statement: %T", stmt)
	}
}

func (e *Evaluator) evalExpr(expr parser.Expr) (value.Value, error) {
	switch n := expr.(type) {
	case *parser.BoolLit:
		return value.Bool(n.Value), nil
	case *parser.NullLit:
		return value.Null(), nil
	case *parser.NumberLit:
		return value.Number(n.Value)
	case *parser.StringLit:
		return value.String(n.Value), nil
	case *parser.Ident:
		return e.lookup(n.Name)
	case *parser.ArrayLit:
		return e.evalArray(n)
	case *parser.ObjectLit:
		return e.evalObject(n)
	case *parser.Binary:
		return e.evalBinary(n)
	case *parser.Logical:
		return e.evalLogical(n)
	case *parser.Conditional:
		return e.evalConditional(n)
	case *parser.Unary:
		return e.evalUnary(n)
	case *parser.Member:
		return e.evalMember(n)
	case *parser.Call:
		return e.evalCall(n)
	case *parser.Chain:
		return e.evalExpr(n.Expr)
	case *parser.Index:
		return value.Value{}, errors.New("Unsupported expression: computed member access")
	default:
		return value.Value{}, errors.Errorf("Unsupported expression: %T", expr)
	}
}

func (e *Evaluator) lookup(name string) (value.Value, error) {
	if vb, ok := e.env[name].(variableBinding); ok {
		return vb.v.Clone(), nil
	}
	return value.Value{}, &VariableNotFoundError{Name: name}
}

func (e *Evaluator) evalArray(n *parser.ArrayLit) (value.Value, error) {
	elems := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := e.evalExpr(el)
		if err != nil {
			return value.Value{}, err
		}
		elems[i] = v
	}
	return value.Array(elems...), nil
}

// evalObject evaluates each property key, coerces the key value to its JSON
// text form unless it already is a string, then evaluates the property
// value. Later duplicate keys overwrite earlier ones.
func (e *Evaluator) evalObject(n *parser.ObjectLit) (value.Value, error) {
	obj := value.NewObject()
	for _, prop := range n.Properties {
		keyVal, err := e.evalExpr(prop.Key)
		if err != nil {
			return value.Value{}, err
		}
		key := keyVal.Str()
		if keyVal.Kind() != value.KindString {
			key = keyVal.String()
		}
		v, err := e.evalExpr(prop.Value)
		if err != nil {
			return value.Value{}, err
		}
		obj.Set(key, v)
	}
	return obj.Value(), nil
}

func (e *Evaluator) evalBinary(n *parser.Binary) (value.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return value.Value{}, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return value.Value{}, err
	}

	// When both operands deserialize as semver wrappers the comparison is
	// a precedence comparison instead of the operator dispatch below.
	if semverCompareFn != nil {
		if result, ok, err := semverCompareFn(n.Op, left, right); ok {
			return result, err
		}
	}

	switch n.Op {
	case "==":
		return value.Bool(op.Equality(left, right, false)), nil
	case "!=":
		return value.Bool(!op.Equality(left, right, false)), nil
	case "===":
		return value.Bool(op.Equality(left, right, true)), nil
	case "!==":
		return value.Bool(!op.Equality(left, right, true)), nil
	case "<":
		return value.Bool(op.Compare(left, right, func(l, r string) bool { return l < r })), nil
	case "<=":
		return value.Bool(op.Compare(left, right, func(l, r string) bool { return l <= r })), nil
	case ">":
		return value.Bool(op.Compare(left, right, func(l, r string) bool { return l > r })), nil
	case ">=":
		return value.Bool(op.Compare(left, right, func(l, r string) bool { return l >= r })), nil
	case "+":
		return op.Add(left, right)
	case "-":
		return op.Sub(left, right)
	case "*":
		return op.Mul(left, right)
	case "/":
		return op.Div(left, right)
	case "%":
		return op.Rem(left, right)
	case "**":
		return op.Pow(left, right)
	case "<<":
		return op.Bitwise(left, right, func(l, r int32) int32 { return l << uint32(r&0x1F) })
	case ">>":
		return op.Bitwise(left, right, func(l, r int32) int32 { return l >> uint32(r&0x1F) })
	case ">>>":
		return op.UnsignedRightShift(left, right)
	case "|":
		return op.Bitwise(left, right, func(l, r int32) int32 { return l | r })
	case "^":
		return op.Bitwise(left, right, func(l, r int32) int32 { return l ^ r })
	case "&":
		return op.Bitwise(left, right, func(l, r int32) int32 { return l & r })
	default:
		return value.Value{}, errors.Errorf("Unsupported binary operator: %s", n.Op)
	}
}

// evalLogical combines the operands after evaluating both; the language's
// logical operators are not lazy here, matching the source behavior.
func (e *Evaluator) evalLogical(n *parser.Logical) (value.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return value.Value{}, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return value.Value{}, err
	}
	switch n.Op {
	case "&&":
		return value.Bool(value.ToBool(left) && value.ToBool(right)), nil
	case "??":
		if left.IsNull() {
			return right, nil
		}
		return left, nil
	case "||":
		if value.ToBool(left) {
			return left, nil
		}
		return right, nil
	default:
		return value.Value{}, errors.Errorf("Unsupported logical operator: %s", n.Op)
	}
}

func (e *Evaluator) evalConditional(n *parser.Conditional) (value.Value, error) {
	test, err := e.evalExpr(n.Test)
	if err != nil {
		return value.Value{}, err
	}
	if value.ToBool(test) {
		return e.evalExpr(n.Consequent)
	}
	return e.evalExpr(n.Alternate)
}

func (e *Evaluator) evalUnary(n *parser.Unary) (value.Value, error) {
	operand, err := e.evalExpr(n.Operand)
	if err != nil {
		return value.Value{}, err
	}
	switch n.Op {
	case "+":
		return op.UnaryPlus(operand)
	case "-":
		return op.UnaryNegation(operand)
	case "~":
		return op.BitwiseNot(operand)
	case "!":
		return value.Bool(!value.ToBool(operand)), nil
	default:
		return value.Value{}, errors.Errorf("Unsupported UnaryOperator %s", n.Op)
	}
}

// evalMember resolves a static member access. On object receivers a missing
// key is an error unless the access is optional; on every other receiver
// the access short-circuits to the receiver itself, which is what lets
// method-call syntax like s.trim() reach the dispatch in evalCall. An
// optional access additionally swallows a missing variable underneath it.
func (e *Evaluator) evalMember(n *parser.Member) (value.Value, error) {
	obj, err := e.evalExpr(n.Object)
	if err != nil {
		var missing *VariableNotFoundError
		if n.Optional && stderrors.As(err, &missing) {
			return value.Null(), nil
		}
		return value.Value{}, err
	}
	if obj.Kind() == value.KindObject {
		if v, ok := obj.Obj().Get(n.Property); ok {
			return v.Clone(), nil
		}
		if n.Optional {
			return value.Null(), nil
		}
		return value.Value{}, &PropertyNotFoundError{Object: obj.String(), Property: n.Property}
	}
	return obj, nil
}
