package jsexpr

import (
	"github.com/pkg/errors"

	"jsexpr/internal/parser"
	"jsexpr/value"
)

// evalCall evaluates every argument left-to-right and then dispatches on
// the callee shape. An identifier callee resolves, in order: the semver
// constructor, a host callable, and finally free-form method dispatch with
// the first argument as the implicit receiver. Any other callee expression
// is evaluated and dispatched as a method on its value, keyed by the
// property name recovered from the member syntax.
func (e *Evaluator) evalCall(n *parser.Call) (value.Value, error) {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}

	if ident, ok := n.Callee.(*parser.Ident); ok {
		return e.callByName(ident.Name, args)
	}

	callee, err := e.evalExpr(n.Callee)
	if err != nil {
		return value.Value{}, err
	}
	name := calleeName(n.Callee)
	switch callee.Kind() {
	case value.KindString:
		if stringMethodFn == nil {
			return value.Value{}, errors.Errorf("'string' feature is not enabled. callee: %s", callee)
		}
		return stringMethodFn(callee.Str(), name, args)
	case value.KindArray:
		if arrayMethodFn == nil {
			return value.Value{}, errors.Errorf("'array' feature is not enabled. callee: %s", callee)
		}
		return arrayMethodFn(callee.Elems(), name, args)
	default:
		return value.Value{}, errors.Errorf("Unsupported method for %s", callee)
	}
}

func (e *Evaluator) callByName(name string, args []value.Value) (value.Value, error) {
	if semverConstructFn != nil && name == "semver" {
		return semverConstructFn(args)
	}
	if cb, ok := e.env[name].(callableBinding); ok {
		return cb.fn(args), nil
	}

	// Free-form method dispatch: the first argument is the receiver, the
	// rest are the method arguments. The dispatch cascade is resolved by
	// the receiver's kind, not by method name.
	if len(args) > 0 {
		switch args[0].Kind() {
		case value.KindString:
			if stringMethodFn != nil {
				if result, err := stringMethodFn(args[0].Str(), name, args[1:]); err == nil {
					return result, nil
				}
				if mathFunctionFn != nil {
					if result, err := mathFunctionFn(name, args); err == nil {
						return result, nil
					}
				}
				return value.Value{}, errors.Errorf("%q not found in function context", name)
			}
		case value.KindArray:
			if arrayMethodFn != nil {
				if result, err := arrayMethodFn(args[0].Elems(), name, args[1:]); err == nil {
					return result, nil
				}
				return value.Value{}, errors.Errorf("%q not found in function context", name)
			}
		case value.KindNumber:
			if mathFunctionFn != nil {
				return mathFunctionFn(name, args)
			}
		}
	}
	return value.Value{}, errors.Errorf("%q not found in function context", name)
}

// calleeName recovers the syntactic property name of a method-style callee.
func calleeName(callee parser.Expr) string {
	switch n := callee.(type) {
	case *parser.Member:
		return n.Property
	case *parser.Chain:
		return calleeName(n.Expr)
	default:
		return ""
	}
}
