package jsexpr

import (
	"jsexpr/value"
)

// HostFunc is an externally supplied function registered in the
// environment. The host is responsible for arity and type validation; the
// evaluator calls it as-is and does not wrap anything it does.
type HostFunc func(args []value.Value) value.Value

// Binding is one named entry of the environment: either a variable or a
// host callable.
type Binding interface {
	binding()
}

type variableBinding struct {
	v value.Value
}

type callableBinding struct {
	fn HostFunc
}

func (variableBinding) binding() {}
func (callableBinding) binding() {}

// Var binds a value under a name.
func Var(v value.Value) Binding {
	return variableBinding{v: v}
}

// Fn binds a host callable under a name.
func Fn(fn HostFunc) Binding {
	return callableBinding{fn: fn}
}

// Env is the binding environment consulted during evaluation. It is built
// by the host before evaluation and must not be mutated while evaluations
// are running; with that guarantee a single Env may serve any number of
// concurrent evaluations.
type Env map[string]Binding
