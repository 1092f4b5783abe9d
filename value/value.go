// Package value implements the dynamic value model shared by the evaluator,
// the operator library and host code: a tagged union over the six JSON-shaped
// kinds (null, bool, number, string, array, object) plus the coercion rules
// between them.
//
// Numbers are IEEE-754 doubles that are never NaN. Any operation that would
// produce a NaN number must surface it as an error instead; ±Infinity are
// representable.
package value

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is one dynamic value. The zero Value is Null.
//
// Values are immutable by convention: operations always produce fresh values
// and the evaluator clones on every environment read.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric value, rejecting NaN.
func Number(f float64) (Value, error) {
	if math.IsNaN(f) {
		return Value{}, errors.Errorf("Invalid float number: %v", f)
	}
	return Value{kind: KindNumber, n: f}, nil
}

// Int returns a numeric value from an integer. It cannot fail.
func Int(i int64) Value {
	return Value{kind: KindNumber, n: float64(i)}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Array returns an array value holding the given elements.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload. Valid only for KindBool.
func (v Value) Bool() bool {
	return v.b
}

// Float returns the numeric payload. Valid only for KindNumber.
func (v Value) Float() float64 {
	return v.n
}

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string {
	return v.s
}

// Elems returns the element slice of an array value. Callers must not
// mutate it.
func (v Value) Elems() []Value {
	return v.arr
}

// Obj returns the object payload. Valid only for KindObject.
func (v Value) Obj() *Object {
	return v.obj
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		elems := make([]Value, len(v.arr))
		for i, e := range v.arr {
			elems[i] = e.Clone()
		}
		return Value{kind: KindArray, arr: elems}
	case KindObject:
		return Value{kind: KindObject, obj: v.obj.Clone()}
	default:
		return v
	}
}

// Equal reports deep equality of two values. Two numbers are equal under
// floating-point equality, so 0 and -0 compare equal. Object comparison
// ignores insertion order.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindNumber:
		return v.n == w.n
	case KindString:
		return v.s == w.s
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != w.obj.Len() {
			return false
		}
		for _, k := range v.obj.Keys() {
			wv, ok := w.obj.Get(k)
			if !ok {
				return false
			}
			vv, _ := v.obj.Get(k)
			if !vv.Equal(wv) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value as JSON text, extended with bare Infinity and
// -Infinity tokens for the two non-finite numbers.
func (v Value) String() string {
	return string(v.appendJSON(nil))
}

// MarshalJSON implements json.Marshaler. The output is standard JSON except
// for the Infinity extension described on String.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil), nil
}

func (v Value) appendJSON(buf []byte) []byte {
	switch v.kind {
	case KindNull:
		return append(buf, "null"...)
	case KindBool:
		if v.b {
			return append(buf, "true"...)
		}
		return append(buf, "false"...)
	case KindNumber:
		return append(buf, FormatNumber(v.n)...)
	case KindString:
		return appendQuoted(buf, v.s)
	case KindArray:
		buf = append(buf, '[')
		for i, e := range v.arr {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = e.appendJSON(buf)
		}
		return append(buf, ']')
	case KindObject:
		buf = append(buf, '{')
		for i, k := range v.obj.Keys() {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendQuoted(buf, k)
			buf = append(buf, ':')
			e, _ := v.obj.Get(k)
			buf = e.appendJSON(buf)
		}
		return append(buf, '}')
	}
	return buf
}

func appendQuoted(buf []byte, s string) []byte {
	quoted, err := json.Marshal(s)
	if err != nil {
		// Marshaling a string cannot fail.
		panic(err)
	}
	return append(buf, quoted...)
}
