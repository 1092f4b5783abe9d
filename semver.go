//go:build !jsexpr_nosemver

package jsexpr

import (
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"

	"jsexpr/value"
)

func init() {
	semverConstructFn = semverFromValues
	semverCompareFn = semverCompare
}

// Semver values travel through the evaluator as {"version": "<normalized>"}
// wrapper objects, so they survive ordinary value plumbing and can be
// recognized again on either side of a binary operator.

func semverValue(v *semver.Version) value.Value {
	obj := value.NewObject()
	obj.Set("version", value.String(v.String()))
	return obj.Value()
}

// asSemver attempts to read a value back as a semver wrapper. The attempt
// is non-destructive: a failure leaves the operand to the normal operator
// dispatch.
func asSemver(v value.Value) (*semver.Version, bool) {
	if v.Kind() != value.KindObject {
		return nil, false
	}
	raw, ok := v.Obj().Get("version")
	if !ok || raw.Kind() != value.KindString {
		return nil, false
	}
	parsed, err := semver.StrictNewVersion(raw.Str())
	if err != nil {
		return nil, false
	}
	return parsed, true
}

func semverFromValues(args []value.Value) (value.Value, error) {
	switch len(args) {
	case 1:
		v, err := semverFromValue(args[0])
		if err != nil {
			return value.Value{}, err
		}
		return semverValue(v), nil
	case 3:
		v, err := newSemver(args[0], args[1], args[2])
		if err != nil {
			return value.Value{}, err
		}
		return semverValue(v), nil
	default:
		return value.Value{}, errors.New("semver requires either 1 or 3 args")
	}
}

func semverFromValue(v value.Value) (*semver.Version, error) {
	switch v.Kind() {
	case value.KindString:
		parsed, err := semver.StrictNewVersion(v.Str())
		return parsed, errors.WithStack(err)
	case value.KindArray:
		elems := v.Elems()
		if len(elems) != 3 {
			return nil, errors.New("array requires size of 3")
		}
		return newSemver(elems[0], elems[1], elems[2])
	case value.KindObject:
		obj := v.Obj()
		major, ok := obj.Get("major")
		if !ok {
			return nil, errors.New("Missing 'major' field")
		}
		minor, ok := obj.Get("minor")
		if !ok {
			return nil, errors.New("Missing 'minor' field")
		}
		patch, ok := obj.Get("patch")
		if !ok {
			return nil, errors.New("Missing 'patch' field")
		}
		return newSemver(major, minor, patch)
	default:
		return nil, errors.Errorf("unsupported value type for semver parser: %s", v)
	}
}

// newSemver builds a version from three components, each coerced
// numerically.
func newSemver(major, minor, patch value.Value) (*semver.Version, error) {
	return semver.New(
		component(major),
		component(minor),
		component(patch),
		"", "",
	), nil
}

func component(v value.Value) uint64 {
	f := value.ToNumber(v)
	if f != f || f < 0 {
		return 0
	}
	return uint64(f)
}

// semverCompare is the binary-operator shortcut: when both operands read
// back as semver wrappers the operator becomes a precedence comparison.
// The >= form deliberately mirrors the source system and tests
// strictly-greater.
func semverCompare(operator string, left, right value.Value) (value.Value, bool, error) {
	lv, ok := asSemver(left)
	if !ok {
		return value.Value{}, false, nil
	}
	rv, ok := asSemver(right)
	if !ok {
		return value.Value{}, false, nil
	}
	cmp := lv.Compare(rv)
	switch operator {
	case "==", "===":
		return value.Bool(cmp == 0), true, nil
	case "!=", "!==":
		return value.Bool(cmp != 0), true, nil
	case "<":
		return value.Bool(cmp < 0), true, nil
	case "<=":
		return value.Bool(cmp <= 0), true, nil
	case ">":
		return value.Bool(cmp > 0), true, nil
	case ">=":
		return value.Bool(cmp > 0), true, nil
	default:
		return value.Value{}, true, errors.Errorf("Unsupported binary operator for semver: %s", operator)
	}
}
