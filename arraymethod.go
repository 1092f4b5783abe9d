//go:build !jsexpr_noarray

package jsexpr

import (
	"strings"

	"github.com/pkg/errors"

	"jsexpr/value"
)

func init() {
	arrayMethodFn = evalArrayMethod
}

func evalArrayMethod(recv []value.Value, name string, args []value.Value) (value.Value, error) {
	switch name {
	case "join":
		return arrayJoin(recv, args)
	default:
		return value.Value{}, errors.Errorf("Unknown array method: %s", name)
	}
}

// arrayJoin joins the string elements of the receiver with a delimiter.
// Elements of any other kind are skipped.
func arrayJoin(recv []value.Value, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, errors.New("join method requires 1 argument")
	}
	delimiter, err := stringArg(args, 0)
	if err != nil {
		return value.Value{}, err
	}
	var parts []string
	for _, v := range recv {
		if v.Kind() == value.KindString {
			parts = append(parts, v.Str())
		}
	}
	return value.String(strings.Join(parts, delimiter)), nil
}
