package jsexpr

import (
	"github.com/pkg/errors"

	"jsexpr/value"
)

// Positional argument accessors shared by the method bundles.

func stringArg(args []value.Value, index int) (string, error) {
	if index >= len(args) || args[index].Kind() != value.KindString {
		return "", errors.Errorf("Argument %d must be a string", index+1)
	}
	return args[index].Str(), nil
}

func numberArg(args []value.Value, index int) (int, error) {
	if index >= len(args) || args[index].Kind() != value.KindNumber {
		return 0, errors.Errorf("Argument %d must be a number", index+1)
	}
	return int(args[index].Float()), nil
}
