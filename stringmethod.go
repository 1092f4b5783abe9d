//go:build !jsexpr_nostring

package jsexpr

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"

	"jsexpr/value"
)

func init() {
	stringMethodFn = evalStringMethod
}

func evalStringMethod(recv, name string, args []value.Value) (value.Value, error) {
	method, ok := stringMethods[name]
	if !ok {
		return value.Value{}, errors.Errorf("Unknown string method: %s", name)
	}
	return method(recv, args)
}

var stringMethods = map[string]func(recv string, args []value.Value) (value.Value, error){
	"replace":      stringReplace,
	"contains":     stringContains,
	"split":        stringSplit,
	"indexOf":      stringIndexOf,
	"lastIndexOf":  stringLastIndexOf,
	"toUpperCase":  stringToUpperCase,
	"toLowerCase":  stringToLowerCase,
	"substring":    stringSubstring,
	"startsWith":   stringStartsWith,
	"endsWith":     stringEndsWith,
	"regexReplace": stringRegexReplace,
	"length":       stringLength,
	"trim":         stringTrim,
}

// stringReplace replaces every occurrence of a literal substring.
func stringReplace(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Value{}, errors.New("replace method requires 2 arguments")
	}
	from, err := stringArg(args, 0)
	if err != nil {
		return value.Value{}, err
	}
	to, err := stringArg(args, 1)
	if err != nil {
		return value.Value{}, err
	}
	return value.String(strings.ReplaceAll(recv, from, to)), nil
}

func stringContains(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, errors.New("contains method requires 1 argument")
	}
	substring, err := stringArg(args, 0)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(strings.Contains(recv, substring)), nil
}

// stringSplit splits on a delimiter; an empty delimiter splits into code
// points.
func stringSplit(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, errors.New("split method requires 1 argument")
	}
	delimiter, err := stringArg(args, 0)
	if err != nil {
		return value.Value{}, err
	}
	var parts []string
	if delimiter == "" {
		for _, r := range recv {
			parts = append(parts, string(r))
		}
	} else {
		parts = strings.Split(recv, delimiter)
	}
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.String(p)
	}
	return value.Array(elems...), nil
}

// stringIndexOf returns the byte index of the first occurrence, or -1.
func stringIndexOf(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, errors.New("indexOf method requires 1 argument")
	}
	substring, err := stringArg(args, 0)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(int64(strings.Index(recv, substring))), nil
}

func stringLastIndexOf(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, errors.New("lastIndexOf method requires 1 argument")
	}
	substring, err := stringArg(args, 0)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(int64(strings.LastIndex(recv, substring))), nil
}

func stringToUpperCase(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return value.Value{}, errors.New("toUpperCase method requires no arguments")
	}
	return value.String(strings.ToUpper(recv)), nil
}

func stringToLowerCase(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return value.Value{}, errors.New("toLowerCase method requires no arguments")
	}
	return value.String(strings.ToLower(recv)), nil
}

// stringSubstring slices by byte offsets; a missing end means the string
// length. Offsets outside the string or an end before the start are
// rejected. Offsets that land inside a multi-byte code point truncate
// bytewise.
func stringSubstring(recv string, args []value.Value) (value.Value, error) {
	start, err := numberArg(args, 0)
	if err != nil {
		return value.Value{}, err
	}
	end := len(recv)
	if len(args) == 2 {
		end, err = numberArg(args, 1)
		if err != nil {
			return value.Value{}, err
		}
	}
	if start < 0 || end > len(recv) || start > end {
		return value.Value{}, errors.Errorf("substring bounds [%d, %d) out of range", start, end)
	}
	return value.String(recv[start:end]), nil
}

func stringStartsWith(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, errors.New("startsWith method requires 1 argument")
	}
	prefix, err := stringArg(args, 0)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(strings.HasPrefix(recv, prefix)), nil
}

func stringEndsWith(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, errors.New("endsWith method requires 1 argument")
	}
	suffix, err := stringArg(args, 0)
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(strings.HasSuffix(recv, suffix)), nil
}

// stringRegexReplace replaces every match of a PCRE-flavored pattern.
func stringRegexReplace(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 2 {
		return value.Value{}, errors.New("regexReplace method requires 2 arguments")
	}
	pattern, err := stringArg(args, 0)
	if err != nil {
		return value.Value{}, err
	}
	replacement, err := stringArg(args, 1)
	if err != nil {
		return value.Value{}, err
	}
	re, err := regexp2.Compile(pattern, 0)
	if err != nil {
		return value.Value{}, errors.WithStack(err)
	}
	replaced, err := re.Replace(recv, replacement, -1, -1)
	if err != nil {
		return value.Value{}, errors.WithStack(err)
	}
	return value.String(replaced), nil
}

// stringLength counts Unicode scalar values, not bytes.
func stringLength(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return value.Value{}, errors.New("length method requires no arguments")
	}
	return value.Int(int64(utf8.RuneCountInString(recv))), nil
}

func stringTrim(recv string, args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return value.Value{}, errors.New("trim method requires no arguments")
	}
	return value.String(strings.TrimSpace(recv)), nil
}
