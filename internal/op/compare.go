package op

import (
	"jsexpr/value"
)

// Compare applies a relational operator expressed as a comparison on two
// strings. Numbers compare by their text renderings, which makes the
// comparison lexicographic on numeric text ("10" < "9" is true); that is a
// deliberate carry-over from the source system. Arrays compare by their
// flat-joined forms, and objects by the "[object Object]" literal. Every
// other kind combination is false.
func Compare(left, right value.Value, cmp func(l, r string) bool) bool {
	lk, rk := left.Kind(), right.Kind()
	switch {
	case lk == value.KindNumber && rk == value.KindNumber:
		return cmp(value.FormatNumber(left.Float()), value.FormatNumber(right.Float()))
	case lk == value.KindString && rk == value.KindString:
		return cmp(left.Str(), right.Str())
	case lk == value.KindNumber && rk == value.KindString:
		r, ok := value.ParseNumber(right.Str())
		if !ok {
			return false
		}
		return cmp(value.FormatNumber(left.Float()), value.FormatNumber(r))
	case lk == value.KindString && rk == value.KindNumber:
		l, ok := value.ParseNumber(left.Str())
		if !ok {
			return false
		}
		return cmp(value.FormatNumber(l), value.FormatNumber(right.Float()))
	case lk == value.KindArray && rk == value.KindArray:
		return cmp(value.JoinFlat(left.Elems()), value.JoinFlat(right.Elems()))
	case lk == value.KindArray && rk == value.KindObject:
		return cmp(value.JoinFlat(left.Elems()), value.ObjectString)
	case lk == value.KindObject && rk == value.KindArray:
		return cmp(value.ObjectString, value.JoinFlat(right.Elems()))
	default:
		return false
	}
}
