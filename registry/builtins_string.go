package registry

import (
	"strings"

	"kmt/value"
)

func init() {
	MustRegister("toLower", []value.Kind{value.KindStr}, value.KindStr, func(a []value.Value) (value.Value, error) {
		s, _ := a[0].Str()
		return value.Str(strings.ToLower(s)), nil
	})
	MustRegister("toUpper", []value.Kind{value.KindStr}, value.KindStr, func(a []value.Value) (value.Value, error) {
		s, _ := a[0].Str()
		return value.Str(strings.ToUpper(s)), nil
	})

	// "concatenate" is spelled out in the spec as being literally the
	// same mangled entry as add_ss — string addition is concatenation,
	// there is no separate "concatenate_ss" key.
	MustRegister("add", []value.Kind{value.KindStr, value.KindStr}, value.KindStr, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Str()
		y, _ := a[1].Str()
		return value.Str(x + y), nil
	})

	MustRegister("contains", []value.Kind{value.KindStr, value.KindStr}, value.KindBool, func(a []value.Value) (value.Value, error) {
		s, _ := a[0].Str()
		sub, _ := a[1].Str()
		return value.Bool(strings.Contains(s, sub)), nil
	})
	MustRegister("containsAnyOf", []value.Kind{value.KindStr, value.KindStr}, value.KindBool, func(a []value.Value) (value.Value, error) {
		s, _ := a[0].Str()
		chars, _ := a[1].Str()
		return value.Bool(strings.ContainsAny(s, chars)), nil
	})
	MustRegister("length", []value.Kind{value.KindStr}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		s, _ := a[0].Str()
		return value.Int32(int32(len(s))), nil
	})
	MustRegister("countChar", []value.Kind{value.KindStr, value.KindStr}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		s, _ := a[0].Str()
		ch, _ := a[1].Str()
		if ch == "" {
			return value.Int32(0), nil
		}
		return value.Int32(int32(strings.Count(s, ch[:1]))), nil
	})
}
