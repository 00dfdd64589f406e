package registry

import "kmt/value"

func init() {
	for _, k := range allKinds {
		registerComparisonFamily(k)
	}
}

var allKinds = []value.Kind{
	value.KindInt32, value.KindInt64, value.KindFloat32, value.KindFloat64,
	value.KindStr, value.KindBool, value.KindDate, value.KindDateTime,
}

// registerComparisonFamily wires isLess/isEqual/isGreater/isLessOrEqual/
// isGreaterOrEqual for a same-typed pair of arguments, using Value's own
// total order (Less/Equal/Greater), which already applies per-tag
// natural ordering (lexicographic for Str, IEEE for floats).
func registerComparisonFamily(k value.Kind) {
	types := []value.Kind{k, k}

	MustRegister("isLess", types, value.KindBool, func(a []value.Value) (value.Value, error) {
		return value.Bool(a[0].Less(a[1])), nil
	})
	MustRegister("isGreater", types, value.KindBool, func(a []value.Value) (value.Value, error) {
		return value.Bool(a[0].Greater(a[1])), nil
	})
	MustRegister("isEqual", types, value.KindBool, func(a []value.Value) (value.Value, error) {
		return value.Bool(a[0].Equal(a[1])), nil
	})
	MustRegister("isLessOrEqual", types, value.KindBool, func(a []value.Value) (value.Value, error) {
		return value.Bool(a[0].Less(a[1]) || a[0].Equal(a[1])), nil
	})
	MustRegister("isGreaterOrEqual", types, value.KindBool, func(a []value.Value) (value.Value, error) {
		return value.Bool(a[0].Greater(a[1]) || a[0].Equal(a[1])), nil
	})
}
