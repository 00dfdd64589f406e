package registry

import "kmt/value"

func init() {
	MustRegister("AND", []value.Kind{value.KindBool, value.KindBool}, value.KindBool, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Bool()
		y, _ := a[1].Bool()
		return value.Bool(x && y), nil
	})
	MustRegister("OR", []value.Kind{value.KindBool, value.KindBool}, value.KindBool, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Bool()
		y, _ := a[1].Bool()
		return value.Bool(x || y), nil
	})
	MustRegister("NOT", []value.Kind{value.KindBool}, value.KindBool, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Bool()
		return value.Bool(!x), nil
	})
	MustRegister("XOR", []value.Kind{value.KindBool, value.KindBool}, value.KindBool, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Bool()
		y, _ := a[1].Bool()
		return value.Bool(x != y), nil
	})

	for _, k := range allKinds {
		registerIf(k)
	}
}

// registerIf wires IF(cond, a, b) for a single payload type k, returning
// a or b depending on cond.
func registerIf(k value.Kind) {
	MustRegister("IF", []value.Kind{value.KindBool, k, k}, k, func(a []value.Value) (value.Value, error) {
		cond, _ := a[0].Bool()
		if cond {
			return a[1], nil
		}
		return a[2], nil
	})
}
