package registry

import (
	"math"

	"kmt/value"
)

func init() {
	registerIntArith()
	registerFloatArith()
	registerParityAndRange()
}

func registerIntArith() {
	MustRegister("add", []value.Kind{value.KindInt32, value.KindInt32}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		y, _ := a[1].Int32()
		return value.Int32(x + y), nil
	})
	MustRegister("add", []value.Kind{value.KindInt64, value.KindInt64}, value.KindInt64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		y, _ := a[1].Int64()
		return value.Int64(x + y), nil
	})
	MustRegister("sub", []value.Kind{value.KindInt32, value.KindInt32}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		y, _ := a[1].Int32()
		return value.Int32(x - y), nil
	})
	MustRegister("sub", []value.Kind{value.KindInt64, value.KindInt64}, value.KindInt64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		y, _ := a[1].Int64()
		return value.Int64(x - y), nil
	})
	MustRegister("mul", []value.Kind{value.KindInt32, value.KindInt32}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		y, _ := a[1].Int32()
		return value.Int32(x * y), nil
	})
	MustRegister("mul", []value.Kind{value.KindInt64, value.KindInt64}, value.KindInt64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		y, _ := a[1].Int64()
		return value.Int64(x * y), nil
	})

	// Integer div casts to the corresponding float width; divide by zero
	// yields zero rather than failing, per spec.
	MustRegister("div", []value.Kind{value.KindInt32, value.KindInt32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		y, _ := a[1].Int32()
		if y == 0 {
			return value.Float32(0), nil
		}
		return value.Float32(float32(x) / float32(y)), nil
	})
	MustRegister("div", []value.Kind{value.KindInt64, value.KindInt64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		y, _ := a[1].Int64()
		if y == 0 {
			return value.Float64(0), nil
		}
		return value.Float64(float64(x) / float64(y)), nil
	})

	MustRegister("mod", []value.Kind{value.KindInt32, value.KindInt32}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		y, _ := a[1].Int32()
		if y == 0 {
			return value.Int32(0), nil
		}
		return value.Int32(x % y), nil
	})
	MustRegister("mod", []value.Kind{value.KindInt64, value.KindInt64}, value.KindInt64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		y, _ := a[1].Int64()
		if y == 0 {
			return value.Int64(0), nil
		}
		return value.Int64(x % y), nil
	})

	MustRegister("abs", []value.Kind{value.KindInt32}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		if x < 0 {
			x = -x
		}
		return value.Int32(x), nil
	})
	MustRegister("abs", []value.Kind{value.KindInt64}, value.KindInt64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		if x < 0 {
			x = -x
		}
		return value.Int64(x), nil
	})
}

func registerFloatArith() {
	MustRegister("add", []value.Kind{value.KindFloat32, value.KindFloat32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		y, _ := a[1].Float32()
		return value.Float32(x + y), nil
	})
	MustRegister("add", []value.Kind{value.KindFloat64, value.KindFloat64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		y, _ := a[1].Float64()
		return value.Float64(x + y), nil
	})
	MustRegister("sub", []value.Kind{value.KindFloat32, value.KindFloat32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		y, _ := a[1].Float32()
		return value.Float32(x - y), nil
	})
	MustRegister("sub", []value.Kind{value.KindFloat64, value.KindFloat64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		y, _ := a[1].Float64()
		return value.Float64(x - y), nil
	})
	MustRegister("mul", []value.Kind{value.KindFloat32, value.KindFloat32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		y, _ := a[1].Float32()
		return value.Float32(x * y), nil
	})
	MustRegister("mul", []value.Kind{value.KindFloat64, value.KindFloat64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		y, _ := a[1].Float64()
		return value.Float64(x * y), nil
	})
	MustRegister("div", []value.Kind{value.KindFloat32, value.KindFloat32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		y, _ := a[1].Float32()
		if y == 0 {
			return value.Float32(0), nil
		}
		return value.Float32(x / y), nil
	})
	MustRegister("div", []value.Kind{value.KindFloat64, value.KindFloat64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		y, _ := a[1].Float64()
		if y == 0 {
			return value.Float64(0), nil
		}
		return value.Float64(x / y), nil
	})
	MustRegister("mod", []value.Kind{value.KindFloat32, value.KindFloat32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		y, _ := a[1].Float32()
		return value.Float32(float32(math.Mod(float64(x), float64(y)))), nil
	})
	MustRegister("mod", []value.Kind{value.KindFloat64, value.KindFloat64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		y, _ := a[1].Float64()
		return value.Float64(math.Mod(x, y)), nil
	})

	MustRegister("sqrt", []value.Kind{value.KindFloat32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		return value.Float32(float32(math.Sqrt(float64(x)))), nil
	})
	MustRegister("sqrt", []value.Kind{value.KindFloat64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		return value.Float64(math.Sqrt(x)), nil
	})
	MustRegister("pow", []value.Kind{value.KindFloat32, value.KindFloat32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		y, _ := a[1].Float32()
		return value.Float32(float32(math.Pow(float64(x), float64(y)))), nil
	})
	MustRegister("pow", []value.Kind{value.KindFloat64, value.KindFloat64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		y, _ := a[1].Float64()
		return value.Float64(math.Pow(x, y)), nil
	})
	MustRegister("floor", []value.Kind{value.KindFloat32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		return value.Float32(float32(math.Floor(float64(x)))), nil
	})
	MustRegister("floor", []value.Kind{value.KindFloat64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		return value.Float64(math.Floor(x)), nil
	})
	MustRegister("ceil", []value.Kind{value.KindFloat32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		return value.Float32(float32(math.Ceil(float64(x)))), nil
	})
	MustRegister("ceil", []value.Kind{value.KindFloat64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		return value.Float64(math.Ceil(x)), nil
	})
	MustRegister("abs", []value.Kind{value.KindFloat32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		return value.Float32(float32(math.Abs(float64(x)))), nil
	})
	MustRegister("abs", []value.Kind{value.KindFloat64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		return value.Float64(math.Abs(x)), nil
	})
}

func registerParityAndRange() {
	MustRegister("isOdd", []value.Kind{value.KindInt32}, value.KindBool, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		return value.Bool(x%2 != 0), nil
	})
	MustRegister("isOdd", []value.Kind{value.KindInt64}, value.KindBool, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		return value.Bool(x%2 != 0), nil
	})

	MustRegister("isInRange", []value.Kind{value.KindInt32, value.KindInt32, value.KindInt32}, value.KindBool, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		lo, _ := a[1].Int32()
		hi, _ := a[2].Int32()
		return value.Bool(x >= lo && x <= hi), nil
	})
	MustRegister("isInRange", []value.Kind{value.KindInt64, value.KindInt64, value.KindInt64}, value.KindBool, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		lo, _ := a[1].Int64()
		hi, _ := a[2].Int64()
		return value.Bool(x >= lo && x <= hi), nil
	})
	MustRegister("isInRange", []value.Kind{value.KindFloat32, value.KindFloat32, value.KindFloat32}, value.KindBool, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		lo, _ := a[1].Float32()
		hi, _ := a[2].Float32()
		return value.Bool(x >= lo && x <= hi), nil
	})
	MustRegister("isInRange", []value.Kind{value.KindFloat64, value.KindFloat64, value.KindFloat64}, value.KindBool, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		lo, _ := a[1].Float64()
		hi, _ := a[2].Float64()
		return value.Bool(x >= lo && x <= hi), nil
	})
}
