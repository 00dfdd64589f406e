package registry

import (
	"strconv"

	"kmt/value"
)

// The conversion surface is deliberately not the full 8x8 matrix — only
// the pairs that show up naturally in formula expressions (numeric
// widening/narrowing, numeric<->string) are wired. Gaps (e.g. Date<->Str,
// Bool<->numeric) are a documented scope decision, not an oversight.
func init() {
	registerNumericConversions()
	registerStringConversions()
}

func registerNumericConversions() {
	MustRegister("toInt32", []value.Kind{value.KindInt64}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		return value.Int32(int32(x)), nil
	})
	MustRegister("toInt32", []value.Kind{value.KindFloat32}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		return value.Int32(int32(x)), nil
	})
	MustRegister("toInt32", []value.Kind{value.KindFloat64}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		return value.Int32(int32(x)), nil
	})

	MustRegister("toInt64", []value.Kind{value.KindInt32}, value.KindInt64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		return value.Int64(int64(x)), nil
	})
	MustRegister("toInt64", []value.Kind{value.KindFloat32}, value.KindInt64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		return value.Int64(int64(x)), nil
	})
	MustRegister("toInt64", []value.Kind{value.KindFloat64}, value.KindInt64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		return value.Int64(int64(x)), nil
	})

	MustRegister("toFloat32", []value.Kind{value.KindInt32}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		return value.Float32(float32(x)), nil
	})
	MustRegister("toFloat32", []value.Kind{value.KindInt64}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		return value.Float32(float32(x)), nil
	})
	MustRegister("toFloat32", []value.Kind{value.KindFloat64}, value.KindFloat32, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		return value.Float32(float32(x)), nil
	})

	MustRegister("toFloat64", []value.Kind{value.KindInt32}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		return value.Float64(float64(x)), nil
	})
	MustRegister("toFloat64", []value.Kind{value.KindInt64}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		return value.Float64(float64(x)), nil
	})
	MustRegister("toFloat64", []value.Kind{value.KindFloat32}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		return value.Float64(float64(x)), nil
	})
}

func registerStringConversions() {
	MustRegister("toStr", []value.Kind{value.KindInt32}, value.KindStr, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int32()
		return value.Str(strconv.FormatInt(int64(x), 10)), nil
	})
	MustRegister("toStr", []value.Kind{value.KindInt64}, value.KindStr, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Int64()
		return value.Str(strconv.FormatInt(x, 10)), nil
	})
	MustRegister("toStr", []value.Kind{value.KindFloat32}, value.KindStr, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float32()
		return value.Str(strconv.FormatFloat(float64(x), 'g', -1, 32)), nil
	})
	MustRegister("toStr", []value.Kind{value.KindFloat64}, value.KindStr, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Float64()
		return value.Str(strconv.FormatFloat(x, 'g', -1, 64)), nil
	})
	MustRegister("toStr", []value.Kind{value.KindBool}, value.KindStr, func(a []value.Value) (value.Value, error) {
		x, _ := a[0].Bool()
		return value.Str(strconv.FormatBool(x)), nil
	})

	MustRegister("toInt32", []value.Kind{value.KindStr}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		s, _ := a[0].Str()
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int32(int32(n)), nil
	})
	MustRegister("toFloat64", []value.Kind{value.KindStr}, value.KindFloat64, func(a []value.Value) (value.Value, error) {
		s, _ := a[0].Str()
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return value.Value{}, err
		}
		return value.Float64(f), nil
	})
}
