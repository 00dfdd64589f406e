package registry

import "kmt/value"

func init() {
	MustRegister("year", []value.Kind{value.KindDate}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		d, _ := a[0].Date()
		return value.Int32(int32(d.Year)), nil
	})
	MustRegister("month", []value.Kind{value.KindDate}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		d, _ := a[0].Date()
		return value.Int32(int32(d.Month)), nil
	})
	MustRegister("day", []value.Kind{value.KindDate}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		d, _ := a[0].Date()
		return value.Int32(int32(d.Day)), nil
	})
	MustRegister("isLeapYear", []value.Kind{value.KindDate}, value.KindBool, func(a []value.Value) (value.Value, error) {
		d, _ := a[0].Date()
		return value.Bool(isLeapYear(int(d.Year))), nil
	})

	MustRegister("year", []value.Kind{value.KindDateTime}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		dt, _ := a[0].DateTime()
		return value.Int32(int32(dt.Year)), nil
	})
	MustRegister("month", []value.Kind{value.KindDateTime}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		dt, _ := a[0].DateTime()
		return value.Int32(int32(dt.Month)), nil
	})
	MustRegister("day", []value.Kind{value.KindDateTime}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		dt, _ := a[0].DateTime()
		return value.Int32(int32(dt.Day)), nil
	})
	MustRegister("hour", []value.Kind{value.KindDateTime}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		dt, _ := a[0].DateTime()
		return value.Int32(int32(dt.Hour)), nil
	})
	MustRegister("minute", []value.Kind{value.KindDateTime}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		dt, _ := a[0].DateTime()
		return value.Int32(int32(dt.Minute)), nil
	})
	MustRegister("second", []value.Kind{value.KindDateTime}, value.KindInt32, func(a []value.Value) (value.Value, error) {
		dt, _ := a[0].DateTime()
		return value.Int32(int32(dt.Second)), nil
	})
	MustRegister("isLeapYear", []value.Kind{value.KindDateTime}, value.KindBool, func(a []value.Value) (value.Value, error) {
		dt, _ := a[0].DateTime()
		return value.Bool(isLeapYear(int(dt.Year))), nil
	})
}

func isLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}
