// Package value implements the eight-variant tagged Value union that
// every Column and every expression ultimately produces and consumes.
package value

import (
	"fmt"

	"kmt/kmterr"
)

// Kind identifies which of the eight scalar variants a Value holds.
// The numeric order here is fixed: it is used both for mangled function
// names (see the registry package) and for the column type tag on the
// snapshot wire format, so it must never be reordered.
type Kind uint8

const (
	KindInt32 Kind = iota
	KindInt64
	KindFloat32
	KindFloat64
	KindStr
	KindBool
	KindDate
	KindDateTime
)

// String returns the human-readable name of the kind, used in error
// messages and log fields.
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindStr:
		return "Str"
	case KindBool:
		return "Bool"
	case KindDate:
		return "Date"
	case KindDateTime:
		return "DateTime"
	default:
		return "Unknown"
	}
}

// TypeChar is the single-letter mangling code for this kind, per the
// function registry's mangled-name scheme: i,I,f,F,s,b,d,D.
func (k Kind) TypeChar() byte {
	switch k {
	case KindInt32:
		return 'i'
	case KindInt64:
		return 'I'
	case KindFloat32:
		return 'f'
	case KindFloat64:
		return 'F'
	case KindStr:
		return 's'
	case KindBool:
		return 'b'
	case KindDate:
		return 'd'
	case KindDateTime:
		return 'D'
	default:
		return '?'
	}
}

// Date is a plain year/month/day triple with no validity checking, as
// specified: Date(2026, 13, 99) is constructible and carries no
// contract about calendar sanity.
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// DateTime extends Date with hour/minute/second, equally unchecked.
type DateTime struct {
	Date
	Hour   uint8
	Minute uint8
	Second uint8
}

// Value is a discriminated union of exactly the eight scalar types
// named by Kind. The zero value is an Int32 of 0.
type Value struct {
	kind Kind
	i32  int32
	i64  int64
	f32  float32
	f64  float64
	s    string
	b    bool
	d    Date
	dt   DateTime
}

func Int32(v int32) Value      { return Value{kind: KindInt32, i32: v} }
func Int64(v int64) Value      { return Value{kind: KindInt64, i64: v} }
func Float32(v float32) Value  { return Value{kind: KindFloat32, f32: v} }
func Float64(v float64) Value  { return Value{kind: KindFloat64, f64: v} }
func Str(v string) Value       { return Value{kind: KindStr, s: v} }
func Bool(v bool) Value        { return Value{kind: KindBool, b: v} }
func FromDate(v Date) Value    { return Value{kind: KindDate, d: v} }
func FromDateTime(v DateTime) Value { return Value{kind: KindDateTime, dt: v} }

// Kind reports which variant this Value currently holds.
func (v Value) Kind() Kind { return v.kind }

func mismatch(want Kind, got Kind) error {
	return fmt.Errorf("value is %s, want %s: %w", got, want, kmterr.ErrTypeMismatch)
}

func (v Value) Int32() (int32, error) {
	if v.kind != KindInt32 {
		return 0, mismatch(KindInt32, v.kind)
	}
	return v.i32, nil
}

func (v Value) Int64() (int64, error) {
	if v.kind != KindInt64 {
		return 0, mismatch(KindInt64, v.kind)
	}
	return v.i64, nil
}

func (v Value) Float32() (float32, error) {
	if v.kind != KindFloat32 {
		return 0, mismatch(KindFloat32, v.kind)
	}
	return v.f32, nil
}

func (v Value) Float64() (float64, error) {
	if v.kind != KindFloat64 {
		return 0, mismatch(KindFloat64, v.kind)
	}
	return v.f64, nil
}

func (v Value) Str() (string, error) {
	if v.kind != KindStr {
		return "", mismatch(KindStr, v.kind)
	}
	return v.s, nil
}

func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, mismatch(KindBool, v.kind)
	}
	return v.b, nil
}

func (v Value) Date() (Date, error) {
	if v.kind != KindDate {
		return Date{}, mismatch(KindDate, v.kind)
	}
	return v.d, nil
}

func (v Value) DateTime() (DateTime, error) {
	if v.kind != KindDateTime {
		return DateTime{}, mismatch(KindDateTime, v.kind)
	}
	return v.dt, nil
}

// Equal reports byte-for-byte equality for same-tag values. It never
// applies a float epsilon — that is a per-Column concern (see the
// column package), since epsilon is configured per column, not
// globally.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInt32:
		return v.i32 == other.i32
	case KindInt64:
		return v.i64 == other.i64
	case KindFloat32:
		return v.f32 == other.f32
	case KindFloat64:
		return v.f64 == other.f64
	case KindStr:
		return v.s == other.s
	case KindBool:
		return v.b == other.b
	case KindDate:
		return v.d == other.d
	case KindDateTime:
		return v.dt == other.dt
	default:
		return false
	}
}

// Less gives a total order per tag: IEEE comparison for floats (no NaN
// handling contract), natural ordering otherwise, lexicographic for
// strings. Panics if the two values don't share a tag — callers are
// expected to only compare same-typed cells, which is always true
// within a single Column.
func (v Value) Less(other Value) bool {
	if v.kind != other.kind {
		panic(fmt.Sprintf("value.Less: kind mismatch %s vs %s", v.kind, other.kind))
	}
	switch v.kind {
	case KindInt32:
		return v.i32 < other.i32
	case KindInt64:
		return v.i64 < other.i64
	case KindFloat32:
		return v.f32 < other.f32
	case KindFloat64:
		return v.f64 < other.f64
	case KindStr:
		return v.s < other.s
	case KindBool:
		return !v.b && other.b
	case KindDate:
		return dateLess(v.d, other.d)
	case KindDateTime:
		if v.dt.Date != other.dt.Date {
			return dateLess(v.dt.Date, other.dt.Date)
		}
		if v.dt.Hour != other.dt.Hour {
			return v.dt.Hour < other.dt.Hour
		}
		if v.dt.Minute != other.dt.Minute {
			return v.dt.Minute < other.dt.Minute
		}
		return v.dt.Second < other.dt.Second
	default:
		return false
	}
}

func dateLess(a, b Date) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if a.Month != b.Month {
		return a.Month < b.Month
	}
	return a.Day < b.Day
}

// Greater is the strict inverse of Less for same-tag values (no value
// is both Less and Greater than another under a total order).
func (v Value) Greater(other Value) bool {
	return other.Less(v)
}

// String renders the value for logging/debug purposes.
func (v Value) String() string {
	switch v.kind {
	case KindInt32:
		return fmt.Sprintf("%d", v.i32)
	case KindInt64:
		return fmt.Sprintf("%d", v.i64)
	case KindFloat32:
		return fmt.Sprintf("%g", v.f32)
	case KindFloat64:
		return fmt.Sprintf("%g", v.f64)
	case KindStr:
		return v.s
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindDate:
		return fmt.Sprintf("%04d-%02d-%02d", v.d.Year, v.d.Month, v.d.Day)
	case KindDateTime:
		return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", v.dt.Year, v.dt.Month, v.dt.Day, v.dt.Hour, v.dt.Minute, v.dt.Second)
	default:
		return "<invalid>"
	}
}
