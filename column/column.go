// Package column implements the homogeneously typed dense vectors that
// back every Table column: push/pop/emplace, random-access get/set,
// resize/reserve, and the (less, equal, greater) predicate pairs the
// table and its views use for sorting, searching, and filtering instead
// of ever touching cell storage directly.
package column

import (
	"fmt"

	"kmt/kmterr"
	"kmt/value"
)

// Column is the narrow trait every typed vector implements. The table
// and view packages never switch on a column's concrete type; they only
// ever call through this interface, which is what lets float epsilon
// equality apply uniformly across sorting, searching, and filtering.
type Column interface {
	Meta() Meta
	Len() int

	Push(v value.Value) error
	Pop() error
	EmplaceEmpty() error

	Get(pos int) value.Value
	Set(pos int, v value.Value) error

	Resize(n int) error
	Reserve(n int)

	Less(i, j int) bool
	Equal(i, j int) bool
	Greater(i, j int) bool

	LessValue(i int, v value.Value) bool
	EqualValue(i int, v value.Value) bool
	GreaterValue(i int, v value.Value) bool

	// Epsilon returns the float equality tolerance. Non-float columns
	// return 0 and SetEpsilon fails for them.
	Epsilon() float64
	SetEpsilon(eps float64) error

	Clone() Column
}

// New constructs an empty Column of the type named by meta.Type.
func New(meta Meta) (Column, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	switch meta.Type {
	case value.KindInt32:
		return newNumeric(meta, func(v value.Value) (int32, error) { return v.Int32() }, value.Int32), nil
	case value.KindInt64:
		return newNumeric(meta, func(v value.Value) (int64, error) { return v.Int64() }, value.Int64), nil
	case value.KindFloat32:
		c := newNumeric(meta, func(v value.Value) (float32, error) { return v.Float32() }, value.Float32)
		c.epsilon = float64(defaultEpsilon32)
		c.isFloat = true
		return c, nil
	case value.KindFloat64:
		c := newNumeric(meta, func(v value.Value) (float64, error) { return v.Float64() }, value.Float64)
		c.epsilon = defaultEpsilon64
		c.isFloat = true
		return c, nil
	case value.KindStr:
		return newStringColumn(meta), nil
	case value.KindBool:
		return newBoolColumn(meta), nil
	case value.KindDate:
		return newDateColumn(meta), nil
	case value.KindDateTime:
		return newDateTimeColumn(meta), nil
	default:
		return nil, fmt.Errorf("unsupported column type %s: %w", meta.Type, kmterr.ErrInvalidArgument)
	}
}
