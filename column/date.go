package column

import (
	"fmt"

	"kmt/kmterr"
	"kmt/value"
)

type dateColumn struct {
	meta Meta
	data []value.Date
}

func newDateColumn(meta Meta) *dateColumn { return &dateColumn{meta: meta} }

func (c *dateColumn) Meta() Meta { return c.meta }
func (c *dateColumn) Len() int   { return len(c.data) }

func (c *dateColumn) Push(v value.Value) error {
	d, err := v.Date()
	if err != nil {
		return fmt.Errorf("column %q: %w", c.meta.Name, err)
	}
	c.data = append(c.data, d)
	return nil
}

func (c *dateColumn) Pop() error {
	if len(c.data) == 0 {
		return fmt.Errorf("column %q: pop on empty column: %w", c.meta.Name, kmterr.ErrInvalidArgument)
	}
	c.data = c.data[:len(c.data)-1]
	return nil
}

func (c *dateColumn) EmplaceEmpty() error {
	c.data = append(c.data, value.Date{})
	return nil
}

func (c *dateColumn) Get(pos int) value.Value { return value.FromDate(c.data[pos]) }

func (c *dateColumn) Set(pos int, v value.Value) error {
	d, err := v.Date()
	if err != nil {
		return fmt.Errorf("column %q: %w", c.meta.Name, err)
	}
	c.data[pos] = d
	return nil
}

func (c *dateColumn) Resize(n int) error {
	if n < len(c.data) {
		c.data = c.data[:n]
		return nil
	}
	for len(c.data) < n {
		c.data = append(c.data, value.Date{})
	}
	return nil
}

func (c *dateColumn) Reserve(n int) {
	if cap(c.data) >= n {
		return
	}
	grown := make([]value.Date, len(c.data), n)
	copy(grown, c.data)
	c.data = grown
}

func dateOrdinal(d value.Date) int {
	return int(d.Year)*10000 + int(d.Month)*100 + int(d.Day)
}

func (c *dateColumn) Less(i, j int) bool    { return dateOrdinal(c.data[i]) < dateOrdinal(c.data[j]) }
func (c *dateColumn) Greater(i, j int) bool { return dateOrdinal(c.data[i]) > dateOrdinal(c.data[j]) }
func (c *dateColumn) Equal(i, j int) bool   { return c.data[i] == c.data[j] }

func (c *dateColumn) LessValue(i int, v value.Value) bool {
	d, err := v.Date()
	if err != nil {
		return false
	}
	return dateOrdinal(c.data[i]) < dateOrdinal(d)
}

func (c *dateColumn) GreaterValue(i int, v value.Value) bool {
	d, err := v.Date()
	if err != nil {
		return false
	}
	return dateOrdinal(c.data[i]) > dateOrdinal(d)
}

func (c *dateColumn) EqualValue(i int, v value.Value) bool {
	d, err := v.Date()
	if err != nil {
		return false
	}
	return c.data[i] == d
}

func (c *dateColumn) Epsilon() float64 { return 0 }

func (c *dateColumn) SetEpsilon(float64) error {
	return fmt.Errorf("column %q: SetEpsilon does not apply to Date columns: %w", c.meta.Name, kmterr.ErrInvalidArgument)
}

func (c *dateColumn) Clone() Column {
	clone := &dateColumn{meta: c.meta}
	clone.data = append([]value.Date(nil), c.data...)
	return clone
}
