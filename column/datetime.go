package column

import (
	"fmt"

	"kmt/kmterr"
	"kmt/value"
)

type dateTimeColumn struct {
	meta Meta
	data []value.DateTime
}

func newDateTimeColumn(meta Meta) *dateTimeColumn { return &dateTimeColumn{meta: meta} }

func (c *dateTimeColumn) Meta() Meta { return c.meta }
func (c *dateTimeColumn) Len() int   { return len(c.data) }

func (c *dateTimeColumn) Push(v value.Value) error {
	dt, err := v.DateTime()
	if err != nil {
		return fmt.Errorf("column %q: %w", c.meta.Name, err)
	}
	c.data = append(c.data, dt)
	return nil
}

func (c *dateTimeColumn) Pop() error {
	if len(c.data) == 0 {
		return fmt.Errorf("column %q: pop on empty column: %w", c.meta.Name, kmterr.ErrInvalidArgument)
	}
	c.data = c.data[:len(c.data)-1]
	return nil
}

func (c *dateTimeColumn) EmplaceEmpty() error {
	c.data = append(c.data, value.DateTime{})
	return nil
}

func (c *dateTimeColumn) Get(pos int) value.Value { return value.FromDateTime(c.data[pos]) }

func (c *dateTimeColumn) Set(pos int, v value.Value) error {
	dt, err := v.DateTime()
	if err != nil {
		return fmt.Errorf("column %q: %w", c.meta.Name, err)
	}
	c.data[pos] = dt
	return nil
}

func (c *dateTimeColumn) Resize(n int) error {
	if n < len(c.data) {
		c.data = c.data[:n]
		return nil
	}
	for len(c.data) < n {
		c.data = append(c.data, value.DateTime{})
	}
	return nil
}

func (c *dateTimeColumn) Reserve(n int) {
	if cap(c.data) >= n {
		return
	}
	grown := make([]value.DateTime, len(c.data), n)
	copy(grown, c.data)
	c.data = grown
}

func dateTimeOrdinal(dt value.DateTime) int64 {
	return int64(dateOrdinal(dt.Date))*1000000 + int64(dt.Hour)*10000 + int64(dt.Minute)*100 + int64(dt.Second)
}

func (c *dateTimeColumn) Less(i, j int) bool {
	return dateTimeOrdinal(c.data[i]) < dateTimeOrdinal(c.data[j])
}
func (c *dateTimeColumn) Greater(i, j int) bool {
	return dateTimeOrdinal(c.data[i]) > dateTimeOrdinal(c.data[j])
}
func (c *dateTimeColumn) Equal(i, j int) bool { return c.data[i] == c.data[j] }

func (c *dateTimeColumn) LessValue(i int, v value.Value) bool {
	dt, err := v.DateTime()
	if err != nil {
		return false
	}
	return dateTimeOrdinal(c.data[i]) < dateTimeOrdinal(dt)
}

func (c *dateTimeColumn) GreaterValue(i int, v value.Value) bool {
	dt, err := v.DateTime()
	if err != nil {
		return false
	}
	return dateTimeOrdinal(c.data[i]) > dateTimeOrdinal(dt)
}

func (c *dateTimeColumn) EqualValue(i int, v value.Value) bool {
	dt, err := v.DateTime()
	if err != nil {
		return false
	}
	return c.data[i] == dt
}

func (c *dateTimeColumn) Epsilon() float64 { return 0 }

func (c *dateTimeColumn) SetEpsilon(float64) error {
	return fmt.Errorf("column %q: SetEpsilon does not apply to DateTime columns: %w", c.meta.Name, kmterr.ErrInvalidArgument)
}

func (c *dateTimeColumn) Clone() Column {
	clone := &dateTimeColumn{meta: c.meta}
	clone.data = append([]value.DateTime(nil), c.data...)
	return clone
}
