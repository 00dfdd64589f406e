package column

import (
	"fmt"

	"kmt/kmterr"
	"kmt/value"
)

type boolColumn struct {
	meta Meta
	data []bool
}

func newBoolColumn(meta Meta) *boolColumn { return &boolColumn{meta: meta} }

func (c *boolColumn) Meta() Meta { return c.meta }
func (c *boolColumn) Len() int   { return len(c.data) }

func (c *boolColumn) Push(v value.Value) error {
	b, err := v.Bool()
	if err != nil {
		return fmt.Errorf("column %q: %w", c.meta.Name, err)
	}
	c.data = append(c.data, b)
	return nil
}

func (c *boolColumn) Pop() error {
	if len(c.data) == 0 {
		return fmt.Errorf("column %q: pop on empty column: %w", c.meta.Name, kmterr.ErrInvalidArgument)
	}
	c.data = c.data[:len(c.data)-1]
	return nil
}

func (c *boolColumn) EmplaceEmpty() error {
	c.data = append(c.data, false)
	return nil
}

func (c *boolColumn) Get(pos int) value.Value { return value.Bool(c.data[pos]) }

func (c *boolColumn) Set(pos int, v value.Value) error {
	b, err := v.Bool()
	if err != nil {
		return fmt.Errorf("column %q: %w", c.meta.Name, err)
	}
	c.data[pos] = b
	return nil
}

func (c *boolColumn) Resize(n int) error {
	if n < len(c.data) {
		c.data = c.data[:n]
		return nil
	}
	for len(c.data) < n {
		c.data = append(c.data, false)
	}
	return nil
}

func (c *boolColumn) Reserve(n int) {
	if cap(c.data) >= n {
		return
	}
	grown := make([]bool, len(c.data), n)
	copy(grown, c.data)
	c.data = grown
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (c *boolColumn) Less(i, j int) bool    { return b2i(c.data[i]) < b2i(c.data[j]) }
func (c *boolColumn) Greater(i, j int) bool { return b2i(c.data[i]) > b2i(c.data[j]) }
func (c *boolColumn) Equal(i, j int) bool   { return c.data[i] == c.data[j] }

func (c *boolColumn) LessValue(i int, v value.Value) bool {
	b, err := v.Bool()
	if err != nil {
		return false
	}
	return b2i(c.data[i]) < b2i(b)
}

func (c *boolColumn) GreaterValue(i int, v value.Value) bool {
	b, err := v.Bool()
	if err != nil {
		return false
	}
	return b2i(c.data[i]) > b2i(b)
}

func (c *boolColumn) EqualValue(i int, v value.Value) bool {
	b, err := v.Bool()
	if err != nil {
		return false
	}
	return c.data[i] == b
}

func (c *boolColumn) Epsilon() float64 { return 0 }

func (c *boolColumn) SetEpsilon(float64) error {
	return fmt.Errorf("column %q: SetEpsilon does not apply to Bool columns: %w", c.meta.Name, kmterr.ErrInvalidArgument)
}

func (c *boolColumn) Clone() Column {
	clone := &boolColumn{meta: c.meta}
	clone.data = append([]bool(nil), c.data...)
	return clone
}
