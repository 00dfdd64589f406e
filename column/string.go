package column

import (
	"fmt"

	"kmt/kmterr"
	"kmt/value"
)

// stringColumn is a dense vector of owned strings. Strings compare
// lexicographically; there is no epsilon concept for Str.
type stringColumn struct {
	meta Meta
	data []string
}

func newStringColumn(meta Meta) *stringColumn { return &stringColumn{meta: meta} }

func (c *stringColumn) Meta() Meta { return c.meta }
func (c *stringColumn) Len() int   { return len(c.data) }

func (c *stringColumn) Push(v value.Value) error {
	s, err := v.Str()
	if err != nil {
		return fmt.Errorf("column %q: %w", c.meta.Name, err)
	}
	c.data = append(c.data, s)
	return nil
}

func (c *stringColumn) Pop() error {
	if len(c.data) == 0 {
		return fmt.Errorf("column %q: pop on empty column: %w", c.meta.Name, kmterr.ErrInvalidArgument)
	}
	c.data = c.data[:len(c.data)-1]
	return nil
}

func (c *stringColumn) EmplaceEmpty() error {
	c.data = append(c.data, "")
	return nil
}

func (c *stringColumn) Get(pos int) value.Value { return value.Str(c.data[pos]) }

func (c *stringColumn) Set(pos int, v value.Value) error {
	s, err := v.Str()
	if err != nil {
		return fmt.Errorf("column %q: %w", c.meta.Name, err)
	}
	c.data[pos] = s
	return nil
}

func (c *stringColumn) Resize(n int) error {
	if n < len(c.data) {
		c.data = c.data[:n]
		return nil
	}
	for len(c.data) < n {
		c.data = append(c.data, "")
	}
	return nil
}

func (c *stringColumn) Reserve(n int) {
	if cap(c.data) >= n {
		return
	}
	grown := make([]string, len(c.data), n)
	copy(grown, c.data)
	c.data = grown
}

func (c *stringColumn) Less(i, j int) bool    { return c.data[i] < c.data[j] }
func (c *stringColumn) Greater(i, j int) bool { return c.data[i] > c.data[j] }
func (c *stringColumn) Equal(i, j int) bool   { return c.data[i] == c.data[j] }

func (c *stringColumn) LessValue(i int, v value.Value) bool {
	s, err := v.Str()
	if err != nil {
		return false
	}
	return c.data[i] < s
}

func (c *stringColumn) GreaterValue(i int, v value.Value) bool {
	s, err := v.Str()
	if err != nil {
		return false
	}
	return c.data[i] > s
}

func (c *stringColumn) EqualValue(i int, v value.Value) bool {
	s, err := v.Str()
	if err != nil {
		return false
	}
	return c.data[i] == s
}

func (c *stringColumn) Epsilon() float64 { return 0 }

func (c *stringColumn) SetEpsilon(float64) error {
	return fmt.Errorf("column %q: SetEpsilon does not apply to Str columns: %w", c.meta.Name, kmterr.ErrInvalidArgument)
}

func (c *stringColumn) Clone() Column {
	clone := &stringColumn{meta: c.meta}
	clone.data = append([]string(nil), c.data...)
	return clone
}
