package table

import (
	"fmt"

	"kmt/kmterr"
	"kmt/value"
)

// Search returns every logical index whose cell in columnName equals
// value, in logical order. On column 0 (sorted), it binary-searches for
// one match and then scans outward across the equality run; on any
// other column it scans linearly. An unknown column or a type mismatch
// both yield an empty result rather than an error, since search is a
// best-effort lookup, not a mutator.
func (t *Table) Search(columnName string, v value.Value) []int {
	ci := t.ColumnIndex(columnName)
	if ci < 0 {
		t.logErr(fmt.Errorf("search: unknown column %q: %w", columnName, kmterr.ErrNotFound))
		return nil
	}
	col := t.columns[ci]
	if v.Kind() != col.Meta().Type {
		t.logErr(fmt.Errorf("search: column %q wants %s, got %s: %w", columnName, col.Meta().Type, v.Kind(), kmterr.ErrTypeMismatch))
		return nil
	}

	if ci == 0 {
		return t.searchKeyColumn(v)
	}
	return t.searchLinear(ci, v)
}

func (t *Table) searchLinear(ci int, v value.Value) []int {
	col := t.columns[ci]
	var out []int
	for row, slot := range t.indices {
		if col.EqualValue(slot, v) {
			out = append(out, row)
		}
	}
	return out
}

// searchKeyColumn binary-searches column 0 (sorted under t.sortOrder)
// for any row equal to v, then scans backward and forward across the
// run of equal keys to collect every match in logical order.
func (t *Table) searchKeyColumn(v value.Value) []int {
	col := t.columns[0]
	n := len(t.indices)
	if n == 0 {
		return nil
	}

	lo, hi := 0, n
	found := -1
	for lo < hi {
		mid := (lo + hi) / 2
		slot := t.indices[mid]
		switch {
		case col.EqualValue(slot, v):
			found = mid
			lo, hi = 0, 0 // break out, we have a hit
		case t.sortOrder == Asc && col.LessValue(slot, v), t.sortOrder == Desc && col.GreaterValue(slot, v):
			lo = mid + 1
		default:
			hi = mid
		}
	}
	if found < 0 {
		return nil
	}

	start, end := found, found
	for start > 0 && col.EqualValue(t.indices[start-1], v) {
		start--
	}
	for end+1 < n && col.EqualValue(t.indices[end+1], v) {
		end++
	}

	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}
