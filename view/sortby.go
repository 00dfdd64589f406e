package view

import "kmt/table"

// KeyColumn returns the index into the view's exposed columns (not the
// source's) that it currently sorts by.
func (v *FilteredView) KeyColumn() int { return v.keyColumn }

// SortOrder returns the view's current sort direction.
func (v *FilteredView) SortOrder() table.SortOrder { return v.sortOrder }

// SetSortOrder flips the view's sort direction without changing its key
// column or re-evaluating the filter. Toggling direction on an already
// stably-sorted sequence just reverses it; this always operates on the
// view's own row count, never the source's column count, which the
// original reverse-in-place formula this replaces conflated (see
// DESIGN.md).
func (v *FilteredView) SetSortOrder(order table.SortOrder) {
	if order != v.sortOrder {
		v.sortOrder = order
		reverseInts(v.indices)
	}
	v.emit(func(o table.Observer) { o.OnRefresh() })
}

// SetKeyColumn changes which exposed column the view sorts by, keeping
// the current direction, and re-sorts in place without re-evaluating
// the filter or touching row membership.
func (v *FilteredView) SetKeyColumn(keyColumn int) {
	v.keyColumn = keyColumn
	v.resortOnly()
	v.emit(func(o table.Observer) { o.OnRefresh() })
}

// SetKeyColumnAndOrder changes both the key column and the sort
// direction in one step.
func (v *FilteredView) SetKeyColumnAndOrder(keyColumn int, order table.SortOrder) {
	v.keyColumn = keyColumn
	v.sortOrder = order
	v.resortOnly()
	v.emit(func(o table.Observer) { o.OnRefresh() })
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
