package table

import "sort"

// upperBoundInsertPos returns the position in t.indices at which
// physical slot newSlot should be inserted so that indices stays
// sorted under t.sortOrder and, per the store's stability rule, a
// newly inserted row with a key equal to existing rows lands after
// them (preserving insertion order for ties).
func (t *Table) upperBoundInsertPos(newSlot int) int {
	col := t.columns[0]
	lo, hi := 0, len(t.indices)
	for lo < hi {
		mid := (lo + hi) / 2
		s := t.indices[mid]
		var past bool
		if t.sortOrder == Asc {
			past = col.Greater(s, newSlot)
		} else {
			past = col.Less(s, newSlot)
		}
		if past {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// sortIndices performs a full stable sort of indices by column 0 under
// sortOrder, then emits Refresh.
func (t *Table) sortIndices() {
	col := t.columns[0]
	sort.SliceStable(t.indices, func(i, j int) bool {
		a, b := t.indices[i], t.indices[j]
		if t.sortOrder == Asc {
			return col.Less(a, b)
		}
		return col.Greater(a, b)
	})
	t.emit(func(o Observer) { o.OnRefresh() })
}

// Sort re-sorts indices by column 0 under the table's current sort
// order and emits Refresh. Idempotent: calling it twice in a row
// produces the same indices.
func (t *Table) Sort() {
	t.sortIndices()
}

// PauseSorting suspends both re-sorting on insert and event emission,
// for bulk-loading many rows without paying for incremental
// maintenance on each one.
func (t *Table) PauseSorting() {
	t.sortPaused = true
}

// ResumeSorting performs a single stable re-sort, resumes event
// emission, and emits Refresh.
func (t *Table) ResumeSorting() {
	t.sortPaused = false
	t.sortIndices()
}
