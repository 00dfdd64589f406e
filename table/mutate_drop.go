package table

// DropRow removes the row at logicalIndex, reclaiming its physical slot
// for reuse. Returns false if logicalIndex is out of range. If the free
// list grows to maxFreeTolerance or beyond, a compaction pass follows —
// compaction never emits an event; observers must track rows only by
// logical index, never by physical slot.
func (t *Table) DropRow(logicalIndex int) bool {
	if logicalIndex < 0 || logicalIndex >= len(t.indices) {
		return false
	}

	slot := t.indices[logicalIndex]
	t.indices = append(t.indices[:logicalIndex], t.indices[logicalIndex+1:]...)
	t.free = append(t.free, slot)

	t.log.Debug("row dropped", "table_id", t.id, "logical_index", logicalIndex)
	t.emit(func(o Observer) { o.OnRowDropped(logicalIndex) })

	if len(t.free) >= t.maxFreeTolerance {
		t.compact()
	}
	return true
}

// compact rebuilds every column as a fresh dense vector holding only
// live cells in current logical order, then resets indices to 0..N-1
// and clears free. Physical slot identities change; logical indices do
// not, which is exactly what observers are allowed to rely on.
func (t *Table) compact() {
	n := len(t.indices)

	for ci, c := range t.columns {
		fresh := c.Clone()
		if err := fresh.Resize(0); err != nil {
			// Resizing down to 0 cannot fail; a failure here means a
			// programming error, not bad input.
			panic(err)
		}
		for _, slot := range t.indices {
			if err := fresh.Push(c.Get(slot)); err != nil {
				panic(err)
			}
		}
		t.columns[ci] = fresh
	}

	rebuilt := make([]int, n)
	for logical := range rebuilt {
		rebuilt[logical] = logical
	}
	t.indices = rebuilt
	t.free = nil

	t.log.Debug("table compacted", "table_id", t.id, "rows", n)
}
