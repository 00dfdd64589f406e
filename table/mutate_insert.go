package table

import (
	"fmt"

	"kmt/kmterr"
	"kmt/value"
)

// invalidIndex is the sentinel logical index InsertRow returns on
// failure.
const invalidIndex = -1

// InsertRow appends a new row. values must have exactly one entry per
// column, each matching that column's declared type. On success it
// returns the new row's logical index; on failure it returns
// invalidIndex and an error, having rolled back any column already
// mutated.
func (t *Table) InsertRow(values []value.Value) (int, error) {
	if len(values) != len(t.columns) {
		return invalidIndex, t.logErr(fmt.Errorf("insert: got %d values, table has %d columns: %w", len(values), len(t.columns), kmterr.ErrInvalidArgument))
	}
	for i, c := range t.columns {
		if values[i].Kind() != c.Meta().Type {
			return invalidIndex, t.logErr(fmt.Errorf("insert: column %q wants %s, got %s: %w", c.Meta().Name, c.Meta().Type, values[i].Kind(), kmterr.ErrTypeMismatch))
		}
	}

	slot, err := t.acquireSlot(values)
	if err != nil {
		return invalidIndex, t.logErr(err)
	}

	var logicalIdx int
	if t.sortPaused {
		t.indices = append(t.indices, slot)
		logicalIdx = len(t.indices) - 1
	} else {
		logicalIdx = t.upperBoundInsertPos(slot)
		t.indices = append(t.indices, 0)
		copy(t.indices[logicalIdx+1:], t.indices[logicalIdx:])
		t.indices[logicalIdx] = slot
	}

	t.log.Debug("row inserted", "table_id", t.id, "logical_index", logicalIdx)
	t.emit(func(o Observer) { o.OnRowInserted(logicalIdx) })
	return logicalIdx, nil
}

// acquireSlot reuses the most recently freed physical slot if one
// exists (overwriting it with values), otherwise grows every column by
// one cell. It rolls back any column already grown on a mid-way
// failure.
func (t *Table) acquireSlot(values []value.Value) (int, error) {
	if n := len(t.free); n > 0 {
		slot := t.free[n-1]
		t.free = t.free[:n-1]
		for i, c := range t.columns {
			if err := c.Set(slot, values[i]); err != nil {
				return 0, fmt.Errorf("insert: reusing slot %d: %w", slot, err)
			}
		}
		return slot, nil
	}

	slot := t.capacity()
	pushed := 0
	for i, c := range t.columns {
		if err := c.Push(values[i]); err != nil {
			for j := 0; j < pushed; j++ {
				_ = t.columns[j].Pop()
			}
			return 0, fmt.Errorf("insert: pushing column %q: %w", c.Meta().Name, err)
		}
		pushed++
	}
	return slot, nil
}
