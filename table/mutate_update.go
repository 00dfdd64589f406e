package table

import (
	"fmt"

	"kmt/kmterr"
	"kmt/value"
)

// SetData overwrites the cell at (logical row r, column c). Column 0
// (the primary key) is immutable and rejected. Out-of-range indices and
// a value whose kind disagrees with the column's type are also
// rejected. On success, emits DataUpdated(r, c, old) — old is required
// so observers keyed on c can locate their pre-update local position
// before applying the change.
func (t *Table) SetData(r, c int, v value.Value) error {
	if c == 0 {
		return t.logErr(fmt.Errorf("setData: column 0 is the immutable primary key: %w", kmterr.ErrInvalidArgument))
	}
	if r < 0 || r >= len(t.indices) {
		return t.logErr(fmt.Errorf("setData: row %d out of range (have %d rows): %w", r, len(t.indices), kmterr.ErrInvalidArgument))
	}
	if c < 0 || c >= len(t.columns) {
		return t.logErr(fmt.Errorf("setData: column %d out of range (have %d columns): %w", c, len(t.columns), kmterr.ErrInvalidArgument))
	}
	col := t.columns[c]
	if v.Kind() != col.Meta().Type {
		return t.logErr(fmt.Errorf("setData: column %q wants %s, got %s: %w", col.Meta().Name, col.Meta().Type, v.Kind(), kmterr.ErrTypeMismatch))
	}

	slot := t.indices[r]
	old := col.Get(slot)
	if err := col.Set(slot, v); err != nil {
		return t.logErr(fmt.Errorf("setData: %w", err))
	}

	t.log.Debug("data updated", "table_id", t.id, "row", r, "column", c)
	t.emit(func(o Observer) { o.OnDataUpdated(r, c, old) })
	return nil
}
