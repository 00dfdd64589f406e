package table

import (
	"fmt"

	"kmt/column"
	"kmt/expr"
	"kmt/kmterr"
	"kmt/value"
)

// addColumnCommon validates and appends an empty column of meta's type,
// growing it to the table's current capacity via fillFn(physicalSlot).
// If this is the table's first column, it becomes the key column and
// the table is fully sorted.
func (t *Table) addColumnCommon(meta column.Meta, fillFn func(slot int) (value.Value, error)) error {
	newCol, err := column.New(meta)
	if err != nil {
		return t.logErr(fmt.Errorf("addColumn: %w", err))
	}
	if t.ColumnIndex(meta.Name) >= 0 {
		return t.logErr(fmt.Errorf("addColumn: duplicate column name %q: %w", meta.Name, kmterr.ErrInvalidArgument))
	}

	capacity := t.capacity()
	for slot := 0; slot < capacity; slot++ {
		v, err := fillFn(slot)
		if err != nil {
			return t.logErr(fmt.Errorf("addColumn %q: filling slot %d: %w", meta.Name, slot, err))
		}
		if err := newCol.Push(v); err != nil {
			return t.logErr(fmt.Errorf("addColumn %q: %w", meta.Name, err))
		}
	}

	firstColumn := len(t.columns) == 0
	t.columns = append(t.columns, newCol)

	t.log.Debug("column added", "table_id", t.id, "name", meta.Name, "first_column", firstColumn)
	if firstColumn {
		t.sortIndices()
	}
	return nil
}

// AddColumn appends a column of the declared type, back-filling every
// live row with fillValue.
func (t *Table) AddColumn(meta column.Meta, fillValue value.Value) error {
	return t.addColumnCommon(meta, func(slot int) (value.Value, error) {
		return fillValue, nil
	})
}

// AddColumnExpr appends a column of the declared type, back-filling
// every live row by evaluating formula (compiled against the table
// before the new column exists, so it cannot reference itself).
func (t *Table) AddColumnExpr(meta column.Meta, formula string) error {
	prog, err := expr.Compile(formula, t, meta.Type)
	if err != nil {
		return t.logErr(fmt.Errorf("addColumnExpr %q: %w", meta.Name, err))
	}
	// fillFn is indexed by physical slot, but the program evaluates by
	// logical row; build the slot->logical map once.
	logicalOf := make(map[int]int, len(t.indices))
	for logical, slot := range t.indices {
		logicalOf[slot] = logical
	}
	return t.addColumnCommon(meta, func(slot int) (value.Value, error) {
		logical, ok := logicalOf[slot]
		if !ok {
			// slot is in the free list; it holds no live row, so its
			// backing value is never observed through the public API.
			return column.ZeroValue(meta.Type), nil
		}
		return prog.EvalRow(t, logical)
	})
}

// AddColumnFromCallable appends a column of the declared type,
// back-filling every live row by calling fn with that row's logical
// index.
func (t *Table) AddColumnFromCallable(meta column.Meta, fn func(logicalIndex int) (value.Value, error)) error {
	logicalOf := make(map[int]int, len(t.indices))
	for logical, slot := range t.indices {
		logicalOf[slot] = logical
	}
	return t.addColumnCommon(meta, func(slot int) (value.Value, error) {
		logical, ok := logicalOf[slot]
		if !ok {
			return column.ZeroValue(meta.Type), nil
		}
		return fn(logical)
	})
}
