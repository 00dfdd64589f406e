package table

import (
	"fmt"

	"kmt/expr"
	"kmt/value"
)

// TransformColumn compiles formula against this table (target type =
// the named column's declared type) and, on success, evaluates it for
// every live row, writing the result back into that same column. If the
// transformed column is column 0, the table is fully re-sorted
// (emitting Refresh); otherwise it emits ColumnTransformed(columnIndex).
// Compile or evaluation failures are logged and reported as false,
// never returned as an error — transformColumn's contract is a bool.
func (t *Table) TransformColumn(name string, formula string) bool {
	ci := t.ColumnIndex(name)
	if ci < 0 {
		t.logErr(fmt.Errorf("transformColumn: unknown column %q", name))
		return false
	}
	col := t.columns[ci]

	prog, err := expr.Compile(formula, t, col.Meta().Type)
	if err != nil {
		t.logErr(fmt.Errorf("transformColumn %q: %w", name, err))
		return false
	}

	n := len(t.indices)
	computed := make([]value.Value, n)
	for row := 0; row < n; row++ {
		v, err := prog.EvalRow(t, row)
		if err != nil {
			t.logErr(fmt.Errorf("transformColumn %q: row %d: %w", name, row, err))
			return false
		}
		computed[row] = v
	}
	for row, v := range computed {
		if err := col.Set(t.indices[row], v); err != nil {
			t.logErr(fmt.Errorf("transformColumn %q: %w", name, err))
			return false
		}
	}

	t.log.Debug("column transformed", "table_id", t.id, "column", name)
	if ci == 0 {
		t.sortIndices()
	} else {
		t.emit(func(o Observer) { o.OnColumnTransformed(ci) })
	}
	return true
}
