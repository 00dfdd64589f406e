package expr

import (
	"kmt/column"
	"kmt/value"
)

// Source is the narrow surface a compiled Program needs from whatever
// it runs against. Table and FilteredView both satisfy it structurally
// — this package never imports either, so there is no import cycle
// between expression compilation and the row-store packages.
type Source interface {
	RowCount() int
	ColumnCount() int
	ColumnMeta(i int) column.Meta
	CellAt(row, col int) value.Value
}

// findColumn looks up a column by name against a Source, returning its
// index. Column names are matched exactly, case-sensitively, against
// column.Meta.Name.
func findColumn(src Source, name string) (int, bool) {
	n := src.ColumnCount()
	for i := 0; i < n; i++ {
		if src.ColumnMeta(i).Name == name {
			return i, true
		}
	}
	return -1, false
}
