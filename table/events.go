package table

import (
	"kmt/column"
	"kmt/value"
)

// Observer is implemented by anything that watches a Table or another
// Observer's events — in practice, *view.FilteredView. Table itself
// never implements Observer (it is always the root of an observer
// graph, never a nested one), but both Table and FilteredView implement
// Observable, so a view can be built on top of either.
type Observer interface {
	OnRowInserted(logicalIndex int)
	OnRowDropped(logicalIndex int)
	OnDataUpdated(row, col int, old value.Value)
	OnColumnTransformed(col int)
	OnRefresh()
	OnAboutToDestruct()
}

// Observable is the source-facing surface a view attaches to: enough of
// a read interface to compile and evaluate expressions against it (it
// structurally satisfies expr.Source), plus Attach/Detach for observer
// registration. *Table and *view.FilteredView both implement it.
type Observable interface {
	RowCount() int
	ColumnCount() int
	ColumnMeta(i int) column.Meta
	CellAt(row, col int) value.Value

	Attach(o Observer) error
	Detach(o Observer)
}
