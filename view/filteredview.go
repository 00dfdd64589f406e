// Package view implements FilteredView: a derived, live projection over
// a Table or another FilteredView that reorders/subsets columns, keeps
// only rows passing a compiled filter predicate, and maintains its own
// secondary sort order — all incrementally, by absorbing the six
// events its source emits (see absorb.go).
package view

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"kmt/column"
	"kmt/expr"
	"kmt/kmterr"
	"kmt/logsink"
	"kmt/table"
	"kmt/value"
)

// FilteredView is a derived projection: a subset (possibly reordered)
// of its source's columns, a filtered and independently-sorted subset
// of its source's rows. It implements table.Observer (to absorb its
// source's events) and table.Observable (so another view can be built
// on top of it).
type FilteredView struct {
	id  uuid.UUID
	log *slog.Logger

	source   table.Observable
	selected []int // indices into source's columns

	indices []int // source row indices passing the filter, sorted by key

	rawFilter      string
	compiledFilter *expr.Program // never nil: an empty formula compiles to an accept-all program

	keyColumn int // index into selected
	sortOrder table.SortOrder

	observers []table.Observer
}

// New attaches a FilteredView to source. selected lists source-column
// indices (possibly reordering, possibly a strict subset; duplicates
// are rejected). filterFormula is compiled against source directly (an
// empty formula accepts every row). keyColumn indexes into selected.
func New(source table.Observable, selected []int, filterFormula string, keyColumn int, sortOrder table.SortOrder) (*FilteredView, error) {
	if source == nil {
		return nil, fmt.Errorf("view: source is nil: %w", kmterr.ErrInvalidArgument)
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("view: selected must name at least one column: %w", kmterr.ErrInvalidArgument)
	}
	seen := make(map[int]bool, len(selected))
	for _, ci := range selected {
		if ci < 0 || ci >= source.ColumnCount() {
			return nil, fmt.Errorf("view: selected column %d out of range: %w", ci, kmterr.ErrInvalidArgument)
		}
		if seen[ci] {
			return nil, fmt.Errorf("view: duplicate selected column %d: %w", ci, kmterr.ErrInvalidArgument)
		}
		seen[ci] = true
	}
	if keyColumn < 0 || keyColumn >= len(selected) {
		return nil, fmt.Errorf("view: keyColumn %d out of range of selected: %w", keyColumn, kmterr.ErrInvalidArgument)
	}

	prog, err := expr.CompileFilter(filterFormula, source)
	if err != nil {
		return nil, fmt.Errorf("view: compiling filter %q: %w", filterFormula, err)
	}

	v := &FilteredView{
		id:             uuid.New(),
		log:            slog.Default(),
		source:         source,
		selected:       append([]int(nil), selected...),
		rawFilter:      filterFormula,
		compiledFilter: prog,
		keyColumn:      keyColumn,
		sortOrder:      sortOrder,
	}
	v.refresh()

	if err := source.Attach(v); err != nil {
		return nil, fmt.Errorf("view: attaching to source: %w", err)
	}

	v.log.Debug("view created", "view_id", v.id, "columns", len(selected), "rows", len(v.indices))
	return v, nil
}

func (v *FilteredView) RowCount() int    { return len(v.indices) }
func (v *FilteredView) ColumnCount() int { return len(v.selected) }

// ColumnMeta returns the metadata of the view's i-th exposed column,
// which is source.ColumnMeta(selected[i]).
func (v *FilteredView) ColumnMeta(i int) column.Meta {
	return v.source.ColumnMeta(v.selected[i])
}

// CellAt returns the cell at the view's logical row and exposed column
// i, read through to source at (indices[row], selected[i]).
func (v *FilteredView) CellAt(row, i int) value.Value {
	return v.source.CellAt(v.indices[row], v.selected[i])
}

// ID identifies this view, mainly for logging.
func (v *FilteredView) ID() uuid.UUID { return v.id }

func (v *FilteredView) logErr(err error) error {
	return logsink.Default().Log(err)
}

// keySourceColumn is the source-column index the view currently sorts
// by: selected[keyColumn].
func (v *FilteredView) keySourceColumn() int { return v.selected[v.keyColumn] }

func (v *FilteredView) cellKey(sourceRow int) value.Value {
	return v.source.CellAt(sourceRow, v.keySourceColumn())
}

// less reports whether source row a sorts before source row b under
// the view's current key column and order, using Value's natural total
// order (no column-level float epsilon: a view only has access to
// cells through its source's Observable surface, not the concrete
// Column object backing them — see DESIGN.md).
func (v *FilteredView) less(a, b int) bool {
	ka, kb := v.cellKey(a), v.cellKey(b)
	if v.sortOrder == table.Asc {
		return ka.Less(kb)
	}
	return ka.Greater(kb)
}

// upperBoundInsertPos returns the position in v.indices at which
// sourceRow should be inserted to keep it sorted, with stable
// placement after any existing rows sharing its key (mirrors
// table.upperBoundInsertPos).
func (v *FilteredView) upperBoundInsertPos(sourceRow int) int {
	newKey := v.cellKey(sourceRow)
	lo, hi := 0, len(v.indices)
	for lo < hi {
		mid := (lo + hi) / 2
		existing := v.cellKey(v.indices[mid])
		var past bool
		if v.sortOrder == table.Asc {
			past = existing.Greater(newKey)
		} else {
			past = existing.Less(newKey)
		}
		if past {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// notFound is mapToLocal's sentinel for "sourceRow is not present".
const notFound = -1

// mapToLocal finds sourceRow's position in v.indices by binary
// searching on the key column, narrowing to the run of entries sharing
// its key and then scanning that run for an exact sourceRow match.
// overrideKey, when non-nil, is used instead of the row's current cell
// value — needed when a key-column update has already landed at the
// source but the caller wants the pre-update position.
func (v *FilteredView) mapToLocal(sourceRow int, overrideKey *value.Value) int {
	key := v.cellKey(sourceRow)
	if overrideKey != nil {
		key = *overrideKey
	}

	lo, hi := 0, len(v.indices)
	for lo < hi {
		mid := (lo + hi) / 2
		ek := v.cellKey(v.indices[mid])
		var less bool
		if v.sortOrder == table.Asc {
			less = ek.Less(key)
		} else {
			less = ek.Greater(key)
		}
		if less {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	for i := lo; i < len(v.indices); i++ {
		if !v.cellKey(v.indices[i]).Equal(key) {
			break
		}
		if v.indices[i] == sourceRow {
			return i
		}
	}
	return notFound
}

// refresh recomputes indices from scratch: filter every source row,
// then stable-sort the survivors by the current key column and order.
func (v *FilteredView) refresh() {
	n := v.source.RowCount()
	idx := make([]int, 0, n)
	for r := 0; r < n; r++ {
		ok, err := v.compiledFilter.EvalBool(v.source, r)
		if err != nil {
			v.logErr(fmt.Errorf("view: evaluating filter at source row %d: %w", r, err))
			continue
		}
		if ok {
			idx = append(idx, r)
		}
	}
	sort.SliceStable(idx, func(i, j int) bool { return v.less(idx[i], idx[j]) })
	v.indices = idx
}

func (v *FilteredView) resortOnly() {
	sort.SliceStable(v.indices, func(i, j int) bool { return v.less(v.indices[i], v.indices[j]) })
}

func (v *FilteredView) insertAt(pos, sourceRow int) {
	v.indices = append(v.indices, 0)
	copy(v.indices[pos+1:], v.indices[pos:])
	v.indices[pos] = sourceRow
}

func (v *FilteredView) removeAt(pos int) {
	v.indices = append(v.indices[:pos], v.indices[pos+1:]...)
}

func (v *FilteredView) emit(f func(o table.Observer)) {
	for _, o := range v.observers {
		f(o)
	}
}

// Attach registers o as an observer of this view.
func (v *FilteredView) Attach(o table.Observer) error {
	for _, existing := range v.observers {
		if existing == o {
			return fmt.Errorf("view: observer already attached: %w", kmterr.ErrInvalidArgument)
		}
	}
	v.observers = append(v.observers, o)
	return nil
}

// Detach removes o from this view's observers, if present.
func (v *FilteredView) Detach(o table.Observer) {
	for i, existing := range v.observers {
		if existing == o {
			v.observers = append(v.observers[:i], v.observers[i+1:]...)
			return
		}
	}
}

// Close detaches this view from its source and tells its own observers
// it is going away. A view that outlives its source never needs this
// (its source's AboutToDestruct already cleared it); this is for a view
// torn down voluntarily while its source lives on.
func (v *FilteredView) Close() {
	if v.source != nil {
		v.source.Detach(v)
	}
	v.emit(func(o table.Observer) { o.OnAboutToDestruct() })
	v.observers = nil
	v.indices = nil
	v.selected = nil
	v.source = nil
}
