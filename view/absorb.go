package view

import (
	"fmt"

	"kmt/table"
	"kmt/value"
)

// OnRowInserted absorbs a new row appearing in the source at logical
// index r: every stored source-row index at or past r shifts up by
// one (the source renumbered everything after the insertion point),
// then r itself is tested against the filter and spliced in if it
// passes.
func (v *FilteredView) OnRowInserted(r int) {
	for i := range v.indices {
		if v.indices[i] >= r {
			v.indices[i]++
		}
	}

	ok, err := v.compiledFilter.EvalBool(v.source, r)
	if err != nil {
		v.logErr(fmt.Errorf("view: evaluating filter at source row %d: %w", r, err))
		return
	}
	if !ok {
		return
	}
	pos := v.upperBoundInsertPos(r)
	v.insertAt(pos, r)
	v.emit(func(o table.Observer) { o.OnRowInserted(pos) })
}

// OnRowDropped absorbs a row disappearing from the source at logical
// index r. The source has already removed the row, so its key can no
// longer be read there; r's local position is found by scanning indices
// before any renumbering. It is erased if present, then every remaining
// source-row index past r shifts down by one. The RowDropped event is
// relayed regardless of whether r was actually present in this view — a
// view nested above this one still needs to hear about the drop to keep
// its own indices in step. A relayed miss (r == notFound) leaves indices
// unchanged and is passed on as a miss.
func (v *FilteredView) OnRowDropped(r int) {
	local := notFound
	if r != notFound {
		local = indexOfInt(v.indices, r)
		if local != notFound {
			v.removeAt(local)
		}
		for i := range v.indices {
			if v.indices[i] > r {
				v.indices[i]--
			}
		}
	}
	v.emit(func(o table.Observer) { o.OnRowDropped(local) })
}

// OnDataUpdated absorbs a cell change at source row r, source column
// c, whose previous value was old. The combination of whether c is the
// view's current key column, whether the filter references c, whether
// r is currently present, and whether the (possibly re-evaluated)
// filter still passes determines the outcome:
//
//   - the key column changed and r is present: the row's sort position
//     may have moved, so it is always erased and reinserted, regardless
//     of the filter;
//   - otherwise, if the filter doesn't reference c: relay the update if
//     r is present (a key-column change already handled above never
//     reaches here), else ignore;
//   - otherwise the filter references c: re-evaluate it at r. Present
//     and still passing relays the update; present and now failing
//     drops the row; absent and now passing inserts it; absent and
//     still failing is ignored.
func (v *FilteredView) OnDataUpdated(r, c int, old value.Value) {
	keyCol := v.keySourceColumn()
	keyChanged := c == keyCol

	var overrideKey *value.Value
	if keyChanged {
		o := old
		overrideKey = &o
	}
	localOld := v.mapToLocal(r, overrideKey)
	stillHere := localOld != notFound

	if stillHere && keyChanged {
		v.removeAt(localOld)
		v.emit(func(o table.Observer) { o.OnRowDropped(localOld) })
		pos := v.upperBoundInsertPos(r)
		v.insertAt(pos, r)
		v.emit(func(o table.Observer) { o.OnRowInserted(pos) })
		return
	}

	exposedCol := indexOfInt(v.selected, c)
	filterUsesC := v.compiledFilter.ReferencedColumns()[c]

	if !filterUsesC {
		if !stillHere {
			return
		}
		if exposedCol >= 0 {
			v.emit(func(o table.Observer) { o.OnDataUpdated(localOld, exposedCol, old) })
		}
		return
	}

	passes, err := v.compiledFilter.EvalBool(v.source, r)
	if err != nil {
		v.logErr(fmt.Errorf("view: evaluating filter at source row %d: %w", r, err))
		return
	}

	if stillHere {
		if passes {
			if exposedCol >= 0 {
				v.emit(func(o table.Observer) { o.OnDataUpdated(localOld, exposedCol, old) })
			}
			return
		}
		v.removeAt(localOld)
		v.emit(func(o table.Observer) { o.OnRowDropped(localOld) })
		return
	}

	if passes {
		pos := v.upperBoundInsertPos(r)
		v.insertAt(pos, r)
		v.emit(func(o table.Observer) { o.OnRowInserted(pos) })
	}
}

// OnColumnTransformed absorbs a whole-column rewrite at source column
// c. If c is one of the view's exposed columns, every cell the view
// shows (or filters on) may have changed, so it does a full refresh. c
// is always a member of selected when it equals the key column (K is
// selected[keyColumn]), so the "resort only" branch the event tables
// describe for a key-only change is unreachable in practice here —
// kept for parity with the documented decision table.
func (v *FilteredView) OnColumnTransformed(c int) {
	if indexOfInt(v.selected, c) >= 0 {
		v.refresh()
		v.emit(func(o table.Observer) { o.OnRefresh() })
		return
	}
	if c == v.keySourceColumn() {
		v.resortOnly()
		v.emit(func(o table.Observer) { o.OnRefresh() })
	}
}

// OnRefresh absorbs a wholesale source refresh by recomputing from
// scratch and relaying Refresh onward.
func (v *FilteredView) OnRefresh() {
	v.refresh()
	v.emit(func(o table.Observer) { o.OnRefresh() })
}

// OnAboutToDestruct absorbs the source's teardown notice: it relays
// AboutToDestruct to its own observers and clears its state, but does
// not call source.Detach — the source is already tearing down its own
// observer list.
func (v *FilteredView) OnAboutToDestruct() {
	v.emit(func(o table.Observer) { o.OnAboutToDestruct() })
	v.observers = nil
	v.indices = nil
	v.selected = nil
	v.source = nil
}

func indexOfInt(s []int, x int) int {
	for i, v := range s {
		if v == x {
			return i
		}
	}
	return -1
}
