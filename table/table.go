// Package table implements the core columnar store: a fixed-schema
// sequence of typed Columns, a sorted primary index over column 0, a
// free-slot list for reclaimed rows, and the mutators (insert, drop,
// setData, transformColumn, addColumn*) that keep both consistent while
// emitting the six observer events views absorb.
package table

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"kmt/column"
	"kmt/kmterr"
	"kmt/logsink"
	"kmt/value"
)

// SortOrder is the direction column 0 (or, for a view, its current key
// column) is kept sorted under.
type SortOrder int

const (
	Asc SortOrder = iota
	Desc
)

func (s SortOrder) String() string {
	if s == Desc {
		return "Desc"
	}
	return "Asc"
}

// defaultMaxFreeTolerance is the free-slot count at which dropRow
// triggers a compaction pass.
const defaultMaxFreeTolerance = 64

// Table is the root of the store: clients insert, drop, update, and
// transform rows directly against it, and layer any number of
// FilteredViews over it.
type Table struct {
	id   uuid.UUID
	name string
	log  *slog.Logger

	columns []column.Column

	indices []int // physical slot ids, in logical (sorted) order
	free    []int // reclaimable physical slot ids

	sortOrder        SortOrder
	sortPaused       bool // also suppresses event emission, per the batch-insert contract
	maxFreeTolerance int

	observers []Observer
}

// Option configures a Table at construction time.
type Option func(*Table)

// WithLogger overrides the *slog.Logger a Table logs mutations through.
// The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) { t.log = l }
}

// WithMaxFreeTolerance overrides the free-slot count that triggers
// compaction after a drop. The default is 64.
func WithMaxFreeTolerance(n int) Option {
	return func(t *Table) { t.maxFreeTolerance = n }
}

// WithID overrides the table's instance id, normally assigned fresh by
// New. tableio uses this to restore the id a snapshot was written with.
func WithID(id uuid.UUID) Option {
	return func(t *Table) { t.id = id }
}

var tableNameRe = func() func(string) bool {
	return func(s string) bool {
		if len(s) == 0 {
			return false
		}
		c := s[0]
		if !(c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			return false
		}
		for i := 1; i < len(s); i++ {
			b := s[i]
			if b < 0x20 || b > 0x7e || b == '/' || b == '\\' {
				return false
			}
		}
		return true
	}
}()

// New constructs a Table. schema may be empty — a table with no columns
// yet, grown via AddColumn/AddColumnExpr/AddColumnFromCallable, whose
// first addition becomes the key column and triggers a sort — or
// pre-populated with the full column set up front. Every column name
// must be valid and unique, and name must match [A-Za-z_] followed by
// printable characters excluding tab, newline, '/', '\' (space
// allowed).
func New(name string, schema []column.Meta, sortOrder SortOrder, opts ...Option) (*Table, error) {
	if !tableNameRe(name) {
		return nil, fmt.Errorf("table name %q is invalid: %w", name, kmterr.ErrInvalidArgument)
	}

	seen := make(map[string]bool, len(schema))
	columns := make([]column.Column, 0, len(schema))
	for i := range schema {
		meta := schema[i]
		if seen[meta.Name] {
			return nil, fmt.Errorf("table %q: duplicate column name %q: %w", name, meta.Name, kmterr.ErrInvalidArgument)
		}
		seen[meta.Name] = true
		c, err := column.New(meta)
		if err != nil {
			return nil, fmt.Errorf("table %q: column %q: %w", name, meta.Name, err)
		}
		columns = append(columns, c)
	}

	t := &Table{
		id:               uuid.New(),
		name:             name,
		log:              slog.Default(),
		columns:          columns,
		sortOrder:        sortOrder,
		maxFreeTolerance: defaultMaxFreeTolerance,
	}
	for _, opt := range opts {
		opt(t)
	}

	t.log.Debug("table created", "table_id", t.id, "name", name, "columns", len(columns), "sort_order", sortOrder)
	return t, nil
}

func (t *Table) Name() string          { return t.name }
func (t *Table) SortOrder() SortOrder  { return t.sortOrder }
func (t *Table) RowCount() int         { return len(t.indices) }
func (t *Table) ColumnCount() int      { return len(t.columns) }
func (t *Table) FreeCount() int        { return len(t.free) }
func (t *Table) ID() uuid.UUID         { return t.id }

func (t *Table) ColumnMeta(i int) column.Meta { return t.columns[i].Meta() }

// ColumnIndex returns the index of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.columns {
		if c.Meta().Name == name {
			return i
		}
	}
	return -1
}

// CellAt returns the cell at logical row, column col. Row and col must
// be in range.
func (t *Table) CellAt(row, col int) value.Value {
	slot := t.indices[row]
	return t.columns[col].Get(slot)
}

func (t *Table) logErr(err error) error {
	return logsink.Default().Log(err)
}

func (t *Table) capacity() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

func (t *Table) emit(f func(o Observer)) {
	if t.sortPaused {
		return
	}
	for _, o := range t.observers {
		f(o)
	}
}

// Attach registers o as an observer of this Table. Duplicate attaches
// are rejected.
func (t *Table) Attach(o Observer) error {
	for _, existing := range t.observers {
		if existing == o {
			return fmt.Errorf("observer already attached: %w", kmterr.ErrInvalidArgument)
		}
	}
	t.observers = append(t.observers, o)
	return nil
}

// Detach removes o from this Table's observers, if present.
func (t *Table) Detach(o Observer) {
	for i, existing := range t.observers {
		if existing == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Close emits AboutToDestruct to every observer, then clears them. A
// Table is still usable after Close (the spec places no fencing on
// further calls); views attached to it simply stop hearing from it.
func (t *Table) Close() {
	for _, o := range t.observers {
		o.OnAboutToDestruct()
	}
	t.observers = nil
}
