package tableio

import (
	"testing"

	"kmt/column"
	"kmt/table"
	"kmt/value"
)

func mixedTypeSchema() []column.Meta {
	return []column.Meta{
		{Name: "id", Type: value.KindInt32},
		{Name: "name", Type: value.KindStr},
		{Name: "score", Type: value.KindFloat64},
		{Name: "active", Type: value.KindBool},
		{Name: "born", Type: value.KindDate},
		{Name: "logged_in", Type: value.KindDateTime},
		{Name: "big", Type: value.KindInt64},
		{Name: "ratio", Type: value.KindFloat32},
	}
}

func buildMixedTypeTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New("mixed", mixedTypeSchema(), table.Desc)
	if err != nil {
		t.Fatalf("table.New() error = %v", err)
	}
	for i := int32(0); i < 10; i++ {
		row := []value.Value{
			value.Int32(i),
			value.Str("row-" + string(rune('a'+i))),
			value.Float64(float64(i) * 1.5),
			value.Bool(i%2 == 0),
			value.FromDate(value.Date{Year: 2000 + uint16(i), Month: uint8(i%12 + 1), Day: uint8(i%28 + 1)}),
			value.FromDateTime(value.DateTime{
				Date:   value.Date{Year: 2010, Month: 1, Day: uint8(i + 1)},
				Hour:   uint8(i), Minute: 30, Second: 0,
			}),
			value.Int64(int64(i) * 1_000_000_000),
			value.Float32(float32(i) / 3),
		}
		if _, err := tbl.InsertRow(row); err != nil {
			t.Fatalf("InsertRow(%d) error = %v", i, err)
		}
	}
	return tbl
}

// TestRoundTripMixedTypes reproduces the spec's snapshot scenario: a
// 10-row table spanning every scalar kind, written and read back, must
// agree cell-for-cell, and the schema and sort order must match too.
func TestRoundTripMixedTypes(t *testing.T) {
	dir := t.TempDir()
	original := buildMixedTypeTable(t)

	if err := WriteTable(dir, original); err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}

	loaded, err := ReadTableFrom(dir)
	if err != nil {
		t.Fatalf("ReadTableFrom() error = %v", err)
	}

	if loaded.Name() != original.Name() {
		t.Errorf("Name() = %q, want %q", loaded.Name(), original.Name())
	}
	if loaded.ID() != original.ID() {
		t.Errorf("ID() = %v, want %v", loaded.ID(), original.ID())
	}
	if loaded.SortOrder() != original.SortOrder() {
		t.Errorf("SortOrder() = %v, want %v", loaded.SortOrder(), original.SortOrder())
	}
	if loaded.RowCount() != original.RowCount() {
		t.Fatalf("RowCount() = %d, want %d", loaded.RowCount(), original.RowCount())
	}
	if loaded.ColumnCount() != original.ColumnCount() {
		t.Fatalf("ColumnCount() = %d, want %d", loaded.ColumnCount(), original.ColumnCount())
	}

	for ci := 0; ci < original.ColumnCount(); ci++ {
		wantMeta := original.ColumnMeta(ci)
		gotMeta := loaded.ColumnMeta(ci)
		if gotMeta.Name != wantMeta.Name || gotMeta.Type != wantMeta.Type {
			t.Errorf("column %d meta = %+v, want %+v", ci, gotMeta, wantMeta)
		}
		for row := 0; row < original.RowCount(); row++ {
			want := original.CellAt(row, ci)
			got := loaded.CellAt(row, ci)
			if !got.Equal(want) {
				t.Errorf("cell (%d,%d) = %v, want %v", row, ci, got, want)
			}
		}
	}
}

func TestRoundTripCompressed(t *testing.T) {
	dir := t.TempDir()
	original := buildMixedTypeTable(t)

	if err := WriteTableCompressed(dir, original); err != nil {
		t.Fatalf("WriteTableCompressed() error = %v", err)
	}

	loaded, err := ReadTableFrom(dir)
	if err != nil {
		t.Fatalf("ReadTableFrom() error = %v", err)
	}
	for ci := 0; ci < original.ColumnCount(); ci++ {
		for row := 0; row < original.RowCount(); row++ {
			want := original.CellAt(row, ci)
			got := loaded.CellAt(row, ci)
			if !got.Equal(want) {
				t.Errorf("cell (%d,%d) = %v, want %v", row, ci, got, want)
			}
		}
	}
}
