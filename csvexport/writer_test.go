package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"kmt/column"
	"kmt/table"
	"kmt/value"
)

func mustStudents(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New("students", []column.Meta{
		{Name: "name", Type: value.KindStr},
		{Name: "id", Type: value.KindInt32},
	}, table.Asc)
	if err != nil {
		t.Fatalf("table.New() error = %v", err)
	}
	return tbl
}

func TestWriteCSVQuotesStringColumns(t *testing.T) {
	tbl := mustStudents(t)
	if _, err := tbl.InsertRow([]value.Value{value.Str("Ana, the Great"), value.Int32(1)}); err != nil {
		t.Fatalf("InsertRow() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tbl, ','); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"Ana`) {
		t.Errorf("output %q does not quote the Str column", out)
	}

	r := csv.NewReader(strings.NewReader(out))
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("re-parsing CSV output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2 (header + 1 row)", len(records))
	}
}
