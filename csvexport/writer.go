// Package csvexport prints a table-shaped data source to CSV, reusing
// the same narrow read-only interface tableio reads snapshots through.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"

	"kmt/column"
	"kmt/kmterr"
	"kmt/value"
)

// TableReader is the read-only surface WriteCSV consumes — the same
// four methods tableio.TableReader exposes beyond Name/ID/SortOrder,
// which a CSV dump has no use for.
type TableReader interface {
	RowCount() int
	ColumnCount() int
	ColumnMeta(i int) column.Meta
	CellAt(row, col int) value.Value
}

// WriteCSV prints every row of t to w using delimiter as the field
// separator. Str-typed columns are written quoted; every other cell is
// printed via its natural string form.
func WriteCSV(w io.Writer, t TableReader, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	n := t.ColumnCount()
	header := make([]string, n)
	isStr := make([]bool, n)
	for ci := 0; ci < n; ci++ {
		meta := t.ColumnMeta(ci)
		header[ci] = meta.Display
		isStr[ci] = meta.Type == value.KindStr
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csvexport: writing header: %w", kmterr.ErrIOFailure)
	}

	record := make([]string, n)
	for row := 0; row < t.RowCount(); row++ {
		for ci := 0; ci < n; ci++ {
			cell := t.CellAt(row, ci)
			if isStr[ci] {
				s, err := cell.Str()
				if err != nil {
					return fmt.Errorf("csvexport: row %d column %d: %w", row, ci, err)
				}
				record[ci] = `"` + s + `"`
				continue
			}
			record[ci] = cell.String()
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csvexport: writing row %d: %w", row, kmterr.ErrIOFailure)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csvexport: flushing: %w", kmterr.ErrIOFailure)
	}
	return nil
}
