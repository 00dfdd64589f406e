package tableio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pierrec/lz4/v4"

	"kmt/bits"
	"kmt/column"
	"kmt/kmterr"
	"kmt/table"
	"kmt/value"
)

type header struct {
	name      string
	id        uuid.UUID
	sortOrder table.SortOrder
	columns   []column.Meta
	rowCount  int
}

// ReadTableFrom reconstructs a Table from a snapshot directory
// previously produced by WriteTable or WriteTableCompressed (the codec
// is detected per-column, so the two are interchangeable on read).
//
// Per spec.md §6's read path: parse the header, construct an empty
// table with just the first column, pause sorting, stream column 0
// row-by-row via InsertRow, resume sorting (which re-sorts a sequence
// that was already sorted at write time, so this is a no-op in
// practice but not assumed), then grow every remaining column via
// AddColumnFromCallable against a reader closure pulling one cell per
// call.
func ReadTableFrom(dir string) (*table.Table, error) {
	name, err := tableNameFromDir(dir)
	if err != nil {
		return nil, err
	}
	hdr, err := readHeader(dir, name)
	if err != nil {
		return nil, err
	}
	if len(hdr.columns) == 0 {
		return nil, fmt.Errorf("tableio: %s has no columns: %w", name, kmterr.ErrIOFailure)
	}

	t, err := table.New(hdr.name, hdr.columns[:1], hdr.sortOrder, table.WithID(hdr.id))
	if err != nil {
		return nil, fmt.Errorf("tableio: reconstructing table %q: %w", hdr.name, err)
	}

	firstReader, firstCloser, err := openColumnStream(dir, hdr.columns[0].Name)
	if err != nil {
		return nil, err
	}
	defer firstCloser()

	t.PauseSorting()
	for row := 0; row < hdr.rowCount; row++ {
		cell, err := readCell(firstReader, hdr.columns[0].Type)
		if err != nil {
			return nil, fmt.Errorf("tableio: reading %s row %d: %w", hdr.columns[0].Name, row, err)
		}
		if _, err := t.InsertRow([]value.Value{cell}); err != nil {
			return nil, fmt.Errorf("tableio: inserting %s row %d: %w", hdr.columns[0].Name, row, err)
		}
	}
	t.ResumeSorting()

	for ci := 1; ci < len(hdr.columns); ci++ {
		meta := hdr.columns[ci]
		r, closer, err := openColumnStream(dir, meta.Name)
		if err != nil {
			return nil, err
		}

		streamErr := t.AddColumnFromCallable(meta, func(_ int) (value.Value, error) {
			return readCell(r, meta.Type)
		})
		closer()
		if streamErr != nil {
			return nil, fmt.Errorf("tableio: loading column %q: %w", meta.Name, streamErr)
		}
	}

	return t, nil
}

func tableNameFromDir(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("tableio: reading %s: %w", dir, kmterr.ErrIOFailure)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".kmt" {
			return e.Name()[:len(e.Name())-len(".kmt")], nil
		}
	}
	return "", fmt.Errorf("tableio: no .kmt header found in %s: %w", dir, kmterr.ErrNotFound)
}

func readHeader(dir, name string) (*header, error) {
	path := filepath.Join(dir, name+".kmt")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tableio: reading %s: %w", path, kmterr.ErrIOFailure)
	}
	r := bits.NewReader(bytes.NewReader(raw), byteOrder)

	nameLen, err := r.ReadU64()
	if err != nil {
		return nil, fmt.Errorf("tableio: %s: %w", path, kmterr.ErrIOFailure)
	}
	nameBytes := make([]byte, nameLen)
	if err := r.ReadBytes(int(nameLen), nameBytes); err != nil {
		return nil, fmt.Errorf("tableio: %s: reading name: %w", path, kmterr.ErrIOFailure)
	}

	id, err := r.ReadUUID()
	if err != nil {
		return nil, fmt.Errorf("tableio: %s: reading table id: %w", path, kmterr.ErrIOFailure)
	}

	sortOrderRaw, err := r.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("tableio: %s: reading sort order: %w", path, kmterr.ErrIOFailure)
	}
	columnCount, err := r.ReadU64()
	if err != nil {
		return nil, fmt.Errorf("tableio: %s: reading column count: %w", path, kmterr.ErrIOFailure)
	}
	rowCount, err := r.ReadU64()
	if err != nil {
		return nil, fmt.Errorf("tableio: %s: reading row count: %w", path, kmterr.ErrIOFailure)
	}

	columns := make([]column.Meta, 0, columnCount)
	for i := uint64(0); i < columnCount; i++ {
		tag, err := r.ReadU16()
		if err != nil {
			return nil, fmt.Errorf("tableio: %s: reading column %d tag: %w", path, i, kmterr.ErrIOFailure)
		}
		kind, err := tagToKind(tag)
		if err != nil {
			return nil, err
		}

		colNameLen, err := r.ReadU64()
		if err != nil {
			return nil, fmt.Errorf("tableio: %s: reading column %d name length: %w", path, i, kmterr.ErrIOFailure)
		}
		colName := make([]byte, colNameLen)
		if err := r.ReadBytes(int(colNameLen), colName); err != nil {
			return nil, fmt.Errorf("tableio: %s: reading column %d name: %w", path, i, kmterr.ErrIOFailure)
		}

		displayLen, err := r.ReadU64()
		if err != nil {
			return nil, fmt.Errorf("tableio: %s: reading column %d display length: %w", path, i, kmterr.ErrIOFailure)
		}
		display := make([]byte, displayLen)
		if err := r.ReadBytes(int(displayLen), display); err != nil {
			return nil, fmt.Errorf("tableio: %s: reading column %d display: %w", path, i, kmterr.ErrIOFailure)
		}

		columns = append(columns, column.Meta{Name: string(colName), Display: string(display), Type: kind})
	}

	return &header{
		name:      string(nameBytes),
		id:        id,
		sortOrder: table.SortOrder(sortOrderRaw),
		columns:   columns,
		rowCount:  int(rowCount),
	}, nil
}

// openColumnStream opens <columnName>.clm, strips and interprets its
// leading codec byte, and returns a BitsReader over the (possibly
// LZ4-decompressed) cell stream plus a closer to release the
// underlying file.
func openColumnStream(dir, columnName string) (*bits.BitsReader, func(), error) {
	path := filepath.Join(dir, columnName+".clm")
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("tableio: opening %s: %w", path, kmterr.ErrIOFailure)
	}

	var codecBuf [1]byte
	if _, err := io.ReadFull(f, codecBuf[:]); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("tableio: reading codec byte of %s: %w", path, kmterr.ErrIOFailure)
	}

	switch codecBuf[0] {
	case codecRaw:
		return bits.NewReader(f, byteOrder), func() { f.Close() }, nil
	case codecLZ4:
		zr := lz4.NewReader(f)
		return bits.NewReader(zr, byteOrder), func() { f.Close() }, nil
	default:
		f.Close()
		return nil, nil, fmt.Errorf("tableio: %s: unknown codec byte 0x%02x: %w", path, codecBuf[0], kmterr.ErrIOFailure)
	}
}
