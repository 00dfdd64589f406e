package tableio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/errgroup"

	"kmt/bits"
	"kmt/column"
	"kmt/kmterr"
	"kmt/table"
	"kmt/value"
)

// byteOrder is the fixed little-endian encoding this package reads and
// writes; spec.md §6 allows either as long as read and write agree.
var byteOrder = binary.LittleEndian

// TableReader is the narrow read-only surface WriteTable consumes.
// *table.Table satisfies it directly — this package only ever needs
// the seven methods below.
type TableReader interface {
	Name() string
	ID() uuid.UUID
	SortOrder() table.SortOrder
	RowCount() int
	ColumnCount() int
	ColumnMeta(i int) column.Meta
	CellAt(row, col int) value.Value
}

// WriteTable snapshots t into dir as an uncompressed `<name>.kmt` header
// plus one `<column>.clm` file per column, written concurrently.
func WriteTable(dir string, t TableReader) error {
	return writeTable(dir, t, false)
}

// WriteTableCompressed is WriteTable with every column file LZ4-framed,
// detected automatically on read via each file's leading codec byte.
func WriteTableCompressed(dir string, t TableReader) error {
	return writeTable(dir, t, true)
}

func writeTable(dir string, t TableReader, compress bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tableio: creating %s: %w", dir, kmterr.ErrIOFailure)
	}
	if err := writeHeader(dir, t); err != nil {
		return err
	}

	g := new(errgroup.Group)
	for ci := 0; ci < t.ColumnCount(); ci++ {
		ci := ci
		g.Go(func() error { return writeColumnFile(dir, t, ci, compress) })
	}
	return g.Wait()
}

func writeHeader(dir string, t TableReader) error {
	buf := bits.NewEncodeBuffer(make([]byte, 0, 256), byteOrder)
	buf.EnableGrowing()

	name := t.Name()
	buf.PutUint64(uint64(len(name)))
	if _, err := buf.Write([]byte(name)); err != nil {
		return fmt.Errorf("tableio: writing table name: %w", kmterr.ErrIOFailure)
	}
	buf.PutUUID(t.ID())
	buf.PutUint16(uint16(t.SortOrder()))
	buf.PutUint64(uint64(t.ColumnCount()))
	buf.PutUint64(uint64(t.RowCount()))

	for ci := 0; ci < t.ColumnCount(); ci++ {
		meta := t.ColumnMeta(ci)
		buf.PutUint16(kindTag(meta.Type))
		buf.PutUint64(uint64(len(meta.Name)))
		if _, err := buf.Write([]byte(meta.Name)); err != nil {
			return fmt.Errorf("tableio: writing column name: %w", kmterr.ErrIOFailure)
		}
		buf.PutUint64(uint64(len(meta.Display)))
		if _, err := buf.Write([]byte(meta.Display)); err != nil {
			return fmt.Errorf("tableio: writing display name: %w", kmterr.ErrIOFailure)
		}
	}

	path := filepath.Join(dir, name+".kmt")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("tableio: writing %s: %w", path, kmterr.ErrIOFailure)
	}
	return nil
}

func writeColumnFile(dir string, t TableReader, ci int, compress bool) error {
	meta := t.ColumnMeta(ci)
	n := t.RowCount()

	capacity := 64
	if w := cellByteSize(meta.Type); w > 0 {
		capacity = n*w + 1
	}
	buf := bits.NewEncodeBuffer(make([]byte, 0, capacity), byteOrder)
	buf.EnableGrowing()

	for row := 0; row < n; row++ {
		if err := writeCell(&buf, meta.Type, t.CellAt(row, ci)); err != nil {
			return fmt.Errorf("tableio: encoding column %q row %d: %w", meta.Name, row, err)
		}
	}
	payload := buf.Bytes()

	codec := codecRaw
	if compress {
		var framed bytes.Buffer
		zw := lz4.NewWriter(&framed)
		if _, err := zw.Write(payload); err != nil {
			return fmt.Errorf("tableio: lz4 compressing column %q: %w", meta.Name, kmterr.ErrIOFailure)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("tableio: lz4 finalizing column %q: %w", meta.Name, kmterr.ErrIOFailure)
		}
		payload = framed.Bytes()
		codec = codecLZ4
	}

	out := make([]byte, 0, len(payload)+1)
	out = append(out, codec)
	out = append(out, payload...)

	path := filepath.Join(dir, meta.Name+".clm")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("tableio: writing %s: %w", path, kmterr.ErrIOFailure)
	}
	return nil
}
