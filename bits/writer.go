package bits

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// BitWriter is an append-only byte buffer with fixed-width put methods
// for the scalar encodings tableio's cell codec needs (§6's tag table).
// It does not grow unless EnableGrowing is called.
type BitWriter struct {
	pos   int
	data  []byte
	size  int
	order binary.ByteOrder

	growingEnabled bool
}

// NewEncodeBuffer wraps buf for writing, starting at position 0.
func NewEncodeBuffer(buf []byte, order binary.ByteOrder) BitWriter {
	return BitWriter{data: buf, size: len(buf), order: order}
}

// EnableGrowing lets the buffer reallocate on overflow instead of
// panicking; tableio always enables this since a snapshot's column
// payload size isn't known exactly up front for Str columns.
func (w *BitWriter) EnableGrowing() {
	w.growingEnabled = true
}

func (w *BitWriter) grow(atLeast int) {
	newSize := w.size * 2
	if need := w.pos + atLeast; need > newSize {
		newSize = need
	}

	newBuf := make([]byte, newSize)
	copy(newBuf, w.data[:w.pos])
	w.data = newBuf
	w.size = newSize
}

func (w *BitWriter) tryGrow(n int) {
	if (w.pos + n) > w.size {
		if w.growingEnabled {
			w.grow(n)
		} else {
			panic(fmt.Sprintf("bit writer growing is disabled on pos : %d, try grow %d, from size : %d", w.pos, n, w.size))
		}
	}
}

// Write appends p verbatim, growing if needed and enabled.
func (w *BitWriter) Write(p []byte) (n int, err error) {
	oldl := len(p)
	w.tryGrow(oldl)

	n = copy(w.data[w.pos:], p)
	if oldl != n {
		return 0, errors.New("not enough space")
	}
	w.pos += n
	return
}

// Bytes returns the written prefix of the buffer.
func (w *BitWriter) Bytes() []byte {
	return w.data[:w.pos]
}

func (w *BitWriter) PutInt32(v int32) {
	w.tryGrow(4)
	w.order.PutUint32(w.data[w.pos:], uint32(v))
	w.pos += 4
}

func (w *BitWriter) PutUint32(v uint32) {
	w.tryGrow(4)
	w.order.PutUint32(w.data[w.pos:], v)
	w.pos += 4
}

func (w *BitWriter) PutInt64(v int64) {
	w.tryGrow(8)
	w.order.PutUint64(w.data[w.pos:], uint64(v))
	w.pos += 8
}

func (w *BitWriter) PutUint64(v uint64) {
	w.tryGrow(8)
	w.order.PutUint64(w.data[w.pos:], v)
	w.pos += 8
}

func (w *BitWriter) PutFloat32(v float32) {
	w.tryGrow(4)
	w.order.PutUint32(w.data[w.pos:], math.Float32bits(v))
	w.pos += 4
}

func (w *BitWriter) PutFloat64(v float64) {
	w.tryGrow(8)
	w.order.PutUint64(w.data[w.pos:], math.Float64bits(v))
	w.pos += 8
}

func (w *BitWriter) PutUint16(v uint16) {
	w.tryGrow(2)
	w.order.PutUint16(w.data[w.pos:], v)
	w.pos += 2
}

func (w *BitWriter) WriteByte(u uint8) {
	w.tryGrow(1)
	w.data[w.pos] = u
	w.pos++
}

// PutUUID writes u's 16 raw bytes, the mirror of BitsReader.ReadUUID.
func (w *BitWriter) PutUUID(u uuid.UUID) {
	w.tryGrow(16)
	copy(w.data[w.pos:], u[:])
	w.pos += 16
}
