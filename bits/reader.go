package bits

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/google/uuid"
)

var (
	ErrEOF          = errors.New("end of file")
	ErrReadMismatch = errors.New("read size mismatch")
)

const MaxBinReaderBufferSize = 256

// BitsReader decodes the fixed-width scalar encodings tableio's cell
// codec needs (§6's tag table) from an io.Reader.
type BitsReader struct {
	readBuffer [MaxBinReaderBufferSize]byte

	buf   io.Reader
	order binary.ByteOrder
}

// NewReader wraps buf for reading in the given byte order.
func NewReader(buf io.Reader, order binary.ByteOrder) *BitsReader {
	return &BitsReader{buf: buf, order: order}
}

func (r *BitsReader) readNextBytesIntoReadBuffer(size int) error {
	readBytes, err := r.buf.Read(r.readBuffer[:size])
	if err != nil {
		return err
	}
	if readBytes != size {
		return ErrReadMismatch
	}
	return nil
}

func (r *BitsReader) ReadU8() (uint8, error) {
	if err := r.readNextBytesIntoReadBuffer(1); err != nil {
		return 0, err
	}
	return r.readBuffer[0], nil
}

func (r *BitsReader) ReadU16() (uint16, error) {
	if err := r.readNextBytesIntoReadBuffer(2); err != nil {
		return 0, err
	}
	return r.order.Uint16(r.readBuffer[:2]), nil
}

// ReadUUID reads 16 raw bytes, the mirror of BitWriter.PutUUID — used
// to round-trip a Table's instance id through a snapshot header.
func (r *BitsReader) ReadUUID() (result uuid.UUID, err error) {
	err = r.ReadBytes(16, result[:])
	return result, err
}

func (r *BitsReader) ReadU32() (uint32, error) {
	if err := r.readNextBytesIntoReadBuffer(4); err != nil {
		return 0, err
	}
	return r.order.Uint32(r.readBuffer[:4]), nil
}

func (r *BitsReader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

func (r *BitsReader) ReadU64() (uint64, error) {
	if err := r.readNextBytesIntoReadBuffer(8); err != nil {
		return 0, err
	}
	return r.order.Uint64(r.readBuffer[:8]), nil
}

func (r *BitsReader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

func (r *BitsReader) ReadF32() (float32, error) {
	u, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

func (r *BitsReader) ReadF64() (float64, error) {
	u, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

func (r *BitsReader) ReadBytes(n int, out []byte) error {
	readBytes, err := r.buf.Read(out[:n])
	if readBytes != n {
		return ErrReadMismatch
	}
	return err
}
