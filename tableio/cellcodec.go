package tableio

import (
	"fmt"

	"kmt/bits"
	"kmt/kmterr"
	"kmt/value"
)

// writeCell encodes v (which must already be of kind k) onto w, per the
// per-cell encodings in spec.md §6's tag table, with one documented
// deviation: Str cells are u32-length-prefixed instead of
// NUL-terminated and capped at 255 bytes (see DESIGN.md's Open
// Question decision).
func writeCell(w *bits.BitWriter, k value.Kind, v value.Value) error {
	switch k {
	case value.KindInt32:
		i, err := v.Int32()
		if err != nil {
			return err
		}
		w.PutInt32(i)
	case value.KindInt64:
		i, err := v.Int64()
		if err != nil {
			return err
		}
		w.PutInt64(i)
	case value.KindFloat32:
		f, err := v.Float32()
		if err != nil {
			return err
		}
		w.PutFloat32(f)
	case value.KindFloat64:
		f, err := v.Float64()
		if err != nil {
			return err
		}
		w.PutFloat64(f)
	case value.KindStr:
		s, err := v.Str()
		if err != nil {
			return err
		}
		w.PutUint32(uint32(len(s)))
		if _, err := w.Write([]byte(s)); err != nil {
			return err
		}
	case value.KindBool:
		b, err := v.Bool()
		if err != nil {
			return err
		}
		if b {
			w.WriteByte(1)
		} else {
			w.WriteByte(0)
		}
	case value.KindDate:
		d, err := v.Date()
		if err != nil {
			return err
		}
		w.PutUint16(d.Year)
		w.WriteByte(d.Month)
		w.WriteByte(d.Day)
	case value.KindDateTime:
		dt, err := v.DateTime()
		if err != nil {
			return err
		}
		w.PutUint16(dt.Year)
		w.WriteByte(dt.Month)
		w.WriteByte(dt.Day)
		w.WriteByte(dt.Hour)
		w.WriteByte(dt.Minute)
		w.WriteByte(dt.Second)
	default:
		return fmt.Errorf("tableio: unsupported cell kind %s: %w", k, kmterr.ErrInvalidArgument)
	}
	return nil
}

// readCell decodes one cell of kind k from r, the mirror of writeCell.
func readCell(r *bits.BitsReader, k value.Kind) (value.Value, error) {
	switch k {
	case value.KindInt32:
		i, err := r.ReadI32()
		return value.Int32(i), err
	case value.KindInt64:
		i, err := r.ReadI64()
		return value.Int64(i), err
	case value.KindFloat32:
		f, err := r.ReadF32()
		return value.Float32(f), err
	case value.KindFloat64:
		f, err := r.ReadF64()
		return value.Float64(f), err
	case value.KindStr:
		n, err := r.ReadU32()
		if err != nil {
			return value.Value{}, err
		}
		buf := make([]byte, n)
		if n > 0 {
			if err := r.ReadBytes(int(n), buf); err != nil {
				return value.Value{}, err
			}
		}
		return value.Str(string(buf)), nil
	case value.KindBool:
		b, err := r.ReadU8()
		return value.Bool(b != 0), err
	case value.KindDate:
		year, err := r.ReadU16()
		if err != nil {
			return value.Value{}, err
		}
		month, err := r.ReadU8()
		if err != nil {
			return value.Value{}, err
		}
		day, err := r.ReadU8()
		if err != nil {
			return value.Value{}, err
		}
		return value.FromDate(value.Date{Year: year, Month: month, Day: day}), nil
	case value.KindDateTime:
		year, err := r.ReadU16()
		if err != nil {
			return value.Value{}, err
		}
		month, err := r.ReadU8()
		if err != nil {
			return value.Value{}, err
		}
		day, err := r.ReadU8()
		if err != nil {
			return value.Value{}, err
		}
		hour, err := r.ReadU8()
		if err != nil {
			return value.Value{}, err
		}
		minute, err := r.ReadU8()
		if err != nil {
			return value.Value{}, err
		}
		second, err := r.ReadU8()
		if err != nil {
			return value.Value{}, err
		}
		return value.FromDateTime(value.DateTime{
			Date:   value.Date{Year: year, Month: month, Day: day},
			Hour:   hour, Minute: minute, Second: second,
		}), nil
	default:
		return value.Value{}, fmt.Errorf("tableio: unsupported cell kind %s: %w", k, kmterr.ErrInvalidArgument)
	}
}

// cellByteSize returns the fixed per-cell byte width for fixed-width
// kinds, or -1 for Str (variable width). Used to preallocate a
// BitWriter buffer before streaming a column.
func cellByteSize(k value.Kind) int {
	switch k {
	case value.KindInt32, value.KindFloat32:
		return 4
	case value.KindInt64, value.KindFloat64:
		return 8
	case value.KindBool:
		return 1
	case value.KindDate:
		return 4
	case value.KindDateTime:
		return 7
	default:
		return -1
	}
}
