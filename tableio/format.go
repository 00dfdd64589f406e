// Package tableio implements the snapshot binary format: one
// `<table_name>.kmt` header file plus one `<column_name>.clm` file per
// column, written and read using the same length-prefixed
// BitWriter/BitsReader style the rest of this module's teacher
// dependency uses for binary layouts. The header carries the table's
// uuid.UUID instance id (right after its name) in addition to
// spec.md §6's documented fields, so a round trip restores the same id
// a snapshot was written with — additive, not a deviation from the
// spec's wire layout.
package tableio

import (
	"fmt"

	"kmt/kmterr"
	"kmt/value"
)

// codec tags prepended to every .clm file, one byte, ahead of the cell
// stream proper. Raw is always what WriteTable produces;
// WriteTableCompressed produces LZ4.
const (
	codecRaw byte = 0x00
	codecLZ4 byte = 0x01
)

// kindTag returns the wire tag for a scalar kind, per the header's
// column-type table. This is deliberately 1<<Kind rather than a lookup
// table: Kind's iota order is pinned (see value.Kind's doc comment) to
// exactly match the tag bit positions below.
func kindTag(k value.Kind) uint16 {
	return uint16(1) << uint(k)
}

func tagToKind(tag uint16) (value.Kind, error) {
	for k := value.KindInt32; k <= value.KindDateTime; k++ {
		if kindTag(k) == tag {
			return k, nil
		}
	}
	return 0, fmt.Errorf("tableio: unknown column type tag 0x%04x: %w", tag, kmterr.ErrIOFailure)
}
