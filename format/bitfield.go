package format

import "github.com/kpfaulkner/pixbuf-go/util"

// BitField places one channel inside a bit compound: Gap unused bits above
// the end of the previous field, then Width bits of payload.
type BitField struct {
	Width int32
	Gap   int32
}

// ValidBitFields reports whether the fields fit, without overlap, inside a
// compound of bitBudget bits. Accumulates gap+width per field in order and
// checks the running total, rejecting non-positive widths, negative gaps
// and arithmetic overflow of the total.
func ValidBitFields(fields []BitField, bitBudget int32) bool {
	total := int32(0)
	for _, f := range fields {
		if f.Width < 1 || f.Gap < 0 {
			return false
		}
		step, ok := util.CheckedAdd32(f.Gap, f.Width)
		if !ok {
			return false
		}
		total, ok = util.CheckedAdd32(total, step)
		if !ok {
			return false
		}
		if total > bitBudget {
			return false
		}
	}
	return true
}

// BitFieldShift returns the bit offset of field i's least significant bit
// from bit zero of the compound.
func BitFieldShift(fields []BitField, i int32) int32 {
	shift := int32(0)
	for j := int32(0); j < i; j++ {
		shift += fields[j].Gap + fields[j].Width
	}
	return shift + fields[i].Gap
}
