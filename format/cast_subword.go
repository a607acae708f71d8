package format

// TryCastToInteger unpacks the degenerate one-pixel-per-word,
// single-channel case. Relabel needs the value in the low bits, so a
// big-endian bit order only works when the channel fills the word.
//
// Byte split turns each channel into a run of whole bytes: the channel
// width must be a byte multiple, every word bit must be payload, and the
// bit order must match the native byte order. With one pixel per word a
// mismatch is instead a pure reversal of the channel order. Word
// aligned rows would introduce per-row padding that an integer format
// cannot express, unless each pixel is already a whole word.
func (f SubwordFormat) TryCastToInteger(target WordType) (IntegerFormat, bool) {
	f.mustBeValid()
	w := f.WordType.BitsPerWord()
	switch classifyCast(f.WordType, target) {
	case castRelabel:
		if f.PixelsPerWord != 1 || f.Channels.NumChannels() != 1 {
			return IntegerFormat{}, false
		}
		if f.BitsPerChannel != w && f.BitOrder != LittleEndian {
			return IntegerFormat{}, false
		}
		g := IntegerFormat{
			WordType:        target,
			BitsPerWord:     f.BitsPerChannel,
			WordsPerChannel: 1,
			WordOrder:       LittleEndian,
			Channels:        f.Channels,
		}
		return g, true

	case castByteSplit:
		e, ok := f.WordType.NativeEndianness()
		if !ok {
			return IntegerFormat{}, false
		}
		if f.BitsPerChannel%8 != 0 {
			return IntegerFormat{}, false
		}
		if f.PixelsPerWord*f.BitsPerPixel() != w {
			return IntegerFormat{}, false
		}
		if f.PixelsPerWord != 1 {
			if f.BitOrder != e || f.WordAlignedRows {
				return IntegerFormat{}, false
			}
		}
		g := IntegerFormat{
			WordType:        WordByte,
			BitsPerWord:     8,
			WordsPerChannel: f.BitsPerChannel / 8,
			WordOrder:       e,
			Channels:        f.Channels,
		}
		if f.BitOrder != e {
			g.Channels.Reverse()
		}
		return g, true
	}
	return IntegerFormat{}, false
}

// TryCastToPacked re-expresses a one-pixel-per-word format as a bit
// compound over the whole word; a big-endian bit order places the pixel at
// the top of the word (leading gap on the lowest field) and reverses the
// channel listing.
//
// Byte split: with one pixel per word, the compound becomes the word's
// bytes in native order unconditionally. With several pixels per word,
// each slot becomes its own compound, requiring byte-aligned slots with no
// leftover word bits, a bit order matching the native byte order, and no
// word-aligned row padding.
func (f SubwordFormat) TryCastToPacked(target WordType) (PackedFormat, bool) {
	f.mustBeValid()
	nc := f.Channels.NumChannels()
	if nc > MaxBitFields {
		return PackedFormat{}, false
	}
	w := f.WordType.BitsPerWord()
	n := f.WordType.BytesPerWord()
	slotBits := f.BitsPerPixel()

	switch classifyCast(f.WordType, target) {
	case castRelabel:
		if f.PixelsPerWord != 1 {
			return PackedFormat{}, false
		}
		g := PackedFormat{
			WordType:      target,
			BitsPerWord:   w,
			WordsPerPixel: 1,
			WordOrder:     LittleEndian,
			Channels:      f.Channels,
		}
		fillSlotFields(&g, f.BitOrder, nc, f.BitsPerChannel, w-slotBits)
		if f.BitOrder == BigEndian {
			g.Channels.Reverse()
		}
		return g, true

	case castByteSplit:
		e, ok := f.WordType.NativeEndianness()
		if !ok {
			return PackedFormat{}, false
		}
		if f.PixelsPerWord == 1 {
			g := PackedFormat{
				WordType:      WordByte,
				BitsPerWord:   8,
				WordsPerPixel: n,
				WordOrder:     e,
				Channels:      f.Channels,
			}
			fillSlotFields(&g, f.BitOrder, nc, f.BitsPerChannel, w-slotBits)
			if f.BitOrder == BigEndian {
				g.Channels.Reverse()
			}
			return g, true
		}
		if slotBits%8 != 0 || f.PixelsPerWord*slotBits != w {
			return PackedFormat{}, false
		}
		if f.BitOrder != e || f.WordAlignedRows {
			return PackedFormat{}, false
		}
		g := PackedFormat{
			WordType:      WordByte,
			BitsPerWord:   8,
			WordsPerPixel: slotBits / 8,
			WordOrder:     e,
			Channels:      f.Channels,
		}
		fillSlotFields(&g, f.BitOrder, nc, f.BitsPerChannel, 0)
		if f.BitOrder == BigEndian {
			g.Channels.Reverse()
		}
		return g, true
	}
	return PackedFormat{}, false
}

// fillSlotFields lays out nc channel fields of equal width inside a pixel
// slot. Little-endian bit order packs from bit zero; big-endian packs from
// the top, leaving topGap unused bits at the bottom and listing the fields
// in reverse channel order (the caller flips the channel configuration).
func fillSlotFields(g *PackedFormat, bitOrder Endianness, nc int32, width int32, topGap int32) {
	for i := int32(0); i < nc; i++ {
		gap := int32(0)
		if i == 0 && bitOrder == BigEndian {
			gap = topGap
		}
		g.BitFields[i] = BitField{Width: width, Gap: gap}
	}
}

// TryCastToSubword relabels trivially. Byte split regroups the pixel slots
// into bytes: the slot width must divide 8, the slots must cover the word
// exactly, the bit order must match the native byte order (a mismatch
// would reverse the slot sequence per word), and rows must not be
// word-aligned, since the byte format can no longer express the padding.
func (f SubwordFormat) TryCastToSubword(target WordType) (SubwordFormat, bool) {
	f.mustBeValid()
	switch classifyCast(f.WordType, target) {
	case castRelabel:
		g := f
		g.WordType = target
		return g, true
	case castByteSplit:
		e, ok := f.WordType.NativeEndianness()
		if !ok {
			return SubwordFormat{}, false
		}
		slotBits := f.BitsPerPixel()
		if slotBits > 8 || 8%slotBits != 0 {
			return SubwordFormat{}, false
		}
		if f.PixelsPerWord*slotBits != f.WordType.BitsPerWord() {
			return SubwordFormat{}, false
		}
		if f.BitOrder != e || f.WordAlignedRows {
			return SubwordFormat{}, false
		}
		g := SubwordFormat{
			WordType:        WordByte,
			BitsPerChannel:  f.BitsPerChannel,
			PixelsPerWord:   8 / slotBits,
			BitOrder:        f.BitOrder,
			WordAlignedRows: false,
			Channels:        f.Channels,
		}
		return g, true
	}
	return SubwordFormat{}, false
}
