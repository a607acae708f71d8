package format

import "github.com/kpfaulkner/pixbuf-go/util"

// TryCastToInteger reinterprets the format under the target word type.
//
// Relabel form always succeeds. Byte split requires every word bit to be
// payload (per-word padding has no integer-format expression in byte
// units) and, for multi-word channels, a word order matching the native
// byte order; a single word per channel makes the order immaterial.
func (f IntegerFormat) TryCastToInteger(target WordType) (IntegerFormat, bool) {
	f.mustBeValid()
	switch classifyCast(f.WordType, target) {
	case castRelabel:
		g := f
		g.WordType = target
		return g, true
	case castByteSplit:
		e, ok := f.WordType.NativeEndianness()
		if !ok {
			return IntegerFormat{}, false
		}
		if f.BitsPerWord != f.WordType.BitsPerWord() {
			return IntegerFormat{}, false
		}
		if f.WordsPerChannel != 1 && f.WordOrder != e {
			return IntegerFormat{}, false
		}
		wpc, ok := util.CheckedMul32(f.WordsPerChannel, f.WordType.BytesPerWord())
		if !ok {
			return IntegerFormat{}, false
		}
		g := IntegerFormat{
			WordType:        WordByte,
			BitsPerWord:     8,
			WordsPerChannel: wpc,
			WordOrder:       e,
			Channels:        f.Channels,
		}
		return g, true
	}
	return IntegerFormat{}, false
}

// TryCastToPacked re-expresses the pixel as a single bit compound of
// WordsPerPixel words.
//
// Relabel: each channel becomes one zero-gap field of its full payload
// width. A big-endian word order puts the first stored channel at the top
// of the compound, so the field listing reverses the channel order.
//
// Byte split: beyond the shared native-order requirement, per-word padding
// is only expressible when each channel is a single word (the dead bits
// then become one gap per field); multi-word channels additionally need a
// word order matching the native byte order.
func (f IntegerFormat) TryCastToPacked(target WordType) (PackedFormat, bool) {
	f.mustBeValid()
	nc := f.Channels.NumChannels()
	if nc > MaxBitFields {
		return PackedFormat{}, false
	}
	switch classifyCast(f.WordType, target) {
	case castRelabel:
		wpp, ok := util.CheckedMul32(f.WordsPerChannel, nc)
		if !ok {
			return PackedFormat{}, false
		}
		g := PackedFormat{
			WordType:      target,
			BitsPerWord:   f.BitsPerWord,
			WordsPerPixel: wpp,
			WordOrder:     f.WordOrder,
			Channels:      f.Channels,
		}
		width := f.BitsPerChannel()
		for i := int32(0); i < nc; i++ {
			g.BitFields[i] = BitField{Width: width, Gap: 0}
		}
		if f.WordOrder == BigEndian {
			g.Channels.Reverse()
		}
		return g, true

	case castByteSplit:
		e, ok := f.WordType.NativeEndianness()
		if !ok {
			return PackedFormat{}, false
		}
		w := f.WordType.BitsPerWord()
		n := f.WordType.BytesPerWord()
		allBitsUsed := f.BitsPerWord == w
		if !allBitsUsed && f.WordsPerChannel != 1 {
			return PackedFormat{}, false
		}
		if f.WordsPerChannel != 1 && f.WordOrder != e {
			return PackedFormat{}, false
		}
		bytesPerChannel, ok := util.CheckedMul32(f.WordsPerChannel, n)
		if !ok {
			return PackedFormat{}, false
		}
		wpp, ok := util.CheckedMul32(bytesPerChannel, nc)
		if !ok {
			return PackedFormat{}, false
		}
		g := PackedFormat{
			WordType:      WordByte,
			BitsPerWord:   8,
			WordsPerPixel: wpp,
			WordOrder:     e,
			Channels:      f.Channels,
		}
		for i := int32(0); i < nc; i++ {
			if allBitsUsed {
				g.BitFields[i] = BitField{Width: bytesPerChannel * 8, Gap: 0}
			} else {
				// Single word per channel; the word's dead bits sit above
				// the previous channel's payload.
				gap := int32(0)
				if i > 0 {
					gap = n*8 - f.BitsPerWord
				}
				g.BitFields[i] = BitField{Width: f.BitsPerWord, Gap: gap}
			}
		}
		if e == BigEndian {
			g.Channels.Reverse()
		}
		return g, true
	}
	return PackedFormat{}, false
}

// TryCastToSubword succeeds only for single-channel formats with one word
// per channel, the degenerate case where a word is one whole pixel. Byte
// split can never produce whole pixels per byte from a multi-byte word, so
// it always fails.
func (f IntegerFormat) TryCastToSubword(target WordType) (SubwordFormat, bool) {
	f.mustBeValid()
	if classifyCast(f.WordType, target) != castRelabel {
		return SubwordFormat{}, false
	}
	if f.Channels.NumChannels() != 1 || f.WordsPerChannel != 1 {
		return SubwordFormat{}, false
	}
	g := SubwordFormat{
		WordType:        target,
		BitsPerChannel:  f.BitsPerWord,
		PixelsPerWord:   1,
		BitOrder:        LittleEndian,
		WordAlignedRows: false,
		Channels:        f.Channels,
	}
	return g, true
}
