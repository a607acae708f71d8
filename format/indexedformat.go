package format

import "github.com/kpfaulkner/pixbuf-go/util"

// IndexedFormat describes palette index storage: PixelsPerCompound indices
// of BitsPerPixel bits each inside a compound of WordsPerCompound words.
// Structurally a packed/subword hybrid over a single pseudo-channel.
// BitOrder assigns indices to slots within the compound, WordOrder orders
// the compound's words, and CompoundAlignedRows forces each pixel row to
// start on a compound boundary.
type IndexedFormat struct {
	WordType            WordType
	BitsPerPixel        int32
	PixelsPerCompound   int32
	BitsPerWord         int32
	WordsPerCompound    int32
	BitOrder            Endianness
	WordOrder           Endianness
	CompoundAlignedRows bool
}

func (f IndexedFormat) IsValid() bool {
	if f.BitsPerPixel < 1 || f.PixelsPerCompound < 1 {
		return false
	}
	if f.BitsPerWord < 1 || f.BitsPerWord > f.WordType.BitsPerWord() {
		return false
	}
	if f.WordsPerCompound < 1 {
		return false
	}
	pixelBits, ok := util.CheckedMul32(f.PixelsPerCompound, f.BitsPerPixel)
	if !ok {
		return false
	}
	budget, ok := util.CheckedMul32(f.WordsPerCompound, f.BitsPerWord)
	if !ok {
		return false
	}
	return pixelBits <= budget
}
