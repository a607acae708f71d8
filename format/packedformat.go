package format

import "github.com/kpfaulkner/pixbuf-go/util"

// MaxBitFields caps the channel count of a PackedFormat. Only the first
// NumChannels entries of BitFields are meaningful; trailing slots are
// unspecified.
const MaxBitFields = 8

// PackedFormat stores each pixel as one bit compound of WordsPerPixel
// words. Each word contributes its low BitsPerWord bits to the compound,
// words ordered by significance per WordOrder, and the channels sit inside
// the compound as bit fields listed in channel storage order from bit zero
// upward.
type PackedFormat struct {
	WordType      WordType
	BitsPerWord   int32
	WordsPerPixel int32
	WordOrder     Endianness
	BitFields     [MaxBitFields]BitField
	Channels      ChannelConf
}

func (f PackedFormat) IsValid() bool {
	if f.Channels.Space == nil {
		return false
	}
	if f.BitsPerWord < 1 || f.BitsPerWord > f.WordType.BitsPerWord() {
		return false
	}
	if f.WordsPerPixel < 1 {
		return false
	}
	nc := f.Channels.NumChannels()
	if nc > MaxBitFields {
		return false
	}
	budget, ok := util.CheckedMul32(f.BitsPerWord, f.WordsPerPixel)
	if !ok {
		return false
	}
	return ValidBitFields(f.BitFields[:nc], budget)
}

// Fields returns the meaningful prefix of BitFields.
func (f *PackedFormat) Fields() []BitField {
	return f.BitFields[:f.Channels.NumChannels()]
}

func (f PackedFormat) mustBeValid() {
	if !f.IsValid() {
		panic("pixbuf: cast from invalid PackedFormat")
	}
}
