package format

import "github.com/kpfaulkner/pixbuf-go/util"

// SubwordFormat packs PixelsPerWord whole pixels into each word. BitOrder
// assigns pixels to slots within the word: little-endian fills slots from
// the least significant end, big-endian from the most significant end, and
// the channels of one pixel follow the same direction inside the slot.
// When WordAlignedRows is set, each pixel row starts on a word boundary.
type SubwordFormat struct {
	WordType        WordType
	BitsPerChannel  int32
	PixelsPerWord   int32
	BitOrder        Endianness
	WordAlignedRows bool
	Channels        ChannelConf
}

func (f SubwordFormat) IsValid() bool {
	if f.Channels.Space == nil {
		return false
	}
	if f.BitsPerChannel < 1 || f.PixelsPerWord < 1 {
		return false
	}
	pixelBits, ok := util.CheckedMul32(f.Channels.NumChannels(), f.BitsPerChannel)
	if !ok {
		return false
	}
	total, ok := util.CheckedMul32(f.PixelsPerWord, pixelBits)
	if !ok {
		return false
	}
	return total <= f.WordType.BitsPerWord()
}

// BitsPerPixel is the width of one pixel slot.
func (f SubwordFormat) BitsPerPixel() int32 {
	return f.Channels.NumChannels() * f.BitsPerChannel
}

func (f SubwordFormat) mustBeValid() {
	if !f.IsValid() {
		panic("pixbuf: cast from invalid SubwordFormat")
	}
}
