package format

import "github.com/kpfaulkner/pixbuf-go/util"

// IntegerFormat stores each pixel as NumChannels x WordsPerChannel words:
// channels in storage order, the words of one channel assembled into a
// value per WordOrder. Only the low BitsPerWord bits of each word carry
// payload.
type IntegerFormat struct {
	WordType        WordType
	BitsPerWord     int32
	WordsPerChannel int32
	WordOrder       Endianness
	Channels        ChannelConf
}

func (f IntegerFormat) IsValid() bool {
	if f.Channels.Space == nil {
		return false
	}
	if f.BitsPerWord < 1 || f.BitsPerWord > f.WordType.BitsPerWord() {
		return false
	}
	if f.WordsPerChannel < 1 {
		return false
	}
	if _, ok := util.CheckedMul32(f.BitsPerWord, f.WordsPerChannel); !ok {
		return false
	}
	_, ok := util.CheckedMul32(f.WordsPerChannel, f.Channels.NumChannels())
	return ok
}

// BitsPerChannel is the payload width of one channel value.
func (f IntegerFormat) BitsPerChannel() int32 {
	return f.BitsPerWord * f.WordsPerChannel
}

func (f IntegerFormat) WordsPerPixel() int32 {
	return f.WordsPerChannel * f.Channels.NumChannels()
}

func (f IntegerFormat) mustBeValid() {
	if !f.IsValid() {
		panic("pixbuf: cast from invalid IntegerFormat")
	}
}
