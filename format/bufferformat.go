package format

import (
	"fmt"

	"github.com/kpfaulkner/pixbuf-go/colour"
)

type FormatType int32

const (
	FormatInteger FormatType = iota
	FormatPacked
	FormatSubword
	FormatFloat
	FormatIndexed
)

func (t FormatType) String() string {
	switch t {
	case FormatInteger:
		return "integer"
	case FormatPacked:
		return "packed"
	case FormatSubword:
		return "subword"
	case FormatFloat:
		return "float"
	case FormatIndexed:
		return "indexed"
	}
	return "unknown"
}

// BufferFormat is the tagged variant over the five format kinds. Type
// selects the live variant; the other variant fields are unspecified. Plain
// value type, mutated only through the builder and cast methods.
type BufferFormat struct {
	Type    FormatType
	Integer IntegerFormat
	Packed  PackedFormat
	Subword SubwordFormat
	Float   FloatFormat
	Indexed IndexedFormat
}

func (b *BufferFormat) SetIntegerFormat(wordType WordType, bitsPerWord int32, wordsPerChannel int32,
	wordOrder Endianness, space *colour.ColorSpace, hasAlpha bool, alphaFirst bool, reverseOrder bool) {
	*b = BufferFormat{
		Type: FormatInteger,
		Integer: IntegerFormat{
			WordType:        wordType,
			BitsPerWord:     bitsPerWord,
			WordsPerChannel: wordsPerChannel,
			WordOrder:       wordOrder,
			Channels:        ChannelConf{Space: space, HasAlpha: hasAlpha, AlphaFirst: alphaFirst, ReverseOrder: reverseOrder},
		},
	}
}

// SetPackedFormat panics if the number of supplied bit fields differs from
// the channel count implied by the color space and alpha flag, or exceeds
// MaxBitFields. That is a programmer error, caught fail-fast.
func (b *BufferFormat) SetPackedFormat(wordType WordType, bitsPerWord int32, wordsPerPixel int32,
	wordOrder Endianness, bitFields []BitField, space *colour.ColorSpace, hasAlpha bool, alphaFirst bool, reverseOrder bool) {
	conf := ChannelConf{Space: space, HasAlpha: hasAlpha, AlphaFirst: alphaFirst, ReverseOrder: reverseOrder}
	if int32(len(bitFields)) != conf.NumChannels() || len(bitFields) > MaxBitFields {
		panic(fmt.Sprintf("pixbuf: %d bit fields supplied for %d channels (max %d)",
			len(bitFields), conf.NumChannels(), MaxBitFields))
	}
	f := PackedFormat{
		WordType:      wordType,
		BitsPerWord:   bitsPerWord,
		WordsPerPixel: wordsPerPixel,
		WordOrder:     wordOrder,
		Channels:      conf,
	}
	copy(f.BitFields[:], bitFields)
	*b = BufferFormat{Type: FormatPacked, Packed: f}
}

func (b *BufferFormat) SetSubwordFormat(wordType WordType, bitsPerChannel int32, pixelsPerWord int32,
	bitOrder Endianness, wordAlignedRows bool, space *colour.ColorSpace, hasAlpha bool, alphaFirst bool, reverseOrder bool) {
	*b = BufferFormat{
		Type: FormatSubword,
		Subword: SubwordFormat{
			WordType:        wordType,
			BitsPerChannel:  bitsPerChannel,
			PixelsPerWord:   pixelsPerWord,
			BitOrder:        bitOrder,
			WordAlignedRows: wordAlignedRows,
			Channels:        ChannelConf{Space: space, HasAlpha: hasAlpha, AlphaFirst: alphaFirst, ReverseOrder: reverseOrder},
		},
	}
}

func (b *BufferFormat) SetFloatFormat(wordType FloatWordType, space *colour.ColorSpace, hasAlpha bool, alphaFirst bool, reverseOrder bool) {
	*b = BufferFormat{
		Type: FormatFloat,
		Float: FloatFormat{
			WordType: wordType,
			Channels: ChannelConf{Space: space, HasAlpha: hasAlpha, AlphaFirst: alphaFirst, ReverseOrder: reverseOrder},
		},
	}
}

func (b *BufferFormat) SetIndexedFormat(wordType WordType, bitsPerPixel int32, pixelsPerCompound int32,
	bitsPerWord int32, wordsPerCompound int32, bitOrder Endianness, wordOrder Endianness, compoundAlignedRows bool) {
	*b = BufferFormat{
		Type: FormatIndexed,
		Indexed: IndexedFormat{
			WordType:            wordType,
			BitsPerPixel:        bitsPerPixel,
			PixelsPerCompound:   pixelsPerCompound,
			BitsPerWord:         bitsPerWord,
			WordsPerCompound:    wordsPerCompound,
			BitOrder:            bitOrder,
			WordOrder:           wordOrder,
			CompoundAlignedRows: compoundAlignedRows,
		},
	}
}

func (b *BufferFormat) IsValid() bool {
	switch b.Type {
	case FormatInteger:
		return b.Integer.IsValid()
	case FormatPacked:
		return b.Packed.IsValid()
	case FormatSubword:
		return b.Subword.IsValid()
	case FormatFloat:
		return b.Float.IsValid()
	case FormatIndexed:
		return b.Indexed.IsValid()
	}
	return false
}

// ChannelConf returns the live variant's channel configuration. Indexed
// formats have none (single pseudo-channel) and return the zero value.
func (b *BufferFormat) ChannelConf() ChannelConf {
	switch b.Type {
	case FormatInteger:
		return b.Integer.Channels
	case FormatPacked:
		return b.Packed.Channels
	case FormatSubword:
		return b.Subword.Channels
	case FormatFloat:
		return b.Float.Channels
	}
	return ChannelConf{}
}

// TryCastToInteger dispatches the cast to the live variant. Float and
// indexed formats refuse all casts.
func (b *BufferFormat) TryCastToInteger(target WordType) (IntegerFormat, bool) {
	switch b.Type {
	case FormatInteger:
		return b.Integer.TryCastToInteger(target)
	case FormatPacked:
		return b.Packed.TryCastToInteger(target)
	case FormatSubword:
		return b.Subword.TryCastToInteger(target)
	}
	return IntegerFormat{}, false
}

func (b *BufferFormat) TryCastToPacked(target WordType) (PackedFormat, bool) {
	switch b.Type {
	case FormatInteger:
		return b.Integer.TryCastToPacked(target)
	case FormatPacked:
		return b.Packed.TryCastToPacked(target)
	case FormatSubword:
		return b.Subword.TryCastToPacked(target)
	}
	return PackedFormat{}, false
}

func (b *BufferFormat) TryCastToSubword(target WordType) (SubwordFormat, bool) {
	switch b.Type {
	case FormatInteger:
		return b.Integer.TryCastToSubword(target)
	case FormatPacked:
		return b.Packed.TryCastToSubword(target)
	case FormatSubword:
		return b.Subword.TryCastToSubword(target)
	}
	return SubwordFormat{}, false
}
