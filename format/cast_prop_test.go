package format

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/kpfaulkner/pixbuf-go/colour"
	"github.com/kpfaulkner/pixbuf-go/util"
)

var castWordTypes = []WordType{
	WordByte, WordShort, WordInt, WordLong, WordFictBig, WordFictLittle, WordFictMixed,
}

func orderOf(big bool) Endianness {
	if big {
		return BigEndian
	}
	return LittleEndian
}

func confOf(rgb bool, hasAlpha bool, alphaFirst bool, reverseOrder bool) ChannelConf {
	space := colour.Lum
	if rgb {
		space = colour.RGB
	}
	return ChannelConf{Space: space, HasAlpha: hasAlpha, AlphaFirst: alphaFirst, ReverseOrder: reverseOrder}
}

// formatsEquivalent is the bool form of assertEquivalent for property
// bodies.
func formatsEquivalent(origin compAddr, originWidth func(int32) int32,
	target compAddr, targetWidth func(int32) int32, numChannels int32) bool {
	for _, dim := range []util.Dimension{{Width: 1, Height: 2}, {Width: 2, Height: 2}} {
		for y := int32(0); y < dim.Height; y++ {
			for x := int32(0); x < dim.Width; x++ {
				for c := int32(0); c < numChannels; c++ {
					if originWidth(c) != targetWidth(c) {
						return false
					}
					for bit := int32(0); bit < originWidth(c); bit++ {
						ob, obit, ok := origin(dim.Width, x, y, c, bit)
						if !ok {
							return false
						}
						tb, tbit, ok := target(dim.Width, x, y, c, bit)
						if !ok {
							return false
						}
						if ob != tb || obit != tbit {
							return false
						}
					}
				}
			}
		}
	}
	return true
}

// Any integer format must relabel to its own word type unchanged, and any
// successful cast to bytes must address exactly the bits the origin
// addressed.
func TestPropertyIntegerCasts(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	properties.Property("casts to bytes never relocate a channel bit", prop.ForAll(
		func(typeIdx int, fullPayload bool, wordsPerChannel int, bigOrder bool,
			rgb bool, hasAlpha bool, alphaFirst bool, reverseOrder bool) bool {
			wordType := castWordTypes[typeIdx]
			bits := wordType.BitsPerWord()
			if !fullPayload {
				bits = util.Max(1, bits-3)
			}
			f := IntegerFormat{
				WordType:        wordType,
				BitsPerWord:     bits,
				WordsPerChannel: int32(wordsPerChannel),
				WordOrder:       orderOf(bigOrder),
				Channels:        confOf(rgb, hasAlpha, alphaFirst, reverseOrder),
			}
			if !f.IsValid() {
				return false
			}
			nc := f.Channels.NumChannels()

			if g, ok := f.TryCastToInteger(f.WordType); !ok || g != f {
				return false
			}

			oa, ow := integerAddr(f)
			if g, ok := f.TryCastToInteger(WordByte); ok {
				ta, tw := integerAddr(g)
				if !g.IsValid() || !formatsEquivalent(oa, ow, ta, tw, nc) {
					return false
				}
			}
			if g, ok := f.TryCastToPacked(WordByte); ok {
				ta, tw := packedAddr(g)
				if !g.IsValid() || !formatsEquivalent(oa, ow, ta, tw, nc) {
					return false
				}
			}
			if g, ok := f.TryCastToSubword(WordByte); ok {
				ta, tw := subwordAddr(g)
				if !g.IsValid() || !formatsEquivalent(oa, ow, ta, tw, nc) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, len(castWordTypes)-1),
		gen.Bool(),
		gen.IntRange(1, 3),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestPropertySubwordCasts(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	bitsPerChannelChoices := []int32{1, 2, 4, 5, 8, 12}

	properties.Property("casts to bytes never relocate a channel bit", prop.ForAll(
		func(typeIdx int, bpcIdx int, packWord bool, bigBitOrder bool, alignedRows bool,
			rgb bool, hasAlpha bool, alphaFirst bool, reverseOrder bool) bool {
			wordType := castWordTypes[typeIdx]
			w := wordType.BitsPerWord()
			conf := confOf(rgb, hasAlpha, alphaFirst, reverseOrder)
			nc := conf.NumChannels()
			bpc := bitsPerChannelChoices[bpcIdx]
			slotBits := nc * bpc
			if slotBits > w {
				return true
			}
			ppw := int32(1)
			if packWord {
				ppw = w / slotBits
			}
			f := SubwordFormat{
				WordType:        wordType,
				BitsPerChannel:  bpc,
				PixelsPerWord:   ppw,
				BitOrder:        orderOf(bigBitOrder),
				WordAlignedRows: alignedRows,
				Channels:        conf,
			}
			if !f.IsValid() {
				return false
			}

			if g, ok := f.TryCastToSubword(f.WordType); !ok || g != f {
				return false
			}

			oa, ow := subwordAddr(f)
			if g, ok := f.TryCastToSubword(WordByte); ok {
				ta, tw := subwordAddr(g)
				if !g.IsValid() || !formatsEquivalent(oa, ow, ta, tw, nc) {
					return false
				}
			}
			if g, ok := f.TryCastToInteger(WordByte); ok {
				ta, tw := integerAddr(g)
				if !g.IsValid() || !formatsEquivalent(oa, ow, ta, tw, nc) {
					return false
				}
			}
			if g, ok := f.TryCastToPacked(WordByte); ok {
				ta, tw := packedAddr(g)
				if !g.IsValid() || !formatsEquivalent(oa, ow, ta, tw, nc) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, len(castWordTypes)-1),
		gen.IntRange(0, len(bitsPerChannelChoices)-1),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestPropertyPackedCasts(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300

	properties := gopter.NewProperties(parameters)

	properties.Property("casts to bytes never relocate a channel bit", prop.ForAll(
		func(typeIdx int, w1, w2, w3, w4 int, g1, g2, g3, g4 int, bigOrder bool,
			rgb bool, hasAlpha bool, alphaFirst bool, reverseOrder bool) bool {
			wordType := castWordTypes[typeIdx]
			bits := wordType.BitsPerWord()
			conf := confOf(rgb, hasAlpha, alphaFirst, reverseOrder)
			nc := conf.NumChannels()
			widths := []int32{int32(w1), int32(w2), int32(w3), int32(w4)}
			gaps := []int32{int32(g1), int32(g2), int32(g3), int32(g4)}
			total := int32(0)
			for i := int32(0); i < nc; i++ {
				total += gaps[i] + widths[i]
			}
			f := PackedFormat{
				WordType:      wordType,
				BitsPerWord:   bits,
				WordsPerPixel: util.CeilDiv(total, bits),
				WordOrder:     orderOf(bigOrder),
				Channels:      conf,
			}
			for i := int32(0); i < nc; i++ {
				f.BitFields[i] = BitField{Width: widths[i], Gap: gaps[i]}
			}
			if !f.IsValid() {
				return false
			}

			if g, ok := f.TryCastToPacked(f.WordType); !ok || g != f {
				return false
			}

			oa, ow := packedAddr(f)
			if g, ok := f.TryCastToPacked(WordByte); ok {
				ta, tw := packedAddr(g)
				if !g.IsValid() || !formatsEquivalent(oa, ow, ta, tw, nc) {
					return false
				}
			}
			if g, ok := f.TryCastToInteger(WordByte); ok {
				ta, tw := integerAddr(g)
				if !g.IsValid() || !formatsEquivalent(oa, ow, ta, tw, nc) {
					return false
				}
			}
			if g, ok := f.TryCastToSubword(WordByte); ok {
				ta, tw := subwordAddr(g)
				if !g.IsValid() || !formatsEquivalent(oa, ow, ta, tw, nc) {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, len(castWordTypes)-1),
		gen.IntRange(1, 16),
		gen.IntRange(1, 16),
		gen.IntRange(1, 16),
		gen.IntRange(1, 16),
		gen.IntRange(0, 2),
		gen.IntRange(0, 2),
		gen.IntRange(0, 2),
		gen.IntRange(0, 2),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
