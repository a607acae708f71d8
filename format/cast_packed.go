package format

import (
	"sort"

	"github.com/kpfaulkner/pixbuf-go/util"
)

// TryCastToInteger decomposes the bit compound into one word run per
// channel. The fields must have no gaps and equal widths that are whole
// multiples of the word payload, covering the compound exactly. A
// big-endian word order lists channels against memory order, reversing the
// channel configuration.
//
// Byte split additionally requires fully used words, and a word order
// matching the native byte order unless the compound is a single word,
// where order is immaterial.
func (f PackedFormat) TryCastToInteger(target WordType) (IntegerFormat, bool) {
	f.mustBeValid()
	form := classifyCast(f.WordType, target)
	if form == castNone {
		return IntegerFormat{}, false
	}

	nc := f.Channels.NumChannels()
	fields := f.Fields()
	width := fields[0].Width
	for _, fl := range fields {
		if fl.Gap != 0 || fl.Width != width {
			return IntegerFormat{}, false
		}
	}
	if width%f.BitsPerWord != 0 {
		return IntegerFormat{}, false
	}
	wpc := width / f.BitsPerWord
	if f.WordsPerPixel != wpc*nc {
		return IntegerFormat{}, false
	}

	if form == castRelabel {
		g := IntegerFormat{
			WordType:        target,
			BitsPerWord:     f.BitsPerWord,
			WordsPerChannel: wpc,
			WordOrder:       f.WordOrder,
			Channels:        f.Channels,
		}
		if f.WordOrder == BigEndian {
			g.Channels.Reverse()
		}
		return g, true
	}

	e, ok := f.WordType.NativeEndianness()
	if !ok {
		return IntegerFormat{}, false
	}
	if f.BitsPerWord != f.WordType.BitsPerWord() {
		return IntegerFormat{}, false
	}
	if f.WordsPerPixel != 1 && f.WordOrder != e {
		return IntegerFormat{}, false
	}
	g := IntegerFormat{
		WordType:        WordByte,
		BitsPerWord:     8,
		WordsPerChannel: width / 8,
		WordOrder:       e,
		Channels:        f.Channels,
	}
	if e == BigEndian {
		g.Channels.Reverse()
	}
	return g, true
}

// TryCastToPacked relabels trivially under the origin word type. The byte
// split succeeds iff the native byte order is determinable and at least one
// of six bit compound conditions holds:
//
//  1. the compound is a single word;
//  2. every word bit is payload and the word order matches the native
//     byte order;
//  3. no field crosses a word boundary and the word order matches the
//     native byte order;
//  4. a single word contains all fields;
//  5. no word contains more than one field (a word-order mismatch is then
//     a pure reversal of the field listing);
//  6. a single word contains every color field and a different single word
//     contains only the alpha field (a word-order mismatch then moves
//     alpha to the other side of the channel order).
//
// Field positions are recomputed in the byte compound and the channel
// configuration is refitted, preferring no change, then a reversal, then
// an alpha-side switch, then both.
func (f PackedFormat) TryCastToPacked(target WordType) (PackedFormat, bool) {
	f.mustBeValid()
	switch classifyCast(f.WordType, target) {
	case castRelabel:
		g := f
		g.WordType = target
		return g, true
	case castByteSplit:
		return f.byteSplitToPacked()
	}
	return PackedFormat{}, false
}

func (f PackedFormat) byteSplitToPacked() (PackedFormat, bool) {
	e, ok := f.WordType.NativeEndianness()
	if !ok {
		return PackedFormat{}, false
	}
	w := f.WordType.BitsPerWord()
	n := f.WordType.BytesPerWord()
	nc := f.Channels.NumChannels()
	fields := f.Fields()

	// Word span of every field, in significance-ordered word indices.
	var firstWord, lastWord [MaxBitFields]int32
	noCross := true
	for i := int32(0); i < nc; i++ {
		shift := BitFieldShift(fields, i)
		firstWord[i] = shift / f.BitsPerWord
		lastWord[i] = (shift + fields[i].Width - 1) / f.BitsPerWord
		if firstWord[i] != lastWord[i] {
			noCross = false
		}
	}

	allBitsUsed := f.BitsPerWord == w
	orderMatches := f.WordOrder == e

	singleWord := true
	onePerWord := true
	for i := int32(0); i < nc; i++ {
		if firstWord[i] != firstWord[0] {
			singleWord = false
		}
		for j := int32(0); j < i; j++ {
			if firstWord[i] == firstWord[j] {
				onePerWord = false
			}
		}
	}
	// Condition 6: all color fields in one word, the alpha field alone in
	// another.
	alphaAside := false
	if f.Channels.HasAlpha && noCross && nc >= 2 {
		alphaSlot := f.Channels.SlotOf(nc - 1)
		colorWord := int32(-1)
		shared := true
		for i := int32(0); i < nc; i++ {
			if i == alphaSlot {
				continue
			}
			if colorWord == -1 {
				colorWord = firstWord[i]
			} else if firstWord[i] != colorWord {
				shared = false
			}
		}
		alphaAside = shared && colorWord != firstWord[alphaSlot]
	}

	cond1 := f.WordsPerPixel == 1
	cond2 := allBitsUsed && orderMatches
	cond3 := noCross && orderMatches
	cond4 := noCross && singleWord
	cond5 := noCross && onePerWord
	cond6 := alphaAside
	if !(cond1 || cond2 || cond3 || cond4 || cond5 || cond6) {
		return PackedFormat{}, false
	}

	// New field shifts in the byte compound. Fields confined to one word
	// move with that word's memory position; crossing fields only occur
	// under condition 2, where the mapping is the identity.
	var newShift [MaxBitFields]int32
	for i := int32(0); i < nc; i++ {
		shift := BitFieldShift(fields, i)
		if firstWord[i] != lastWord[i] {
			newShift[i] = shift
			continue
		}
		memWord := memWordIndex(f.WordOrder, firstWord[i], f.WordsPerPixel)
		var byteBase int32
		if e == LittleEndian {
			byteBase = memWord * n
		} else {
			byteBase = (f.WordsPerPixel - 1 - memWord) * n
		}
		newShift[i] = byteBase*8 + (shift - firstWord[i]*f.BitsPerWord)
	}

	// List the fields by ascending new position and refit the channel
	// configuration to that listing.
	order := make([]int32, nc)
	for i := range order {
		order[i] = int32(i)
	}
	sort.Slice(order, func(a, b int) bool {
		return newShift[order[a]] < newShift[order[b]]
	})
	want := make([]int32, nc)
	for k, idx := range order {
		want[k] = f.Channels.ChannelAt(idx)
	}
	conf, ok := fitChannelOrder(f.Channels, want)
	if !ok {
		return PackedFormat{}, false
	}

	wpp, ok := util.CheckedMul32(f.WordsPerPixel, n)
	if !ok {
		return PackedFormat{}, false
	}
	g := PackedFormat{
		WordType:      WordByte,
		BitsPerWord:   8,
		WordsPerPixel: wpp,
		WordOrder:     e,
		Channels:      conf,
	}
	prevEnd := int32(0)
	for k, idx := range order {
		g.BitFields[k] = BitField{
			Width: fields[idx].Width,
			Gap:   newShift[idx] - prevEnd,
		}
		prevEnd = newShift[idx] + fields[idx].Width
	}
	return g, true
}

// TryCastToSubword succeeds for single-word compounds whose fields are a
// dense run of equal widths from bit zero, the word then being one whole
// pixel. Byte split always fails: a single-pixel compound cannot become
// whole pixels per byte.
func (f PackedFormat) TryCastToSubword(target WordType) (SubwordFormat, bool) {
	f.mustBeValid()
	if classifyCast(f.WordType, target) != castRelabel {
		return SubwordFormat{}, false
	}
	if f.WordsPerPixel != 1 {
		return SubwordFormat{}, false
	}
	fields := f.Fields()
	width := fields[0].Width
	for _, fl := range fields {
		if fl.Gap != 0 || fl.Width != width {
			return SubwordFormat{}, false
		}
	}
	g := SubwordFormat{
		WordType:        target,
		BitsPerChannel:  width,
		PixelsPerWord:   1,
		BitOrder:        LittleEndian,
		WordAlignedRows: false,
		Channels:        f.Channels,
	}
	return g, true
}
