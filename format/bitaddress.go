package format

import "github.com/kpfaulkner/pixbuf-go/util"

// The functions below map a (pixel position, channel slot, value bit)
// triple to the absolute (byte offset, bit within byte) location that the
// format assigns it, for an image of the given width. They are the single
// definition of each variant's memory semantics: buffer decoding reads
// through them, and the cast tests use them to prove that a successful
// cast describes the very same memory. The word type's native byte order
// must be determinable; the boolean result is false otherwise.

// wordBitToBytePos locates value bit v of the memory word at wordIndex.
func wordBitToBytePos(word WordType, wordIndex int64, v int32) (int64, int32, bool) {
	e, ok := word.NativeEndianness()
	if !ok {
		return 0, 0, false
	}
	n := word.BytesPerWord()
	k := v / 8
	memByte := k
	if e == BigEndian {
		memByte = n - 1 - k
	}
	return wordIndex*int64(n) + int64(memByte), v % 8, true
}

func (f IntegerFormat) CompBitAddress(width int32, x int32, y int32, slot int32, bit int32) (int64, int32, bool) {
	pixel := int64(y)*int64(width) + int64(x)
	baseWord := pixel*int64(f.WordsPerPixel()) + int64(slot)*int64(f.WordsPerChannel)
	q := bit / f.BitsPerWord
	r := bit % f.BitsPerWord
	j := memWordIndex(f.WordOrder, q, f.WordsPerChannel)
	return wordBitToBytePos(f.WordType, baseWord+int64(j), r)
}

func (f PackedFormat) CompBitAddress(width int32, x int32, y int32, slot int32, bit int32) (int64, int32, bool) {
	pixel := int64(y)*int64(width) + int64(x)
	p := BitFieldShift(f.Fields(), slot) + bit
	q := p / f.BitsPerWord
	r := p % f.BitsPerWord
	j := memWordIndex(f.WordOrder, q, f.WordsPerPixel)
	return wordBitToBytePos(f.WordType, pixel*int64(f.WordsPerPixel)+int64(j), r)
}

func (f SubwordFormat) CompBitAddress(width int32, x int32, y int32, slot int32, bit int32) (int64, int32, bool) {
	var wordIndex int64
	var slotInWord int32
	if f.WordAlignedRows {
		wordsPerRow := util.CeilDiv(width, f.PixelsPerWord)
		wordIndex = int64(y)*int64(wordsPerRow) + int64(x/f.PixelsPerWord)
		slotInWord = x % f.PixelsPerWord
	} else {
		g := int64(y)*int64(width) + int64(x)
		wordIndex = g / int64(f.PixelsPerWord)
		slotInWord = int32(g % int64(f.PixelsPerWord))
	}
	slotBits := f.BitsPerPixel()
	var v int32
	if f.BitOrder == LittleEndian {
		v = slotInWord*slotBits + slot*f.BitsPerChannel + bit
	} else {
		v = f.WordType.BitsPerWord() - slotInWord*slotBits - (slot+1)*f.BitsPerChannel + bit
	}
	return wordBitToBytePos(f.WordType, wordIndex, v)
}

// PixelBitAddress locates bit `bit` of the palette index of the pixel at
// (x, y).
func (f IndexedFormat) PixelBitAddress(width int32, x int32, y int32, bit int32) (int64, int32, bool) {
	var compoundIndex int64
	var slotInCompound int32
	if f.CompoundAlignedRows {
		compoundsPerRow := util.CeilDiv(width, f.PixelsPerCompound)
		compoundIndex = int64(y)*int64(compoundsPerRow) + int64(x/f.PixelsPerCompound)
		slotInCompound = x % f.PixelsPerCompound
	} else {
		g := int64(y)*int64(width) + int64(x)
		compoundIndex = g / int64(f.PixelsPerCompound)
		slotInCompound = int32(g % int64(f.PixelsPerCompound))
	}
	totalBits := f.WordsPerCompound * f.BitsPerWord
	var p int32
	if f.BitOrder == LittleEndian {
		p = slotInCompound*f.BitsPerPixel + bit
	} else {
		p = totalBits - (slotInCompound+1)*f.BitsPerPixel + bit
	}
	q := p / f.BitsPerWord
	r := p % f.BitsPerWord
	j := memWordIndex(f.WordOrder, q, f.WordsPerCompound)
	return wordBitToBytePos(f.WordType, compoundIndex*int64(f.WordsPerCompound)+int64(j), r)
}

// ReadComp assembles the value of the channel at storage slot `slot` for
// the pixel at (x, y) from raw memory. Bit-by-bit through the address
// mapping; this is the reference decoder, not a fast path.
func (f IntegerFormat) ReadComp(data []byte, width int32, x int32, y int32, slot int32) uint64 {
	v := uint64(0)
	for bit := int32(0); bit < f.BitsPerChannel(); bit++ {
		byteOff, bitOff, ok := f.CompBitAddress(width, x, y, slot, bit)
		if !ok {
			return 0
		}
		v |= uint64(data[byteOff]>>bitOff&1) << bit
	}
	return v
}

func (f PackedFormat) ReadComp(data []byte, width int32, x int32, y int32, slot int32) uint64 {
	v := uint64(0)
	for bit := int32(0); bit < f.Fields()[slot].Width; bit++ {
		byteOff, bitOff, ok := f.CompBitAddress(width, x, y, slot, bit)
		if !ok {
			return 0
		}
		v |= uint64(data[byteOff]>>bitOff&1) << bit
	}
	return v
}

func (f SubwordFormat) ReadComp(data []byte, width int32, x int32, y int32, slot int32) uint64 {
	v := uint64(0)
	for bit := int32(0); bit < f.BitsPerChannel; bit++ {
		byteOff, bitOff, ok := f.CompBitAddress(width, x, y, slot, bit)
		if !ok {
			return 0
		}
		v |= uint64(data[byteOff]>>bitOff&1) << bit
	}
	return v
}

// ReadIndex assembles the palette index of the pixel at (x, y).
func (f IndexedFormat) ReadIndex(data []byte, width int32, x int32, y int32) uint64 {
	v := uint64(0)
	for bit := int32(0); bit < f.BitsPerPixel; bit++ {
		byteOff, bitOff, ok := f.PixelBitAddress(width, x, y, bit)
		if !ok {
			return 0
		}
		v |= uint64(data[byteOff]>>bitOff&1) << bit
	}
	return v
}
