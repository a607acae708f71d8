package format

import "encoding/binary"

type Endianness int32

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) String() string {
	if e == BigEndian {
		return "big"
	}
	return "little"
}

// WordType is the closed enumeration of integer memory word types a buffer
// format can be expressed in. The three Fict types exist only so the cast
// tests can probe byte orders the host does not exhibit: WordFictBig and
// WordFictLittle have a fixed synthetic byte order, WordFictMixed has no
// determinable byte order at all.
type WordType int32

const (
	WordByte WordType = iota
	WordShort
	WordInt
	WordLong
	WordFictBig
	WordFictLittle
	WordFictMixed
)

func (w WordType) BitsPerWord() int32 {
	switch w {
	case WordByte:
		return 8
	case WordShort, WordFictBig, WordFictMixed:
		return 16
	case WordInt:
		return 32
	case WordLong:
		return 64
	case WordFictLittle:
		return 24
	}
	return 0
}

func (w WordType) BytesPerWord() int32 {
	return w.BitsPerWord() / 8
}

// NativeEndianness returns the memory byte order of the word type. The
// second result is false for WordFictMixed, whose byte order is
// deliberately undeterminable.
func (w WordType) NativeEndianness() (Endianness, bool) {
	switch w {
	case WordByte, WordShort, WordInt, WordLong:
		return hostEndianness, true
	case WordFictBig:
		return BigEndian, true
	case WordFictLittle:
		return LittleEndian, true
	}
	return LittleEndian, false
}

func (w WordType) String() string {
	switch w {
	case WordByte:
		return "byte"
	case WordShort:
		return "short"
	case WordInt:
		return "int"
	case WordLong:
		return "long"
	case WordFictBig:
		return "fict_big"
	case WordFictLittle:
		return "fict_little"
	case WordFictMixed:
		return "fict_mixed"
	}
	return "unknown"
}

// FloatWordType enumerates the floating point word types.
type FloatWordType int32

const (
	WordFloat32 FloatWordType = iota
	WordFloat64
)

func (w FloatWordType) BitsPerWord() int32 {
	if w == WordFloat64 {
		return 64
	}
	return 32
}

func (w FloatWordType) BytesPerWord() int32 {
	return w.BitsPerWord() / 8
}

var hostEndianness = func() Endianness {
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 1)
	if buf[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}()
