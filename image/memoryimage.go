package image

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/kpfaulkner/pixbuf-go/colour"
	"github.com/kpfaulkner/pixbuf-go/format"
	"github.com/kpfaulkner/pixbuf-go/util"
)

// MemoryImage is an Image over a raw byte buffer whose layout is
// described by a BufferFormat. It decodes through the format's
// bit-address mapping, so it is a correct reference source rather than a
// fast one.
//
// Channel values are requantized from their stored bit width to the
// transfer representation: Int8 when every channel fits in 8 bits, Int16
// otherwise. Channels wider than 16 bits lose precision.
type MemoryImage struct {
	data     []byte
	size     util.Dimension
	format   format.BufferFormat
	palette  *MemoryImage
	transfer TransferInfo
}

func NewMemoryImage(data []byte, size util.Dimension, f format.BufferFormat) (*MemoryImage, error) {
	if !f.IsValid() {
		return nil, errors.New("invalid buffer format")
	}
	if f.Type == format.FormatIndexed {
		return nil, errors.New("indexed format needs a palette, use NewIndexedMemoryImage")
	}
	m := &MemoryImage{
		data:   data,
		size:   size,
		format: f,
	}
	conf := f.ChannelConf()
	m.transfer = TransferInfo{
		Space:    conf.Space,
		HasAlpha: conf.HasAlpha,
	}
	switch f.Type {
	case format.FormatFloat:
		m.transfer.Repr = colour.Float32
	default:
		if maxChannelBits(f) <= 8 {
			m.transfer.Repr = colour.Int8
		} else {
			m.transfer.Repr = colour.Int16
		}
	}
	return m, nil
}

// NewIndexedMemoryImage wraps palette-index data. The image reports the
// palette's transfer info; Read yields single-channel indices.
func NewIndexedMemoryImage(data []byte, size util.Dimension, f format.BufferFormat, palette *MemoryImage) (*MemoryImage, error) {
	if f.Type != format.FormatIndexed || !f.IsValid() {
		return nil, errors.New("invalid indexed buffer format")
	}
	if palette == nil {
		return nil, errors.New("indexed image without a palette")
	}
	return &MemoryImage{
		data:     data,
		size:     size,
		format:   f,
		palette:  palette,
		transfer: palette.transfer,
	}, nil
}

func maxChannelBits(f format.BufferFormat) int32 {
	switch f.Type {
	case format.FormatInteger:
		return f.Integer.BitsPerChannel()
	case format.FormatPacked:
		bits := int32(0)
		for _, field := range f.Packed.Fields() {
			bits = util.Max(bits, field.Width)
		}
		return bits
	case format.FormatSubword:
		return f.Subword.BitsPerChannel
	}
	return 0
}

func (m *MemoryImage) GetSize() util.Dimension {
	return m.size
}

func (m *MemoryImage) GetTransferInfo() TransferInfo {
	return m.transfer
}

func (m *MemoryImage) GetPalette() Image {
	if m.palette == nil {
		return nil
	}
	return m.palette
}

func (m *MemoryImage) Read(pos util.Point, tray *Tray) error {
	box := util.Box{Pos: pos, Size: util.Dimension{Width: tray.Width, Height: tray.Height}}
	if !box.ContainedIn(m.size) {
		return fmt.Errorf("read box %v outside image %dx%d", box, m.size.Width, m.size.Height)
	}
	switch m.format.Type {
	case format.FormatIndexed:
		return m.readIndices(pos, tray)
	case format.FormatFloat:
		return m.readFloats(pos, tray)
	default:
		return m.readInts(pos, tray)
	}
}

func (m *MemoryImage) readInts(pos util.Point, tray *Tray) error {
	if tray.IsFloat() {
		return errors.New("integer image needs an int tray")
	}
	conf := m.format.ChannelConf()
	numChannels := conf.NumChannels()
	reprMax := m.transfer.Repr.MaxValue()
	for row := int32(0); row < tray.Height; row++ {
		for col := int32(0); col < tray.Width; col++ {
			off := tray.PixOffset(row, col)
			for channel := int32(0); channel < numChannels; channel++ {
				slot := conf.SlotOf(channel)
				raw, bits := m.readRawComp(pos.X+col, pos.Y+row, slot)
				tray.IntBuffer[off+int(channel)] = requantize(raw, bits, reprMax)
			}
		}
	}
	return nil
}

func (m *MemoryImage) readRawComp(x int32, y int32, slot int32) (uint64, int32) {
	switch m.format.Type {
	case format.FormatInteger:
		return m.format.Integer.ReadComp(m.data, m.size.Width, x, y, slot), m.format.Integer.BitsPerChannel()
	case format.FormatPacked:
		return m.format.Packed.ReadComp(m.data, m.size.Width, x, y, slot), m.format.Packed.Fields()[slot].Width
	default:
		return m.format.Subword.ReadComp(m.data, m.size.Width, x, y, slot), m.format.Subword.BitsPerChannel
	}
}

// requantize rescales a raw bits-wide value onto [0, reprMax].
func requantize(raw uint64, bits int32, reprMax int32) int32 {
	// fold very wide values down first so raw*reprMax cannot overflow
	if bits > 32 {
		raw >>= uint(bits - 32)
		bits = 32
	}
	rawMax := uint64(1)<<bits - 1
	if rawMax == uint64(reprMax) {
		return int32(raw)
	}
	return int32((raw*uint64(reprMax) + rawMax/2) / rawMax)
}

func (m *MemoryImage) readFloats(pos util.Point, tray *Tray) error {
	if !tray.IsFloat() {
		return errors.New("float image needs a float tray")
	}
	f := m.format.Float
	conf := f.Channels
	numChannels := conf.NumChannels()
	bytesPerWord := int64(f.WordType.BytesPerWord())
	for row := int32(0); row < tray.Height; row++ {
		for col := int32(0); col < tray.Width; col++ {
			off := tray.PixOffset(row, col)
			pixel := int64(pos.Y+row)*int64(m.size.Width) + int64(pos.X+col)
			for channel := int32(0); channel < numChannels; channel++ {
				slot := conf.SlotOf(channel)
				wordOff := (pixel*int64(numChannels) + int64(slot)) * bytesPerWord
				var v float32
				if f.WordType == format.WordFloat32 {
					v = math.Float32frombits(binary.NativeEndian.Uint32(m.data[wordOff:]))
				} else {
					v = float32(math.Float64frombits(binary.NativeEndian.Uint64(m.data[wordOff:])))
				}
				tray.FloatBuffer[off+int(channel)] = v
			}
		}
	}
	return nil
}

func (m *MemoryImage) readIndices(pos util.Point, tray *Tray) error {
	if tray.IsFloat() {
		return errors.New("indexed image needs an int tray")
	}
	for row := int32(0); row < tray.Height; row++ {
		for col := int32(0); col < tray.Width; col++ {
			off := tray.PixOffset(row, col)
			tray.IntBuffer[off] = int32(m.format.Indexed.ReadIndex(m.data, m.size.Width, pos.X+col, pos.Y+row))
		}
	}
	return nil
}
