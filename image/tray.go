package image

import (
	"github.com/kpfaulkner/pixbuf-go/colour"
	"github.com/kpfaulkner/pixbuf-go/util"
)

// Tray is a rectangular window of pixel components that read operations
// fill. It can view int or float storage. Strides are measured in
// components, so a tray can alias a sub-rectangle of a larger allocation;
// a freshly allocated tray is contiguous with HorzStride == NumChannels.
type Tray struct {
	Width       int32
	Height      int32
	NumChannels int32
	HorzStride  int32
	VertStride  int32

	// exactly one of these is non-nil
	IntBuffer   []int32
	FloatBuffer []float32
}

func NewIntTray(height int32, width int32, numChannels int32) *Tray {
	return &Tray{
		Width:       width,
		Height:      height,
		NumChannels: numChannels,
		HorzStride:  numChannels,
		VertStride:  width * numChannels,
		IntBuffer:   make([]int32, int(height)*int(width)*int(numChannels)),
	}
}

func NewFloatTray(height int32, width int32, numChannels int32) *Tray {
	return &Tray{
		Width:       width,
		Height:      height,
		NumChannels: numChannels,
		HorzStride:  numChannels,
		VertStride:  width * numChannels,
		FloatBuffer: make([]float32, int(height)*int(width)*int(numChannels)),
	}
}

func (t *Tray) IsFloat() bool {
	return t.FloatBuffer != nil
}

// PixOffset is the component index of the first component of the pixel at
// (x, y) in tray coordinates.
func (t *Tray) PixOffset(y int32, x int32) int {
	return int(y)*int(t.VertStride) + int(x)*int(t.HorzStride)
}

// Comps returns the component storage starting at the pixel at (x, y).
func (t *Tray) Comps(y int32, x int32) colour.CompSlice {
	off := t.PixOffset(y, x)
	if t.IsFloat() {
		return colour.CompSlice{Float: t.FloatBuffer[off:]}
	}
	return colour.CompSlice{Int: t.IntBuffer[off:]}
}

// SubTray returns a tray aliasing the given rectangle of t. The box must
// lie inside t; writes through the sub-tray land in t's storage.
func (t *Tray) SubTray(box util.Box) *Tray {
	sub := &Tray{
		Width:       box.Size.Width,
		Height:      box.Size.Height,
		NumChannels: t.NumChannels,
		HorzStride:  t.HorzStride,
		VertStride:  t.VertStride,
	}
	off := t.PixOffset(box.Pos.Y, box.Pos.X)
	if t.IsFloat() {
		sub.FloatBuffer = t.FloatBuffer[off:]
	} else {
		sub.IntBuffer = t.IntBuffer[off:]
	}
	return sub
}
