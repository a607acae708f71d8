package testcommon

import (
	"errors"

	"github.com/kpfaulkner/pixbuf-go/image"
	"github.com/kpfaulkner/pixbuf-go/util"
)

// FakeImage is a scripted image for testing. Pixels live in one of the
// two backing slices in the transfer representation, canonical channel
// order, row major. Will populate more behavior as required.
type FakeImage struct {
	Size    util.Dimension
	Info    image.TransferInfo
	Palette image.Image

	IntPixels   []int32
	FloatPixels []float32

	ReadCalls int
	FailRead  bool
}

func (f *FakeImage) GetSize() util.Dimension {
	return f.Size
}

func (f *FakeImage) GetTransferInfo() image.TransferInfo {
	return f.Info
}

func (f *FakeImage) GetPalette() image.Image {
	return f.Palette
}

func (f *FakeImage) Read(pos util.Point, tray *image.Tray) error {
	f.ReadCalls++
	if f.FailRead {
		return errors.New("scripted read failure")
	}
	box := util.Box{Pos: pos, Size: util.Dimension{Width: tray.Width, Height: tray.Height}}
	if !box.ContainedIn(f.Size) {
		return errors.New("read outside image bounds")
	}
	numChannels := int(tray.NumChannels)
	for row := int32(0); row < tray.Height; row++ {
		for col := int32(0); col < tray.Width; col++ {
			src := (int(pos.Y+row)*int(f.Size.Width) + int(pos.X+col)) * numChannels
			dst := tray.PixOffset(row, col)
			if tray.IsFloat() {
				copy(tray.FloatBuffer[dst:dst+numChannels], f.FloatPixels[src:src+numChannels])
			} else {
				copy(tray.IntBuffer[dst:dst+numChannels], f.IntPixels[src:src+numChannels])
			}
		}
	}
	return nil
}
