package reader

import (
	"github.com/kpfaulkner/pixbuf-go/colour"
	"github.com/kpfaulkner/pixbuf-go/image"
	"github.com/kpfaulkner/pixbuf-go/util"
)

// workspace is a growable scratch allocation dressed up as a tray on
// demand. Each call reshapes the same backing storage, so a workspace
// tray is only valid until the next request against that workspace.
type workspace struct {
	ints   []int32
	floats []float32
}

func (w *workspace) tray(isFloat bool, height int32, width int32, numChannels int32) *image.Tray {
	need := int(height) * int(width) * int(numChannels)
	t := &image.Tray{
		Width:       width,
		Height:      height,
		NumChannels: numChannels,
		HorzStride:  numChannels,
		VertStride:  width * numChannels,
	}
	if isFloat {
		if len(w.floats) < need {
			w.floats = make([]float32, need)
		}
		t.FloatBuffer = w.floats[:need]
	} else {
		if len(w.ints) < need {
			w.ints = make([]int32, need)
		}
		t.IntBuffer = w.ints[:need]
	}
	return t
}

// read fills the tray from a rectangle fully inside the image. repr is
// either the native representation or Float32; the color space is always
// the native one. Direct-color images go to the image with channel
// adaption; indirect-color images are resolved through the palette caches.
// Clobbers the second scratch workspace.
func (r *Reader) read(pos util.Point, tray *image.Tray, repr colour.CompRepr, wantAlpha bool) error {
	if r.palette != nil {
		return r.readIndirect(pos, tray, repr, wantAlpha)
	}
	return r.readDirect(pos, tray, repr, wantAlpha)
}

func (r *Reader) readDirect(pos util.Point, tray *image.Tray, repr colour.CompRepr, wantAlpha bool) error {
	if repr == r.info.Repr && wantAlpha == r.info.HasAlpha {
		return r.img.Read(pos, tray)
	}

	scratch := r.ws2.tray(r.info.Repr.IsFloat(), tray.Height, tray.Width, r.numChannels)
	if err := r.img.Read(pos, scratch); err != nil {
		return err
	}
	numColor := r.info.Space.NumChannels
	for row := int32(0); row < tray.Height; row++ {
		for col := int32(0); col < tray.Width; col++ {
			in := scratch.Comps(row, col)
			out := tray.Comps(row, col)
			n := numColor
			if wantAlpha && r.info.HasAlpha {
				n++
			}
			colour.CompReprConvert(r.info.Repr, in, repr, out, n)
			if wantAlpha && !r.info.HasAlpha {
				setCompMax(repr, out, numColor)
			}
		}
	}
	return nil
}

func (r *Reader) readIndirect(pos util.Point, tray *image.Tray, repr colour.CompRepr, wantAlpha bool) error {
	indices := r.ws2.tray(false, tray.Height, tray.Width, 1)
	if err := r.img.Read(pos, indices); err != nil {
		return err
	}

	native := repr == r.info.Repr
	if native {
		if err := r.ensurePaletteNative(); err != nil {
			return err
		}
	} else {
		if err := r.ensurePaletteNeutral(); err != nil {
			return err
		}
	}

	n := r.numChannelsExt
	if !wantAlpha {
		n--
	}
	background := growCompSlice(colour.CompSlice{}, repr.IsFloat(), n)
	if err := r.GetColor(Background, background, repr, r.info.Space, wantAlpha); err != nil {
		return err
	}

	for row := int32(0); row < tray.Height; row++ {
		for col := int32(0); col < tray.Width; col++ {
			out := tray.Comps(row, col)
			index := indices.IntBuffer[indices.PixOffset(row, col)]
			if index < 0 || index >= r.paletteSize {
				copyComps(repr, background, out, n)
				continue
			}
			if native {
				copyComps(repr, r.paletteEntryNative(index), out, n)
			} else {
				copyComps(repr, r.paletteEntryNeutral(index), out, n)
			}
		}
	}
	return nil
}
