package reader

import (
	"fmt"

	"github.com/kpfaulkner/pixbuf-go/colour"
	"github.com/kpfaulkner/pixbuf-go/image"
	"github.com/kpfaulkner/pixbuf-go/util"
)

// Whole-palette caches, built once on first use by reading every entry
// through a Reader over the palette image. Entries always carry alpha;
// the native cache is in the image's transfer representation, the neutral
// cache in float.

func (r *Reader) ensurePaletteNative() error {
	if r.paletteNative.Int != nil || r.paletteNative.Float != nil {
		return nil
	}
	tray, err := r.readWholePalette(r.info.Repr)
	if err != nil {
		return err
	}
	r.paletteNative = colour.CompSlice{Int: tray.IntBuffer, Float: tray.FloatBuffer}
	return nil
}

func (r *Reader) ensurePaletteNeutral() error {
	if r.paletteNeutral != nil {
		return nil
	}
	tray, err := r.readWholePalette(colour.Float32)
	if err != nil {
		return err
	}
	r.paletteNeutral = tray.FloatBuffer
	return nil
}

func (r *Reader) readWholePalette(repr colour.CompRepr) (*image.Tray, error) {
	sub, err := NewReader(r.palette, r.opts)
	if err != nil {
		return nil, fmt.Errorf("palette image rejected: %w", err)
	}
	sub.SetCustomColorSpaceConverters(r.converters)
	paletteSize := r.palette.GetSize()
	var tray *image.Tray
	if repr.IsFloat() {
		tray = image.NewFloatTray(paletteSize.Height, paletteSize.Width, r.numChannelsExt)
	} else {
		tray = image.NewIntTray(paletteSize.Height, paletteSize.Width, r.numChannelsExt)
	}
	err = sub.GetBlock(util.Point{}, tray, repr, r.info.Space, true)
	if err != nil {
		return nil, err
	}
	return tray, nil
}

func (r *Reader) paletteEntryNative(index int32) colour.CompSlice {
	off := int(index) * int(r.numChannelsExt)
	if r.info.Repr.IsFloat() {
		return colour.CompSlice{Float: r.paletteNative.Float[off:]}
	}
	return colour.CompSlice{Int: r.paletteNative.Int[off:]}
}

func (r *Reader) paletteEntryNeutral(index int32) colour.CompSlice {
	return colour.CompSlice{Float: r.paletteNeutral[int(index)*int(r.numChannelsExt):]}
}

// PaletteLookup resolves one palette entry into the requested form. An
// out-of-range index resolves to the background color. Does not touch the
// scratch workspaces.
func (r *Reader) PaletteLookup(index int32, out colour.CompSlice, repr colour.CompRepr,
	space *colour.ColorSpace, wantAlpha bool) error {
	if r.palette == nil {
		return fmt.Errorf("image has no palette")
	}
	if index < 0 || index >= r.paletteSize {
		return r.GetColor(Background, out, repr, space, wantAlpha)
	}

	if repr == r.info.Repr && space == r.info.Space {
		if err := r.ensurePaletteNative(); err != nil {
			return err
		}
		entry := r.paletteEntryNative(index)
		if wantAlpha || repr.IsFloat() || compIsMax(repr, entry, r.numChannelsExt-1) {
			n := r.numChannelsExt
			if !wantAlpha {
				n--
			}
			copyComps(repr, entry, out, n)
			return nil
		}
	}

	if err := r.ensurePaletteNeutral(); err != nil {
		return err
	}
	origin := colour.PixelDesc{Repr: colour.Float32, Space: r.info.Space, HasAlpha: true}
	destin := colour.PixelDesc{Repr: repr, Space: space, HasAlpha: wantAlpha}
	return colour.PixelConvert(origin, r.paletteEntryNeutral(index), destin, out, r.converters)
}
