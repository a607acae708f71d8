// Package reader delivers pixels from an image in whatever representation
// the caller asks for: component requantization, color-space conversion,
// alpha synthesis and removal, palette resolution, and synthesis of pixels
// outside the image bounds.
//
// A Reader is bound to one image for its lifetime and holds a non-owning
// reference to it; the image (and its palette, if any) must outlive the
// Reader. A Reader is NOT safe for concurrent use: nominally read-only
// operations mutate its caches and scratch buffers. Two Readers over two
// images are fully independent.
package reader

import (
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/pixbuf-go/colour"
	"github.com/kpfaulkner/pixbuf-go/image"
	"github.com/kpfaulkner/pixbuf-go/options"
	"github.com/kpfaulkner/pixbuf-go/util"
)

type Reader struct {
	img         image.Image
	size        util.Dimension
	palette     image.Image
	paletteSize int32
	info        image.TransferInfo

	// numChannels is the image's transfer channel count, numChannelsExt
	// always counts alpha whether the image has one or not.
	numChannels    int32
	numChannelsExt int32

	falloffHorz FalloffMode
	falloffVert FalloffMode

	slots [2]colorSlot

	paletteNative  colour.CompSlice
	paletteNeutral []float32

	converters *colour.ConverterRegistry
	opts       *options.ReaderOptions

	// scratch buffers reused across calls. GetBlock and GetPixel clobber
	// both; GetColor and PaletteLookup clobber neither.
	ws1 workspace
	ws2 workspace
}

func NewReader(img image.Image, opts *options.ReaderOptions) (*Reader, error) {
	info := img.GetTransferInfo()
	if info.Space == nil {
		return nil, errors.New("image transfer info has no color space")
	}
	r := &Reader{
		img:            img,
		size:           img.GetSize(),
		palette:        img.GetPalette(),
		info:           info,
		numChannels:    info.NumChannels(),
		numChannelsExt: info.Space.NumChannels + 1,
		opts:           options.NewReaderOptions(opts),
	}
	if _, ok := util.CheckedMul64(r.size.Area(), int64(r.numChannelsExt)); !ok {
		return nil, fmt.Errorf("image %dx%d with %d channels overflows component count",
			r.size.Width, r.size.Height, r.numChannelsExt)
	}
	if r.palette != nil {
		paletteArea := r.palette.GetSize().Area()
		if paletteArea > math.MaxInt32 {
			return nil, fmt.Errorf("palette of %d entries is too large", paletteArea)
		}
		if paletteArea == 0 {
			log.Warnf("palette image has no entries, every lookup will resolve to the background color")
		}
		r.paletteSize = int32(paletteArea)
	}
	if r.opts.Debug {
		log.Debugf("reader over %dx%d image, %v %s, %d palette entries",
			r.size.Width, r.size.Height, info.Repr, info.Space.Name, r.paletteSize)
	}
	return r, nil
}

// SetFalloffMode configures how pixels outside the image bounds are
// synthesized, independently per axis.
func (r *Reader) SetFalloffMode(horz FalloffMode, vert FalloffMode) {
	r.falloffHorz = horz
	r.falloffVert = vert
}

// SetCustomColorSpaceConverters installs an override registry consulted
// before the builtin color-space conversions. The registry's lifetime is
// managed by the caller.
func (r *Reader) SetCustomColorSpaceConverters(registry *colour.ConverterRegistry) {
	r.converters = registry
}

func requestChannels(space *colour.ColorSpace, wantAlpha bool) int32 {
	n := space.NumChannels
	if wantAlpha {
		n++
	}
	return n
}

func (r *Reader) checkTray(tray *image.Tray, repr colour.CompRepr, space *colour.ColorSpace, wantAlpha bool) error {
	if tray.NumChannels != requestChannels(space, wantAlpha) {
		return fmt.Errorf("tray has %d channels, request needs %d", tray.NumChannels, requestChannels(space, wantAlpha))
	}
	if tray.IsFloat() != repr.IsFloat() {
		return fmt.Errorf("tray storage does not fit representation %v", repr)
	}
	return nil
}

// GetPixel reads the single pixel at pos into out, which must hold
// NumChannels components for the requested space/alpha combination.
func (r *Reader) GetPixel(pos util.Point, out colour.CompSlice, repr colour.CompRepr,
	space *colour.ColorSpace, wantAlpha bool) error {
	n := requestChannels(space, wantAlpha)
	tray := &image.Tray{
		Width:       1,
		Height:      1,
		NumChannels: n,
		HorzStride:  n,
		VertStride:  n,
		IntBuffer:   out.Int,
		FloatBuffer: out.Float,
	}
	return r.GetBlock(pos, tray, repr, space, wantAlpha)
}

// GetBlock fills the tray with the rectangle of pixels starting at pos,
// converted to the requested representation, color space and alpha
// presence. The rectangle may extend outside the image; missing pixels are
// synthesized per the falloff modes. Clobbers both scratch workspaces.
func (r *Reader) GetBlock(pos util.Point, tray *image.Tray, repr colour.CompRepr,
	space *colour.ColorSpace, wantAlpha bool) error {
	if err := r.checkTray(tray, repr, space, wantAlpha); err != nil {
		return err
	}
	if tray.Width <= 0 || tray.Height <= 0 {
		return nil
	}
	// bounded sub-rectangles: thin requests get area-equivalent strips
	tileArea := int(r.opts.PreferredBlockWidth) * int(r.opts.PreferredBlockHeight)
	baseWidth := util.Min(r.opts.PreferredBlockWidth, tray.Width)
	for ty := int32(0); ty < tray.Height; {
		bandHeight := util.Min(int32(tileArea/int(baseWidth)), tray.Height-ty)
		for tx := int32(0); tx < tray.Width; {
			tileWidth := util.Min(baseWidth, tray.Width-tx)
			sub := tray.SubTray(util.NewBox(ty, tx, bandHeight, tileWidth))
			subPos := util.Point{X: pos.X + tx, Y: pos.Y + ty}
			if err := r.readG(subPos, sub, repr, space, wantAlpha); err != nil {
				return err
			}
			tx += tileWidth
		}
		ty += bandHeight
	}
	return nil
}

// readG is the per-sub-box conversion gate: a request in the native
// representation and color space goes straight to readE (alpha synthesis
// and removal are lossless, values being alpha premultiplied); anything
// else is read natively with alpha forced present and converted per pixel.
func (r *Reader) readG(pos util.Point, tray *image.Tray, repr colour.CompRepr,
	space *colour.ColorSpace, wantAlpha bool) error {
	if repr == r.info.Repr && space == r.info.Space {
		return r.readE(pos, tray, repr, wantAlpha)
	}
	scratch := r.ws1.tray(r.info.Repr.IsFloat(), tray.Height, tray.Width, r.numChannelsExt)
	if err := r.readE(pos, scratch, r.info.Repr, true); err != nil {
		return err
	}
	origin := colour.PixelDesc{Repr: r.info.Repr, Space: r.info.Space, HasAlpha: true}
	destin := colour.PixelDesc{Repr: repr, Space: space, HasAlpha: wantAlpha}
	for row := int32(0); row < tray.Height; row++ {
		for col := int32(0); col < tray.Width; col++ {
			err := colour.PixelConvert(origin, scratch.Comps(row, col), destin, tray.Comps(row, col), r.converters)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
