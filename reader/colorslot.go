package reader

import (
	"errors"

	"github.com/kpfaulkner/pixbuf-go/colour"
)

// ColorSlotID names one of the Reader's two configurable colors.
type ColorSlotID int32

const (
	Background ColorSlotID = iota
	Foreground
)

// colorSlot caches one color in up to three forms. The lattice runs
// neutral (float, native space, alpha always present) -> unrestricted
// native (native repr, alpha always present) -> restricted native (native
// repr, alpha forced to the maximum). Forms are backfilled lazily from
// whichever form a SetColor call materialized.
type colorSlot struct {
	haveNeutral    bool
	haveNative     bool
	haveRestricted bool
	isSolid        bool

	neutral    []float32
	native     colour.CompSlice
	restricted colour.CompSlice
}

// SetBackgroundColor and SetForegroundColor install a fully opaque color.
func (r *Reader) SetBackgroundColor(in colour.CompSlice, repr colour.CompRepr,
	space *colour.ColorSpace, hasAlpha bool) error {
	return r.SetColor(Background, in, repr, space, hasAlpha)
}

func (r *Reader) SetForegroundColor(in colour.CompSlice, repr colour.CompRepr,
	space *colour.ColorSpace, hasAlpha bool) error {
	return r.SetColor(Foreground, in, repr, space, hasAlpha)
}

func (r *Reader) SetColor(slot ColorSlotID, in colour.CompSlice, repr colour.CompRepr,
	space *colour.ColorSpace, hasAlpha bool) error {
	return r.SetColorWithOpacity(slot, in, repr, space, hasAlpha, 1)
}

// SetColorWithOpacity installs a color for the slot, scaled by opacity.
// A native-form input at full opacity is stored as supplied; anything else
// goes through the neutral form, where the opacity multiplies every
// channel including alpha. Previously cached forms are discarded.
func (r *Reader) SetColorWithOpacity(slot ColorSlotID, in colour.CompSlice, repr colour.CompRepr,
	space *colour.ColorSpace, hasAlpha bool, opacity float32) error {
	if space == nil {
		return errors.New("color has no color space")
	}
	s := &r.slots[slot]
	*s = colorSlot{}

	if repr == r.info.Repr && space == r.info.Space && opacity == 1 {
		native := r.allocNative(s)
		n := r.info.Space.NumChannels
		for i := int32(0); i < n; i++ {
			copyComp(repr, in, native, i, i)
		}
		if hasAlpha {
			copyComp(repr, in, native, n, n)
			s.isSolid = compIsMax(repr, native, n)
		} else {
			setCompMax(repr, native, n)
			s.isSolid = true
		}
		s.haveNative = true
		return nil
	}

	s.neutral = growFloats(s.neutral, r.numChannelsExt)
	origin := colour.PixelDesc{Repr: repr, Space: space, HasAlpha: hasAlpha}
	destin := colour.PixelDesc{Repr: colour.Float32, Space: r.info.Space, HasAlpha: true}
	err := colour.PixelConvert(origin, in, destin, colour.CompSlice{Float: s.neutral}, r.converters)
	if err != nil {
		return err
	}
	for i := int32(0); i < r.numChannelsExt; i++ {
		s.neutral[i] *= opacity
	}
	s.haveNeutral = true
	return nil
}

// GetColor writes the slot's color into out in the requested form. Does
// not touch the scratch workspaces.
func (r *Reader) GetColor(slot ColorSlotID, out colour.CompSlice, repr colour.CompRepr,
	space *colour.ColorSpace, wantAlpha bool) error {
	s := &r.slots[slot]
	r.ensureSlotSet(slot, s)

	if repr == r.info.Repr && space == r.info.Space {
		r.ensureNative(s)
		if wantAlpha || repr.IsFloat() || s.isSolid {
			n := r.numChannelsExt
			if !wantAlpha {
				n--
			}
			copyComps(repr, s.native, out, n)
			return nil
		}
		r.ensureRestricted(s)
		copyComps(repr, s.restricted, out, r.numChannelsExt-1)
		return nil
	}

	r.ensureNeutral(s)
	origin := colour.PixelDesc{Repr: colour.Float32, Space: r.info.Space, HasAlpha: true}
	destin := colour.PixelDesc{Repr: repr, Space: space, HasAlpha: wantAlpha}
	return colour.PixelConvert(origin, colour.CompSlice{Float: s.neutral}, destin, out, r.converters)
}

// ensureSlotSet installs the default color the first time a slot is read
// before ever being set: transparent background, solid white foreground,
// both in the image's native representation and color space.
func (r *Reader) ensureSlotSet(id ColorSlotID, s *colorSlot) {
	if s.haveNeutral || s.haveNative {
		return
	}
	native := r.allocNative(s)
	for i := int32(0); i < r.numChannelsExt; i++ {
		if id == Foreground {
			setCompMax(r.info.Repr, native, i)
		} else {
			setCompZero(r.info.Repr, native, i)
		}
	}
	s.isSolid = id == Foreground
	s.haveNative = true
}

func (r *Reader) ensureNeutral(s *colorSlot) {
	if s.haveNeutral {
		return
	}
	s.neutral = growFloats(s.neutral, r.numChannelsExt)
	origin := colour.PixelDesc{Repr: r.info.Repr, Space: r.info.Space, HasAlpha: true}
	destin := colour.PixelDesc{Repr: colour.Float32, Space: r.info.Space, HasAlpha: true}
	// same space, never consults a converter, cannot fail
	_ = colour.PixelConvert(origin, s.native, destin, colour.CompSlice{Float: s.neutral}, nil)
	s.haveNeutral = true
}

func (r *Reader) ensureNative(s *colorSlot) {
	if s.haveNative {
		return
	}
	native := r.allocNative(s)
	origin := colour.PixelDesc{Repr: colour.Float32, Space: r.info.Space, HasAlpha: true}
	destin := colour.PixelDesc{Repr: r.info.Repr, Space: r.info.Space, HasAlpha: true}
	_ = colour.PixelConvert(origin, colour.CompSlice{Float: s.neutral}, destin, native, nil)
	s.isSolid = compIsMax(r.info.Repr, native, r.numChannelsExt-1)
	s.haveNative = true
}

// ensureRestricted materializes the solid form: values being alpha
// premultiplied, blending onto black leaves the color components alone and
// forces alpha to the maximum.
func (r *Reader) ensureRestricted(s *colorSlot) {
	if s.haveRestricted {
		return
	}
	r.ensureNative(s)
	restricted := r.allocRestricted(s)
	copyComps(r.info.Repr, s.native, restricted, r.numChannelsExt)
	setCompMax(r.info.Repr, restricted, r.numChannelsExt-1)
	s.haveRestricted = true
}

func (r *Reader) allocNative(s *colorSlot) colour.CompSlice {
	s.native = growCompSlice(s.native, r.info.Repr.IsFloat(), r.numChannelsExt)
	return s.native
}

func (r *Reader) allocRestricted(s *colorSlot) colour.CompSlice {
	s.restricted = growCompSlice(s.restricted, r.info.Repr.IsFloat(), r.numChannelsExt)
	return s.restricted
}

func growFloats(buf []float32, n int32) []float32 {
	if int32(len(buf)) < n {
		return make([]float32, n)
	}
	return buf
}

func growCompSlice(buf colour.CompSlice, isFloat bool, n int32) colour.CompSlice {
	if isFloat {
		return colour.CompSlice{Float: growFloats(buf.Float, n)}
	}
	if int32(len(buf.Int)) < n {
		return colour.CompSlice{Int: make([]int32, n)}
	}
	return buf
}

func copyComp(repr colour.CompRepr, in colour.CompSlice, out colour.CompSlice, from int32, to int32) {
	if repr.IsFloat() {
		out.Float[to] = in.Float[from]
	} else {
		out.Int[to] = in.Int[from]
	}
}

func copyComps(repr colour.CompRepr, in colour.CompSlice, out colour.CompSlice, n int32) {
	if repr.IsFloat() {
		copy(out.Float[:n], in.Float[:n])
	} else {
		copy(out.Int[:n], in.Int[:n])
	}
}

func setCompMax(repr colour.CompRepr, out colour.CompSlice, i int32) {
	if repr.IsFloat() {
		out.Float[i] = 1
	} else {
		out.Int[i] = repr.MaxValue()
	}
}

func setCompZero(repr colour.CompRepr, out colour.CompSlice, i int32) {
	if repr.IsFloat() {
		out.Float[i] = 0
	} else {
		out.Int[i] = 0
	}
}

func compIsMax(repr colour.CompRepr, c colour.CompSlice, i int32) bool {
	if repr.IsFloat() {
		return c.Float[i] >= 1
	}
	return c.Int[i] >= repr.MaxValue()
}
