package colour

import "fmt"

// PixelDesc names a complete pixel representation: component repr, color
// space and whether an alpha channel is present.
type PixelDesc struct {
	Repr     CompRepr
	Space    *ColorSpace
	HasAlpha bool
}

func (d PixelDesc) NumChannels() int32 {
	n := d.Space.NumChannels
	if d.HasAlpha {
		n++
	}
	return n
}

// CompSlice carries pixel components in whichever buffer class the
// representation uses. Exactly one of the two slices is consulted.
type CompSlice struct {
	Int   []int32
	Float []float32
}

func (c CompSlice) get(repr CompRepr, i int32) float32 {
	if repr.IsFloat() {
		return c.Float[i]
	}
	return IntToFloat(c.Int[i], repr.MaxValue())
}

func (c CompSlice) set(repr CompRepr, i int32, v float32) {
	if repr.IsFloat() {
		c.Float[i] = v
		return
	}
	c.Int[i] = FloatToInt(v, repr.MaxValue())
}

// CompReprConvert requantizes n components between representations without
// any color space change. Integer to integer conversion does not pass
// through floating point.
func CompReprConvert(origin CompRepr, in CompSlice, destin CompRepr, out CompSlice, n int32) {
	switch {
	case origin == destin && origin.IsFloat():
		copy(out.Float[:n], in.Float[:n])
	case origin == destin:
		copy(out.Int[:n], in.Int[:n])
	case origin.IsFloat():
		for i := int32(0); i < n; i++ {
			out.Int[i] = FloatToInt(in.Float[i], destin.MaxValue())
		}
	case destin.IsFloat():
		for i := int32(0); i < n; i++ {
			out.Float[i] = IntToFloat(in.Int[i], origin.MaxValue())
		}
	default:
		for i := int32(0); i < n; i++ {
			out.Int[i] = IntToInt(in.Int[i], origin.MaxValue(), destin.MaxValue())
		}
	}
}

// PixelConvert converts one pixel between arbitrary representations, color
// spaces and alpha configurations through the neutral floating point form.
// A registry, if given, overrides the builtin color space conversions.
// Alpha is premultiplied throughout, so a missing destination alpha channel
// is a plain drop and a missing origin alpha reads as solid.
func PixelConvert(origin PixelDesc, in CompSlice, destin PixelDesc, out CompSlice, registry *ConverterRegistry) error {
	var inBuf, outBuf [maxStackChannels]float32
	originColors := neutralScratch(inBuf[:], origin.Space.NumChannels)
	destinColors := neutralScratch(outBuf[:], destin.Space.NumChannels)

	for i := int32(0); i < origin.Space.NumChannels; i++ {
		originColors[i] = in.get(origin.Repr, i)
	}
	alpha := float32(1)
	if origin.HasAlpha {
		alpha = in.get(origin.Repr, origin.Space.NumChannels)
	}

	if origin.Space != destin.Space {
		conv := FindConverter(registry, origin.Space, destin.Space)
		if conv == nil {
			return fmt.Errorf("no conversion from color space %s to %s", origin.Space.Name, destin.Space.Name)
		}
		conv(originColors, destinColors)
	} else {
		copy(destinColors, originColors)
	}

	for i := int32(0); i < destin.Space.NumChannels; i++ {
		out.set(destin.Repr, i, destinColors[i])
	}
	if destin.HasAlpha {
		out.set(destin.Repr, destin.Space.NumChannels, alpha)
	}
	return nil
}

const maxStackChannels = 8

func neutralScratch(buf []float32, n int32) []float32 {
	if int(n) <= len(buf) {
		return buf[:n]
	}
	return make([]float32, n)
}
