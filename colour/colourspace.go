package colour

// ColorSpace identifies a color model and its channel count. Spaces are
// compared by pointer identity everywhere in this library: two distinct
// ColorSpace values are distinct spaces even if their fields match.
type ColorSpace struct {
	Name        string
	NumChannels int32
}

var (
	RGB = &ColorSpace{Name: "RGB", NumChannels: 3}
	Lum = &ColorSpace{Name: "Lum", NumChannels: 1}
)

// Rec. 709 luma weights, used by the builtin RGB/Lum conversions.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// ConverterFunc maps the color channels (no alpha) of one pixel between two
// spaces. Both slices are in the neutral floating point representation.
type ConverterFunc func(in []float32, out []float32)

// ConverterRegistry is the optional override hook consulted before the
// builtin conversions. The zero value is usable.
type ConverterRegistry struct {
	converters map[[2]*ColorSpace]ConverterFunc
}

func NewConverterRegistry() *ConverterRegistry {
	return &ConverterRegistry{
		converters: map[[2]*ColorSpace]ConverterFunc{},
	}
}

func (r *ConverterRegistry) Register(origin *ColorSpace, destin *ColorSpace, fn ConverterFunc) {
	if r.converters == nil {
		r.converters = map[[2]*ColorSpace]ConverterFunc{}
	}
	r.converters[[2]*ColorSpace{origin, destin}] = fn
}

// Find returns the registered converter for the ordered pair, or nil.
func (r *ConverterRegistry) Find(origin *ColorSpace, destin *ColorSpace) ConverterFunc {
	if r == nil || r.converters == nil {
		return nil
	}
	return r.converters[[2]*ColorSpace{origin, destin}]
}

// FindConverter resolves a converter for the pair: a registry entry if one
// exists, then the builtin RGB/Lum conversions. Returns nil when the pair
// cannot be converted.
func FindConverter(registry *ConverterRegistry, origin *ColorSpace, destin *ColorSpace) ConverterFunc {
	if fn := registry.Find(origin, destin); fn != nil {
		return fn
	}
	switch {
	case origin == destin:
		return func(in []float32, out []float32) {
			copy(out, in[:len(out)])
		}
	case origin == RGB && destin == Lum:
		return func(in []float32, out []float32) {
			out[0] = lumaR*in[0] + lumaG*in[1] + lumaB*in[2]
		}
	case origin == Lum && destin == RGB:
		return func(in []float32, out []float32) {
			out[0] = in[0]
			out[1] = in[0]
			out[2] = in[0]
		}
	}
	return nil
}
