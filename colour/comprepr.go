package colour

import "math"

// CompRepr is a closed enumeration of the component representations pixel
// data can be delivered in. Integer representations store components in
// int32 slots holding [0, MaxValue]; Float32 stores [0, 1] in float32
// slots. All representations carry color premultiplied by alpha.
type CompRepr int32

const (
	Int8 CompRepr = iota
	Int16
	Float32
)

func (r CompRepr) IsFloat() bool {
	return r == Float32
}

// MaxValue returns the full-intensity (and solid-alpha) component value for
// integer representations, and 0 for Float32.
func (r CompRepr) MaxValue() int32 {
	switch r {
	case Int8:
		return 255
	case Int16:
		return 65535
	}
	return 0
}

func (r CompRepr) String() string {
	switch r {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Float32:
		return "float32"
	}
	return "unknown"
}

// IntToFloat requantizes an integer component to the neutral form.
func IntToFloat(v int32, max int32) float32 {
	return float32(v) / float32(max)
}

// FloatToInt requantizes a neutral component, clamping to the valid range.
func FloatToInt(v float32, max int32) int32 {
	if v != v || v <= 0 {
		return 0
	}
	if v >= 1 {
		return max
	}
	return int32(math.Round(float64(v) * float64(max)))
}

// IntToInt rescales between integer representations with round-to-nearest.
// Equal maxima pass values through untouched.
func IntToInt(v int32, originMax int32, destinMax int32) int32 {
	if originMax == destinMax {
		return v
	}
	return int32((int64(v)*int64(destinMax) + int64(originMax)/2) / int64(originMax))
}
