package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompReprConvert(t *testing.T) {
	in := CompSlice{Int: []int32{0, 128, 255}}
	out := CompSlice{Float: make([]float32, 3)}
	CompReprConvert(Int8, in, Float32, out, 3)
	assert.Equal(t, float32(0), out.Float[0])
	assert.InDelta(t, 0.5, out.Float[1], 0.01)
	assert.Equal(t, float32(1), out.Float[2])

	wide := CompSlice{Int: make([]int32, 3)}
	CompReprConvert(Int8, in, Int16, wide, 3)
	assert.Equal(t, int32(0), wide.Int[0])
	assert.Equal(t, int32(65535), wide.Int[2])
}

func TestPixelConvertSameSpace(t *testing.T) {
	origin := PixelDesc{Repr: Int8, Space: RGB, HasAlpha: true}
	destin := PixelDesc{Repr: Float32, Space: RGB, HasAlpha: true}
	in := CompSlice{Int: []int32{255, 0, 0, 255}}
	out := CompSlice{Float: make([]float32, 4)}
	require.NoError(t, PixelConvert(origin, in, destin, out, nil))
	assert.Equal(t, []float32{1, 0, 0, 1}, out.Float)
}

func TestPixelConvertAlphaSynthesis(t *testing.T) {
	// origin without alpha reads as solid
	origin := PixelDesc{Repr: Int8, Space: RGB, HasAlpha: false}
	destin := PixelDesc{Repr: Int8, Space: RGB, HasAlpha: true}
	in := CompSlice{Int: []int32{10, 20, 30}}
	out := CompSlice{Int: make([]int32, 4)}
	require.NoError(t, PixelConvert(origin, in, destin, out, nil))
	assert.Equal(t, []int32{10, 20, 30, 255}, out.Int)
}

func TestPixelConvertAlphaDrop(t *testing.T) {
	// values are premultiplied, dropping alpha keeps the colors as stored
	origin := PixelDesc{Repr: Int8, Space: RGB, HasAlpha: true}
	destin := PixelDesc{Repr: Int8, Space: RGB, HasAlpha: false}
	in := CompSlice{Int: []int32{10, 20, 30, 128}}
	out := CompSlice{Int: make([]int32, 3)}
	require.NoError(t, PixelConvert(origin, in, destin, out, nil))
	assert.Equal(t, []int32{10, 20, 30}, out.Int)
}

func TestPixelConvertRGBToLum(t *testing.T) {
	origin := PixelDesc{Repr: Float32, Space: RGB, HasAlpha: false}
	destin := PixelDesc{Repr: Float32, Space: Lum, HasAlpha: false}
	in := CompSlice{Float: []float32{1, 1, 1}}
	out := CompSlice{Float: make([]float32, 1)}
	require.NoError(t, PixelConvert(origin, in, destin, out, nil))
	assert.InDelta(t, 1.0, out.Float[0], 0.001)
}

func TestPixelConvertUnknownSpace(t *testing.T) {
	strange := &ColorSpace{Name: "strange", NumChannels: 2}
	origin := PixelDesc{Repr: Float32, Space: strange, HasAlpha: false}
	destin := PixelDesc{Repr: Float32, Space: RGB, HasAlpha: false}
	in := CompSlice{Float: []float32{0.5, 0.5}}
	out := CompSlice{Float: make([]float32, 3)}
	assert.Error(t, PixelConvert(origin, in, destin, out, nil))
}

func TestConverterRegistryOverride(t *testing.T) {
	strange := &ColorSpace{Name: "strange", NumChannels: 2}
	registry := NewConverterRegistry()
	registry.Register(strange, RGB, func(in []float32, out []float32) {
		out[0], out[1], out[2] = in[0], in[1], 0
	})

	origin := PixelDesc{Repr: Float32, Space: strange, HasAlpha: false}
	destin := PixelDesc{Repr: Float32, Space: RGB, HasAlpha: false}
	in := CompSlice{Float: []float32{0.25, 0.75}}
	out := CompSlice{Float: make([]float32, 3)}
	require.NoError(t, PixelConvert(origin, in, destin, out, registry))
	assert.Equal(t, []float32{0.25, 0.75, 0}, out.Float)
}
