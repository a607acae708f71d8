package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/pixbuf-go/colour"
	"github.com/kpfaulkner/pixbuf-go/image"
	"github.com/kpfaulkner/pixbuf-go/testcommon"
	"github.com/kpfaulkner/pixbuf-go/util"
)

func newColorReader(t *testing.T) *Reader {
	t.Helper()
	img := &testcommon.FakeImage{
		Size:      util.Dimension{Width: 1, Height: 1},
		Info:      image.TransferInfo{Repr: colour.Int8, Space: colour.RGB, HasAlpha: true},
		IntPixels: []int32{0, 0, 0, 255},
	}
	r, err := NewReader(img, nil)
	require.NoError(t, err)
	return r
}

func TestDefaultColors(t *testing.T) {
	r := newColorReader(t)

	var out [4]int32
	require.NoError(t, r.GetColor(Background, colour.CompSlice{Int: out[:]}, colour.Int8, colour.RGB, true))
	assert.Equal(t, [4]int32{0, 0, 0, 0}, out, "default background is transparent")

	require.NoError(t, r.GetColor(Foreground, colour.CompSlice{Int: out[:]}, colour.Int8, colour.RGB, true))
	assert.Equal(t, [4]int32{255, 255, 255, 255}, out, "default foreground is solid white")

	// non-native representation goes through the neutral form
	var f [4]float32
	require.NoError(t, r.GetColor(Foreground, colour.CompSlice{Float: f[:]}, colour.Float32, colour.RGB, true))
	assert.Equal(t, [4]float32{1, 1, 1, 1}, f)
}

func TestSetColorNativeForm(t *testing.T) {
	r := newColorReader(t)

	in := colour.CompSlice{Int: []int32{10, 20, 30}}
	require.NoError(t, r.SetBackgroundColor(in, colour.Int8, colour.RGB, false))

	var out [4]int32
	require.NoError(t, r.GetColor(Background, colour.CompSlice{Int: out[:]}, colour.Int8, colour.RGB, true))
	assert.Equal(t, [4]int32{10, 20, 30, 255}, out, "missing alpha is installed as solid")

	var noAlpha [3]int32
	require.NoError(t, r.GetColor(Background, colour.CompSlice{Int: noAlpha[:]}, colour.Int8, colour.RGB, false))
	assert.Equal(t, [3]int32{10, 20, 30}, noAlpha)
}

func TestSetColorTranslucent(t *testing.T) {
	r := newColorReader(t)

	in := colour.CompSlice{Int: []int32{100, 60, 20, 128}}
	require.NoError(t, r.SetForegroundColor(in, colour.Int8, colour.RGB, true))

	var out [4]int32
	require.NoError(t, r.GetColor(Foreground, colour.CompSlice{Int: out[:]}, colour.Int8, colour.RGB, true))
	assert.Equal(t, [4]int32{100, 60, 20, 128}, out)

	// premultiplied components are delivered as stored when alpha is dropped
	var noAlpha [3]int32
	require.NoError(t, r.GetColor(Foreground, colour.CompSlice{Int: noAlpha[:]}, colour.Int8, colour.RGB, false))
	assert.Equal(t, [3]int32{100, 60, 20}, noAlpha)
}

func TestSetColorWithOpacity(t *testing.T) {
	r := newColorReader(t)

	in := colour.CompSlice{Int: []int32{255, 255, 255, 255}}
	require.NoError(t, r.SetColorWithOpacity(Foreground, in, colour.Int8, colour.RGB, true, 0.5))

	var f [4]float32
	require.NoError(t, r.GetColor(Foreground, colour.CompSlice{Float: f[:]}, colour.Float32, colour.RGB, true))
	for i := range f {
		assert.InDelta(t, 0.5, f[i], 1e-6, "opacity scales every channel including alpha")
	}

	require.NoError(t, r.SetColorWithOpacity(Foreground, in, colour.Int8, colour.RGB, true, 0))
	require.NoError(t, r.GetColor(Foreground, colour.CompSlice{Float: f[:]}, colour.Float32, colour.RGB, true))
	assert.Equal(t, [4]float32{0, 0, 0, 0}, f)
}

func TestSetColorForeignSpace(t *testing.T) {
	r := newColorReader(t)

	require.NoError(t, r.SetBackgroundColor(colour.CompSlice{Int: []int32{255}}, colour.Int8, colour.Lum, false))

	var out [4]int32
	require.NoError(t, r.GetColor(Background, colour.CompSlice{Int: out[:]}, colour.Int8, colour.RGB, true))
	assert.Equal(t, [4]int32{255, 255, 255, 255}, out, "gray expands to rgb")
}

func TestGetColorForeignSpace(t *testing.T) {
	r := newColorReader(t)

	var lum [1]int32
	require.NoError(t, r.GetColor(Foreground, colour.CompSlice{Int: lum[:]}, colour.Int8, colour.Lum, false))
	assert.Equal(t, int32(255), lum[0])
}

func TestSetColorErrors(t *testing.T) {
	r := newColorReader(t)
	err := r.SetBackgroundColor(colour.CompSlice{Int: []int32{1}}, colour.Int8, nil, false)
	assert.Error(t, err, "color needs a color space")

	unknown := &colour.ColorSpace{Name: "XYZ", NumChannels: 3}
	err = r.SetBackgroundColor(colour.CompSlice{Int: []int32{1, 2, 3}}, colour.Int8, unknown, false)
	assert.Error(t, err, "no conversion into the native space")
}
