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

// 2x2 indexed image over a four entry rgb palette. Entry 3 is
// translucent; the pixel at (1,1) is an out of range index.
func newPalettedReader(t *testing.T) *Reader {
	t.Helper()
	palette := &testcommon.FakeImage{
		Size: util.Dimension{Width: 4, Height: 1},
		Info: image.TransferInfo{Repr: colour.Int8, Space: colour.RGB, HasAlpha: true},
		IntPixels: []int32{
			0, 0, 0, 255,
			255, 0, 0, 255,
			0, 255, 0, 255,
			60, 60, 60, 128,
		},
	}
	img := &testcommon.FakeImage{
		Size:      util.Dimension{Width: 2, Height: 2},
		Info:      image.TransferInfo{Repr: colour.Int8, Space: colour.RGB, HasAlpha: true},
		Palette:   palette,
		IntPixels: []int32{1, 2, 3, 9},
	}
	r, err := NewReader(img, nil)
	require.NoError(t, err)
	return r
}

func TestPaletteLookup(t *testing.T) {
	r := newPalettedReader(t)

	var out [4]int32
	require.NoError(t, r.PaletteLookup(1, colour.CompSlice{Int: out[:]}, colour.Int8, colour.RGB, true))
	assert.Equal(t, [4]int32{255, 0, 0, 255}, out)

	var noAlpha [3]int32
	require.NoError(t, r.PaletteLookup(2, colour.CompSlice{Int: noAlpha[:]}, colour.Int8, colour.RGB, false))
	assert.Equal(t, [3]int32{0, 255, 0}, noAlpha)

	// translucent entry without alpha goes through the neutral form;
	// premultiplied components come back unchanged
	require.NoError(t, r.PaletteLookup(3, colour.CompSlice{Int: noAlpha[:]}, colour.Int8, colour.RGB, false))
	assert.Equal(t, [3]int32{60, 60, 60}, noAlpha)
}

func TestPaletteLookupOutOfRange(t *testing.T) {
	r := newPalettedReader(t)
	require.NoError(t, r.SetBackgroundColor(colour.CompSlice{Int: []int32{9, 9, 9}}, colour.Int8, colour.RGB, false))

	var out [4]int32
	for _, index := range []int32{-1, 4, 100} {
		require.NoError(t, r.PaletteLookup(index, colour.CompSlice{Int: out[:]}, colour.Int8, colour.RGB, true))
		assert.Equal(t, [4]int32{9, 9, 9, 255}, out, "index %d resolves to the background", index)
	}
}

func TestPaletteLookupNeutralForm(t *testing.T) {
	r := newPalettedReader(t)

	var f [4]float32
	require.NoError(t, r.PaletteLookup(1, colour.CompSlice{Float: f[:]}, colour.Float32, colour.RGB, true))
	assert.InDelta(t, 1, f[0], 1e-6)
	assert.Equal(t, float32(0), f[1])
	assert.InDelta(t, 1, f[3], 1e-6)

	var lum [1]int32
	require.NoError(t, r.PaletteLookup(0, colour.CompSlice{Int: lum[:]}, colour.Int8, colour.Lum, false))
	assert.Equal(t, int32(0), lum[0])
}

func TestPaletteLookupWithoutPalette(t *testing.T) {
	img := &testcommon.FakeImage{
		Size:      util.Dimension{Width: 1, Height: 1},
		Info:      image.TransferInfo{Repr: colour.Int8, Space: colour.Lum},
		IntPixels: []int32{1},
	}
	r, err := NewReader(img, nil)
	require.NoError(t, err)

	var out [1]int32
	assert.Error(t, r.PaletteLookup(0, colour.CompSlice{Int: out[:]}, colour.Int8, colour.Lum, false))
}

func TestIndexedGetBlock(t *testing.T) {
	r := newPalettedReader(t)

	tray := image.NewIntTray(2, 2, 4)
	require.NoError(t, r.GetBlock(util.Point{}, tray, colour.Int8, colour.RGB, true))
	assert.Equal(t, []int32{
		255, 0, 0, 255, 0, 255, 0, 255,
		60, 60, 60, 128, 0, 0, 0, 0,
	}, tray.IntBuffer, "indices resolve to entries, out of range to the background")
}

func TestIndexedGetBlockConverted(t *testing.T) {
	r := newPalettedReader(t)

	tray := image.NewIntTray(2, 2, 2)
	require.NoError(t, r.GetBlock(util.Point{}, tray, colour.Int16, colour.Lum, true))
	// entry 1 is pure red premultiplied at full alpha
	want := colour.FloatToInt(0.2126, 65535)
	assert.InDelta(t, float64(want), float64(tray.IntBuffer[0]), 1)
	assert.Equal(t, int32(65535), tray.IntBuffer[1])
}

func TestIndexedFalloff(t *testing.T) {
	r := newPalettedReader(t)
	r.SetFalloffMode(FalloffEdge, FalloffEdge)

	tray := image.NewIntTray(1, 4, 4)
	require.NoError(t, r.GetBlock(util.Point{X: -1, Y: 0}, tray, colour.Int8, colour.RGB, true))
	assert.Equal(t, []int32{
		255, 0, 0, 255,
		255, 0, 0, 255,
		0, 255, 0, 255,
		0, 255, 0, 255,
	}, tray.IntBuffer, "edge replication happens after palette resolution")
}

func TestEmptyPalette(t *testing.T) {
	img := &testcommon.FakeImage{
		Size:      util.Dimension{Width: 1, Height: 1},
		Info:      image.TransferInfo{Repr: colour.Int8, Space: colour.RGB, HasAlpha: true},
		Palette:   &testcommon.FakeImage{Info: image.TransferInfo{Repr: colour.Int8, Space: colour.RGB, HasAlpha: true}},
		IntPixels: []int32{0},
	}
	r, err := NewReader(img, nil)
	require.NoError(t, err)

	var out [4]int32
	require.NoError(t, r.PaletteLookup(0, colour.CompSlice{Int: out[:]}, colour.Int8, colour.RGB, true))
	assert.Equal(t, [4]int32{0, 0, 0, 0}, out, "every index is out of range")
}
