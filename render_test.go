package ppm

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
	black = color.RGBA{0x00, 0x00, 0x00, 0xff}
	red   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	blue  = color.RGBA{0x00, 0x00, 0xff, 0xff}
)

func TestRenderFrame(t *testing.T) {
	fs := freshFrame()
	// Pens: layer 0 red, layer 1 blue
	fs.header = 0x80 | 0x01 | 0x2<<1 | 0x3<<3
	fs.codes[0][0] = lineRaw
	fs.codes[1][0] = lineRaw
	layer0 := make([]byte, 32)
	layer0[0] = 0x01 // pixel 0
	layer1 := make([]byte, 32)
	layer1[0] = 0x03 // pixels 0 and 1
	fs.body = append(layer0, layer1...)

	f := decodeFrames(t, fs.encode())

	m, err := f.RenderFrame(0)
	require.NoError(t, err)
	assert.Equal(t, ScreenWidth, m.Bounds().Dx())
	assert.Equal(t, ScreenHeight, m.Bounds().Dy())

	// Layer 0 wins where both layers are set
	assert.Equal(t, red, m.RGBAAt(0, 0))
	assert.Equal(t, blue, m.RGBAAt(1, 0))
	assert.Equal(t, white, m.RGBAAt(2, 0))
	assert.Equal(t, white, m.RGBAAt(128, 96))
}

func TestRenderInvertedFrame(t *testing.T) {
	fs := freshFrame()
	// Bit 0 clear: paper and pen swap. Pen selector 1 now picks the
	// paper color.
	fs.header = 0x80 | 0x1<<1
	fs.codes[0][0] = lineRaw
	body := make([]byte, 32)
	body[0] = 0x01
	fs.body = body

	f := decodeFrames(t, fs.encode())
	require.True(t, f.Frames[0].Inverted)

	m, err := f.RenderFrame(0)
	require.NoError(t, err)

	assert.Equal(t, white, m.RGBAAt(0, 0))
	assert.Equal(t, black, m.RGBAAt(1, 0))
}

func TestRenderPenSelectors(t *testing.T) {
	for _, tc := range []struct {
		pen  byte
		want color.RGBA
	}{
		{1, black},
		{2, red},
		{3, blue},
	} {
		fs := freshFrame()
		fs.header = 0x80 | 0x01 | tc.pen<<1
		fs.codes[0][0] = lineRaw
		body := make([]byte, 32)
		body[0] = 0x01
		fs.body = body

		f := decodeFrames(t, fs.encode())

		m, err := f.RenderFrame(0)
		require.NoError(t, err)
		assert.Equal(t, tc.want, m.RGBAAt(0, 0), "pen %d", tc.pen)
	}
}
