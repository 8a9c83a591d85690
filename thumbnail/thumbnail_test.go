package thumbnail

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	data := make([]byte, Size)
	data[0] = 0x21   // tile (0, 0): pixels (0, 0) and (1, 0)
	data[4] = 0x05   // tile (0, 0): pixel (0, 1)
	data[32] = 0x43  // tile (1, 0): pixels (8, 0) and (9, 0)
	data[256] = 0x08 // tile (0, 1): pixel (0, 8)

	m, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)

	b := m.Bounds()
	assert.Equal(t, 64, b.Dx())
	assert.Equal(t, 48, b.Dy())

	// Lower nibble is the left pixel
	assert.Equal(t, color.RGBA{0x4f, 0x4f, 0x4f, 0xff}, m.At(0, 0))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, m.At(1, 0))

	assert.Equal(t, color.RGBA{0x77, 0x00, 0x00, 0xff}, m.At(0, 1))

	assert.Equal(t, color.RGBA{0x9f, 0x9f, 0x9f, 0xff}, m.At(8, 0))
	assert.Equal(t, color.RGBA{0xff, 0x00, 0x00, 0xff}, m.At(9, 0))

	assert.Equal(t, color.RGBA{0x00, 0x00, 0xff, 0xff}, m.At(0, 8))

	// Index 0 everywhere else
	assert.Equal(t, color.RGBA{0xfe, 0xfe, 0xfe, 0xff}, m.At(63, 47))
}

func TestDecodeConfig(t *testing.T) {
	c, err := DecodeConfig(bytes.NewReader(make([]byte, Size)))
	require.NoError(t, err)
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, 48, c.Height)
	assert.Equal(t, palette, c.ColorModel)
}

func TestDecodeNotEnough(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, Size-1)))
	assert.EqualError(t, err, "thumbnail: not enough image data")
}

func TestDecodeTooMuch(t *testing.T) {
	_, err := Decode(bytes.NewReader(make([]byte, Size+1)))
	assert.EqualError(t, err, "thumbnail: too much image data")
}
