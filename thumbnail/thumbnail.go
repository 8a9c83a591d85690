/*
Package thumbnail implements a decoder for the 64 by 48 pixel preview
image embedded in every PPM file.

The image is stored as 1536 bytes of 4-bit color indices against a
fixed 16 color palette, tiled as 8 by 8 pixel tiles in an 8 by 6 grid.
Within each byte the lower nibble is the left pixel. There is no
compression and no per-file palette.
*/
package thumbnail

import "image/color"

const (
	tileWidth  = 8
	tileHeight = tileWidth
	tileX      = 8
	tileY      = 6
	pixelX     = tileWidth * tileX
	pixelY     = tileHeight * tileY
	numPixels  = pixelX * pixelY

	// Size is the number of bytes of an encoded thumbnail
	Size = numPixels >> 1
)

// The fixed thumbnail palette. Several entries decode to the same
// green; the hardware never emits them but files can hold them.
var palette = color.Palette{
	color.RGBA{0xfe, 0xfe, 0xfe, 0xff},
	color.RGBA{0x4f, 0x4f, 0x4f, 0xff},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
	color.RGBA{0x9f, 0x9f, 0x9f, 0xff},
	color.RGBA{0xff, 0x00, 0x00, 0xff},
	color.RGBA{0x77, 0x00, 0x00, 0xff},
	color.RGBA{0xff, 0x77, 0x77, 0xff},
	color.RGBA{0x00, 0xff, 0x00, 0xff},
	color.RGBA{0x00, 0x00, 0xff, 0xff},
	color.RGBA{0x00, 0x00, 0x77, 0xff},
	color.RGBA{0x77, 0x77, 0xff, 0xff},
	color.RGBA{0x00, 0xff, 0x00, 0xff},
	color.RGBA{0xff, 0x00, 0xff, 0xff},
	color.RGBA{0x00, 0xff, 0x00, 0xff},
	color.RGBA{0x00, 0xff, 0x00, 0xff},
	color.RGBA{0x00, 0xff, 0x00, 0xff},
}
