package ppm

import (
	"image"
	"image/color"
)

// The fixed animation palette: paper, pen, red and blue. A frame's
// inversion flag swaps the first two entries before its pen selectors
// are applied.
var palette = [4]color.RGBA{
	{0xff, 0xff, 0xff, 0xff},
	{0x00, 0x00, 0x00, 0xff},
	{0xff, 0x00, 0x00, 0xff},
	{0x00, 0x00, 0xff, 0xff},
}

// RenderFrame composites the frame at index i onto the fixed palette.
func (f *Flipnote) RenderFrame(i int) (*image.RGBA, error) {
	if i < 0 || i >= len(f.Frames) {
		return nil, &OutOfRangeError{What: "frame", Index: i, Count: len(f.Frames)}
	}
	return f.Frames[i].Render(), nil
}

// Render composites the frame's two layers onto the fixed palette.
// Layer 1 is painted first so layer 0 takes priority where both are
// set.
func (fr *Frame) Render() *image.RGBA {
	pal := palette
	if fr.Inverted {
		pal[0], pal[1] = pal[1], pal[0]
	}
	paper, primary, secondary := pal[0], pal[fr.Pen[0]], pal[fr.Pen[1]]

	m := image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight))
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			c := paper
			if i := y*ScreenWidth + x; fr.Layers[0][i] {
				c = primary
			} else if fr.Layers[1][i] {
				c = secondary
			}
			m.SetRGBA(x, y, c)
		}
	}
	return m
}
