package thumbnail

import (
	"errors"
	"image"
	"io"
)

var (
	errNotEnough = errors.New("thumbnail: not enough image data")
	errTooMuch   = errors.New("thumbnail: too much image data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func upperNibble(b byte) byte {
	return b >> 4
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

type decoder struct {
	r io.Reader

	image *image.Paletted

	tmp [Size]byte
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := readFull(d.r, d.tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	if n, err := r.Read(d.tmp[:1]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	if configOnly {
		return nil
	}

	d.image = image.NewPaletted(image.Rect(0, 0, pixelX, pixelY), palette)

	for ty := 0; ty < tileY; ty++ {
		for tx := 0; tx < tileX; tx++ {
			for y := 0; y < tileHeight; y++ {
				for x := 0; x < tileWidth>>1; x++ {
					i := ty*(pixelX*tileHeight)>>1 + tx*tilePixelBytes + y*tileWidth>>1 + x

					dx := tx*tileWidth + x<<1
					dy := ty*tileHeight + y

					d.image.SetColorIndex(dx+0, dy, lowerNibble(d.tmp[i]))
					d.image.SetColorIndex(dx+1, dy, upperNibble(d.tmp[i]))
				}
			}
		}
	}

	return nil
}

const tilePixelBytes = tileWidth * tileHeight >> 1

// Decode reads an encoded thumbnail from r and returns it as an
// image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a thumbnail
// without decoding the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: palette,
		Width:      pixelX,
		Height:     pixelY,
	}, nil
}
