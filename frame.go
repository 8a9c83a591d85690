package ppm

// Line codes for one scanline of one layer.
const (
	lineEmpty    = 0
	lineCoded    = 1
	lineInverted = 2
	lineRaw      = 3
)

// Frame is one decoded animation frame: two 1-bit layers plus the
// palette selection from the frame header. Layer 0 is painted over
// layer 1. A Frame is never mutated once decoded.
type Frame struct {
	// StartsFresh records that the frame was stored without a delta
	// against its predecessor
	StartsFresh bool
	// Inverted swaps palette entries 0 and 1 for this frame
	Inverted bool
	// Pen selects the palette entry for each layer
	Pen [2]uint8
	// DX and DY shift the previous frame before the delta merge
	DX, DY int

	// Layers hold ScreenWidth*ScreenHeight pixels each, row-major
	Layers [2][]bool
}

// Pixel reports whether the pixel at (x, y) of the given layer is set.
func (fr *Frame) Pixel(layer, x, y int) bool {
	return fr.Layers[layer][y*ScreenWidth+x]
}

// frameReader walks the buffer from a frame's offset, turning any read
// past the end into a TruncatedFrameError.
type frameReader struct {
	data  []byte
	pos   int
	frame int
}

func (r *frameReader) byte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, &TruncatedFrameError{Frame: r.frame, Offset: r.pos}
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *frameReader) slice(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, &TruncatedFrameError{Frame: r.frame, Offset: r.pos}
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *frameReader) uint32be() (uint32, error) {
	b, err := r.slice(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

// decodeFrame decodes the frame stored at offset and merges it with
// prev, the already-merged predecessor. prev is nil for a frame that
// has none; a frame whose header marks it as starting fresh ignores
// prev entirely.
func (d *Decoder) decodeFrame(data []byte, index, offset int, prev *Frame) (*Frame, error) {
	r := &frameReader{data: data, pos: offset, frame: index}

	header, err := r.byte()
	if err != nil {
		return nil, err
	}

	fr := &Frame{
		StartsFresh: header&0x80 != 0,
		Inverted:    header&0x01 == 0,
		Pen:         [2]uint8{header >> 1 & 0x03, header >> 3 & 0x03},
	}

	// Bits 5-6 carry auxiliary tags. Bit 1 means a translation
	// follows; the others are unconfirmed and tolerated.
	if tag := header >> 5 & 0x03; tag&0x2 != 0 {
		x, err := r.byte()
		if err != nil {
			return nil, err
		}
		y, err := r.byte()
		if err != nil {
			return nil, err
		}
		fr.DX, fr.DY = int(int8(x)), int(int8(y))
	} else if tag != 0 {
		d.logf("ppm: unknown frame tags %#x at offset %#x", tag, offset)
	}

	// 48 bytes per layer of 2-bit line codes, low bits first
	var encoding [2][ScreenHeight]byte
	for layer := 0; layer < 2; layer++ {
		b, err := r.slice(ScreenHeight / 4)
		if err != nil {
			return nil, err
		}
		for i, v := range b {
			encoding[layer][i*4+0] = v & 0x03
			encoding[layer][i*4+1] = v >> 2 & 0x03
			encoding[layer][i*4+2] = v >> 4 & 0x03
			encoding[layer][i*4+3] = v >> 6
		}
	}

	for layer := 0; layer < 2; layer++ {
		plane := make([]bool, ScreenWidth*ScreenHeight)
		fr.Layers[layer] = plane
		for y := 0; y < ScreenHeight; y++ {
			if err := decodeLine(r, plane[y*ScreenWidth:(y+1)*ScreenWidth], encoding[layer][y]); err != nil {
				return nil, err
			}
		}
	}

	if !fr.StartsFresh && prev != nil {
		src := prev.Layers
		if fr.DX != 0 || fr.DY != 0 {
			src = translate(src, fr.DX, fr.DY)
		}
		for layer := 0; layer < 2; layer++ {
			plane := fr.Layers[layer]
			for i, set := range src[layer] {
				plane[i] = plane[i] != set
			}
		}
	}

	return fr, nil
}

// decodeLine fills one ScreenWidth pixel scanline according to its
// line code.
func decodeLine(r *frameReader, row []bool, code byte) error {
	switch code {
	case lineEmpty:
	case lineCoded, lineInverted:
		// A 32-bit mask, scanned from the most significant bit,
		// marks which 8 pixel runs have a data byte; unmarked runs
		// are skipped.
		mask, err := r.uint32be()
		if err != nil {
			return err
		}
		set := code == lineCoded
		for x := 0; mask != 0; mask <<= 1 {
			if mask&0x80000000 == 0 {
				x += 8
				continue
			}
			b, err := r.byte()
			if err != nil {
				return err
			}
			for bit := 0; bit < 8; bit++ {
				if b&0x01 != 0 == set {
					row[x] = true
				}
				x++
				b >>= 1
			}
		}
		if code == lineInverted {
			for x := range row {
				row[x] = !row[x]
			}
		}
	case lineRaw:
		b, err := r.slice(ScreenWidth / 8)
		if err != nil {
			return err
		}
		x := 0
		for _, v := range b {
			for bit := 0; bit < 8; bit++ {
				if v&0x01 != 0 {
					row[x] = true
				}
				x++
				v >>= 1
			}
		}
	}
	return nil
}

// translate shifts both layers by (dx, dy), dropping pixels that land
// outside the screen.
func translate(src [2][]bool, dx, dy int) [2][]bool {
	var out [2][]bool
	for layer := range src {
		dst := make([]bool, ScreenWidth*ScreenHeight)
		for y := 0; y < ScreenHeight; y++ {
			ty := y + dy
			if ty < 0 || ty >= ScreenHeight {
				continue
			}
			for x := 0; x < ScreenWidth; x++ {
				tx := x + dx
				if tx < 0 || tx >= ScreenWidth {
					continue
				}
				dst[ty*ScreenWidth+tx] = src[layer][y*ScreenWidth+x]
			}
		}
		out[layer] = dst
	}
	return out
}
