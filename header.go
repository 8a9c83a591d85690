package ppm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"
	"unicode/utf16"
)

// Field offsets within the fixed header. All integers are little
// endian; author IDs are stored byte-reversed and rendered as hex.
const (
	offSoundTable     = 0x04
	offFrameCount     = 0x0c
	offFlags          = 0x10
	offThumbnailFrame = 0x12
	offOriginalName   = 0x14
	offEditorName     = 0x2a
	offOwnerName      = 0x40
	offOriginalID     = 0x56
	offEditorID       = 0x5e
	offOriginalFile   = 0x66
	offCurrentFile    = 0x78
	offPreviousID     = 0x8a
	offTimestamp      = 0x9a
	offThumbnail      = 0xa0
	offAnimTableSize  = 0x6a0
	offAnimFlags      = 0x6a6
	offFrameOffsets   = 0x6a8

	nameLength      = 22
	filenameLength  = 18
	thumbnailLength = 0x6a0 - 0xa0
)

// Decode parses a complete PPM file held in data. On a
// *TruncatedFrameError the returned Flipnote is still populated with
// the frames decoded before the failure; on any other error it is nil.
func (d *Decoder) Decode(data []byte) (*Flipnote, error) {
	if len(data) <= headerSize || !bytes.Equal(data[:4], signature) {
		e := &InvalidContainerError{Length: len(data)}
		if len(data) >= 4 {
			e.Magic = append([]byte(nil), data[:4]...)
		} else {
			e.Magic = append([]byte(nil), data...)
		}
		return nil, e
	}

	f := &Flipnote{
		Locked:         data[offFlags]&0x01 != 0,
		Looped:         data[offAnimFlags]>>1&0x01 != 0,
		ThumbnailFrame: int(binary.LittleEndian.Uint16(data[offThumbnailFrame:])),

		OriginalAuthorName: decodeUTF16(data[offOriginalName : offOriginalName+nameLength]),
		EditorAuthorName:   decodeUTF16(data[offEditorName : offEditorName+nameLength]),
		OwnerName:          decodeUTF16(data[offOwnerName : offOwnerName+nameLength]),

		OriginalAuthorID: formatID(data[offOriginalID:]),
		EditorAuthorID:   formatID(data[offEditorID:]),
		PreviousEditorID: formatID(data[offPreviousID:]),

		OriginalFilename: decompressFilename(data[offOriginalFile : offOriginalFile+filenameLength]),
		CurrentFilename:  decompressFilename(data[offCurrentFile : offCurrentFile+filenameLength]),

		CreatedAt: timestamp(binary.LittleEndian.Uint32(data[offTimestamp:])),

		RawThumbnail: append([]byte(nil), data[offThumbnail:offThumbnail+thumbnailLength]...),
	}

	f.FrameCount = int(binary.LittleEndian.Uint16(data[offFrameCount:])) + 1
	if f.FrameCount > maxFrames {
		f.FrameCount = maxFrames
	}

	soundOffset := int(binary.LittleEndian.Uint32(data[offSoundTable:])) + headerSize

	// Frame offset table, relative to the end of the animation table
	animOffset := offFrameOffsets + int(binary.LittleEndian.Uint32(data[offAnimTableSize:]))
	if offFrameOffsets+4*f.FrameCount > len(data) {
		return nil, &InvalidContainerError{Length: len(data), Field: "frame offset table"}
	}
	offsets := make([]int, f.FrameCount)
	for i := range offsets {
		offsets[i] = animOffset + int(binary.LittleEndian.Uint32(data[offFrameOffsets+4*i:]))
		if offsets[i] >= len(data) {
			return nil, &InvalidContainerError{Length: len(data), Field: fmt.Sprintf("frame %d offset", i)}
		}
	}

	// Per-frame effect usage sits at the start of the sound section
	if soundOffset+f.FrameCount > len(data) {
		return nil, &InvalidContainerError{Length: len(data), Field: "effect usage table"}
	}
	f.SFXUsage = make([][3]bool, f.FrameCount)
	for i, b := range data[soundOffset : soundOffset+f.FrameCount] {
		f.SFXUsage[i] = [3]bool{b&0x1 != 0, b&0x2 != 0, b&0x4 != 0}
	}

	sizes, err := d.decodeSoundHeader(data, f, soundOffset)
	if err != nil {
		return nil, err
	}

	if !d.opts.SkipFrames {
		count := f.FrameCount
		if d.opts.FrameCap > 0 && d.opts.FrameCap < count {
			count = d.opts.FrameCap
		}
		f.Frames = make([]*Frame, 0, count)
		var prev *Frame
		for i := 0; i < count; i++ {
			frame, err := d.decodeFrame(data, i, offsets[i], prev)
			if err != nil {
				return f, err
			}
			f.Frames = append(f.Frames, frame)
			prev = frame
		}
	}

	if !d.opts.SkipSound {
		if err := d.decodeTracks(data, f, soundOffset, sizes); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// decodeUTF16 interprets b as UTF-16LE cut at the first NUL.
func decodeUTF16(b []byte) string {
	u := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		c := binary.LittleEndian.Uint16(b[i:])
		if c == 0 {
			break
		}
		u = append(u, c)
	}
	return string(utf16.Decode(u))
}

// formatID renders an 8 byte identifier with its bytes reversed as
// upper case hex.
func formatID(b []byte) string {
	return fmt.Sprintf("%016X", binary.LittleEndian.Uint64(b))
}

// decompressFilename expands an 18 byte internal filename record: a 3
// byte prefix rendered as hex, a 13 byte middle segment and a little
// endian numeric suffix zero-padded to three digits.
func decompressFilename(b []byte) string {
	return fmt.Sprintf("%X_%s_%03d", b[:3], b[3:len(b)-2], binary.LittleEndian.Uint16(b[len(b)-2:]))
}

var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// timestamp converts seconds since midnight on the 1st of January 2000
// UTC.
func timestamp(seconds uint32) time.Time {
	return epoch.Add(time.Duration(seconds) * time.Second)
}

func pad4(i int) int {
	if i%4 != 0 {
		i += 4 - i%4
	}
	return i
}
