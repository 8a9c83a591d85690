/*
Package ppm implements a decoder for Flipnote Studio PPM animation
files.

A PPM file starts with a 0x6A0 byte header carrying author names and
IDs, internal filenames, a creation timestamp and a 64 by 48 pixel
preview image, followed by an animation section and a sound section.
Each animation frame is two 1-bit 256 by 192 layers compressed with a
per-scanline run coding and an optional XOR delta against the previous
frame. Sound is up to four tracks of 4-bit ADPCM, nibble-swapped
relative to the standard IMA layout.

Decoding ends at in-memory structures; turning frames into image files
or tracks into WAV files is left to the caller.
*/
package ppm

import (
	"bytes"
	"image"
	"log"
	"time"

	"github.com/bodgit/ppm/thumbnail"
)

const (
	// ScreenWidth and ScreenHeight are the dimensions of every frame
	// layer in pixels.
	ScreenWidth  = 256
	ScreenHeight = 192

	// SampleRate is the carrier rate in Hz of all decoded PCM audio.
	SampleRate = 8192

	headerSize = 0x6a0
	maxFrames  = 999
	numTracks  = 4
)

var signature = []byte("PARA")

// speeds maps a speed index to frames per second. Index 0 is invalid.
var speeds = [9]float64{0, 0.5, 1, 2, 4, 6, 12, 20, 30}

// Options control which sections of a file the decoder materializes.
// The zero value decodes everything.
type Options struct {
	// SkipFrames leaves Flipnote.Frames empty
	SkipFrames bool
	// SkipSound leaves every track marked absent
	SkipSound bool
	// FrameCap bounds the number of frames decoded, zero means all.
	// Sound offsets are still computed from the stored frame count.
	FrameCap int
}

// Decoder decodes PPM files. The logger, which may be nil, only ever
// receives diagnostics for tolerated oddities such as unrecognised
// frame tags; it is never used on the error path.
type Decoder struct {
	logger *log.Logger
	opts   Options
}

// NewDecoder returns a Decoder using the provided logger and options.
// Both may be nil.
func NewDecoder(logger *log.Logger, opts *Options) *Decoder {
	d := &Decoder{
		logger: logger,
	}
	if opts != nil {
		d.opts = *opts
	}
	return d
}

func (d *Decoder) logf(format string, v ...interface{}) {
	if d.logger != nil {
		d.logger.Printf(format, v...)
	}
}

// Flipnote is the decoded representation of one PPM file.
type Flipnote struct {
	FrameCount     int
	Locked         bool
	Looped         bool
	ThumbnailFrame int

	OriginalAuthorName string
	EditorAuthorName   string
	OwnerName          string

	OriginalAuthorID string
	EditorAuthorID   string
	PreviousEditorID string

	OriginalFilename string
	CurrentFilename  string

	CreatedAt time.Time

	// FrameSpeed and BGMSpeed index the playback speed table, see
	// FrameRate
	FrameSpeed int
	BGMSpeed   int

	// RawThumbnail is the 1536 byte encoded preview image, see
	// Thumbnail
	RawThumbnail []byte

	// SFXUsage records for every frame which of the three effect
	// tracks fires on it
	SFXUsage [][3]bool

	Frames []*Frame
	Tracks [numTracks]Track
}

// Frame returns the decoded frame at index i.
func (f *Flipnote) Frame(i int) (*Frame, error) {
	if i < 0 || i >= len(f.Frames) {
		return nil, &OutOfRangeError{What: "frame", Index: i, Count: len(f.Frames)}
	}
	return f.Frames[i], nil
}

// Track returns the sound track at index i. Index 0 is the background
// music, 1 to 3 are the effect tracks.
func (f *Flipnote) Track(i int) (*Track, error) {
	if i < 0 || i >= numTracks {
		return nil, &OutOfRangeError{What: "track", Index: i, Count: numTracks}
	}
	return &f.Tracks[i], nil
}

// FrameRate returns the animation playback rate in frames per second,
// or zero if the stored speed index is invalid.
func (f *Flipnote) FrameRate() float64 {
	return speedValue(f.FrameSpeed)
}

// Duration returns the nominal playing time of the animation.
func (f *Flipnote) Duration() time.Duration {
	fps := f.FrameRate()
	if fps == 0 {
		return 0
	}
	return time.Duration(float64(f.FrameCount) / fps * float64(time.Second))
}

// Thumbnail decodes the embedded preview image.
func (f *Flipnote) Thumbnail() (image.Image, error) {
	return thumbnail.Decode(bytes.NewReader(f.RawThumbnail))
}

// SFXFrames returns the frame indices on which the given effect track,
// numbered 1 to 3, should play.
func (f *Flipnote) SFXFrames(effect int) ([]int, error) {
	if effect < 1 || effect >= numTracks {
		return nil, &OutOfRangeError{What: "effect", Index: effect, Count: numTracks}
	}
	var frames []int
	for i, usage := range f.SFXUsage {
		if usage[effect-1] {
			frames = append(frames, i)
		}
	}
	return frames, nil
}

func speedValue(index int) float64 {
	if index < 1 || index >= len(speeds) {
		return 0
	}
	return speeds[index]
}
