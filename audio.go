package ppm

import (
	"encoding/binary"

	"github.com/bovarysme/adpcm"
)

// Track order within the sound section.
const (
	TrackBGM = iota
	TrackSFX1
	TrackSFX2
	TrackSFX3
)

// Track is one decoded sound track. An absent track is not an error;
// it simply has no samples. The samples are linear 16-bit PCM at the
// carrier rate; for the background music SampleRate additionally
// reflects the stored music speed so that playing the samples at that
// rate matches the animation, a resampling the caller performs.
type Track struct {
	Present    bool
	SampleRate float64
	Samples    []int16
}

// decodeSoundHeader reads the four track sizes and the two speed bytes
// that follow the effect usage table, returning the sizes. The speed
// indices are part of the header proper so this runs even when track
// decoding is skipped.
func (d *Decoder) decodeSoundHeader(data []byte, f *Flipnote, soundOffset int) ([numTracks]int, error) {
	var sizes [numTracks]int

	p := pad4(soundOffset + f.FrameCount)
	if p+18 > len(data) {
		return sizes, &InvalidContainerError{Length: len(data), Field: "sound header"}
	}
	for i := range sizes {
		sizes[i] = int(binary.LittleEndian.Uint32(data[p+4*i:]))
	}
	f.FrameSpeed = 8 - int(data[p+16])
	f.BGMSpeed = 8 - int(data[p+17])

	return sizes, nil
}

// decodeTracks slices the concatenated track data and expands each
// track to PCM.
func (d *Decoder) decodeTracks(data []byte, f *Flipnote, soundOffset int, sizes [numTracks]int) error {
	pos := pad4(soundOffset + f.FrameCount + 32)
	for i, size := range sizes {
		rate := float64(SampleRate)
		if i == TrackBGM {
			if bgm := speedValue(f.BGMSpeed); bgm != 0 {
				rate = SampleRate * f.FrameRate() / bgm
			}
		}
		if size == 0 {
			f.Tracks[i] = Track{SampleRate: rate}
			continue
		}
		if pos+size > len(data) {
			return &InvalidContainerError{Length: len(data), Field: trackNames[i]}
		}
		f.Tracks[i] = Track{
			Present:    true,
			SampleRate: rate,
			Samples:    expandADPCM(data[pos : pos+size]),
		}
		pos += size
	}
	return nil
}

var trackNames = [numTracks]string{"BGM", "SFX1", "SFX2", "SFX3"}

// expandADPCM decodes nibble-swapped 4-bit ADPCM to 16-bit PCM. PPM
// stores the two samples of each byte in the reverse of the standard
// IMA order, so the nibbles are exchanged before expansion.
func expandADPCM(data []byte) []int16 {
	buf := make([]byte, len(data))
	for i, b := range data {
		buf[i] = b&0x0f<<4 | b>>4
	}

	samples := make([]int, 0, len(buf)*2)
	decoder := adpcm.NewDecoder(1)
	decoder.Decode(buf, &samples)

	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = int16(s)
	}
	return out
}
