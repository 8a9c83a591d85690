package ppm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTracks(t *testing.T) {
	cs := &containerSpec{
		frames:         [][]byte{freshFrame().encode()},
		frameSpeedByte: 2, // 12 fps
		bgmSpeedByte:   4, // bgm recorded at 4 fps
	}
	cs.tracks[TrackBGM] = make([]byte, 64)
	for i := range cs.tracks[TrackBGM] {
		cs.tracks[TrackBGM][i] = byte(i * 3)
	}
	cs.tracks[TrackSFX2] = []byte{0x12, 0x34, 0x56}

	f := decode(t, cs)

	bgm, err := f.Track(TrackBGM)
	require.NoError(t, err)
	assert.True(t, bgm.Present)
	// One sample per nibble
	assert.Len(t, bgm.Samples, 128)
	// 8192 * (12 / 4)
	assert.Equal(t, float64(24576), bgm.SampleRate)

	sfx1, err := f.Track(TrackSFX1)
	require.NoError(t, err)
	assert.False(t, sfx1.Present)
	assert.Empty(t, sfx1.Samples)
	assert.Equal(t, float64(SampleRate), sfx1.SampleRate)

	sfx2, err := f.Track(TrackSFX2)
	require.NoError(t, err)
	assert.True(t, sfx2.Present)
	assert.Len(t, sfx2.Samples, 6)
	assert.Equal(t, float64(SampleRate), sfx2.SampleRate)
}

func TestDecodeTracksAllAbsent(t *testing.T) {
	f := decode(t, &containerSpec{frames: [][]byte{freshFrame().encode()}})

	for i := 0; i < numTracks; i++ {
		track, err := f.Track(i)
		require.NoError(t, err)
		assert.False(t, track.Present)
		assert.Empty(t, track.Samples)
	}
}

func TestExpandADPCMSampleCount(t *testing.T) {
	for _, n := range []int{1, 2, 33, 256} {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i ^ 0x5a)
		}
		assert.Len(t, expandADPCM(data), 2*n)
	}
}

func TestExpandADPCMSilence(t *testing.T) {
	// A silent track decodes to near-zero samples, not noise
	samples := expandADPCM(make([]byte, 16))
	for _, s := range samples {
		if s < -16 || s > 16 {
			t.Fatalf("sample %d out of the silence band", s)
		}
	}
}

func TestTruncatedSoundSection(t *testing.T) {
	cs := &containerSpec{frames: [][]byte{freshFrame().encode()}}
	cs.tracks[TrackBGM] = []byte{0x01, 0x02, 0x03, 0x04}
	data := cs.build()

	_, err := NewDecoder(nil, nil).Decode(data[:len(data)-2])

	var invalid *InvalidContainerError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "BGM", invalid.Field)
}
