package coerce

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameRate_Presets(t *testing.T) {
	tests := []struct {
		in   string
		want *big.Rat
	}{
		{"ntsc", big.NewRat(30000, 1001)},
		{"ntsc_film", big.NewRat(24000, 1001)},
		{"pal", big.NewRat(25, 1)},
		{"film", big.NewRat(24, 1)},
	}
	for _, tt := range tests {
		got, err := FrameRate(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		// exact rational equality, not a float approximation
		assert.Zero(t, tt.want.Cmp(got), "input %q", tt.in)
	}
}

func TestFrameRate_Literals(t *testing.T) {
	got, err := FrameRate("30000/1001")
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(30000, 1001).Cmp(got))

	got, err = FrameRate("24")
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(24, 1).Cmp(got))

	got, err = FrameRate("23.976")
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(23976, 1000).Cmp(got))

	for _, in := range []string{"", "NTSC", "fast", "1/0"} {
		_, err := FrameRate(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFrameRate_ReturnsFreshCopy(t *testing.T) {
	a, err := FrameRate("ntsc")
	require.NoError(t, err)
	a.SetInt64(1)

	b, err := FrameRate("ntsc")
	require.NoError(t, err)
	assert.Zero(t, big.NewRat(30000, 1001).Cmp(b))
}

func TestSampleRate(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"44100", 44100},
		{"44100Hz", 44100},
		{"44.1kHz", 44100},
		{"48KHz", 48000},
		{"0", 0},
	}
	for _, tt := range tests {
		got, err := SampleRate(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	for _, in := range []string{"-44100", "44100hz", "audio", ""} {
		_, err := SampleRate(in)
		assert.Error(t, err, "input %q", in)
	}
}
