package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMargin(t *testing.T) {
	single, err := ParseMargin("3")
	require.NoError(t, err)
	double, err := ParseMargin("3,3")
	require.NoError(t, err)
	assert.Equal(t, double, single)

	m, err := ParseMargin("0.2s,0.3s")
	require.NoError(t, err)
	before, _ := m[0].Seconds()
	after, _ := m[1].Seconds()
	assert.Equal(t, "0.2", before)
	assert.Equal(t, "0.3", after)

	_, err = ParseMargin("1,2,3")
	assert.Error(t, err)

	_, err = ParseMargin("1,nope")
	assert.Error(t, err)
}

func TestParseResolution(t *testing.T) {
	r, err := ParseResolution("1920,1080")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, 1920, r.Width)
	assert.Equal(t, 1080, r.Height)

	// absent resolution passes through
	r, err = ParseResolution("")
	require.NoError(t, err)
	assert.Nil(t, r)

	for _, in := range []string{"1920", "1,2,3", "1920,-1080", "w,h"} {
		_, err := ParseResolution(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseTimeRange(t *testing.T) {
	tr, err := ParseTimeRange("10,20")
	require.NoError(t, err)
	assert.Equal(t, TimeRange{Start: "10", End: "20"}, tr)

	// components stay raw; no further coercion here
	tr, err = ParseTimeRange("start,end")
	require.NoError(t, err)
	assert.Equal(t, TimeRange{Start: "start", End: "end"}, tr)

	_, err = ParseTimeRange("10")
	assert.Error(t, err)
	_, err = ParseTimeRange("10,20,30")
	assert.Error(t, err)
}

func TestParseSpeedRange(t *testing.T) {
	sr, err := ParseSpeedRange("2,0,10s")
	require.NoError(t, err)
	assert.Equal(t, SpeedRange{Speed: 2, Start: "0", End: "10s"}, sr)

	_, err = ParseSpeedRange("2,0")
	assert.Error(t, err)
	_, err = ParseSpeedRange("2,0,10,20")
	assert.Error(t, err)
	_, err = ParseSpeedRange("slow,0,10")
	assert.Error(t, err)
}

func TestPos(t *testing.T) {
	got, err := Pos("50%", 200)
	require.NoError(t, err)
	assert.Equal(t, 100, got)

	got, err = Pos("10", 200)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	// already-coerced values pass back through
	got, err = Pos(10, 200)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	got, err = Pos("10.4", 200)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	_, err = Pos("10px", 200)
	assert.Error(t, err)
}
