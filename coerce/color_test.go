package coerce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"red", "#ff0000"},
		{"RED", "#ff0000"},
		{"rebeccapurple", "#663399"},
		{"#3AE", "#33aaee"},
		{"#000", "#000000"},
		{"#3F0401", "#3f0401"},
		{"#ffffff", "#ffffff"},
	}
	for _, tt := range tests {
		got, err := Color(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestColor_Invalid(t *testing.T) {
	for _, in := range []string{"#zzz", "notacolor", "#ff00", "#1234567", "ff0000", ""} {
		_, err := Color(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, IsCoercionError(err), "input %q", in)
	}
}

func TestColor_Canonical(t *testing.T) {
	// resolving an already-canonical value is idempotent
	c, err := Color("skyblue")
	require.NoError(t, err)
	again, err := Color(c)
	require.NoError(t, err)
	assert.Equal(t, c, again)
}
