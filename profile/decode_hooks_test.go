package profile

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/goliatone/go-coerce/coerce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceDecodeHook(t *testing.T) {
	hook := coerceDecodeHook()
	stringType := reflect.TypeOf("")

	t.Run("time spec", func(t *testing.T) {
		out, err := hook(stringType, timeSpecType, "1:30")
		require.NoError(t, err)
		ts, ok := out.(coerce.TimeSpec)
		require.True(t, ok)
		secs, _ := ts.Seconds()
		assert.Equal(t, "90.0", secs)
	})

	t.Run("margin", func(t *testing.T) {
		out, err := hook(stringType, marginType, "0.3s")
		require.NoError(t, err)
		m, ok := out.(coerce.Margin)
		require.True(t, ok)
		assert.Equal(t, m[0], m[1])
	})

	t.Run("frame rate", func(t *testing.T) {
		out, err := hook(stringType, frameRatePtr, "ntsc")
		require.NoError(t, err)
		r, ok := out.(*big.Rat)
		require.True(t, ok)
		assert.Zero(t, big.NewRat(30000, 1001).Cmp(r))
	})

	t.Run("stream from number", func(t *testing.T) {
		out, err := hook(reflect.TypeOf(0), streamSpecType, 2)
		require.NoError(t, err)
		s, ok := out.(coerce.StreamSpec)
		require.True(t, ok)
		idx, _ := s.Index()
		assert.Equal(t, 2, idx)
	})

	t.Run("bad token surfaces the coercion error", func(t *testing.T) {
		_, err := hook(stringType, marginType, "1,2,3")
		require.Error(t, err)
		assert.True(t, coerce.IsCoercionError(err))
	})

	t.Run("unrelated targets pass through", func(t *testing.T) {
		out, err := hook(stringType, stringType, "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})
}
