package envmap

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_ReadBytes(t *testing.T) {
	t.Setenv("EDITOR_MARGIN", "0.3s")
	t.Setenv("EDITOR_EXPORT__CODEC", "h264")
	t.Setenv("UNRELATED", "nope")

	p := Provider("EDITOR_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "EDITOR_")), "__", ".", -1)
	})

	b, err := p.ReadBytes()
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))

	assert.Equal(t, "0.3s", out["margin"])

	export, ok := out["export"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "h264", export["codec"])

	_, found := out["unrelated"]
	assert.False(t, found)
}

func TestProvider_CallbackDropsKeys(t *testing.T) {
	t.Setenv("EDITOR_SECRET", "hidden")
	t.Setenv("EDITOR_KEPT", "yes")

	p := Provider("EDITOR_", ".", func(s string) string {
		if strings.Contains(s, "SECRET") {
			return ""
		}
		return strings.ToLower(strings.TrimPrefix(s, "EDITOR_"))
	})

	b, err := p.ReadBytes()
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "yes", out["kept"])
	_, found := out["secret"]
	assert.False(t, found)
}

func TestProviderWithValue(t *testing.T) {
	t.Setenv("EDITOR_INPUT", "a.mp4,b.mp4")

	p := ProviderWithValue("EDITOR_", ".", func(key, value string) (string, any) {
		k := strings.ToLower(strings.TrimPrefix(key, "EDITOR_"))
		if k == "input" {
			parts := strings.Split(value, ",")
			out := make([]any, len(parts))
			for i, part := range parts {
				out[i] = part
			}
			return k, out
		}
		return k, value
	})

	b, err := p.ReadBytes()
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))

	input, ok := out["input"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"a.mp4", "b.mp4"}, input)
}

func TestProvider_ReadUnsupported(t *testing.T) {
	p := Provider("", ".", nil)
	_, err := p.Read()
	assert.Error(t, err)
}
