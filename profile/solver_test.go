package profile

import (
	"testing"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariablesSolver(t *testing.T) {
	k := koanf.New(".")
	require.NoError(t, k.Load(confmap.Provider(map[string]any{
		"name":        "intro",
		"output_file": "${name}_edited.mp4",
		"alias":       "${name}",
		"missing":     "${nope}",
	}, "."), nil))

	NewVariablesSolver("${", "}").Solve(k)

	assert.Equal(t, "intro_edited.mp4", k.Get("output_file"))
	assert.Equal(t, "intro", k.Get("alias"))
	// unresolvable references are left alone
	assert.Equal(t, "${nope}", k.Get("missing"))
}

func TestMergeIgnoringNull(t *testing.T) {
	dest := map[string]any{
		"background": "#000000",
		"margin":     "0.2s",
		"export": map[string]any{
			"codec": "h264",
		},
	}
	src := map[string]any{
		"background": "",    // empty strings do not clobber
		"margin":     "6",   // non-empty values do
		"frame_rate": "pal", // new keys are added
		"export": map[string]any{
			"bitrate": "10m",
		},
	}

	require.NoError(t, MergeIgnoringNull(src, dest))

	assert.Equal(t, "#000000", dest["background"])
	assert.Equal(t, "6", dest["margin"])
	assert.Equal(t, "pal", dest["frame_rate"])
	assert.Equal(t, map[string]any{
		"codec":   "h264",
		"bitrate": "10m",
	}, dest["export"])
}

func TestInferFiletype(t *testing.T) {
	assert.Equal(t, FileTypeJSON, inferFiletype("profile.json"))
	assert.Equal(t, FileTypeYAML, inferFiletype("profile.yml"))
	assert.Equal(t, FileTypeYAML, inferFiletype("profile.YAML"))
	assert.Equal(t, FileTypeTOML, inferFiletype("profile.toml"))
	assert.Equal(t, FileTypeJSON, inferFiletype("profile"))
	assert.Equal(t, FileTypeTOML, inferFiletype("profile", FileTypeTOML))
}
