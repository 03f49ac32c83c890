package profile

import (
	"math/big"

	"github.com/goliatone/go-coerce/coerce"
	"github.com/goliatone/go-errors"
)

// Profile holds the coerced settings for one editing run. Fields carry
// the typed values the coerce package produces; raw tokens from files,
// environment variables, or flags are converted during decode by the
// hooks in this package.
type Profile struct {
	Input      []string `koanf:"input"`
	OutputFile string   `koanf:"output_file"`

	FrameRate  *big.Rat           `koanf:"frame_rate"`
	SampleRate int                `koanf:"sample_rate"`
	Resolution *coerce.Resolution `koanf:"resolution"`
	Background string             `koanf:"background"`

	Margin      coerce.Margin `koanf:"margin"`
	SilentSpeed float64       `koanf:"silent_speed"`
	VideoSpeed  float64       `koanf:"video_speed"`

	EditBasedOn string            `koanf:"edit_based_on"`
	AudioStream coerce.StreamSpec `koanf:"audio_stream"`

	CutOut           []coerce.TimeRange  `koanf:"cut_out"`
	AddIn            []coerce.TimeRange  `koanf:"add_in"`
	SetSpeedForRange []coerce.SpeedRange `koanf:"set_speed_for_range"`

	VideoCodec   string  `koanf:"video_codec"`
	AudioCodec   string  `koanf:"audio_codec"`
	VideoBitrate string  `koanf:"video_bitrate"`
	AudioBitrate string  `koanf:"audio_bitrate"`
	Scale        float64 `koanf:"scale"`

	KeepTracksSeparate bool `koanf:"keep_tracks_separate"`
	Quiet              bool `koanf:"quiet"`
	Preview            bool `koanf:"preview"`
}

// Default returns a profile with the pipeline's stock settings.
func Default() *Profile {
	return &Profile{
		Background:   "#000000",
		Margin:       coerce.Margin{coerce.NewSeconds(0.2), coerce.NewSeconds(0.2)},
		SilentSpeed:  coerce.MaxSpeed,
		VideoSpeed:   1.0,
		EditBasedOn:  "audio",
		VideoCodec:   "auto",
		AudioCodec:   "auto",
		VideoBitrate: "10m",
		AudioBitrate: "unset",
		Scale:        1.0,
	}
}

var editMethods = []string{"audio", "motion", "none", "all"}

// Validate checks cross-field consistency after decode. Single-token
// validation already happened inside the coercers.
func (p *Profile) Validate() error {
	if p.VideoSpeed <= 0 || p.VideoSpeed > coerce.MaxSpeed {
		return errors.New("video_speed out of range", errors.CategoryValidation).
			WithTextCode("INVALID_VIDEO_SPEED").
			WithMetadata(map[string]any{"video_speed": p.VideoSpeed})
	}

	if p.SampleRate < 0 {
		return errors.New("sample_rate cannot be negative", errors.CategoryValidation).
			WithTextCode("INVALID_SAMPLE_RATE").
			WithMetadata(map[string]any{"sample_rate": p.SampleRate})
	}

	if p.Scale <= 0 {
		return errors.New("scale must be positive", errors.CategoryValidation).
			WithTextCode("INVALID_SCALE").
			WithMetadata(map[string]any{"scale": p.Scale})
	}

	validMethod := false
	for _, m := range editMethods {
		if p.EditBasedOn == m {
			validMethod = true
			break
		}
	}
	if !validMethod {
		return errors.New("invalid edit method", errors.CategoryValidation).
			WithTextCode("INVALID_EDIT_METHOD").
			WithMetadata(map[string]any{
				"edit_based_on": p.EditBasedOn,
				"valid_methods": editMethods,
			})
	}

	if _, err := coerce.Color(p.Background); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "invalid background color").
			WithTextCode("INVALID_BACKGROUND")
	}

	return nil
}

// normalize canonicalizes fields whose raw spelling is valid but not
// canonical: background colors resolve to "#rrggbb" and silent_speed
// follows the speed clamp.
func (p *Profile) normalize() error {
	hex, err := coerce.Color(p.Background)
	if err != nil {
		return err
	}
	p.Background = hex

	if p.SilentSpeed <= 0 || p.SilentSpeed > coerce.MaxSpeed {
		p.SilentSpeed = coerce.MaxSpeed
	}

	return nil
}
