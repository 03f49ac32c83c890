package profile

import (
	"math/big"
	"strconv"

	"github.com/goliatone/go-coerce/coerce"
	"github.com/spf13/pflag"
)

// Flag value adapters. Each wraps a coercer so a pflag.FlagSet rejects a
// malformed token at parse time with the coercer's own message, instead
// of deferring the failure to decode.

// BindFlags registers the coercion-aware profile flags on fs, storing
// parsed values into p. Flag names match profile keys so the posflag
// provider maps them onto the same configuration paths.
func BindFlags(fs *pflag.FlagSet, p *Profile) {
	fs.Var(NewMarginValue(&p.Margin), "margin", "padding kept around every cut")
	fs.Var(NewFrameRateValue(&p.FrameRate), "frame_rate", "output frame rate: ntsc, pal, 30000/1001, 24, ...")
	fs.Var(NewSampleRateValue(&p.SampleRate), "sample_rate", "output sample rate: 48000, 44.1kHz")
	fs.Var(NewResolutionValue(&p.Resolution), "resolution", "output size as width,height")
	fs.Var(NewColorValue(&p.Background), "background", "background color name or hex triplet")
	fs.Var(NewStreamValue(&p.AudioStream), "audio_stream", "audio stream index or 'all'")
	fs.Var(NewSpeedValue(&p.SilentSpeed), "silent_speed", "playback speed for silent sections")
	fs.Var(NewSpeedValue(&p.VideoSpeed), "video_speed", "playback speed for loud sections")
}

type marginValue struct{ target *coerce.Margin }

func NewMarginValue(target *coerce.Margin) pflag.Value { return &marginValue{target} }

func (v *marginValue) String() string { return v.target.String() }
func (v *marginValue) Type() string   { return "margin" }

func (v *marginValue) Set(s string) error {
	m, err := coerce.ParseMargin(s)
	if err != nil {
		return err
	}
	*v.target = m
	return nil
}

type frameRateValue struct{ target **big.Rat }

func NewFrameRateValue(target **big.Rat) pflag.Value { return &frameRateValue{target} }

func (v *frameRateValue) String() string {
	if *v.target == nil {
		return ""
	}
	return (*v.target).RatString()
}

func (v *frameRateValue) Type() string { return "frame_rate" }

func (v *frameRateValue) Set(s string) error {
	r, err := coerce.FrameRate(s)
	if err != nil {
		return err
	}
	*v.target = r
	return nil
}

type sampleRateValue struct{ target *int }

func NewSampleRateValue(target *int) pflag.Value { return &sampleRateValue{target} }

func (v *sampleRateValue) String() string { return strconv.Itoa(*v.target) }
func (v *sampleRateValue) Type() string   { return "sample_rate" }

func (v *sampleRateValue) Set(s string) error {
	hz, err := coerce.SampleRate(s)
	if err != nil {
		return err
	}
	*v.target = hz
	return nil
}

type resolutionValue struct{ target **coerce.Resolution }

func NewResolutionValue(target **coerce.Resolution) pflag.Value { return &resolutionValue{target} }

func (v *resolutionValue) String() string {
	if *v.target == nil {
		return ""
	}
	return strconv.Itoa((*v.target).Width) + "," + strconv.Itoa((*v.target).Height)
}

func (v *resolutionValue) Type() string { return "resolution" }

func (v *resolutionValue) Set(s string) error {
	r, err := coerce.ParseResolution(s)
	if err != nil {
		return err
	}
	*v.target = r
	return nil
}

type colorValue struct{ target *string }

func NewColorValue(target *string) pflag.Value { return &colorValue{target} }

func (v *colorValue) String() string { return *v.target }
func (v *colorValue) Type() string   { return "color" }

func (v *colorValue) Set(s string) error {
	hex, err := coerce.Color(s)
	if err != nil {
		return err
	}
	*v.target = hex
	return nil
}

type streamValue struct{ target *coerce.StreamSpec }

func NewStreamValue(target *coerce.StreamSpec) pflag.Value { return &streamValue{target} }

func (v *streamValue) String() string { return v.target.String() }
func (v *streamValue) Type() string   { return "stream" }

func (v *streamValue) Set(s string) error {
	spec, err := coerce.ParseStream(s)
	if err != nil {
		return err
	}
	*v.target = spec
	return nil
}

type speedValue struct{ target *float64 }

func NewSpeedValue(target *float64) pflag.Value { return &speedValue{target} }

func (v *speedValue) String() string { return strconv.FormatFloat(*v.target, 'g', -1, 64) }
func (v *speedValue) Type() string   { return "speed" }

func (v *speedValue) Set(s string) error {
	spd, err := coerce.Speed(s)
	if err != nil {
		return err
	}
	*v.target = spd
	return nil
}

type thresholdValue struct{ target *float64 }

// NewThresholdValue accepts plain numbers, percentages, and dB literals
// ("-20dB"), storing the linear amplitude.
func NewThresholdValue(target *float64) pflag.Value { return &thresholdValue{target} }

func (v *thresholdValue) String() string { return strconv.FormatFloat(*v.target, 'g', -1, 64) }
func (v *thresholdValue) Type() string   { return "threshold" }

func (v *thresholdValue) Set(s string) error {
	n, err := coerce.DBThreshold(s)
	if err != nil {
		return err
	}
	*v.target = n
	return nil
}
