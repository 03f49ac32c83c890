package coerce

import (
	"math"
	"strings"
)

// commaCoerce splits a comma-joined token group and enforces exact arity.
func commaCoerce(name, val string, numArgs int) ([]string, error) {
	vals := strings.Split(strings.TrimSpace(val), ",")
	if numArgs > len(vals) {
		return nil, failf(CodeBadArity, val, "too few arguments for %s", name)
	}
	if len(vals) > numArgs {
		return nil, failf(CodeBadArity, val, "too many arguments for %s", name)
	}
	return vals, nil
}

// Margin is the padding kept around every cut: time specifiers for before
// and after.
type Margin [2]TimeSpec

// String renders the margin as a token ParseMargin accepts.
func (m Margin) String() string {
	return m[0].Token() + "," + m[1].Token()
}

// ParseMargin coerces a margin token. A single value applies to both
// sides: ParseMargin("3") equals ParseMargin("3,3").
func ParseMargin(val string) (Margin, error) {
	vals := strings.Split(strings.TrimSpace(val), ",")
	if len(vals) == 1 {
		vals = append(vals, vals[0])
	}
	if len(vals) != 2 {
		return Margin{}, failf(CodeBadArity, val, "margin has too many arguments")
	}
	before, err := Time(vals[0])
	if err != nil {
		return Margin{}, err
	}
	after, err := Time(vals[1])
	if err != nil {
		return Margin{}, err
	}
	return Margin{before, after}, nil
}

// Resolution is an output width and height in pixels.
type Resolution struct {
	Width  int
	Height int
}

// ParseResolution coerces "width,height". Empty input passes through as
// nil: resolution is optional and absence means keep the source size.
func ParseResolution(val string) (*Resolution, error) {
	if val == "" {
		return nil, nil
	}
	vals := strings.Split(strings.TrimSpace(val), ",")
	if len(vals) != 2 {
		return nil, failf(CodeBadArity, val, "'%s': resolution takes two numbers", val)
	}
	w, err := Natural(vals[0])
	if err != nil {
		return nil, err
	}
	h, err := Natural(vals[1])
	if err != nil {
		return nil, err
	}
	return &Resolution{Width: w, Height: h}, nil
}

// TimeRange is a start/end pair of raw time tokens. The components stay
// uninterpreted strings; the caller resolves them against its timeline.
type TimeRange struct {
	Start string
	End   string
}

// ParseTimeRange coerces "start,end" with exact arity.
func ParseTimeRange(val string) (TimeRange, error) {
	vals, err := commaCoerce("time_range", val, 2)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: vals[0], End: vals[1]}, nil
}

// SpeedRange applies a playback speed over a start/end range. Only the
// speed is coerced here; the range endpoints stay raw time tokens.
type SpeedRange struct {
	Speed float64
	Start string
	End   string
}

// ParseSpeedRange coerces "speed,start,end" with exact arity.
func ParseSpeedRange(val string) (SpeedRange, error) {
	vals, err := commaCoerce("speed_range", val, 3)
	if err != nil {
		return SpeedRange{}, err
	}
	spd, err := Number(vals[0])
	if err != nil {
		return SpeedRange{}, err
	}
	return SpeedRange{Speed: spd, Start: vals[1], End: vals[2]}, nil
}

// Pos resolves a pixel offset against a reference dimension. A percent
// suffix scales the reference; a bare number rounds to the nearest pixel.
// Ties round to even.
func Pos(val any, ref int) (int, error) {
	num, unit, err := SplitNumStr(val)
	if err != nil {
		return 0, err
	}
	if unit == "%" {
		return int(math.RoundToEven(num / 100 * float64(ref))), nil
	}
	if err := checkUnit(unit, ""); err != nil {
		return 0, err
	}
	return int(math.RoundToEven(num)), nil
}
