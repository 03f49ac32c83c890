package coerce

import (
	"math"
	"strconv"
	"strings"
)

type timeKind int

const (
	timeFrames timeKind = iota
	timeSeconds
)

// TimeSpec is the result of coercing a time token. The two variants are
// deliberate and downstream code branches on them: a bare unitless number
// is an exact frame count, while clock notation ("1:30") and unit
// suffixes ("5s", "2min") produce a length in seconds, carried as a
// decimal string so fractional seconds survive untouched.
type TimeSpec struct {
	kind    timeKind
	frames  int
	seconds string
}

// NewFrames builds the frame-count variant.
func NewFrames(n int) TimeSpec {
	return TimeSpec{kind: timeFrames, frames: n}
}

// NewSeconds builds the seconds variant from a length in seconds.
func NewSeconds(secs float64) TimeSpec {
	return TimeSpec{kind: timeSeconds, seconds: formatSeconds(secs)}
}

// Frames returns the frame count. ok is false for the seconds variant.
func (t TimeSpec) Frames() (int, bool) {
	return t.frames, t.kind == timeFrames
}

// Seconds returns the decimal seconds string. ok is false for the
// frame-count variant.
func (t TimeSpec) Seconds() (string, bool) {
	return t.seconds, t.kind == timeSeconds
}

func (t TimeSpec) String() string {
	if t.kind == timeFrames {
		return strconv.Itoa(t.frames)
	}
	return t.seconds
}

// Token renders the value as a token that Time coerces back to the same
// value: frame counts stay bare, seconds carry an explicit "s" suffix.
func (t TimeSpec) Token() string {
	if t.kind == timeFrames {
		return strconv.Itoa(t.frames)
	}
	return t.seconds + "s"
}

// formatSeconds renders a float the way the seconds variant stores it:
// shortest representation, but integral values keep a trailing ".0" so
// the string is unambiguously non-integer-typed.
func formatSeconds(secs float64) string {
	s := strconv.FormatFloat(secs, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

var timeUnits = map[string]float64{
	"s": 1, "sec": 1, "secs": 1, "second": 1, "seconds": 1,
	"m": 60, "min": 60, "mins": 60, "minute": 60, "minutes": 60,
	"h": 3600, "hour": 3600, "hours": 3600,
}

// Time coerces a time token. Colon forms are M:S or H:M:S; unit suffixes
// convert to seconds; a bare number must be integral and becomes a frame
// count.
func Time(val string) (TimeSpec, error) {
	if strings.Contains(val, ":") {
		parts := strings.Split(val, ":")
		switch len(parts) {
		case 2:
			mins, errM := strconv.Atoi(parts[0])
			secs, errS := strconv.ParseFloat(parts[1], 64)
			if errM != nil || errS != nil {
				break
			}
			return NewSeconds(float64(mins)*60 + secs), nil
		case 3:
			hours, errH := strconv.Atoi(parts[0])
			mins, errM := strconv.Atoi(parts[1])
			secs, errS := strconv.ParseFloat(parts[2], 64)
			if errH != nil || errM != nil || errS != nil {
				break
			}
			return NewSeconds(float64(hours)*3600 + float64(mins)*60 + secs), nil
		}
		return TimeSpec{}, failf(CodeInvalidFormat, val, "'%s': invalid time format", val)
	}

	num, unit, err := SplitNumStr(val)
	if err != nil {
		return TimeSpec{}, err
	}
	if mult, ok := timeUnits[unit]; ok {
		return NewSeconds(num * mult), nil
	}
	if err := checkUnit(unit, ""); err != nil {
		return TimeSpec{}, err
	}
	if num != math.Trunc(num) {
		return TimeSpec{}, failf(CodeInvalidFormat, val, "'%s': time specifier expects an integer", val)
	}
	return NewFrames(int(num)), nil
}
