package coerce

import "math/big"

// Broadcast frame rate presets. These are exact rationals: NTSC is
// 30000/1001, not 29.97.
var (
	rateNTSC     = big.NewRat(30000, 1001)
	rateNTSCFilm = big.NewRat(24000, 1001)
	ratePAL      = big.NewRat(25, 1)
	rateFilm     = big.NewRat(24, 1)
)

// FrameRate coerces a frame rate token into an exact rational. The named
// presets are case-sensitive; anything else must parse as a rational
// literal ("30000/1001", "29.97", "24"). The returned Rat is a fresh copy
// the caller may mutate.
func FrameRate(val string) (*big.Rat, error) {
	switch val {
	case "ntsc":
		return new(big.Rat).Set(rateNTSC), nil
	case "ntsc_film":
		return new(big.Rat).Set(rateNTSCFilm), nil
	case "pal":
		return new(big.Rat).Set(ratePAL), nil
	case "film":
		return new(big.Rat).Set(rateFilm), nil
	}
	r, ok := new(big.Rat).SetString(val)
	if !ok {
		return nil, failf(CodeInvalidFormat, val, "'%s': invalid frame rate", val)
	}
	return r, nil
}

// SampleRate coerces a sample rate token into Hz. A kHz suffix multiplies
// by 1000 before the natural-number check; the only other allowed units
// are "Hz" and none at all.
func SampleRate(val string) (int, error) {
	num, unit, err := SplitNumStr(val)
	if err != nil {
		return 0, err
	}
	if unit == "kHz" || unit == "KHz" {
		return Natural(num * 1000)
	}
	if err := checkUnit(unit, "", "Hz"); err != nil {
		return 0, err
	}
	return Natural(num)
}
