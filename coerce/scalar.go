package coerce

import (
	"math"
	"strconv"
	"strings"
)

// MaxSpeed is the sentinel speed meaning "drop these frames entirely".
// Out-of-range speed input clamps here instead of failing.
const MaxSpeed = 99999.0

// Natural coerces val into a non-negative integer. Units are rejected, as
// are negative and non-integral values.
func Natural(val any) (int, error) {
	num, unit, err := SplitNumStr(val)
	if err != nil {
		return 0, err
	}
	if unit != "" {
		return 0, failf(CodeUnknownUnit, val, "'%v': natural does not allow units", val)
	}
	if num != math.Trunc(num) {
		return 0, failf(CodeInvalidFormat, val, "'%v': natural must be a valid integer", val)
	}
	if num < 0 {
		return 0, failf(CodeOutOfRange, val, "'%v': natural cannot be negative", val)
	}
	return int(num), nil
}

// Boolean accepts the recognized literal spellings and nothing else.
func Boolean(val string) (bool, error) {
	switch val {
	case "#t", "#true", "true":
		return true, nil
	case "#f", "#false", "false":
		return false, nil
	}
	return false, failf(CodeInvalidChoice, val, "'%s': invalid boolean", val)
}

// Number coerces val into a float. Strings may use fraction syntax
// ("30000/1001") or a percentage suffix ("50%" -> 0.5); any other unit is
// rejected.
func Number(val any) (float64, error) {
	if s, ok := val.(string); ok && strings.Contains(s, "/") {
		parts := strings.Split(s, "/")
		if len(parts) != 2 {
			return 0, failf(CodeInvalidFormat, val, "'%s': one divisor allowed", s)
		}
		numer, errN := strconv.Atoi(parts[0])
		denom, errD := strconv.Atoi(parts[1])
		if errN != nil || errD != nil {
			return 0, failf(CodeInvalidFormat, val, "'%s': numerator and denominator must be integers", s)
		}
		if denom == 0 {
			return 0, failf(CodeOutOfRange, val, "'%s': denominator must not be zero", s)
		}
		return float64(numer) / float64(denom), nil
	}

	num, unit, err := SplitNumStr(val)
	if err != nil {
		return 0, err
	}
	if unit == "%" {
		return num / 100, nil
	}
	if err := checkUnit(unit, ""); err != nil {
		return 0, err
	}
	return num, nil
}

// Speed coerces a playback speed. Non-positive or absurdly large input
// clamps to MaxSpeed rather than failing; only malformed tokens error.
func Speed(val string) (float64, error) {
	s, err := Number(val)
	if err != nil {
		return 0, err
	}
	if s <= 0 || s > MaxSpeed {
		return MaxSpeed, nil
	}
	return s, nil
}

// Threshold coerces val into [0, 1]. Unlike Speed, out-of-range input is a
// hard error.
func Threshold(val any) (float64, error) {
	num, err := Number(val)
	if err != nil {
		return 0, err
	}
	if num < 0 || num > 1 {
		return 0, failf(CodeOutOfRange, val, "'%v': threshold must be between 0 and 1 (0%%-100%%)", val)
	}
	return num, nil
}
