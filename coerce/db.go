package coerce

import (
	"math"
	"strconv"
)

// DBValue is the result of coercing a token that may carry a decibel
// suffix. A dB literal is preserved verbatim for downstream dB-aware
// consumers; anything else resolves to a plain number.
type DBValue struct {
	raw  string
	num  float64
	isDB bool
}

// IsDB reports whether the value was a decibel literal.
func (v DBValue) IsDB() bool { return v.isDB }

// Float returns the plain numeric value. ok is false for dB literals.
func (v DBValue) Float() (float64, bool) { return v.num, !v.isDB }

// DB returns the decibel magnitude. ok is false for plain numbers.
func (v DBValue) DB() (float64, bool) { return v.num, v.isDB }

// String returns the dB literal as written, or the formatted number.
func (v DBValue) String() string {
	if v.isDB {
		return v.raw
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// DBNumber coerces a token that is either a dB literal ("-12dB", kept
// as-is) or a plain number.
func DBNumber(val string) (DBValue, error) {
	num, unit, err := SplitNumStr(val)
	if err != nil {
		return DBValue{}, err
	}
	if unit == "dB" {
		return DBValue{raw: val, num: num, isDB: true}, nil
	}
	n, err := Number(val)
	if err != nil {
		return DBValue{}, err
	}
	return DBValue{raw: val, num: n}, nil
}

// DBThreshold coerces a loudness threshold. A dB literal must be at or
// below 0 dB and converts to linear amplitude via 10^(dB/20); anything
// else goes through Threshold.
func DBThreshold(val string) (float64, error) {
	num, unit, err := SplitNumStr(val)
	if err != nil {
		return 0, err
	}
	if unit == "dB" {
		if num > 0 {
			return 0, failf(CodeOutOfRange, val, "dB only goes up to 0")
		}
		return math.Pow(10, num/20), nil
	}
	return Threshold(val)
}
