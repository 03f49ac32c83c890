package coerce

import (
	"strconv"
	"strings"
)

// numChars is the numeric character class: everything that may appear in
// the numeric prefix of a token. The unit suffix starts at the first
// character outside this set.
const numChars = "0123456789_ .-"

// SplitNumStr splits a raw token into its numeric prefix and trailing unit
// suffix: "1.5sec" yields (1.5, "sec"), "30" yields (30, ""). Native
// numeric values pass through unchanged with an empty unit so coercers are
// idempotent over already-coerced input. A token whose prefix does not
// parse as a float fails with an invalid-number error; that includes
// tokens with no numeric prefix at all.
func SplitNumStr(val any) (float64, string, error) {
	switch v := val.(type) {
	case float64:
		return v, "", nil
	case float32:
		return float64(v), "", nil
	case int:
		return float64(v), "", nil
	case int64:
		return float64(v), "", nil
	case string:
		i := 0
		for i < len(v) && strings.IndexByte(numChars, v[i]) >= 0 {
			i++
		}
		num, unit := v[:i], v[i:]
		f, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, "", failf(CodeInvalidNumber, val, "invalid number: '%s'", v)
		}
		return f, unit, nil
	default:
		return 0, "", failf(CodeInvalidNumber, val, "invalid number: '%v'", val)
	}
}

// checkUnit gates a parsed unit against the caller's closed vocabulary.
func checkUnit(unit string, allowed ...string) error {
	for _, a := range allowed {
		if unit == a {
			return nil
		}
	}
	return failf(CodeUnknownUnit, unit, "unknown unit: '%s'", unit)
}
