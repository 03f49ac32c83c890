package coerce

import (
	"regexp"
	"strings"
)

var (
	shortHexRe = regexp.MustCompile(`^#[a-f0-9]{3}$`)
	longHexRe  = regexp.MustCompile(`^#[a-f0-9]{6}$`)
)

// Color resolves a color token to canonical "#rrggbb" form. Input may be
// a CSS named color, a 3-digit hex triplet (each digit doubled), or a
// 6-digit hex triplet. Matching is case-insensitive; output is lowercase.
func Color(val string) (string, error) {
	c := strings.ToLower(val)

	if hex, ok := colorNames[c]; ok {
		c = hex
	}

	if shortHexRe.MatchString(c) {
		var b strings.Builder
		b.WriteByte('#')
		for i := 1; i < len(c); i++ {
			b.WriteByte(c[i])
			b.WriteByte(c[i])
		}
		return b.String(), nil
	}

	if longHexRe.MatchString(c) {
		return c, nil
	}

	return "", failf(CodeInvalidFormat, val, "invalid color: '%s'", c)
}
