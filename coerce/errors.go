package coerce

import (
	goerrors "errors"
	"fmt"

	"github.com/goliatone/go-errors"
)

// Text codes attached to coercion failures so callers can branch on the
// violated rule without string-matching messages.
const (
	CodeInvalidNumber = "INVALID_NUMBER"
	CodeUnknownUnit   = "UNKNOWN_UNIT"
	CodeOutOfRange    = "OUT_OF_RANGE"
	CodeBadArity      = "BAD_ARITY"
	CodeInvalidFormat = "INVALID_FORMAT"
	CodeInvalidChoice = "INVALID_CHOICE"
)

// failf builds a coercion failure: bad-input category, a per-rule text
// code, and the raw token preserved in metadata.
func failf(code string, raw any, format string, args ...any) error {
	return errors.New(fmt.Sprintf(format, args...), errors.CategoryBadInput).
		WithTextCode(code).
		WithMetadata(map[string]any{
			"input": fmt.Sprintf("%v", raw),
		})
}

// IsCoercionError reports whether err came from a coercer rejecting its
// input, as opposed to an operational failure in an embedding layer.
func IsCoercionError(err error) bool {
	var e *errors.Error
	if !goerrors.As(err, &e) {
		return false
	}
	return e.Category == errors.CategoryBadInput
}
