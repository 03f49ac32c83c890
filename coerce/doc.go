// Package coerce converts loosely formatted textual tokens into validated,
// strongly typed values for a video editing pipeline: durations, frame
// rates, sample rates, thresholds, decibel levels, colors, resolutions,
// margins, anchors, and speed ranges.
//
// Every coercer is a pure function. It takes one raw token (or one
// comma-joined group of tokens) and either returns a canonical value or
// fails with an error naming the offending input and the rule it broke.
// Nothing here performs I/O or keeps state between calls, so the package
// is safe for concurrent use.
//
// Most coercers share one primitive: a tokenizer that splits a token into
// a numeric prefix and a trailing unit suffix ("1.5sec" -> 1.5, "sec").
// Each domain then supplies its own closed vocabulary of allowed units.
package coerce
