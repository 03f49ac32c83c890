// Package envmap implements a koanf provider that reads environment
// variables into a nested JSON document, so delimited variable names
// become nested keys:
//
//	EDITOR_EXPORT__CODEC=h264  ->  {"export": {"codec": "h264"}}
//
// The document is handed to koanf's JSON parser; nesting hierarchy is
// defined by the delimiter used in the key callback.
package envmap

import (
	"errors"
	"os"
	"strings"

	"github.com/goliatone/go-coerce/logger"
	"github.com/tidwall/sjson"
)

// Env implements an environment variables provider.
type Env struct {
	prefix string
	delim  string
	cb     func(key string, value string) (string, any)
	log    logger.Logger
	out    string
}

// Provider returns an environment variables provider. If prefix is
// specified (case-sensitive), only env vars with the prefix are
// captured. cb is an optional callback that transforms the variable
// name, for instance to lowercase it, strip the prefix, and replace the
// delimiter with ".". Returning an empty string drops the variable.
func Provider(prefix, delim string, cb func(s string) string) *Env {
	e := &Env{
		prefix: prefix,
		delim:  delim,
		out:    "{}",
	}
	if cb != nil {
		e.cb = func(key string, value string) (string, any) {
			return cb(key), value
		}
	}
	return e
}

// ProviderWithValue works like Provider except the callback receives and
// may rewrite both key and value, e.g. to split a value into a slice.
func ProviderWithValue(prefix, delim string, cb func(key string, value string) (string, any)) *Env {
	return &Env{
		prefix: prefix,
		delim:  delim,
		cb:     cb,
		out:    "{}",
	}
}

// SetLogger installs a logger used for per-key debug output.
func (e *Env) SetLogger(l logger.Logger) {
	e.log = l
}

// ReadBytes builds and returns the nested JSON document.
func (e *Env) ReadBytes() ([]byte, error) {
	e.out = "{}"

	var keys []string
	for _, k := range os.Environ() {
		if e.prefix == "" || strings.HasPrefix(k, e.prefix) {
			keys = append(keys, k)
		}
	}

	for _, k := range keys {
		parts := strings.SplitN(k, "=", 2)

		var (
			key   string
			value any
		)

		if e.cb != nil {
			key, value = e.cb(parts[0], parts[1])
			// a blanked key means the variable is dropped
			if key == "" {
				continue
			}
		} else {
			key = parts[0]
			value = parts[1]
		}

		if e.log != nil {
			e.log.Debug("envmap key", "key", key)
		}

		if err := e.set(key, value); err != nil {
			return []byte{}, err
		}
	}

	return []byte(e.out), nil
}

func (e *Env) set(key string, value any) error {
	out, err := sjson.Set(e.out, strings.Replace(key, e.delim, ".", -1), value)
	if err != nil {
		return err
	}

	e.out = out

	return nil
}

// Read is not supported; use ReadBytes with a JSON parser.
func (e *Env) Read() (map[string]any, error) {
	return nil, errors.New("envmap provider does not support this method")
}
