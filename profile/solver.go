package profile

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/v2"
)

// Solver transforms loaded configuration before it is decoded.
type Solver interface {
	Solve(config *koanf.Koanf) *koanf.Koanf
}

type variables struct {
	start string
	end   string
}

// NewVariablesSolver resolves ${path} references between profile values,
// so a file can say output_file: "${input}_edited.mp4".
func NewVariablesSolver(start, end string) Solver {
	return &variables{start: start, end: end}
}

// Solve will transform a configuration object.
func (s variables) Solve(config *koanf.Koanf) *koanf.Koanf {
	for key, val := range config.All() {
		str, ok := val.(string)
		if !ok {
			continue
		}
		s.keypath(key, str, config)
	}
	return config
}

func (s variables) keypath(key, val string, config *koanf.Koanf) {
	start := strings.Index(val, s.start)
	if start == -1 {
		return
	}
	start += len(s.start)

	end := strings.Index(val[start:], s.end)
	if end == -1 {
		return
	}
	end += start

	path := val[start:end]
	if path == val || !config.Exists(path) {
		return
	}

	newVal := config.Get(path)
	if len(s.start)+len(path)+len(s.end) != len(val) {
		// partial reference, splice the replacement into the string
		before := val[:start-len(s.start)]
		after := val[end+len(s.end):]
		config.Set(key, before+fmt.Sprintf("%v", newVal)+after)
		return
	}

	config.Set(key, newVal)
}
