package profile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// FileType names a supported profile file format.
type FileType string

const (
	FileTypeYAML FileType = "yaml"
	FileTypeTOML FileType = "toml"
	FileTypeJSON FileType = "json"
)

func (c FileType) String() string {
	return string(c)
}

func (c FileType) Valid() error {
	switch c {
	case FileTypeJSON, FileTypeYAML, FileTypeTOML:
		return nil
	default:
		return errors.New("invalid profile file type", errors.CategoryValidation).
			WithTextCode("INVALID_FILE_TYPE").
			WithMetadata(map[string]any{
				"file_type": string(c),
				"valid_types": []string{
					string(FileTypeJSON),
					string(FileTypeYAML),
					string(FileTypeTOML),
				},
			})
	}
}

func (c FileType) Parser() koanf.Parser {
	switch c {
	case FileTypeJSON:
		return json.Parser()
	case FileTypeTOML:
		return toml.Parser()
	case FileTypeYAML:
		return yaml.Parser()
	default:
		panic(fmt.Errorf("invalid profile file type: %s", c))
	}
}

func inferFiletype(path string, defaultFileType ...FileType) FileType {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".toml":
		return FileTypeTOML
	case ".json":
		return FileTypeJSON
	case ".yaml", ".yml":
		return FileTypeYAML
	}

	if len(defaultFileType) > 0 {
		return defaultFileType[0]
	}

	return FileTypeJSON
}
