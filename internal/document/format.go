package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, YAML, TOML}

// ParseFormat parses a format name, case-insensitively. "yml" is accepted for
// YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("unsupported document format %q", name)
	}
}

// DetectFormat returns the format matching the extension of path.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot detect document format of %q: no extension", path)
	}

	return ParseFormat(ext)
}
