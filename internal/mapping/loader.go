package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"keypath-kit/internal/document"
)

// LoadFile loads and parses a mapping file from the given path. The format is
// detected from the file extension.
func LoadFile(path string) (*MappingFile, error) {
	f, err := document.DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return ParseFormat(data, f)
}

// Parse parses YAML data into a MappingFile. Unknown fields are rejected.
func Parse(data []byte) (*MappingFile, error) {
	var mf MappingFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&mf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// ParseFormat parses a mapping file in format f. JSON and TOML files are
// decoded as ordered documents and re-read as YAML, so entry order survives.
func ParseFormat(data []byte, f document.Format) (*MappingFile, error) {
	if f == document.YAML {
		return Parse(data)
	}

	c, err := document.DecodeContainer(data, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping file: %w", err)
	}

	normalized, err := document.Encode(c, document.YAML)
	if err != nil {
		return nil, err
	}

	return Parse(normalized)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *MappingFile) {
	if mf.Version == "" {
		mf.Version = CurrentVersion
	}

	if mf.Separator == "" {
		mf.Separator = "."
	}
}

// Marshal serializes a MappingFile to YAML.
func Marshal(mf *MappingFile) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a MappingFile to the given path as YAML.
func WriteFile(mf *MappingFile, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}
