package document

import (
	"fmt"
	"io"
	"os"

	"keypath-kit/container"
)

// LoadFile reads a container document from path. An empty format is detected
// from the file extension.
func LoadFile(path string, f Format) (container.Container, Format, error) {
	f, err := resolveFormat(path, f)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read document %s: %w", path, err)
	}

	c, err := DecodeContainer(data, f)
	if err != nil {
		return nil, "", err
	}

	return c, f, nil
}

// Load reads a container document in format f from r.
func Load(r io.Reader, f Format) (container.Container, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return DecodeContainer(data, f)
}

// WriteFile writes v to path. An empty format is detected from the file
// extension.
func WriteFile(path string, v any, f Format) error {
	f, err := resolveFormat(path, f)
	if err != nil {
		return err
	}

	data, err := Encode(v, f)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	return nil
}

// Write writes v in format f to w.
func Write(w io.Writer, v any, f Format) error {
	data, err := Encode(v, f)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

func resolveFormat(path string, f Format) (Format, error) {
	if f != "" {
		return ParseFormat(string(f))
	}

	return DetectFormat(path)
}
