package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"keypath-kit/container"
)

// Encode serializes v in format f. Ordered Maps keep their key order in JSON
// and YAML.
func Encode(v any, f Format) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch f {
	case JSON:
		out, err = encodeJSON(v)
	case YAML:
		out, err = encodeYAML(v)
	case TOML:
		out, err = encodeTOML(v)
	default:
		return nil, fmt.Errorf("unsupported document format %q", f)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s document: %w", f, err)
	}

	return out, nil
}

func encodeJSON(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(out, '\n'), nil
}

func encodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func encodeTOML(v any) ([]byte, error) {
	table, ok := container.ToNative(v).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("root must be a table, %T given", v)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(table); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
