package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"keypath-kit/container"
)

// Decode parses data in format f. Objects and arrays become *container.Map
// values; the root may also be a scalar.
func Decode(data []byte, f Format) (any, error) {
	var (
		v   any
		err error
	)

	switch f {
	case JSON:
		v, err = decodeJSON(data)
	case YAML:
		v, err = decodeYAML(data)
	case TOML:
		v, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("unsupported document format %q", f)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to parse %s document: %w", f, err)
	}

	return v, nil
}

// DecodeContainer is Decode for documents whose root must be a container.
func DecodeContainer(data []byte, f Format) (container.Container, error) {
	v, err := Decode(data, f)
	if err != nil {
		return nil, err
	}

	c, ok := container.As(v)
	if !ok {
		return nil, fmt.Errorf("%s document root must be an object or an array, %T given", f, v)
	}

	return c, nil
}

// --- JSON ---

func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := readJSON(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	return v, nil
}

func readJSON(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		m := container.NewMap()

		for i := 0; dec.More(); i++ {
			key := any(i)

			if t == '{' {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}

				s, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", kt)
				}

				key = s
			}

			v, err := readJSON(dec)
			if err != nil {
				return nil, err
			}

			m.Set(key, v)
		}

		// closing delimiter
		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		return m, nil
	case json.Number:
		return jsonNumber(t)
	default:
		return t, nil
	}
}

func jsonNumber(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
		return int(i), nil
	}

	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid number %s: %w", n, err)
	}

	return f, nil
}

// --- YAML ---

func decodeYAML(data []byte) (any, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Kind == 0 {
		return container.NewMap(), nil
	}

	return fromNode(&doc)
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return container.NewMap(), nil
		}

		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.MappingNode:
		m := container.NewMap()

		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]

			if keyNode.Tag == "!!merge" {
				if err := mergeInto(m, valueNode); err != nil {
					return nil, err
				}

				continue
			}

			k, err := yamlKey(keyNode)
			if err != nil {
				return nil, err
			}

			v, err := fromNode(valueNode)
			if err != nil {
				return nil, err
			}

			m.Set(k, v)
		}

		return m, nil
	case yaml.SequenceNode:
		m := container.NewMap()

		for i, item := range n.Content {
			v, err := fromNode(item)
			if err != nil {
				return nil, err
			}

			m.Set(i, v)
		}

		return m, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}

		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unexpected node kind %v", n.Line, n.Kind)
	}
}

// mergeInto applies a "<<" merge key: keys already set win.
func mergeInto(m *container.Map, n *yaml.Node) error {
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}

	for _, src := range sources {
		if src.Kind == yaml.AliasNode {
			src = src.Alias
		}

		if src.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: merge value must be a mapping", src.Line)
		}

		v, err := fromNode(src)
		if err != nil {
			return err
		}

		merged := v.(*container.Map)

		for _, k := range merged.Keys() {
			if !m.Has(k) {
				val, _ := merged.Get(k)
				m.Set(k, val)
			}
		}
	}

	return nil
}

func yamlKey(n *yaml.Node) (any, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: mapping keys must be scalars", n.Line)
	}

	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}

	if k, ok := container.NormalizeKey(v); ok {
		return k, nil
	}

	return n.Value, nil
}

// --- TOML ---

func decodeTOML(data []byte) (any, error) {
	var raw map[string]any

	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	root := container.NewMap()

	for _, key := range md.Keys() {
		v, ok := lookupTOML(raw, key)
		if !ok {
			// below an array of tables, already converted as a whole
			continue
		}

		parent := root
		for _, part := range key[:len(key)-1] {
			parent = childMap(parent, part)
		}

		last := key[len(key)-1]

		if _, isTable := v.(map[string]any); isTable {
			childMap(parent, last)

			continue
		}

		parent.Set(last, fromTOML(v))
	}

	fillTOML(root, raw)

	return root, nil
}

// fillTOML adds the entries of raw that MetaData.Keys did not report, in
// sorted order.
func fillTOML(m *container.Map, raw map[string]any) {
	for _, k := range sortedKeys(raw) {
		v := raw[k]

		existing, ok := m.Get(k)
		if !ok {
			m.Set(k, fromTOML(v))

			continue
		}

		if sub, isTable := v.(map[string]any); isTable {
			if em, ok := existing.(*container.Map); ok {
				fillTOML(em, sub)
			}
		}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

func lookupTOML(raw map[string]any, key toml.Key) (any, bool) {
	var cur any = raw

	for _, part := range key {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}

		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}

	return cur, true
}

func childMap(parent *container.Map, key string) *container.Map {
	if v, ok := parent.Get(key); ok {
		if m, ok := v.(*container.Map); ok {
			return m
		}
	}

	m := container.NewMap()
	parent.Set(key, m)

	return m
}

// fromTOML converts values nested in arrays. Table keys are sorted there.
func fromTOML(v any) any {
	switch t := v.(type) {
	case int64:
		if t >= math.MinInt && t <= math.MaxInt {
			return int(t)
		}

		return t
	case map[string]any:
		m := container.NewMap()
		for _, k := range sortedKeys(t) {
			m.Set(k, fromTOML(t[k]))
		}

		return m
	case []map[string]any:
		m := container.NewMap()
		for i, item := range t {
			m.Set(i, fromTOML(item))
		}

		return m
	case []any:
		m := container.NewMap()
		for i, item := range t {
			m.Set(i, fromTOML(item))
		}

		return m
	default:
		return v
	}
}
