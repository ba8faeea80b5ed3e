package container

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the map as a JSON object in key order, or as a JSON
// array when the map is a non-empty list.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	list := m.Len() > 0 && m.IsList()

	if list {
		buf.WriteByte('[')
	} else {
		buf.WriteByte('{')
	}

	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		if !list {
			kb, err := json.Marshal(KeyString(k))
			if err != nil {
				return nil, err
			}

			buf.Write(kb)
			buf.WriteByte(':')
		}

		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}

		buf.Write(vb)
	}

	if list {
		buf.WriteByte(']')
	} else {
		buf.WriteByte('}')
	}

	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as an ordered YAML mapping, or as a sequence
// when the map is a non-empty list.
func (m *Map) MarshalYAML() (any, error) {
	if m.Len() > 0 && m.IsList() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for _, k := range m.keys {
			item := &yaml.Node{}
			if err := item.Encode(m.values[k]); err != nil {
				return nil, err
			}

			seq.Content = append(seq.Content, item)
		}

		return seq, nil
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, k := range m.keys {
		key := &yaml.Node{}
		if err := key.Encode(k); err != nil {
			return nil, err
		}

		val := &yaml.Node{}
		if err := val.Encode(m.values[k]); err != nil {
			return nil, err
		}

		mapping.Content = append(mapping.Content, key, val)
	}

	return mapping, nil
}
