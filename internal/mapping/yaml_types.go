package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"keypath-kit/internal/common"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return len(s) == 0
}

// IsSingle returns true if the array has exactly one element.
func (s StringOrArray) IsSingle() bool {
	_, ok := common.Only(s)

	return ok
}

// IsMultiple returns true if the array has more than one element.
func (s StringOrArray) IsMultiple() bool {
	return len(s) > 1
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// --- PathMapDef YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for PathMapDef, keeping
// the order of the entries.
// Accepts:
//   - Mapping: {a.b: x.y, c: [d, e]}
//   - Sequence: [{input: a.b, output: x.y}, {input: c, output: [d, e]}]
func (p *PathMapDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		entries := make(PathMapDef, 0, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]

			var input string

			err := keyNode.Decode(&input)
			if err != nil {
				return fmt.Errorf("line %d: invalid input key path: %w", keyNode.Line, err)
			}

			var outputs StringOrArray

			err = valueNode.Decode(&outputs)
			if err != nil {
				return fmt.Errorf("map entry %q: %w", input, err)
			}

			entries = append(entries, EntryDef{Input: input, Outputs: outputs, Line: keyNode.Line})
		}

		*p = entries

		return nil

	case yaml.SequenceNode:
		entries := make(PathMapDef, 0, len(node.Content))

		for _, item := range node.Content {
			var e EntryDef

			err := item.Decode(&e)
			if err != nil {
				return fmt.Errorf("line %d: invalid map entry: %w", item.Line, err)
			}

			e.Line = item.Line
			entries = append(entries, e)
		}

		*p = entries

		return nil

	default:
		return fmt.Errorf("line %d: expected mapping or sequence for map, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for PathMapDef. Entries are
// written as an ordered mapping.
func (p PathMapDef) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, e := range p {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Input}

		val := &yaml.Node{}
		if err := val.Encode(e.Outputs); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, key, val)
	}

	return node, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return common.UnknownStr
	}
}
