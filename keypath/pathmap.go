package keypath

import (
	"strconv"

	"keypath-kit/container"
	"keypath-kit/kperr"
)

// PathMap is an ordered mapping from input key paths to one or more output
// key paths. Key paths are strings or key sequences, as accepted by Normalize.
type PathMap struct {
	entries []PathMapEntry
}

// PathMapEntry is one input key path and its output key paths.
type PathMapEntry struct {
	Input   any
	Outputs []any
}

// Pair is a PathMapEntry with normalized key paths.
type Pair struct {
	Input   Path
	Outputs []Path
}

// NewPathMap returns an empty PathMap.
func NewPathMap() *PathMap {
	return &PathMap{}
}

// Add appends an entry mapping input to outputs. Entries are processed in the
// order they were added, so a later entry can overwrite the outputs of an
// earlier one.
func (m *PathMap) Add(input any, outputs ...any) *PathMap {
	m.entries = append(m.entries, PathMapEntry{Input: input, Outputs: outputs})

	return m
}

// Len returns the number of entries.
func (m *PathMap) Len() int {
	if m == nil {
		return 0
	}

	return len(m.entries)
}

// Entries returns the entries in order.
func (m *PathMap) Entries() []PathMapEntry {
	if m == nil {
		return nil
	}

	out := make([]PathMapEntry, len(m.entries))
	copy(out, m.entries)

	return out
}

// Compile normalizes every key path of the map. The map must have at least
// one entry and every entry at least one output.
func (m *PathMap) Compile(sep, escape string) ([]Pair, error) {
	if m.Len() == 0 {
		return nil, kperr.Validation("compile", "key path map must have at least one element")
	}

	pairs := make([]Pair, 0, len(m.entries))

	for i, e := range m.entries {
		in, err := Normalize(e.Input, sep, escape)
		if err != nil {
			return nil, wrapEntry(err, i)
		}

		if len(e.Outputs) == 0 {
			return nil, kperr.Validation("compile",
				"key path map entry %d (%s) has no output key path", i, in)
		}

		outs := make([]Path, len(e.Outputs))
		for j, o := range e.Outputs {
			if outs[j], err = Normalize(o, sep, escape); err != nil {
				return nil, wrapEntry(err, i)
			}
		}

		pairs = append(pairs, Pair{Input: in, Outputs: outs})
	}

	return pairs, nil
}

func wrapEntry(err error, i int) error {
	return &kperr.Error{
		Kind:    kperr.KindValidation,
		Op:      "compile",
		Message: "invalid key path map entry " + strconv.Itoa(i),
		Cause:   err,
	}
}

// Copy reads every pair's input from input and writes it to all of the pair's
// outputs in output, in pair order. Without OmitNonExisting an absent input
// writes the Default option. Every path must be a non-empty sequence of
// string and int keys.
func Copy(input, output any, pairs []Pair, opts ...Option) error {
	o, err := Resolve(opts...)
	if err != nil {
		return err
	}

	in, out, err := container.RequirePair("copy", input, output)
	if err != nil {
		return err
	}

	for i, p := range pairs {
		if err := validatePair(p); err != nil {
			return &kperr.Error{
				Kind:    kperr.KindValidation,
				Op:      "copy",
				Message: "invalid key path pair " + strconv.Itoa(i),
				Cause:   err,
			}
		}
	}

	return copyPairs(in, out, pairs, o)
}

// CopyByMap copies values from input into output as directed by m.
func CopyByMap(input, output any, m *PathMap, opts ...Option) error {
	o, err := Resolve(opts...)
	if err != nil {
		return err
	}

	in, out, err := container.RequirePair("copy", input, output)
	if err != nil {
		return err
	}

	pairs, err := m.Compile(o.KeySeparator, o.EscapeChar)
	if err != nil {
		return err
	}

	return copyPairs(in, out, pairs, o)
}

// TransformByMap copies values from input into a new container as directed by
// m and returns it. The new container is a clone of the ArrayPrototype option,
// or an empty container of the input's kind.
func TransformByMap(input any, m *PathMap, opts ...Option) (container.Container, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}

	in, ok := container.As(input)
	if !ok {
		return nil, kperr.Validation("transform",
			"input must be an ordered map or implement container.Container, %s given", kperr.TypeName(input))
	}

	pairs, err := m.Compile(o.KeySeparator, o.EscapeChar)
	if err != nil {
		return nil, err
	}

	out := o.prototype(in)

	if err := copyPairs(in, out, pairs, o); err != nil {
		return nil, err
	}

	return out, nil
}

func copyPairs(in, out container.Container, pairs []Pair, o Options) error {
	for _, p := range pairs {
		value, exists, err := lookup("copy", in, p.Input, o.throwOnMissing())
		if err != nil {
			return err
		}

		if !exists {
			if o.OmitNonExisting {
				continue
			}

			value = o.Default
		}

		for _, outPath := range p.Outputs {
			if err := set("copy", out, outPath, container.DeepCopy(value), o); err != nil {
				return err
			}
		}
	}

	return nil
}

func validatePair(p Pair) error {
	if _, err := validateKeys(p.Input); err != nil {
		return err
	}

	if len(p.Outputs) == 0 {
		return kperr.Validation("copy", "at least one output key path must be given")
	}

	for _, out := range p.Outputs {
		if _, err := validateKeys(out); err != nil {
			return err
		}
	}

	return nil
}
