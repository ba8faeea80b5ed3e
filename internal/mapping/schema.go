package mapping

import (
	"keypath-kit/internal/common"
	"keypath-kit/keypath"
)

// CurrentVersion is the only mapping schema version understood.
const CurrentVersion = "1"

// MappingFile represents the root of a remap definition file.
type MappingFile struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Separator splits the key paths of Map. Empty means ".".
	Separator string `yaml:"separator,omitempty"`

	// Escape escapes the separator inside keys. Nil means the default "\",
	// an empty string disables escaping.
	Escape *string `yaml:"escape,omitempty"`

	// Wildcard enables %name% parameters in the key paths of Map.
	Wildcard bool `yaml:"wildcard,omitempty"`

	// CopyAll copies every top-level entry of the input before Map is applied.
	CopyAll bool `yaml:"copy_all,omitempty"`

	// Options are the engine options used when the map is applied.
	Options OptionsDef `yaml:"options,omitempty"`

	// Map lists input key paths with their output key paths, in file order.
	Map PathMapDef `yaml:"map,omitempty"`
}

// OptionsDef holds the per-operation engine options of a mapping file.
type OptionsDef struct {
	// OmitNonExisting skips absent inputs instead of writing Default.
	OmitNonExisting bool `yaml:"omit_non_existing,omitempty"`

	// ThrowOnMissing fails on absent inputs.
	ThrowOnMissing bool `yaml:"throw_on_missing,omitempty"`

	// ThrowOnCollision fails when a scalar is in the way of an output path.
	ThrowOnCollision bool `yaml:"throw_on_collision,omitempty"`

	// Default is written for absent inputs.
	Default any `yaml:"default,omitempty"`
}

// EntryDef maps one input key path to one or more output key paths.
//
// YAML formats supported:
//   - Mapping: "input.path: output.path" or "input.path: [out.a, out.b]"
//   - Sequence of {input: ..., output: ...} items
type EntryDef struct {
	Input   string        `yaml:"input"`
	Outputs StringOrArray `yaml:"output"`

	// Line is the line of the entry in a YAML file, 0 when unknown.
	Line int `yaml:"-"`
}

// PathMapDef is the ordered list of map entries.
type PathMapDef []EntryDef

// StringOrArray is a type that can be unmarshaled from either a string or an
// array of strings.
type StringOrArray []string

// EscapeChar returns the effective escape character.
func (mf *MappingFile) EscapeChar() string {
	if mf.Escape == nil {
		return keypath.DefaultOptions().EscapeChar
	}

	return *mf.Escape
}

// KeypathOptions converts the file settings into engine options.
func (mf *MappingFile) KeypathOptions() []keypath.Option {
	opts := []keypath.Option{
		keypath.WithEscapeChar(mf.EscapeChar()),
		keypath.OmitNonExisting(mf.Options.OmitNonExisting),
		keypath.ThrowOnMissing(mf.Options.ThrowOnMissing),
		keypath.ThrowOnCollision(mf.Options.ThrowOnCollision),
		keypath.WithDefault(mf.Options.Default),
	}

	if mf.Separator != "" {
		opts = append(opts, keypath.WithSeparator(mf.Separator))
	}

	return opts
}

// PathMap converts Map into a keypath.PathMap.
func (mf *MappingFile) PathMap() *keypath.PathMap {
	m := keypath.NewPathMap()

	for _, e := range mf.Map {
		m.Add(e.Input, common.ToAny(e.Outputs)...)
	}

	return m
}

// Inputs returns the input key paths in file order.
func (p PathMapDef) Inputs() []string {
	result := make([]string, len(p))
	for i, e := range p {
		result[i] = e.Input
	}

	return result
}
