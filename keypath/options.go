package keypath

import (
	"strings"
	"unicode/utf8"

	"keypath-kit/container"
	"keypath-kit/kperr"
)

//go:generate go tool stringer -type=ReturnMode -output=returnmode_string.go

// ReturnMode selects what Read returns.
type ReturnMode int

const (
	// ValueOnly returns the located value, or the default when absent.
	ValueOnly ReturnMode = iota
	// ExistsOnly returns whether the element exists as a bool.
	ExistsOnly
	// Both returns a Result holding the value and whether it exists.
	Both
)

// Result is returned by Read in the Both mode.
type Result struct {
	Value  any
	Exists bool
}

// Options holds every option recognised by the engine.
type Options struct {
	// Default is returned or written when a read finds no element.
	Default any
	// KeySeparator splits string key paths.
	KeySeparator string
	// EscapeChar escapes the separator inside a key. Empty disables escaping.
	EscapeChar string
	// ThrowOnMissing makes reads and unsets fail on an absent element.
	ThrowOnMissing bool
	// ThrowOnCollision makes writes fail instead of replacing a non-container
	// value that is in the way of a deeper key.
	ThrowOnCollision bool
	// ArrayPrototype is cloned for every nesting level a write creates. When
	// nil, an empty container of the root's kind is used.
	ArrayPrototype container.Container
	// OmitNonExisting makes map-driven copies skip absent inputs instead of
	// writing Default. It forces ThrowOnMissing off for the reads.
	OmitNonExisting bool
	// ReturnMode selects what Read returns.
	ReturnMode ReturnMode
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		KeySeparator: ".",
		EscapeChar:   `\`,
		ReturnMode:   ValueOnly,
	}
}

// Option modifies Options. Options are applied in order, so a later option
// overrides an earlier one, including an explicit false.
type Option func(*Options)

// WithDefault sets the value used for absent elements.
func WithDefault(v any) Option {
	return func(o *Options) { o.Default = v }
}

// WithSeparator sets the key separator.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.KeySeparator = sep }
}

// WithEscapeChar sets the escape character. An empty string disables escaping.
func WithEscapeChar(ch string) Option {
	return func(o *Options) { o.EscapeChar = ch }
}

// ThrowOnMissing toggles failing on absent elements.
func ThrowOnMissing(v bool) Option {
	return func(o *Options) { o.ThrowOnMissing = v }
}

// ThrowOnCollision toggles failing on collisions.
func ThrowOnCollision(v bool) Option {
	return func(o *Options) { o.ThrowOnCollision = v }
}

// WithPrototype sets the prototype cloned for new nesting levels.
func WithPrototype(c container.Container) Option {
	return func(o *Options) { o.ArrayPrototype = c }
}

// OmitNonExisting toggles skipping absent inputs in map-driven copies.
func OmitNonExisting(v bool) Option {
	return func(o *Options) { o.OmitNonExisting = v }
}

// WithReturnMode sets what Read returns.
func WithReturnMode(m ReturnMode) Option {
	return func(o *Options) { o.ReturnMode = m }
}

// WithOptions replaces every option with o.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// With returns a copy of o with opts applied.
func (o Options) With(opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Validate checks option values.
func (o Options) Validate() error {
	if o.KeySeparator == "" {
		return kperr.Validation("options", "option KeySeparator must not be empty")
	}

	if o.EscapeChar != "" {
		if n := utf8.RuneCountInString(o.EscapeChar); n != 1 {
			return kperr.Validation("options",
				"option EscapeChar must have exactly 1 character, %d given", n)
		}

		if strings.Contains(o.KeySeparator, o.EscapeChar) {
			return kperr.Validation("options",
				"option EscapeChar %q cannot occur in KeySeparator %q", o.EscapeChar, o.KeySeparator)
		}
	}

	if o.ArrayPrototype != nil {
		if _, ok := o.ArrayPrototype.(container.Cloner); !ok {
			return kperr.Validation("options",
				"option ArrayPrototype must be cloneable, %s given", kperr.TypeName(o.ArrayPrototype))
		}
	}

	if o.ReturnMode < ValueOnly || o.ReturnMode > Both {
		return kperr.Validation("options", "unknown return mode %s", o.ReturnMode)
	}

	return nil
}

// Resolve applies opts over DefaultOptions and validates the result.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions().With(opts...)
	if err := o.Validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}

// throwOnMissing is the effective ThrowOnMissing for reads: OmitNonExisting
// always wins.
func (o Options) throwOnMissing() bool {
	return o.ThrowOnMissing && !o.OmitNonExisting
}

// prototype returns a fresh container for a new nesting level below root.
func (o Options) prototype(root container.Container) container.Container {
	if o.ArrayPrototype != nil {
		return container.Clone(o.ArrayPrototype)
	}

	return container.EmptyOf(root)
}
