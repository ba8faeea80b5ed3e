package overwrite

import (
	"keypath-kit/container"
	"keypath-kit/keypath"
	"keypath-kit/kperr"
	"keypath-kit/wildcard"
)

const opName = "overwrite"

// Overwriter copies values from input into output.
type Overwriter interface {
	Overwrite(input, output any, opts ...keypath.Option) error
}

// base holds the options fixed at construction.
type base struct {
	defaults keypath.Options
}

func newBase(opts []keypath.Option) (base, error) {
	o, err := keypath.Resolve(opts...)
	if err != nil {
		return base{}, err
	}

	return base{defaults: o}, nil
}

// resolve applies the per-operation options of opts over the defaults.
// Other options are ignored.
func (b base) resolve(opts []keypath.Option) (keypath.Options, error) {
	call := b.defaults.With(opts...)

	o := b.defaults
	o.Default = call.Default
	o.ThrowOnMissing = call.ThrowOnMissing
	o.ThrowOnCollision = call.ThrowOnCollision
	o.ArrayPrototype = call.ArrayPrototype
	o.OmitNonExisting = call.OmitNonExisting

	if err := o.Validate(); err != nil {
		return keypath.Options{}, err
	}

	return o, nil
}

// Options returns the options fixed at construction.
func (b base) Options() keypath.Options {
	return b.defaults
}

// AllKeys copies every top-level entry of the input into the output.
type AllKeys struct{}

// NewAllKeys returns an AllKeys overwriter.
func NewAllKeys() *AllKeys {
	return &AllKeys{}
}

// Overwrite implements Overwriter. Options are ignored.
func (*AllKeys) Overwrite(input, output any, _ ...keypath.Option) error {
	in, out, err := container.RequirePair(opName, input, output)
	if err != nil {
		return err
	}

	for _, k := range in.Keys() {
		v, _ := in.Get(k)
		out.Set(k, container.DeepCopy(v))
	}

	return nil
}

// PathPair maps one input key path to one output key path.
type PathPair struct {
	Input  any
	Output any
}

// Pairs copies values along an ordered list of key path pairs.
type Pairs struct {
	base

	pairs []keypath.Pair
}

// NewPairs builds a Pairs overwriter. Key paths are normalized with the
// separator and escape character of opts.
func NewPairs(pairs []PathPair, opts ...keypath.Option) (*Pairs, error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}

	if len(pairs) == 0 {
		return nil, kperr.Validation(opName, "at least one key path pair should be given")
	}

	p := &Pairs{base: b, pairs: make([]keypath.Pair, len(pairs))}

	for i, pp := range pairs {
		in, err := keypath.Normalize(pp.Input, b.defaults.KeySeparator, b.defaults.EscapeChar)
		if err != nil {
			return nil, err
		}

		out, err := keypath.Normalize(pp.Output, b.defaults.KeySeparator, b.defaults.EscapeChar)
		if err != nil {
			return nil, err
		}

		p.pairs[i] = keypath.Pair{Input: in, Outputs: []keypath.Path{out}}
	}

	return p, nil
}

// Overwrite implements Overwriter.
func (p *Pairs) Overwrite(input, output any, opts ...keypath.Option) error {
	o, err := p.resolve(opts)
	if err != nil {
		return err
	}

	return keypath.Copy(input, output, p.pairs, keypath.WithOptions(o))
}

// PathMap copies values as directed by a keypath.PathMap.
type PathMap struct {
	base

	pairs []keypath.Pair
}

// NewPathMap builds a PathMap overwriter. Key paths are normalized with the
// separator and escape character of opts.
func NewPathMap(m *keypath.PathMap, opts ...keypath.Option) (*PathMap, error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}

	pairs, err := m.Compile(b.defaults.KeySeparator, b.defaults.EscapeChar)
	if err != nil {
		return nil, err
	}

	return &PathMap{base: b, pairs: pairs}, nil
}

// Overwrite implements Overwriter.
func (p *PathMap) Overwrite(input, output any, opts ...keypath.Option) error {
	o, err := p.resolve(opts)
	if err != nil {
		return err
	}

	return keypath.Copy(input, output, p.pairs, keypath.WithOptions(o))
}

// Wildcard copies values as directed by a map of wildcard patterns. Every
// concrete input path matched by an input pattern is written to the
// substituted path of each of its output patterns.
type Wildcard struct {
	base

	pairs []*wildcard.Pair
}

// NewWildcard builds a Wildcard overwriter. Every pattern is compiled here,
// so pattern errors surface before any data is touched.
func NewWildcard(m *keypath.PathMap, opts ...keypath.Option) (*Wildcard, error) {
	b, err := newBase(opts)
	if err != nil {
		return nil, err
	}

	pairs, err := wildcard.CompileMap(m, keypath.WithOptions(b.defaults))
	if err != nil {
		return nil, err
	}

	return &Wildcard{base: b, pairs: pairs}, nil
}

// Overwrite implements Overwriter.
func (w *Wildcard) Overwrite(input, output any, opts ...keypath.Option) error {
	o, err := w.resolve(opts)
	if err != nil {
		return err
	}

	if _, _, err := container.RequirePair(opName, input, output); err != nil {
		return err
	}

	paths, err := wildcard.Paths(input, w.pairs, keypath.WithOptions(o))
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		return nil
	}

	return keypath.Copy(input, output, paths, keypath.WithOptions(o))
}

// Composite runs several overwriters in order with the same options.
type Composite struct {
	overwriters []Overwriter
}

// NewComposite builds a Composite. At least one overwriter is required.
func NewComposite(overwriters ...Overwriter) (*Composite, error) {
	if len(overwriters) == 0 {
		return nil, kperr.Validation(opName, "at least one overwriter should be given")
	}

	for i, ow := range overwriters {
		if ow == nil {
			return nil, kperr.Validation(opName, "overwriter at index %d is nil", i)
		}
	}

	return &Composite{overwriters: overwriters}, nil
}

// Overwrite implements Overwriter.
func (c *Composite) Overwrite(input, output any, opts ...keypath.Option) error {
	for _, ow := range c.overwriters {
		if err := ow.Overwrite(input, output, opts...); err != nil {
			return err
		}
	}

	return nil
}
