package wildcard

import (
	"keypath-kit/keypath"
	"keypath-kit/kperr"
)

// Pair is a compiled input pattern with its output patterns.
type Pair struct {
	Input   *InputPattern
	Outputs []*OutputPattern
}

// CompilePair compiles an input pattern and its output patterns and checks
// that every output uses exactly the parameters the input defines.
func CompilePair(input any, outputs []any, opts ...keypath.Option) (*Pair, error) {
	in, err := CompileInput(input, opts...)
	if err != nil {
		return nil, err
	}

	if len(outputs) == 0 {
		return nil, kperr.Validation("compile", "key path %s has no output key path", in)
	}

	pair := &Pair{Input: in, Outputs: make([]*OutputPattern, len(outputs))}
	inNames := in.Names()

	for i, o := range outputs {
		out, err := CompileOutput(o, opts...)
		if err != nil {
			return nil, err
		}

		outNames := out.Params()

		if unused := difference(inNames, outNames); len(unused) > 0 {
			return nil, kperr.Pattern("compile",
				"parameters %s in the input(%s) are not used in the output(%s)",
				formatNames(unused), in, out)
		}

		if undefined := difference(outNames, inNames); len(undefined) > 0 {
			return nil, kperr.Pattern("compile",
				"parameters %s in the output(%s) are not defined in the input(%s)",
				formatNames(undefined), out, in)
		}

		pair.Outputs[i] = out
	}

	return pair, nil
}

// CompileMap compiles every entry of m. All pattern errors are reported here,
// before any data is touched.
func CompileMap(m *keypath.PathMap, opts ...keypath.Option) ([]*Pair, error) {
	if m.Len() == 0 {
		return nil, kperr.Validation("compile", "key path map must have at least one element")
	}

	pairs := make([]*Pair, 0, m.Len())

	for _, e := range m.Entries() {
		p, err := CompilePair(e.Input, e.Outputs, opts...)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, p)
	}

	return pairs, nil
}

// difference returns the names of a missing from b.
func difference(a, b []string) []string {
	var out []string

	for _, name := range a {
		found := false

		for _, other := range b {
			if name == other {
				found = true

				break
			}
		}

		if !found {
			out = append(out, name)
		}
	}

	return out
}

func formatNames(names []string) string {
	keys := make([]any, len(names))
	for i, n := range names {
		keys[i] = n
	}

	return kperr.FormatPath(keys)
}
