package wildcard

import (
	"fmt"

	"keypath-kit/container"
	"keypath-kit/keypath"
	"keypath-kit/kperr"
)

// Expand lists every concrete key path of c matching in, one pattern position
// at a time.
//
// A literal position is appended as is; its existence is left to the reader
// of the resulting path. A parameter position needs the value reached so far
// to exist and be a container, and yields one path per key it holds.
// Otherwise expansion fails with a missing-element or type error, or drops
// the candidate with the OmitNonExisting option.
func Expand(c any, in *InputPattern, opts ...keypath.Option) ([]keypath.Path, error) {
	o, err := keypath.Resolve(opts...)
	if err != nil {
		return nil, err
	}

	root, ok := container.As(c)
	if !ok {
		return nil, kperr.Validation("expand",
			"input must be an ordered map or implement container.Container, %s given", kperr.TypeName(c))
	}

	if len(in.Path) == 0 {
		return nil, nil
	}

	var paths []keypath.Path

	if _, isParam := in.Params[0]; isParam {
		for _, k := range root.Keys() {
			paths = append(paths, keypath.Path{k})
		}
	} else {
		paths = []keypath.Path{{in.Path[0]}}
	}

	for pos := 1; pos < len(in.Path); pos++ {
		_, isParam := in.Params[pos]

		next := make([]keypath.Path, 0, len(paths))

		for _, p := range paths {
			if !isParam {
				next = append(next, extend(p, in.Path[pos]))

				continue
			}

			value, exists, err := keypath.Lookup(root, p, keypath.WithOptions(o), keypath.ThrowOnMissing(false))
			if err != nil {
				return nil, err
			}

			if !exists {
				if o.OmitNonExisting {
					continue
				}

				return nil, kperr.Missing("expand", p)
			}

			cc, ok := container.As(value)
			if !ok {
				if o.OmitNonExisting {
					continue
				}

				return nil, kperr.NotContainer("expand", p, value)
			}

			for _, k := range cc.Keys() {
				next = append(next, extend(p, k))
			}
		}

		paths = next
	}

	return paths, nil
}

func extend(p keypath.Path, key any) keypath.Path {
	out := make(keypath.Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, key)
}

// Substitute builds the output key path for a concrete input path matched by
// in. A segment made of a single parameter takes the captured key as is,
// keeping its type; other segments are concatenated as text.
func Substitute(concrete keypath.Path, in *InputPattern, out *OutputPattern) (keypath.Path, error) {
	if len(concrete) != len(in.Path) {
		return nil, kperr.Validation("substitute",
			"key path %s does not match pattern %s", concrete, in)
	}

	result := make(keypath.Path, len(out.Segments))

	for i, seg := range out.Segments {
		if len(seg) == 1 && seg[0].IsParam {
			pos, ok := in.Position(seg[0].Text)
			if !ok {
				return nil, undefinedParam(seg[0].Text, in, out)
			}

			result[i] = concrete[pos]

			continue
		}

		var text []byte

		for _, f := range seg {
			if !f.IsParam {
				text = append(text, f.Text...)

				continue
			}

			pos, ok := in.Position(f.Text)
			if !ok {
				return nil, undefinedParam(f.Text, in, out)
			}

			text = fmt.Append(text, concrete[pos])
		}

		result[i] = string(text)
	}

	return result, nil
}

func undefinedParam(name string, in *InputPattern, out *OutputPattern) error {
	return kperr.Pattern("substitute",
		"parameters %s in the output(%s) are not defined in the input(%s)",
		formatNames([]string{name}), out, in)
}

// Paths expands every pair against c and returns the concrete input paths
// with their substituted output paths, in pair order.
func Paths(c any, pairs []*Pair, opts ...keypath.Option) ([]keypath.Pair, error) {
	var result []keypath.Pair

	for _, pair := range pairs {
		inputs, err := Expand(c, pair.Input, opts...)
		if err != nil {
			return nil, err
		}

		for _, ip := range inputs {
			kp := keypath.Pair{Input: ip, Outputs: make([]keypath.Path, 0, len(pair.Outputs))}

			for _, out := range pair.Outputs {
				op, err := Substitute(ip, pair.Input, out)
				if err != nil {
					return nil, err
				}

				kp.Outputs = append(kp.Outputs, op)
			}

			result = append(result, kp)
		}
	}

	return result, nil
}
