package wildcard

import (
	"strings"

	"keypath-kit/container"
	"keypath-kit/keypath"
	"keypath-kit/kperr"
)

// Fragment is a piece of an output segment: literal text or a parameter name.
type Fragment struct {
	IsParam bool
	Text    string
}

// OutputSegment is one compiled output key: a splice of fragments.
type OutputSegment []Fragment

// Params returns the parameter names referenced by the segment.
func (s OutputSegment) Params() []string {
	var names []string

	for _, f := range s {
		if f.IsParam {
			names = appendUnique(names, f.Text)
		}
	}

	return names
}

// OutputPattern is a compiled output key path pattern.
type OutputPattern struct {
	Segments []OutputSegment

	source string
}

// String returns the pattern as it was written.
func (p *OutputPattern) String() string {
	return p.source
}

// Params returns the parameter names referenced anywhere in the pattern, in
// order of first appearance.
func (p *OutputPattern) Params() []string {
	var names []string

	for _, seg := range p.Segments {
		for _, name := range seg.Params() {
			names = appendUnique(names, name)
		}
	}

	return names
}

// CompileSegment compiles a single output key.
//
// An unescaped marker opens a parameter and the next one closes it; the name
// in between must consist of word characters. A doubled marker outside a
// parameter is a literal %. A parameter left open, or a single marker at the
// end of the segment, is a pattern error.
func CompileSegment(segment string) (OutputSegment, error) {
	var (
		frags   OutputSegment
		current strings.Builder
		pending bool // a single marker was seen outside a parameter
		inParam bool
	)

	for i := 0; i < len(segment); i++ {
		c := segment[i]
		isMarker := c == Marker[0]

		switch {
		case inParam && isMarker:
			name := current.String()
			if !paramNameRe.MatchString(name) {
				return nil, kperr.Pattern("compile", "invalid parameter '%s'", name)
			}

			frags = append(frags, Fragment{IsParam: true, Text: name})
			current.Reset()

			inParam = false
		case inParam:
			current.WriteByte(c)
		case isMarker && pending:
			current.WriteString(Marker)

			pending = false
		case isMarker:
			pending = true
		case pending:
			if current.Len() > 0 {
				frags = append(frags, Fragment{Text: current.String()})
				current.Reset()
			}

			current.WriteByte(c)

			pending = false
			inParam = true
		default:
			current.WriteByte(c)
		}
	}

	if inParam {
		return nil, kperr.Pattern("compile",
			"started but not finished parameter: '%s' in '%s'", current.String(), segment)
	}

	if pending {
		return nil, kperr.Pattern("compile", "unescaped wildcard character(%%) at the end: '%s'", segment)
	}

	if current.Len() > 0 {
		frags = append(frags, Fragment{Text: current.String()})
	}

	return frags, nil
}

// CompileOutput compiles an output pattern given as a string or key sequence.
func CompileOutput(pattern any, opts ...keypath.Option) (*OutputPattern, error) {
	o, err := keypath.Resolve(opts...)
	if err != nil {
		return nil, err
	}

	path, err := keypath.Normalize(pattern, o.KeySeparator, o.EscapeChar)
	if err != nil {
		return nil, err
	}

	out := &OutputPattern{
		Segments: make([]OutputSegment, len(path)),
		source:   patternText(pattern),
	}

	for i, key := range path {
		s, ok := key.(string)
		if !ok {
			out.Segments[i] = OutputSegment{{Text: container.KeyString(key)}}

			continue
		}

		if out.Segments[i], err = CompileSegment(s); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func appendUnique(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}

	return append(names, name)
}
