package wildcard

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"keypath-kit/keypath"
	"keypath-kit/kperr"
)

// Marker delimits parameters in patterns.
const Marker = "%"

var (
	inputParamRe = regexp.MustCompile(`^%(\w+)%$`)
	paramNameRe  = regexp.MustCompile(`^\w+$`)
)

// InputPattern is a compiled input key path pattern.
type InputPattern struct {
	// Path holds the unescaped literal keys. Parameter positions hold the
	// original %name% segment.
	Path keypath.Path
	// Params maps parameter positions to parameter names.
	Params map[int]string

	source string
}

// String returns the pattern as it was written.
func (p *InputPattern) String() string {
	return p.source
}

// Param returns the parameter name at position pos.
func (p *InputPattern) Param(pos int) (string, bool) {
	name, ok := p.Params[pos]

	return name, ok
}

// Names returns the parameter names in position order.
func (p *InputPattern) Names() []string {
	positions := make([]int, 0, len(p.Params))
	for pos := range p.Params {
		positions = append(positions, pos)
	}

	slices.Sort(positions)

	names := make([]string, len(positions))
	for i, pos := range positions {
		names[i] = p.Params[pos]
	}

	return names
}

// Position returns the position of the parameter called name.
func (p *InputPattern) Position(name string) (int, bool) {
	for pos, n := range p.Params {
		if n == name {
			return pos, true
		}
	}

	return 0, false
}

// CompileInput compiles an input pattern given as a string or key sequence.
//
// A segment that is exactly %name% (word characters only) is a parameter;
// a name may occur once per pattern. Any other segment may contain the marker
// only doubled, and %% is unescaped to a literal %.
func CompileInput(pattern any, opts ...keypath.Option) (*InputPattern, error) {
	o, err := keypath.Resolve(opts...)
	if err != nil {
		return nil, err
	}

	path, err := keypath.Normalize(pattern, o.KeySeparator, o.EscapeChar)
	if err != nil {
		return nil, err
	}

	in := &InputPattern{
		Path:   slices.Clone(path),
		Params: map[int]string{},
		source: patternText(pattern),
	}

	seen := map[string]bool{}

	for pos, key := range path {
		s, ok := key.(string)
		if !ok || !strings.Contains(s, Marker) {
			continue
		}

		if m := inputParamRe.FindStringSubmatch(s); m != nil {
			name := m[1]
			if seen[name] {
				return nil, kperr.Pattern("compile",
					"parameter '%s' occurs more than once in key path %s", name, in.source)
			}

			seen[name] = true
			in.Params[pos] = name

			continue
		}

		if hasOddMarkerRun(s) {
			return nil, kperr.Pattern("compile",
				"invalid key '%s' in key path %s: every wildcard('%%') character that does not mark a parameter must be escaped using double wildcard('%%%%')",
				s, in.source)
		}

		in.Path[pos] = strings.ReplaceAll(s, Marker+Marker, Marker)
	}

	return in, nil
}

func hasOddMarkerRun(s string) bool {
	run := 0

	for i := 0; i < len(s); i++ {
		if s[i] == Marker[0] {
			run++

			continue
		}

		if run%2 == 1 {
			return true
		}

		run = 0
	}

	return run%2 == 1
}

// patternText renders a pattern for error messages: strings quoted with
// single quotes, sequences as a literal list.
func patternText(pattern any) string {
	switch v := pattern.(type) {
	case string:
		return "'" + v + "'"
	case keypath.Path:
		return v.String()
	case []any:
		return kperr.FormatPath(v)
	case []string:
		keys := make([]any, len(v))
		for i, s := range v {
			keys[i] = s
		}

		return kperr.FormatPath(keys)
	case []int:
		keys := make([]any, len(v))
		for i, n := range v {
			keys[i] = n
		}

		return kperr.FormatPath(keys)
	default:
		return strconv.Quote(kperr.TypeName(v))
	}
}
