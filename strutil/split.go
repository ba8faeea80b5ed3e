// Package strutil provides an escape-aware delimiter tokenizer.
//
// Split works like strings.Split with an optional limit, and optionally
// understands a single escape character:
//
//   - an escape character before the delimiter keeps the delimiter literal
//     and is itself removed,
//   - a doubled escape character produces one literal escape character,
//   - any other escape character is kept as is.
//
// Join is the inverse: it escapes every escape character and delimiter
// occurrence of each piece before joining.
//
//	parts, _ := strutil.Split(".", `a.b\.c`, strutil.Escape(`\`))
//	// parts: ["a", "b.c"]
package strutil

import (
	"strings"
	"unicode/utf8"

	"keypath-kit/kperr"
)

// Option configures Split and Join.
type Option func(*config)

type config struct {
	limit     int
	hasLimit  bool
	escape    string
	hasEscape bool
}

// Limit caps the number of tokens returned by Split.
//
// A positive limit returns at most limit tokens, the last one holding the
// rest of the input joined back with the delimiter. Zero behaves like 1.
// A negative limit drops that many trailing tokens.
// Join ignores it.
func Limit(n int) Option {
	return func(c *config) {
		c.limit = n
		c.hasLimit = true
	}
}

// Escape sets the escape character. It must be exactly one character and
// must not occur inside the delimiter.
func Escape(ch string) Option {
	return func(c *config) {
		c.escape = ch
		c.hasEscape = true
	}
}

func newConfig(op, delimiter string, opts []Option) (config, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	if delimiter == "" {
		return c, kperr.Configuration(op, "delimiter must not be empty")
	}

	if !c.hasEscape {
		return c, nil
	}

	if n := utf8.RuneCountInString(c.escape); n != 1 {
		return c, kperr.Configuration(op,
			"if specified, escape character must have exactly 1 character, %d given", n)
	}

	if strings.Contains(delimiter, c.escape) {
		return c, kperr.Configuration(op,
			"escape character cannot be the same as the delimiter or occur in the delimiter")
	}

	return c, nil
}

// Split splits s around each unescaped occurrence of delimiter.
func Split(delimiter, s string, opts ...Option) ([]string, error) {
	c, err := newConfig("split", delimiter, opts)
	if err != nil {
		return nil, err
	}

	var parts []string
	if c.hasEscape {
		parts = splitEscaped(delimiter, s, c.escape)
	} else {
		parts = strings.Split(s, delimiter)
	}

	if !c.hasLimit {
		return parts, nil
	}

	return limitParts(parts, c.limit, delimiter), nil
}

// splitEscaped scans s left to right. Escape runs are consumed pairwise, so a
// delimiter preceded by an odd run of escape characters stays literal.
func splitEscaped(delimiter, s, escape string) []string {
	var (
		parts []string
		cur   strings.Builder
	)

	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], escape):
			rest := s[i+len(escape):]

			switch {
			case strings.HasPrefix(rest, escape):
				cur.WriteString(escape)
				i += 2 * len(escape)
			case strings.HasPrefix(rest, delimiter):
				cur.WriteString(delimiter)
				i += len(escape) + len(delimiter)
			default:
				// lone escape character, including a trailing one
				cur.WriteString(escape)
				i += len(escape)
			}
		case strings.HasPrefix(s[i:], delimiter):
			parts = append(parts, cur.String())
			cur.Reset()

			i += len(delimiter)
		default:
			cur.WriteByte(s[i])
			i++
		}
	}

	return append(parts, cur.String())
}

func limitParts(parts []string, limit int, delimiter string) []string {
	if limit == 0 {
		limit = 1
	}

	n := len(parts)

	if limit < 0 {
		if limit <= -n {
			return []string{}
		}

		return parts[:n+limit]
	}

	if limit >= n {
		return parts
	}

	limited := make([]string, 0, limit)
	limited = append(limited, parts[:limit-1]...)

	return append(limited, strings.Join(parts[limit-1:], delimiter))
}

// Join concatenates pieces with delimiter. With an escape character every
// escape character and every delimiter occurrence inside a piece is escaped,
// so that Split with the same options returns the original pieces.
func Join(delimiter string, pieces []string, opts ...Option) (string, error) {
	c, err := newConfig("join", delimiter, opts)
	if err != nil {
		return "", err
	}

	if !c.hasEscape {
		return strings.Join(pieces, delimiter), nil
	}

	r := strings.NewReplacer(c.escape, c.escape+c.escape, delimiter, c.escape+delimiter)

	escaped := make([]string, len(pieces))
	for i, p := range pieces {
		escaped[i] = r.Replace(p)
	}

	return strings.Join(escaped, delimiter), nil
}
