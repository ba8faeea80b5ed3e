package keypath

import (
	"keypath-kit/container"
	"keypath-kit/kperr"
	"keypath-kit/strutil"
)

// Path is a non-empty sequence of keys, each a string or an int.
type Path []any

// String renders the path as a literal list, e.g. ["users",0,"id"].
func (p Path) String() string {
	return kperr.FormatPath(p)
}

// Join renders the path in its string form using sep and escape, the inverse
// of Normalize on a string.
func (p Path) Join(sep, escape string) (string, error) {
	pieces := make([]string, len(p))
	for i, k := range p {
		pieces[i] = container.KeyString(k)
	}

	var opts []strutil.Option
	if escape != "" {
		opts = append(opts, strutil.Escape(escape))
	}

	return strutil.Join(sep, pieces, opts...)
}

// Normalize converts a key path into its canonical sequence form.
//
// Strings are split on sep, honouring escape when it is not empty.
// Sequences (Path, []any, []string, []int) are validated and returned as a
// Path: they must be non-empty and hold only strings and ints.
func Normalize(kp any, sep, escape string) (Path, error) {
	switch v := kp.(type) {
	case string:
		var opts []strutil.Option
		if escape != "" {
			opts = append(opts, strutil.Escape(escape))
		}

		parts, err := strutil.Split(sep, v, opts...)
		if err != nil {
			return nil, &kperr.Error{
				Kind:    kperr.KindValidation,
				Op:      "normalize",
				Message: "invalid key separator or escape character",
				Cause:   err,
			}
		}

		p := make(Path, len(parts))
		for i, s := range parts {
			p[i] = s
		}

		return p, nil
	case Path:
		return validateKeys(v)
	case []any:
		return validateKeys(v)
	case []string:
		p := make(Path, len(v))
		for i, s := range v {
			p[i] = s
		}

		return validateKeys(p)
	case []int:
		p := make(Path, len(v))
		for i, n := range v {
			p[i] = n
		}

		return validateKeys(p)
	default:
		return nil, kperr.Validation("normalize",
			"key path must be a string or a sequence of keys, %s given", kperr.TypeName(kp))
	}
}

func validateKeys(keys []any) (Path, error) {
	if len(keys) == 0 {
		return nil, kperr.Validation("normalize", "at least one key must be given")
	}

	for i, k := range keys {
		switch k.(type) {
		case string, int:
		default:
			return nil, kperr.Validation("normalize",
				"key path must contain only strings and integers, %s given at index %d",
				kperr.TypeName(k), i)
		}
	}

	return Path(keys), nil
}
