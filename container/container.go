package container

import (
	"strconv"

	"keypath-kit/kperr"
)

// Container is the capability set every nesting level must provide.
// Keys passed in are normalised by the implementation (see NormalizeKey).
type Container interface {
	Has(key any) bool
	Get(key any) (any, bool)
	Set(key, value any)
	Delete(key any)
	Keys() []any
}

// Cloner is implemented by containers that can be used as a prototype for new
// nesting levels. Clone returns an independent shallow copy.
type Cloner interface {
	Clone() Container
}

// Emptier is implemented by containers that can produce an empty container of
// their own kind.
type Emptier interface {
	Empty() Container
}

// As returns v as a Container. Containers are returned as is, map[string]any
// values are wrapped in Native sharing the underlying map. Nil maps, including
// a nil *Map or Native, are not containers.
func As(v any) (Container, bool) {
	switch c := v.(type) {
	case *Map:
		return c, c != nil
	case Native:
		return c, c != nil
	case Container:
		return c, c != nil
	case map[string]any:
		if c == nil {
			return nil, false
		}

		return Native(c), true
	default:
		return nil, false
	}
}

// IsContainer reports whether v can be traversed by the engine.
func IsContainer(v any) bool {
	_, ok := As(v)

	return ok
}

// Require returns v as a Container or a type error naming argName.
func Require(v any, argName string) (Container, error) {
	c, ok := As(v)
	if !ok {
		return nil, &kperr.Error{
			Kind:    kperr.KindType,
			Op:      "require",
			Message: argName + " must be a container, " + kperr.TypeName(v) + " given",
		}
	}

	return c, nil
}

// RequirePair returns input and output as Containers, or a validation error
// for op naming the argument that is not one.
func RequirePair(op string, input, output any) (Container, Container, error) {
	in, ok := As(input)
	if !ok {
		return nil, nil, kperr.Validation(op,
			"input must be an ordered map or implement container.Container, %s given", kperr.TypeName(input))
	}

	out, ok := As(output)
	if !ok {
		return nil, nil, kperr.Validation(op,
			"output must be an ordered map or implement container.Container, %s given", kperr.TypeName(output))
	}

	return in, out, nil
}

// Clone returns an independent copy of proto, or nil if proto cannot be cloned.
func Clone(proto Container) Container {
	if cl, ok := proto.(Cloner); ok {
		return cl.Clone()
	}

	return nil
}

// EmptyOf returns an empty container of the same kind as c. Containers that do
// not implement Emptier get a new Map.
func EmptyOf(c Container) Container {
	if e, ok := c.(Emptier); ok {
		return e.Empty()
	}

	return NewMap()
}

// NormalizeKey converts k to its canonical key form: an int or a string that
// is not a canonical decimal integer.
func NormalizeKey(k any) (any, bool) {
	switch v := k.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case int32:
		return int(v), true
	case uint:
		return int(v), true
	case string:
		if n, ok := canonicalInt(v); ok {
			return n, true
		}

		return v, true
	default:
		return nil, false
	}
}

// IsKey reports whether k is a valid key.
func IsKey(k any) bool {
	_, ok := NormalizeKey(k)

	return ok
}

// KeyString renders a key as a string.
func KeyString(k any) string {
	switch v := k.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	default:
		n, _ := NormalizeKey(k)
		if i, ok := n.(int); ok {
			return strconv.Itoa(i)
		}

		return ""
	}
}

func canonicalInt(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}

	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return 0, false
	}

	return n, true
}

func mustKey(k any) any {
	n, ok := NormalizeKey(k)
	if !ok {
		panic("container: invalid key type " + kperr.TypeName(k))
	}

	return n
}
