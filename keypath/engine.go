package keypath

import (
	"keypath-kit/container"
	"keypath-kit/internal/match"
	"keypath-kit/kperr"
)

// Read locates the element at kp inside c.
//
// The result depends on the ReturnMode option: the value (or the default when
// absent) for ValueOnly, a bool for ExistsOnly and a Result for Both. With
// ThrowOnMissing an absent element is a missing-element error naming the
// visited key path prefix instead.
func Read(c any, kp any, opts ...Option) (any, error) {
	root, path, o, err := prepare("get", c, kp, opts)
	if err != nil {
		return nil, err
	}

	value, exists, err := lookup("get", root, path, o.throwOnMissing())
	if err != nil {
		return nil, err
	}

	if !exists {
		value = o.Default
	}

	switch o.ReturnMode {
	case ExistsOnly:
		return exists, nil
	case Both:
		return Result{Value: value, Exists: exists}, nil
	default:
		return value, nil
	}
}

// Get returns the value at kp, or the Default option when absent.
func Get(c any, kp any, opts ...Option) (any, error) {
	value, _, err := Lookup(c, kp, opts...)

	return value, err
}

// Lookup returns the value at kp and whether it exists. The value is the
// Default option when the element is absent.
func Lookup(c any, kp any, opts ...Option) (any, bool, error) {
	root, path, o, err := prepare("get", c, kp, opts)
	if err != nil {
		return nil, false, err
	}

	value, exists, err := lookup("get", root, path, o.throwOnMissing())
	if err != nil {
		return nil, false, err
	}

	if !exists {
		return o.Default, false, nil
	}

	return value, true, nil
}

// Has reports whether an element exists at kp. A missing element is never an
// error, whatever ThrowOnMissing says.
func Has(c any, kp any, opts ...Option) (bool, error) {
	root, path, _, err := prepare("has", c, kp, opts)
	if err != nil {
		return false, err
	}

	_, exists, err := lookup("has", root, path, false)

	return exists, err
}

// Set writes value at kp, creating intermediate levels from the ArrayPrototype
// option as needed. A non-container value in the way of a deeper key is
// replaced, or reported as a collision with ThrowOnCollision. The final key is
// always overwritten.
func Set(c any, kp any, value any, opts ...Option) error {
	root, path, o, err := prepare("set", c, kp, opts)
	if err != nil {
		return err
	}

	return set("set", root, path, value, o)
}

// Unset removes the element at kp. An absent element is a no-op, or a
// missing-element error with ThrowOnMissing.
func Unset(c any, kp any, opts ...Option) error {
	root, path, o, err := prepare("unset", c, kp, opts)
	if err != nil {
		return err
	}

	cur := root
	last := len(path) - 1

	for i, key := range path {
		if !cur.Has(key) {
			if o.ThrowOnMissing {
				return missing("unset", cur, path[:i+1])
			}

			return nil
		}

		if i == last {
			cur.Delete(key)

			return nil
		}

		next, _ := cur.Get(key)

		nc, ok := container.As(next)
		if !ok {
			if o.ThrowOnMissing {
				return missing("unset", nil, path[:i+2])
			}

			return nil
		}

		cur = nc
	}

	return nil
}

func prepare(op string, c any, kp any, opts []Option) (container.Container, Path, Options, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, nil, Options{}, err
	}

	root, ok := container.As(c)
	if !ok {
		return nil, nil, Options{}, kperr.Validation(op,
			"container must be an ordered map or implement container.Container, %s given", kperr.TypeName(c))
	}

	path, err := Normalize(kp, o.KeySeparator, o.EscapeChar)
	if err != nil {
		return nil, nil, Options{}, err
	}

	return root, path, o, nil
}

// lookup walks path from root. A prefix resolving to a non-container value
// counts as absent.
func lookup(op string, root container.Container, path Path, throw bool) (any, bool, error) {
	if len(path) == 0 {
		return nil, false, kperr.Validation(op, "at least one key must be given")
	}

	var cur any = root

	for i, key := range path {
		c, ok := container.As(cur)
		if !ok || !c.Has(key) {
			if throw {
				return nil, false, missing(op, c, path[:i+1])
			}

			return nil, false, nil
		}

		cur, _ = c.Get(key)
	}

	return cur, true, nil
}

func set(op string, root container.Container, path Path, value any, o Options) error {
	if len(path) == 0 {
		return kperr.Validation(op, "at least one key must be given")
	}

	cur := root
	last := len(path) - 1

	for i, key := range path[:last] {
		next, exists := cur.Get(key)

		if nc, ok := container.As(next); exists && ok {
			cur = nc

			continue
		}

		if exists && o.ThrowOnCollision {
			return kperr.Collision(op, path[:i+1], next)
		}

		level := o.prototype(root)
		cur.Set(key, level)
		cur = level
	}

	cur.Set(path[last], value)

	return nil
}

// missing builds a missing-element error, suggesting similar keys of the
// container where the walk stopped.
func missing(op string, at container.Container, visited Path) error {
	err := kperr.Missing(op, visited)

	if at == nil {
		return err
	}

	key, ok := visited[len(visited)-1].(string)
	if !ok {
		return err
	}

	var keys []string
	for _, k := range at.Keys() {
		if s, ok := k.(string); ok {
			keys = append(keys, s)
		}
	}

	err.Suggestions = match.Suggest(key, keys, match.DefaultMaxSuggestions)

	return err
}
