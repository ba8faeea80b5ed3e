package container

// FromNative converts a decoded document (map[string]any and []any trees, as
// produced by encoding/json) into a tree of Maps. Object keys are inserted in
// the order Native enumerates them. Other values are returned unchanged.
func FromNative(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return fromNativeMap(Native(t))
	case Native:
		return fromNativeMap(t)
	case []any:
		m := NewMap()
		for i, item := range t {
			m.Set(i, FromNative(item))
		}

		return m
	default:
		return v
	}
}

func fromNativeMap(n Native) *Map {
	m := NewMap()
	for _, k := range n.Keys() {
		val, _ := n.Get(k)
		m.Set(k, FromNative(val))
	}

	return m
}

// DeepCopy returns v with every nested container copied level by level, so
// the result shares no container with v. map[string]any and []any values are
// copied too. Containers that cannot be cloned and scalars are returned as is.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return t
		}

		return map[string]any(DeepCopy(Native(t)).(Native))
	case []any:
		if t == nil {
			return t
		}

		out := make([]any, len(t))
		for i, item := range t {
			out[i] = DeepCopy(item)
		}

		return out
	}

	c, ok := As(v)
	if !ok {
		return v
	}

	cl := Clone(c)
	if cl == nil {
		return v
	}

	for _, k := range cl.Keys() {
		val, _ := cl.Get(k)
		cl.Set(k, DeepCopy(val))
	}

	return cl
}

// ToNative converts a container tree into map[string]any and []any values.
// Non-empty list-like containers become slices. Scalars are returned
// unchanged.
func ToNative(v any) any {
	c, ok := As(v)
	if !ok {
		return v
	}

	keys := c.Keys()

	if len(keys) > 0 && IsList(c) {
		out := make([]any, len(keys))
		for i, k := range keys {
			val, _ := c.Get(k)
			out[i] = ToNative(val)
		}

		return out
	}

	out := make(map[string]any, len(keys))
	for _, k := range keys {
		val, _ := c.Get(k)
		out[KeyString(k)] = ToNative(val)
	}

	return out
}

// IsList reports whether the keys of c are exactly 0..n-1 in order.
func IsList(c Container) bool {
	if m, ok := c.(*Map); ok {
		return m.IsList()
	}

	for i, k := range c.Keys() {
		if n, ok := k.(int); !ok || n != i {
			return false
		}
	}

	return true
}
