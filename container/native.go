package container

import (
	"cmp"
	"maps"
	"slices"
)

// Native adapts a map[string]any to Container. It shares the underlying map,
// so writes through the adapter are visible to the owner of the map.
//
// Integer keys are stored under their decimal string form. Keys are
// enumerated in a stable order: integer-like keys first in numeric order, then
// the remaining keys lexically. Nested Native values are stored unwrapped so
// the map stays a plain map[string]any tree.
type Native map[string]any

var (
	_ Container = Native(nil)
	_ Cloner    = Native(nil)
	_ Emptier   = Native(nil)
)

// Has reports whether key is present.
func (n Native) Has(key any) bool {
	s, ok := nativeKey(key)
	if !ok {
		return false
	}

	_, ok = n[s]

	return ok
}

// Get returns the value stored under key.
func (n Native) Get(key any) (any, bool) {
	s, ok := nativeKey(key)
	if !ok {
		return nil, false
	}

	v, ok := n[s]

	return v, ok
}

// Set stores value under key. It panics on a key that is neither a string
// nor an integer.
func (n Native) Set(key, value any) {
	s := KeyString(mustKey(key))

	if nv, ok := value.(Native); ok {
		value = map[string]any(nv)
	}

	n[s] = value
}

// Delete removes key.
func (n Native) Delete(key any) {
	if s, ok := nativeKey(key); ok {
		delete(n, s)
	}
}

// Keys returns the normalised keys in stable order.
func (n Native) Keys() []any {
	raw := slices.Collect(maps.Keys(n))

	keys := make([]any, len(raw))
	for i, s := range raw {
		keys[i], _ = NormalizeKey(s)
	}

	slices.SortFunc(keys, compareKeys)

	return keys
}

// Clone returns a shallow copy backed by a new map.
func (n Native) Clone() Container {
	if n == nil {
		return Native{}
	}

	return Native(maps.Clone(map[string]any(n)))
}

// Empty returns a new empty Native.
func (n Native) Empty() Container {
	return Native{}
}

func nativeKey(key any) (string, bool) {
	k, ok := NormalizeKey(key)
	if !ok {
		return "", false
	}

	return KeyString(k), true
}

func compareKeys(a, b any) int {
	ai, aInt := a.(int)
	bi, bInt := b.(int)

	switch {
	case aInt && bInt:
		return cmp.Compare(ai, bi)
	case aInt:
		return -1
	case bInt:
		return 1
	}

	return cmp.Compare(a.(string), b.(string))
}
