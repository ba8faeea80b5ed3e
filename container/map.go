package container

import (
	"fmt"
	"slices"
)

// Map is an insertion-ordered map from keys to values.
// The zero value is an empty map ready to use.
type Map struct {
	keys   []any
	values map[any]any
}

var (
	_ Container = (*Map)(nil)
	_ Cloner    = (*Map)(nil)
	_ Emptier   = (*Map)(nil)
)

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{keys: []any{}, values: map[any]any{}}
}

// Of builds a Map from alternating keys and values.
// It panics on an odd number of arguments or an invalid key, like the
// Must-style constructors of the standard library.
func Of(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("container: Of called with %d arguments, want key/value pairs", len(kv)))
	}

	m := NewMap()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i], kv[i+1])
	}

	return m
}

// ListOf builds a list-like Map with keys 0..len(values)-1.
func ListOf(values ...any) *Map {
	m := NewMap()
	for i, v := range values {
		m.Set(i, v)
	}

	return m
}

func (m *Map) init() {
	if m.values == nil {
		m.keys = []any{}
		m.values = map[any]any{}
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Has reports whether key is present.
func (m *Map) Has(key any) bool {
	k, ok := NormalizeKey(key)
	if !ok {
		return false
	}

	_, ok = m.values[k]

	return ok
}

// Get returns the value stored under key.
func (m *Map) Get(key any) (any, bool) {
	k, ok := NormalizeKey(key)
	if !ok {
		return nil, false
	}

	v, ok := m.values[k]

	return v, ok
}

// Set stores value under key. A new key is appended to the key order, an
// existing key keeps its position. Set panics on a key that is neither a
// string nor an integer.
func (m *Map) Set(key, value any) {
	k := mustKey(key)

	m.init()

	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}

	m.values[k] = value
}

// Delete removes key. Deleting an absent key is a no-op.
func (m *Map) Delete(key any) {
	k, ok := NormalizeKey(key)
	if !ok {
		return
	}

	if _, ok := m.values[k]; !ok {
		return
	}

	delete(m.values, k)

	if i := slices.Index(m.keys, k); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []any {
	return slices.Clone(m.keys)
}

// Clone returns a shallow copy: nested containers are shared.
func (m *Map) Clone() Container {
	out := NewMap()
	for _, k := range m.keys {
		out.keys = append(out.keys, k)
		out.values[k] = m.values[k]
	}

	return out
}

// Empty returns a new empty Map.
func (m *Map) Empty() Container {
	return NewMap()
}

// IsList reports whether the keys are exactly 0..Len()-1 in order.
func (m *Map) IsList() bool {
	for i, k := range m.keys {
		if n, ok := k.(int); !ok || n != i {
			return false
		}
	}

	return true
}

// String renders the map in a compact literal form for debugging.
func (m *Map) String() string {
	return fmt.Sprint(ToNative(m))
}
