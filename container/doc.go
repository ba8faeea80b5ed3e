// Package container provides the uniform keyed-access capability used by the
// key path engine.
//
// Key types:
//   - Container: the Has/Get/Set/Delete/Keys capability set
//   - Map: insertion-ordered map, the default container
//   - Native: adapter over map[string]any as produced by encoding/json
//
// Keys are strings or ints. A string holding a canonical decimal integer
// ("0", "-3", not "01" or "+1") is the same key as that integer, so "users.0"
// reaches index 0 of a list-like Map.
package container
