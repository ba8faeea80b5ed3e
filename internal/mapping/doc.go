// Package mapping provides the mapping file schema, parsing, validation and
// the construction of overwriters from mapping files.
//
// A mapping file is the persisted form of a remap: a key path map with the
// options used to apply it.
//
// # Schema Overview
//
//	version: "1"
//	separator: "."        # key separator, default "."
//	escape: "\\"          # escape character, "" disables escaping
//	wildcard: true        # enable %name% parameters
//	copy_all: false       # copy every top-level entry first
//	options:
//	  omit_non_existing: true
//	  throw_on_missing: false
//	  throw_on_collision: false
//	  default: null
//	map:
//	  static.%x%.%y%: s.%y%.%x%
//	  users.0.id: [user.id, owner.id]
//
// Entries are applied in file order. YAML, JSON and TOML files are accepted;
// the format follows the file extension.
//
// # Validation
//
// Validate reports problems as diagnostics: errors (invalid options, empty
// map, missing outputs, invalid wildcard patterns) and warnings (duplicate
// inputs, outputs written by several entries, "%" in inputs while wildcard
// mode is off).
package mapping
