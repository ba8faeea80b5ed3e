// Package wildcard compiles parameterized key path patterns and uses them to
// remap whole families of key paths at once.
//
// An input pattern names a parameter with a whole segment such as %x%:
//
//	static.%x%.%y%
//
// Expanding it against a container yields every concrete key path whose
// parameter positions run over the keys present at that depth. An output
// pattern references the same parameters, possibly spliced into literal text
// (prefix_%x%_suffix), and Substitute rewrites a concrete input path into
// the corresponding output path.
//
// A literal % inside a segment is written %%.
package wildcard
