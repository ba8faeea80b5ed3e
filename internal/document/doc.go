// Package document reads and writes JSON, YAML and TOML documents as ordered
// containers.
//
// Objects decode to *container.Map with keys in document order, and arrays to
// list-like Maps keyed 0..n-1. Integral numbers decode to int.
//
// TOML tables keep their document order, except tables nested in arrays of
// tables, whose keys are sorted. TOML output is always sorted.
package document
