// Package overwrite packages key path copies as reusable strategies.
//
// An Overwriter copies values from an input container into an existing output
// container. Strategies:
//   - AllKeys: every top-level entry of the input
//   - Pairs: an ordered list of input/output key path pairs
//   - PathMap: a keypath.PathMap, each input to one or more outputs
//   - Wildcard: a keypath.PathMap of wildcard patterns
//   - Composite: several overwriters run in order
//
// Key paths are normalized when a strategy is built, so the separator and
// escape character are fixed then. Only the per-operation options (Default,
// ThrowOnMissing, ThrowOnCollision, ArrayPrototype, OmitNonExisting) may be
// overridden per call.
//
// A Transformer creates a new output and overwrites it. The Registry maps
// strategy names to creators for callers that pick strategies by name, such
// as mapping files.
package overwrite
