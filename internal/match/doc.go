// Package match ranks container keys by similarity to a key that was not
// found, so that missing-element errors can say "did you mean ...".
//
// Key functions:
//   - NormalizeIdent: folds case, separators and CamelCase for comparison
//   - Levenshtein: computes edit distance between strings
//   - RankKeys: ranks sibling keys against a missing one
//   - Suggest: returns the best few ranked keys
package match
