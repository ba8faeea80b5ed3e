package match

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Candidate is an existing key considered as a replacement for a missing one.
type Candidate struct {
	Key string

	// Scoring components
	NameScore  float64 // similarity of the normalized keys (0-1)
	Subsequent bool    // the missing key is a case-insensitive subsequence of Key

	// Score used for ranking (higher is better)
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Thresholds for suggesting a key.
const (
	// DefaultMinScore is the minimum score for a key to be suggested.
	DefaultMinScore = 0.5
	// DefaultMaxSuggestions is the number of keys reported in errors.
	DefaultMaxSuggestions = 3
	// subsequenceScore is the floor score of a key that contains the missing
	// key as a subsequence, e.g. "db" within "database".
	subsequenceScore = 0.75
)

// RankKeys scores every key against target and returns them sorted by score
// (descending), then by key for determinism. The target itself is skipped.
func RankKeys(target string, keys []string) CandidateList {
	subsequent := make(map[string]bool)
	for _, r := range fuzzy.RankFindFold(target, keys) {
		subsequent[r.Target] = true
	}

	candidates := make(CandidateList, 0, len(keys))

	for _, key := range keys {
		if key == target {
			continue
		}

		c := Candidate{
			Key:        key,
			NameScore:  KeySimilarity(target, key),
			Subsequent: subsequent[key],
		}

		c.Score = c.NameScore
		if c.Subsequent && c.Score < subsequenceScore {
			c.Score = subsequenceScore
		}

		candidates = append(candidates, c)
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to n keys similar to target, best first.
func Suggest(target string, keys []string, n int) []string {
	if target == "" || len(keys) == 0 || n <= 0 {
		return nil
	}

	ranked := RankKeys(target, keys).AboveThreshold(DefaultMinScore).Top(n)
	if len(ranked) == 0 {
		return nil
	}

	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.Key
	}

	return out
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Key < c[j].Key
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}
