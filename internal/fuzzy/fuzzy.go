// Package fuzzy provides edit-distance matching for typo suggestions on
// unknown option names.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher scores candidate names against a mistyped input.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for one-character inputs
	}
}

// Match is a scored candidate.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the strongest candidate, or "" when nothing is close
// enough to be a plausible typo. Dash prefixes on candidates are ignored
// during comparison but preserved in the returned value.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns all candidates within the distance budget, best first.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	var matches []Match
	input = strings.ToLower(input)

	for _, candidate := range candidates {
		name := strings.ToLower(strings.TrimLeft(candidate, "-"))
		if name == input {
			continue // exact matches are not typos
		}

		distance := levenshtein(input, name)
		if distance <= m.maxDistance {
			matches = append(matches, Match{
				Value:    candidate,
				Distance: distance,
				Score:    m.score(input, name, distance),
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// score folds edit distance, shared prefix and length similarity into a
// single quality figure.
func (m *Matcher) score(input, candidate string, distance int) float64 {
	maxLen := len(input)
	if len(candidate) > maxLen {
		maxLen = len(candidate)
	}
	if maxLen == 0 {
		return 1.0
	}

	editScore := 1.0 - float64(distance)/float64(maxLen)

	prefixBonus := 0.0
	if prefixLen := commonPrefixLength(input, candidate); prefixLen > 0 {
		shorter := len(input)
		if len(candidate) < shorter {
			shorter = len(candidate)
		}
		prefixBonus = float64(prefixLen) / float64(shorter) * 0.3
	}

	lengthDiff := len(input) - len(candidate)
	if lengthDiff < 0 {
		lengthDiff = -lengthDiff
	}
	lengthBonus := (1.0 - float64(lengthDiff)/float64(maxLen)) * 0.2

	score := editScore + prefixBonus + lengthBonus
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// levenshtein computes edit distance with a rolling two-row table.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			deletion := prev[j] + 1
			insertion := curr[j-1] + 1
			substitution := prev[j-1] + cost

			best := deletion
			if insertion < best {
				best = insertion
			}
			if substitution < best {
				best = substitution
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func commonPrefixLength(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// FindBestOption is the convenience entry point used by the parser's error
// path: one-shot matching with the given distance budget.
func FindBestOption(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, candidates)
}
