// Package fuzzy scores approximate string equality for grammar matching.
//
// Ratio is the classic normalized edit similarity used by fuzzy string
// matchers: 2*LCS(a,b) / (len(a)+len(b)), scaled to 0-100. The grammar
// treats a word as matching a vocabulary target only when the score is
// strictly greater than MatchThreshold.
package fuzzy

import "strings"

// MatchThreshold is the similarity a word must strictly exceed to be
// considered a match.
const MatchThreshold = 80

// Ratio returns the normalized edit similarity of a and b in 0-100,
// rounded half away from zero. Comparison is case-insensitive.
func Ratio(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 100
	}
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	matched := 2 * lcs(a, b)
	// Round half away from zero, as the score is always non-negative.
	return (matched*100 + total/2) / total
}

// Matches reports whether word fuzzily matches target: Ratio strictly
// greater than MatchThreshold.
func Matches(word, target string) bool {
	return Ratio(word, target) > MatchThreshold
}

// lcs computes the length of the longest common subsequence of a and b
// with a two-row dynamic program.
func lcs(a, b string) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
