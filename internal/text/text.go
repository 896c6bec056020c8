// Package text provides character-class filtering and whitespace
// normalization for utterance words. ASCII only, no locale awareness.
package text

import "strings"

// Alphabets used when stripping words down for matching.
const (
	lower  = "abcdefghijklmnopqrstuvwxyz"
	upper  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits = "0123456789"

	// Letters is the letters-only alphabet.
	Letters = lower + upper

	// Alphanumeric is the letters-and-digits alphabet.
	Alphanumeric = lower + upper + digits
)

// StripTo retains only the characters of s that appear in alphabet.
func StripTo(s, alphabet string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) >= 0 {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// ToLetters removes everything but letters from s.
func ToLetters(s string) string {
	return StripTo(s, Letters)
}

// ToAlphanumeric removes everything but letters and digits from s.
func ToAlphanumeric(s string) string {
	return StripTo(s, Alphanumeric)
}

// NormalizeWords strips each whitespace-delimited piece of s down to
// lower-cased letters, collapsing runs of whitespace. Empty pieces are
// dropped, so the result joins back with single spaces.
func NormalizeWords(s string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		if w := strings.ToLower(ToLetters(f)); w != "" {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
