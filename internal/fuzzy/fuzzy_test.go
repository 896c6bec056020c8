package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"play", "play", 100},
		{"PLAY", "play", 100},
		{"", "", 100},
		{"play", "", 0},
		{"plays", "play", 89},  // 2*4/9
		{"pla", "play", 86},    // 2*3/7
		{"stop", "shop", 75},   // 2*3/8
		{"music", "muzik", 60}, // 2*3/10
		{"aaaa", "aaaaaa", 80}, // 2*4/10, exactly at the threshold
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Ratio(tt.a, tt.b), "Ratio(%q, %q)", tt.a, tt.b)
	}
}

func TestMatchesThresholdIsStrict(t *testing.T) {
	// Similarity of exactly 80 must fail: the comparison is strictly
	// greater-than.
	assert.Equal(t, 80, Ratio("aaaa", "aaaaaa"))
	assert.False(t, Matches("aaaa", "aaaaaa"))

	// Similarity of 81 must pass: 13 common characters out of 16+16
	// gives 2*13/32 = 81.25, rounded to 81.
	a := "aaaaaaaaaaaaaaaa" // 16 a's
	b := "aaaaaaaaaaaaabbb" // 13 a's, 3 b's
	assert.Equal(t, 81, Ratio(a, b))
	assert.True(t, Matches(a, b))
}

func TestMatchesVocabulary(t *testing.T) {
	assert.True(t, Matches("play", "play"))
	assert.True(t, Matches("plays", "play"))
	assert.True(t, Matches("playe", "play"))
	assert.False(t, Matches("stap", "stop")) // 75, below threshold
	assert.False(t, Matches("pause", "play"))
	assert.False(t, Matches("on", "one")) // 80 exactly
}
