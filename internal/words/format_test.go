package words

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInt(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{1, "one"},
		{11, "eleven"},
		{20, "twenty"},
		{30, "thirty"},
		{42, "forty two"},
		{99, "ninety nine"},
		{100, "one hundred"},
		{101, "one hundred one"},
		// The hundreds suffix is the word "hundred"; a one-off
		// rendition used to emit "thousand" here.
		{142, "one hundred forty two"},
		{999, "nine hundred ninety nine"},
		{1000, "one thousand"},
		{1411, "one thousand four hundred eleven"},
		{2_000_003, "two million three"},
		{1_000_000, "one million"},
		{1_000_000_000, "one billion"},
		{2_000_000_000_000, "two trillion"},
		{-6, "minus six"},
		{-142, "minus one hundred forty two"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatInt(tt.n), "n=%d", tt.n)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{1, "one"},
		{1.8, "one point eight"},
		{-6, "minus six"},
		{-4.789, "minus four point seven eight nine"},
		{42.01234, "forty two point zero one two three four"},
		{30, "thirty"},
		{1_000_000, "one million"},
		{0.5, "zero point five"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.v), "v=%v", tt.v)
	}
}

func TestFormatFractionStopsAtSignificantDigits(t *testing.T) {
	// A fraction that never hits the epsilon must stop after 15 digits.
	s := Format(1.0 / 3.0)
	words := 0
	seen := false
	for _, w := range strings.Fields(s) {
		if seen {
			words++
		}
		if w == "point" {
			seen = true
		}
	}
	assert.True(t, seen, "expected a fractional part in %q", s)
	assert.LessOrEqual(t, words, 15, "rendered %q", s)
}
