package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLetters(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"1a2b3c4d", "abcd"},
		{" a b c d ", "abcd"},
		{"don't", "dont"},
		{"", ""},
		{"1234", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToLetters(tt.in), "input %q", tt.in)
	}
}

func TestToAlphanumeric(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{" 1a2b3c4d ", "1a2b3c4d"},
		{" a b c d ", "abcd"},
		{"x-ray!", "xray"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToAlphanumeric(tt.in), "input %q", tt.in)
	}
}

func TestStripTo(t *testing.T) {
	assert.Equal(t, "aba", StripTo("abcba", "ab"))
	assert.Equal(t, "", StripTo("abc", ""))
}

func TestNormalizeWords(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Forty Two", "forty two"},
		{"  one,  two!  ", "one two"},
		{"3.14", ""},
		{"play Shape of You", "play shape of you"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeWords(tt.in), "input %q", tt.in)
	}
}
