package words

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimplePhrases(t *testing.T) {
	tests := []struct {
		phrase string
		want   float64
	}{
		{"one", 1},
		{"seven", 7},
		{"zero", 0},
		{"ten", 10},
		{"thirteen", 13},
		{"forty two", 42},
		{"ninety nine", 99},
		{"one hundred", 100},
		{"two hundred six", 206},
		{"nineteen hundred", 1900},
		{"one thousand", 1000},
		{"one thousand four hundred eleven", 1411},
		{"two million three hundred thousand", 2_300_000},
		{"one billion", 1_000_000_000},
		{"three trillion", 3_000_000_000_000},
		{"one point eight", 1.8},
		{"minus six", -6},
		{"negative six", -6},
		{"minus four point seven eight nine", -4.789},
		{"forty two point zero one two three four", 42.01234},
		{"zero point five", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			got, err := Parse(tt.phrase)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseIsCaseAndPunctuationInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"Forty Two", 42},
		{"forty two!", 42},
		{"  twenty   seven  ", 27},
		{"MINUS six", -6},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.input)
	}
}

func TestParseLiteralFastPath(t *testing.T) {
	got, err := Parse("42")
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)

	got, err = Parse("3.14")
	require.NoError(t, err)
	assert.Equal(t, 3.14, got)

	got, err = Parse("-17")
	require.NoError(t, err)
	assert.Equal(t, -17.0, got)

	// Internal whitespace bypasses the literal path even when each
	// piece is numeric; the digits then strip to nothing.
	_, err = Parse("4 2")
	assert.Error(t, err)
}

func TestParseToleratesAndAsFiller(t *testing.T) {
	with, err := Parse("one thousand four hundred and eleven")
	require.NoError(t, err)

	without, err := Parse("one thousand four hundred eleven")
	require.NoError(t, err)

	assert.Equal(t, without, with)
	assert.Equal(t, 1411.0, with)
}

func TestParseRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   any
	}{
		{"unknown word", "banana", &InvalidWordError{}},
		{"unknown trailing ones", "forty banana", &InvalidWordError{}},
		{"two ones words", "two seven", &InvalidWordError{}},
		{"ascending magnitudes", "two thousand three million", &MalformedGroupError{}},
		{"repeated magnitude", "two thousand three thousand", &MalformedGroupError{}},
		{"bare magnitude word", "thousand", &ParseError{}},
		{"bare hundred", "hundred", &ParseError{}},
		{"bad fractional digit", "one point eleven", &ParseError{}},
		{"word fractional part", "one point banana", &InvalidWordError{}},
		// "one point" has no " point " marker (nothing follows), so the
		// whole phrase goes through the word grammar and "point" is
		// simply unknown there.
		{"missing fractional digits", "one point", &InvalidWordError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.phrase)
			require.Error(t, err)
			switch want := tt.want.(type) {
			case *InvalidWordError:
				assert.ErrorAs(t, err, &want)
			case *MalformedGroupError:
				assert.ErrorAs(t, err, &want)
			case *ParseError:
				assert.ErrorAs(t, err, &want)
			}
		})
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "!?.,"} {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrEmptyInput, "input %q", input)
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, 7, 10, 11, 15, 19, 20, 21, 30, 42, 99,
		100, 101, 110, 142, 999, 1000, 1001, 1411, 9999,
		10_000, 123_456, 999_999, 1_000_000, 2_000_003,
		999_999_999, 1_000_000_000, 87_654_321_098,
		999_999_999_999, 1_000_000_000_000, 5_000_000_000_001,
		-1, -42, -1411, -1_000_000,
	}

	for _, n := range values {
		phrase := FormatInt(n)
		got, err := ToNumber(phrase)
		if n < 0 {
			// ToNumber handles unsigned phrases; the sign prefix is
			// Parse's job.
			v, perr := Parse(phrase)
			require.NoError(t, perr, "phrase %q", phrase)
			got, err = int64(v), nil
		}
		require.NoError(t, err, "phrase %q", phrase)
		assert.Equal(t, n, got, "phrase %q", phrase)
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	values := []float64{
		0.5, 1.8, 4.789, 42.01234, 3.14159, -4.789, -0.25,
		100.001, 12345.678,
	}

	for _, v := range values {
		phrase := Format(v)
		got, err := Parse(phrase)
		require.NoError(t, err, "phrase %q", phrase)
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("Format/Parse round trip of %v: got %v via %q", v, got, phrase)
		}
	}
}

func TestToNumberOverflowSentinel(t *testing.T) {
	got, err := ToNumber("one brazillion")
	require.NoError(t, err)
	assert.Equal(t, int64(1)<<62, got)

	var malformed *MalformedGroupError
	_, err = ToNumber("one thousand two brazillion")
	require.Error(t, err)
	assert.True(t, errors.As(err, &malformed))
}
