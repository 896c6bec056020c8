package words

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/usherd/usher/internal/text"
)

// ToNumber parses a normalized English number phrase into an integer
// via magnitude-group decomposition. The word "and" is ignored as
// filler ("one thousand four hundred and eleven"). Magnitude keywords
// must appear in strictly decreasing order; ascending or repeated
// magnitudes fail with MalformedGroupError rather than mis-summing.
func ToNumber(phrase string) (int64, error) {
	fields := strings.Fields(strings.ToLower(phrase))
	ws := fields[:0]
	for _, w := range fields {
		if w != "and" {
			ws = append(ws, w)
		}
	}
	if len(ws) == 0 {
		return 0, ErrEmptyInput
	}

	var total int64
	prevMagnitude := int64(0) // 0 means no group closed yet
	var group []string

	flush := func(magnitude int64) error {
		if prevMagnitude != 0 && magnitude >= prevMagnitude {
			return &MalformedGroupError{Phrase: phrase}
		}
		prevMagnitude = magnitude
		if len(group) == 0 {
			return &ParseError{Phrase: phrase, Reason: "magnitude word with nothing counting it"}
		}
		n, err := parseGroup(group)
		if err != nil {
			return err
		}
		total += n * magnitude
		group = group[:0]
		return nil
	}

	for _, w := range ws {
		if magnitude, ok := groupMagnitude[w]; ok {
			if err := flush(magnitude); err != nil {
				return 0, err
			}
		} else {
			group = append(group, w)
		}
	}

	// The keywordless remainder is the implicit ones group.
	if len(group) > 0 {
		if err := flush(1); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// parseGroup resolves one magnitude group's words to its counting
// value. A group is either "<n> hundred [<tens/ones>]" or bare
// tens/ones.
func parseGroup(ws []string) (int64, error) {
	for i, w := range ws {
		if w != "hundred" {
			continue
		}
		if i == 0 {
			return 0, &ParseError{Phrase: strings.Join(ws, " "), Reason: "hundred with nothing counting it"}
		}
		n, err := onesValue(ws[:i])
		if err != nil {
			return 0, err
		}
		rest, err := tensAndOnes(ws[i+1:])
		if err != nil {
			return 0, err
		}
		return n*100 + rest, nil
	}
	return tensAndOnes(ws)
}

// tensAndOnes resolves the sub-hundred remainder of a group: a tens
// word optionally followed by a ones word (added, not multiplied), or
// exactly one ones/teens word.
func tensAndOnes(ws []string) (int64, error) {
	if len(ws) == 0 {
		return 0, nil
	}
	if t, ok := tens[ws[0]]; ok {
		if len(ws) == 1 {
			return t, nil
		}
		o, err := onesValue(ws[1:])
		if err != nil {
			return 0, err
		}
		return t + o, nil
	}
	return onesValue(ws)
}

// onesValue looks up a ones/teens word. Multi-word input joins to a
// single lookup key, so anything but one word fails as unknown.
func onesValue(ws []string) (int64, error) {
	key := strings.Join(ws, " ")
	if n, ok := ones[key]; ok {
		return n, nil
	}
	return 0, &InvalidWordError{Word: key}
}

// Parse interprets free text as a number. These might be complex ("one
// thousand four hundred and eleven"), simple ("seven"), signed ("minus
// six"), fractional ("one point eight"), or literal ("42", "3.14";
// only when the input contains no whitespace). A nil error means the
// returned value is the number described; any other text yields an
// error the caller should treat as "not a number".
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyInput
	}

	// Literal fast path: anything containing whitespace goes through
	// the word grammar even if each piece looks numeric.
	if !strings.ContainsAny(s, " \t\n\r") {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return float64(n), nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
	}

	normalized := text.NormalizeWords(s)
	slog.Debug("parsing number phrase", "phrase", normalized)
	if normalized == "" {
		return 0, ErrEmptyInput
	}

	sign := 1.0
	for _, neg := range []string{"minus ", "negative "} {
		if strings.HasPrefix(normalized, neg) {
			normalized = normalized[len(neg):]
			sign = -1.0
			break
		}
	}

	if integer, fraction, found := strings.Cut(normalized, " point "); found {
		v, err := parsePointed(integer, fraction)
		if err != nil {
			slog.Debug("number phrase rejected", "phrase", normalized, "error", err)
			return 0, err
		}
		return sign * v, nil
	}

	n, err := ToNumber(normalized)
	if err != nil {
		slog.Debug("number phrase rejected", "phrase", normalized, "error", err)
		return 0, err
	}
	return sign * float64(n), nil
}

// parsePointed assembles "<integer> point <digit words...>". Each
// fractional word must be a single digit 0-9; anything else fails the
// whole parse.
func parsePointed(integer, fraction string) (float64, error) {
	whole, err := Parse(integer)
	if err != nil {
		return 0, fmt.Errorf("integer part %q: %w", integer, err)
	}

	var digits strings.Builder
	for _, dw := range strings.Fields(fraction) {
		d, err := ToNumber(dw)
		if err != nil {
			return 0, fmt.Errorf("fractional digit %q: %w", dw, err)
		}
		if d < 0 || d > 9 {
			return 0, &ParseError{Phrase: fraction, Reason: dw + " is not a single digit"}
		}
		digits.WriteByte(byte('0' + d))
	}
	if digits.Len() == 0 {
		return 0, &ParseError{Phrase: fraction, Reason: "no fractional digits"}
	}

	v, err := strconv.ParseFloat(fmt.Sprintf("%d.%s", int64(whole), digits.String()), 64)
	if err != nil {
		return 0, &ParseError{Phrase: integer + " point " + fraction, Reason: err.Error()}
	}
	return v, nil
}
