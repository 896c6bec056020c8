// Package words converts English number phrases to and from numeric
// values: "forty two" <-> 42, "minus four point seven eight nine" <->
// -4.789. The conversion guarantees a numeric round trip (formatting a
// value and parsing it back yields the value), not a textual one:
// alternate phrasings of the same number parse to the same value.
package words

import "errors"

// ones maps digit words to their value when they appear in the
// relative "ones" place of a group. The teens belong here too: they are
// the odd case where numbers that might otherwise be called "ten one",
// "ten two" have their own single-word names. "zero" is included so
// that fractional digits and the bare phrase "zero" parse; the 0-99
// tables below render it back.
var ones = map[string]int64{
	"zero":  0,
	"one":   1, "eleven": 11,
	"two":   2, "twelve": 12,
	"three": 3, "thirteen": 13,
	"four":  4, "fourteen": 14,
	"five":  5, "fifteen": 15,
	"six":   6, "sixteen": 16,
	"seven": 7, "seventeen": 17,
	"eight": 8, "eighteen": 18,
	"nine":  9, "nineteen": 19,
}

// tens maps words for the tens place within a group.
var tens = map[string]int64{
	"ten":     10,
	"twenty":  20,
	"thirty":  30,
	"forty":   40,
	"fifty":   50,
	"sixty":   60,
	"seventy": 70,
	"eighty":  80,
	"ninety":  90,
}

// groupSentinel is the magnitude assigned to the overflow word: large
// enough that any phrase using it dwarfs the real magnitudes.
const groupSentinel = int64(1) << 62

// groupMagnitude names each magnitude group. "brazillion" is the
// overflow sentinel for absurdly large quantities.
var groupMagnitude = map[string]int64{
	"thousand":   1_000,
	"million":    1_000_000,
	"billion":    1_000_000_000,
	"trillion":   1_000_000_000_000,
	"brazillion": groupSentinel,
}

// smallWords renders 0-19, including the fractional digits of a
// formatted number.
var smallWords = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

// tensWords renders the tens place for 20-90; index is value/10.
var tensWords = [...]string{
	2: "twenty", 3: "thirty", 4: "forty", 5: "fifty",
	6: "sixty", 7: "seventy", 8: "eighty", 9: "ninety",
}

// ErrEmptyInput reports blank or absent input.
var ErrEmptyInput = errors.New("empty input")

// InvalidWordError reports a word that is not in the number lexicon.
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	return "not a number word: " + e.Word
}

// MalformedGroupError reports magnitude groups that are not strictly
// decreasing, e.g. "two thousand three million".
type MalformedGroupError struct {
	Phrase string
}

func (e *MalformedGroupError) Error() string {
	return "magnitude groups out of order in " + e.Phrase
}

// ParseError reports a number phrase whose shape is wrong in some
// other way, e.g. a magnitude word with nothing counting it.
type ParseError struct {
	Phrase string
	Reason string
}

func (e *ParseError) Error() string {
	return "cannot parse " + e.Phrase + ": " + e.Reason
}
