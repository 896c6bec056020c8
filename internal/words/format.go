package words

import "math"

// fracEpsilon stops fractional digit peeling once the residual is
// effectively zero.
const fracEpsilon = 1e-10

// maxFracDigits bounds fractional rendering at the significant digits
// a float64 can carry.
const maxFracDigits = 15

// magnitudes drives integer formatting, largest first so the biggest
// applicable magnitude always wins.
var magnitudes = []struct {
	value int64
	word  string
}{
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

// FormatInt renders a signed integer as English words.
func FormatInt(n int64) string {
	if n < 0 {
		return "minus " + FormatInt(-n)
	}

	for _, m := range magnitudes {
		if n >= m.value {
			count := n / m.value
			s := FormatInt(count) + " " + m.word
			if remainder := n - count*m.value; remainder > 0 {
				s += " " + FormatInt(remainder)
			}
			return s
		}
	}

	if n >= 100 {
		hundreds := n / 100
		s := FormatInt(hundreds) + " hundred"
		if remainder := n - hundreds*100; remainder > 0 {
			s += " " + FormatInt(remainder)
		}
		return s
	}

	if n >= 20 {
		s := tensWords[n/10]
		if remainder := n % 10; remainder > 0 {
			s += " " + smallWords[remainder]
		}
		return s
	}

	return smallWords[n]
}

// Format renders a signed, optionally fractional value as English
// words. The fractional part is spelled digit by digit after the word
// "point": 42.01234 becomes "forty two point zero one two three four".
// The rendering round-trips numerically through Parse; it makes no
// promise of matching any particular alternate phrasing.
func Format(value float64) string {
	s := ""
	if math.Signbit(value) {
		s = "minus "
		value = -value
	}

	intPart := int64(value)
	s += FormatInt(intPart)

	if float64(intPart) == value {
		return s
	}

	s += " point"
	for i := 1; i <= maxFracDigits; i++ {
		shifted := value * math.Pow(10, float64(i))
		s += " " + smallWords[int64(shifted)%10]
		if math.Abs(shifted-math.Trunc(shifted)) < fracEpsilon {
			break
		}
	}
	return s
}
