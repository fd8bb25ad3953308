package charts

import (
	"math"
	"strconv"
)

// Formatter turns the value displayed by a Counter into text.
type Formatter func(float64) string

// Compact shows millions as "1.2M", thousands as "12K" and the rest as an
// integer.
func Compact(n float64) string {
	switch {
	case n >= 1_000_000:
		return fixed(n/1_000_000, 1) + "M"
	case n >= 1_000:
		return fixed(n/1_000, 0) + "K"
	default:
		return fixed(n, 0)
	}
}

// Percent formats values as percentages with one decimal. When sign is set,
// positive values get a leading "+".
func Percent(sign bool) Formatter {
	return func(v float64) string {
		str := fixed(v, 1) + "%"
		if sign && v > 0 {
			str = "+" + str
		}
		return str
	}
}

func Fixed(digits int, suffix string) Formatter {
	return func(v float64) string {
		return fixed(v, digits) + suffix
	}
}

// fixed rounds half away from zero before formatting.
func fixed(v float64, digits int) string {
	if digits < 0 {
		digits = 0
	}
	if isFinite(v) {
		pow := math.Pow(10, float64(digits))
		if r := math.Round(v*pow) / pow; isFinite(r) {
			v = r
		}
	}
	str := strconv.FormatFloat(v, 'f', digits, 64)
	if len(str) > 1 && str[0] == '-' && isZeroString(str[1:]) {
		str = str[1:]
	}
	return str
}

func isZeroString(str string) bool {
	for _, c := range str {
		if c != '0' && c != '.' {
			return false
		}
	}
	return true
}
