package domain

import (
	"math"
	"strconv"
)

// FormatSize renders n bytes scaled to unit, e.g. "1.5 MiB".
//
// Bytes and the first unit are truncated to whole numbers. Larger units are
// rounded to one decimal place and printed without trailing zeros.
func FormatSize(n int64, unit Unit, base Base) string {
	var value string
	if unit <= Kilo {
		divisor := int64(1)
		if unit == Kilo {
			divisor = int64(base)
		}
		value = strconv.FormatInt(n/divisor, 10)
	} else {
		scaled := float64(n) / math.Pow(float64(base), float64(unit))
		value = FormatDecimal(scaled, 1)
	}
	return value + " " + unit.Label(base)
}

// RoundDecimal rounds f to places decimal places. Values exactly halfway
// between two candidates round to the even one. Negative zero becomes 0.
func RoundDecimal(f float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(f, 'f', places, 64), 64)
	if err != nil || rounded == 0 {
		return 0
	}
	return rounded
}

// FormatDecimal rounds f like RoundDecimal and prints the shortest
// representation of the result.
func FormatDecimal(f float64, places int) string {
	return strconv.FormatFloat(RoundDecimal(f, places), 'f', -1, 64)
}
