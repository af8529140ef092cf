package application

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v with two decimals, "." as the thousands separator
// and "," as the decimal separator (1234567.891 -> "1.234.567,89").
func FormatNumber(v float64) string {
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// FormatResult renders the two-line summary shown to users
func FormatResult(r Result) string {
	return "Distance: " + FormatNumber(r.DistanceKm) + " km\n" +
		"Velocity: " + FormatNumber(r.VelocityKmS) + " km/s"
}
