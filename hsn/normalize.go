package hsn

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MinCodeLength is the shortest normalized code accepted into the table.
// Shorter fragments come from garbled or partial chapter cells.
const MinCodeLength = 4

var (
	nonCodeChars = regexp.MustCompile(`[^0-9A-Za-z]`)
	nonRateChars = regexp.MustCompile(`[^0-9.]`)
	// leadingNumber matches the longest numeric prefix, e.g. "5.5" out of "5.5.1".
	leadingNumber = regexp.MustCompile(`^[0-9]*\.?[0-9]*`)
	omittedMarker = regexp.MustCompile(`(?i)^\[?omitted`)
)

// NormalizeCode strips everything but ASCII letters and digits and uppercases
// the rest. It is idempotent.
func NormalizeCode(value string) string {
	return strings.ToUpper(nonCodeChars.ReplaceAllString(value, ""))
}

// SplitCodes splits a chapter/heading cell on commas and returns the
// normalized codes that are at least MinCodeLength long, in cell order.
func SplitCodes(cell string) []string {
	var codes []string
	for _, segment := range strings.Split(cell, ",") {
		code := NormalizeCode(segment)
		if len(code) < MinCodeLength {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// ParseRate converts a percentage cell into a number.
//
//	""      → 0
//	"Nil"   → 0
//	"18%"   → 18
//	"2.5%*" → 2.5
//	"abc"   → 0
func ParseRate(value string) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, "nil") {
		return 0
	}

	numeric := leadingNumber.FindString(nonRateChars.ReplaceAllString(trimmed, ""))
	rate, err := strconv.ParseFloat(numeric, 64)
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	return rate
}

// IsOmitted reports whether a description marks a withdrawn table entry,
// e.g. "[Omitted]" or "Omitted vide notification ...".
func IsOmitted(description string) bool {
	return omittedMarker.MatchString(strings.TrimSpace(description))
}
