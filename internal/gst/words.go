package gst

import (
	"math"
	"strings"
)

var (
	wordsOnes = []string{
		"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
		"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
		"Sixteen", "Seventeen", "Eighteen", "Nineteen",
	}
	wordsTens = []string{
		"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
		"Eighty", "Ninety",
	}
	wordsScale = []string{
		"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion",
		"Quintillion",
	}
)

// threeDigitWords converts 0..999 to words, "" for 0.
func threeDigitWords(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, wordsOnes[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, wordsTens[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, wordsOnes[n])
	}
	return strings.Join(parts, " ")
}

// integerWords converts a non-negative integer to short-scale words.
func integerWords(n int64) string {
	if n == 0 {
		return ""
	}
	var groups []int
	for n > 0 {
		groups = append(groups, int(n%1000))
		n /= 1000
	}
	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		chunk := threeDigitWords(g)
		if wordsScale[i] != "" {
			chunk += " " + wordsScale[i]
		}
		parts = append(parts, chunk)
	}
	return strings.Join(parts, " ")
}

// AmountInWords renders a non-negative rupee amount as words for the
// invoice footer, e.g. 1234.50 -> "One Thousand Two Hundred Thirty Four
// Rupees and Fifty Paise Only".
//
// Two quirks of the upstream invoice format are preserved deliberately:
// "Rupees" is never singularized, and grouping is short-scale
// Thousand/Million/Billion rather than the lakh/crore convention.
func AmountInWords(amount float64) string {
	amount = coerce(amount)
	if amount < 0 {
		amount = 0
	}
	// Clamp so the int64 conversion below stays defined. One quintillion
	// rupees is the largest grouping the scale table names.
	if amount > 1e18 {
		amount = 1e18
	}

	rupees := int64(math.Floor(amount))
	paise := int64(math.Round((amount - math.Floor(amount)) * 100))
	if paise >= 100 {
		rupees++
		paise -= 100
	}

	if rupees == 0 && paise == 0 {
		return "Zero Rupees Only"
	}

	var parts []string
	if w := integerWords(rupees); w != "" {
		parts = append(parts, w+" Rupees")
	}
	if w := integerWords(paise); w != "" {
		parts = append(parts, w+" Paise")
	}
	return strings.Join(parts, " and ") + " Only"
}
