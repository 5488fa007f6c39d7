package gst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Zero Rupees Only"},
		{"whole_hundred", 100, "One Hundred Rupees Only"},
		{"rupees_and_paise", 1.50, "One Rupees and Fifty Paise Only"},
		{"thousand", 1234.50, "One Thousand Two Hundred Thirty Four Rupees and Fifty Paise Only"},
		{"teens", 17, "Seventeen Rupees Only"},
		{"paise_only", 0.75, "Seventy Five Paise Only"},
		{"single_paisa", 0.01, "One Paise Only"},
		{"million", 2500000, "Two Million Five Hundred Thousand Rupees Only"},
		{"billion", 1000000000, "One Billion Rupees Only"},
		{"trillion", 1000000000000, "One Trillion Rupees Only"},
		{"quadrillion", 2500000000000000, "Two Quadrillion Five Hundred Trillion Rupees Only"},
		{"skip_zero_group", 1000001, "One Million One Rupees Only"},
		{"ninety_nine", 99.99, "Ninety Nine Rupees and Ninety Nine Paise Only"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AmountInWords(tc.amount))
		})
	}
}

func TestAmountInWords_PaiseRounding(t *testing.T) {
	// float noise just under a whole paisa still rounds to it
	assert.Equal(t, "Fifty Six Rupees Only", AmountInWords(55.999999999))
	assert.Equal(t, "Two Rupees and Sixty Seven Paise Only", AmountInWords(2.669999999))
}

func TestAmountInWords_DefensiveInput(t *testing.T) {
	assert.Equal(t, "Zero Rupees Only", AmountInWords(math.NaN()))
	assert.Equal(t, "Zero Rupees Only", AmountInWords(-12.34))
}

func TestAmountInWords_HugeAmounts(t *testing.T) {
	// amounts past every named grouping saturate instead of failing
	assert.Equal(t, "One Quintillion Rupees Only", AmountInWords(1e18))
	assert.Equal(t, "One Quintillion Rupees Only", AmountInWords(1e30))
	assert.Equal(t, "Zero Rupees Only", AmountInWords(math.Inf(1)))
}
