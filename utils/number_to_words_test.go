package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		name string
		num  int
		want string
	}{
		{"zero", 0, "ZERO ONLY"},
		{"single digit", 7, "SEVEN ONLY"},
		{"teen", 14, "FOURTEEN ONLY"},
		{"round tens", 40, "FORTY ONLY"},
		{"tens with ones", 76, "SEVENTY SIX ONLY"},
		{"round hundred", 300, "THREE HUNDRED ONLY"},
		{"hundred with remainder", 512, "FIVE HUNDRED TWELVE ONLY"},
		{"max supported", 999, "NINE HUNDRED NINETY NINE ONLY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumberToWords(tt.num))
		})
	}
}

func TestNumberToWordsLargeNumberSentinel(t *testing.T) {
	for _, num := range []int{1000, 1500, 250000} {
		got := NumberToWords(num)
		assert.True(t, strings.Contains(got, "LARGE NUMBER"), "NumberToWords(%d) = %q", num, got)
	}
}

func TestNumberToWordsNegative(t *testing.T) {
	assert.Contains(t, NumberToWords(-5), "LARGE NUMBER")
}
