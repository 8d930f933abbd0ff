package utils

import "strings"

var ones = []string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN",
	"SIXTEEN", "SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tens = []string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
}

// NumberToWords converts the integer amount of a bill into English words.
// Supports 0-999; anything at or above 1000 gets the LARGE NUMBER sentinel.
// The cutoff is a documented limitation of the conversion, kept until the
// required numbering scheme (plain vs lakh/crore) is settled.
func NumberToWords(num int) string {
	if num == 0 {
		return "ZERO ONLY"
	}
	if num < 0 || num >= 1000 {
		return "LARGE NUMBER"
	}
	return words(num) + " ONLY"
}

func words(num int) string {
	switch {
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	default:
		remainder := num % 100
		if remainder == 0 {
			return ones[num/100] + " HUNDRED"
		}
		return ones[num/100] + " HUNDRED " + words(remainder)
	}
}
