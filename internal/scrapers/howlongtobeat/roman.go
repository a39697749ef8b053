package howlongtobeat

import (
	"regexp"
	"unicode"
)

var romanNumerals = []string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

// any script's decimal digits, ex. "Kings Quest ２" is also a sequel.
var decimalNumber = regexp.MustCompile(`\p{Nd}+`)

func hasNumber(title string) bool {
	return decimalNumber.MatchString(title)
}

// digitValue returns the value of a decimal digit of any script. Every block
// of decimal digits is a run of 0 to 9, possibly several runs back to back.
func digitValue(r rune) int {
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return int(r-zero) % 10
}

// ToRoman replaces the first decimal number in the title with its roman
// numeral, ex. "Kings Quest 2" -> "Kings Quest II".
//
// Only 1 to 10 are converted. Anything else is assumed to be part of the
// name (ex. "1701 A.D.") and the title is returned unchanged.
func ToRoman(title string) string {
	loc := decimalNumber.FindStringIndex(title)
	if loc == nil {
		return title
	}
	number := 0
	for _, r := range title[loc[0]:loc[1]] {
		number = number*10 + digitValue(r)
		if number >= len(romanNumerals) {
			return title
		}
	}
	if number < 1 {
		return title
	}
	return title[:loc[0]] + romanNumerals[number] + title[loc[1]:]
}
