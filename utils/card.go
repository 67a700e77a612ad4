package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// NormalizeCardNumber strips the spaces a user types between digit groups.
func NormalizeCardNumber(number string) string {
	return strings.ReplaceAll(strings.TrimSpace(number), " ", "")
}

// ValidCardNumber reports whether the normalized number is exactly 16 digits.
func ValidCardNumber(number string) bool {
	digits := NormalizeCardNumber(number)
	if len(digits) != 16 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidExpiryFormat reports whether the expiry matches MM/YY.
func ValidExpiryFormat(expiry string) bool {
	return expiryPattern.MatchString(expiry)
}

// ExpiryMonth parses the month part of an MM/YY expiry. The second result is
// false when the format is wrong or the month is outside 1-12.
func ExpiryMonth(expiry string) (int, bool) {
	if !ValidExpiryFormat(expiry) {
		return 0, false
	}
	month, err := strconv.Atoi(expiry[:2])
	if err != nil || month < 1 || month > 12 {
		return month, false
	}
	return month, true
}

// ValidCVV reports whether the CVV is 3 or 4 digits.
func ValidCVV(cvv string) bool {
	if len(cvv) < 3 || len(cvv) > 4 {
		return false
	}
	for _, r := range cvv {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
