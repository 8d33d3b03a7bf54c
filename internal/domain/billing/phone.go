package billing

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// defaultAreaCode is assumed for 10-digit numbers that lack a DDD. Most of
// the event's audience is in the São Paulo area; callers that cannot accept
// the assumption should validate upstream.
const defaultAreaCode = "11"

// NormalizePhone canonicalizes a Brazilian phone number to the 11-digit
// local form. ok is false when the input holds no digits at all; callers
// decide their own placeholder policy for that case.
//
// Rules apply in order, first match wins:
//  1. strip everything that is not a digit
//  2. 11 digits -> unchanged
//  3. 10 digits -> prefix the default DDD
//  4. 13 digits starting with 55 -> drop the country code
//  5. 12 digits starting with 55 -> drop the country code
//  6. anything else -> returned as-is, best effort
func NormalizePhone(raw string) (string, bool) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return "", false
	}

	switch {
	case len(digits) == 11:
		return digits, true
	case len(digits) == 10:
		return defaultAreaCode + digits, true
	case len(digits) == 13 && strings.HasPrefix(digits, "55"):
		return digits[2:], true
	case len(digits) == 12 && strings.HasPrefix(digits, "55"):
		return digits[2:], true
	}
	return digits, true
}
