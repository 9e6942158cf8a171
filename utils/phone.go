// File: utils/phone.go
package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// NormalizePhone canonicalizes a free-form phone string into the form
// "+<country code><subscriber digits>", no separators. It strips every
// non-digit character; a bare 10-digit number is assumed to be US/Canada and
// gets the "1" country code, an 11-digit number already starting with "1" is
// kept as-is. Anything else just gets a "+" prefix — the function is total
// and never fails, garbage in means garbage-prefixed out. It is idempotent.
func NormalizePhone(raw string) string {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	switch {
	case len(digits) == 10:
		return "+1" + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits
	default:
		return "+" + digits
	}
}

var canonicalPhoneRe = regexp.MustCompile(`^\+\d{11,}$`)

// ValidPhone reports whether raw normalizes to a plausible canonical number:
// "+" followed by at least 11 digits.
func ValidPhone(raw string) bool {
	return canonicalPhoneRe.MatchString(NormalizePhone(raw))
}

// ValidateBusinessRow checks one ingestion row (name, phone) and returns a
// row-numbered error suitable for collecting into an import report.
func ValidateBusinessRow(row int, name, phone string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return fmt.Errorf("row %d: name must be at least 2 characters", row)
	}
	if !ValidPhone(phone) {
		return fmt.Errorf("row %d: invalid phone number %q", row, phone)
	}
	return nil
}
