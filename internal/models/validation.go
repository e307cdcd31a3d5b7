package models

import "regexp"

var mobileNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidMobileNumber reports whether s is exactly ten ASCII digits.
func ValidMobileNumber(s string) bool {
	return mobileNumberPattern.MatchString(s)
}
