package dialogue

import (
	"regexp"
	"strings"
)

// Bangladeshi mobile numbers, optionally prefixed with the country code.
var phonePattern = regexp.MustCompile(`(?:\+?88)?01[3-9]\d{8}`)

// ExtractPhone strips spaces and hyphens from the text and returns the first
// valid mobile number, or "" when none is present.
func ExtractPhone(text string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(text)
	return phonePattern.FindString(cleaned)
}

// HasValidPhone reports whether the text contains a valid mobile number.
func HasValidPhone(text string) bool {
	return ExtractPhone(text) != ""
}
