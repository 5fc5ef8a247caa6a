package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	phonePattern          = regexp.MustCompile(`^05\d{8}$`)
	activationCodePattern = regexp.MustCompile(`^05\d{5}$`)
)

// NormalizePhone strips separators commonly pasted into phone fields
func NormalizePhone(phone string) string {
	stripped := strings.ReplaceAll(phone, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	return stripped
}

// ValidatePhone validates a mobile number of the form 05XXXXXXXX. The server
// is the authority; this is a fast-fail check before submission.
func ValidatePhone(phone string) (string, error) {
	stripped := NormalizePhone(phone)
	if !phonePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format, expected 05 followed by 8 digits")
	}
	return stripped, nil
}

// ValidateActivationCode validates a driver activation code of the form
// 05XXXXX. Codes are issued out of band and verified by the server.
func ValidateActivationCode(code string) (string, error) {
	stripped := NormalizePhone(code)
	if !activationCodePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid activation code format, expected 05 followed by 5 digits")
	}
	return stripped, nil
}

// MaskPhone masks a phone number for logging, keeping the last 4 digits
func MaskPhone(phone string) string {
	cleaned := NormalizePhone(phone)
	if len(cleaned) <= 4 {
		return cleaned
	}
	return strings.Repeat("*", len(cleaned)-4) + cleaned[len(cleaned)-4:]
}
