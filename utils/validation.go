// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// 24-hour clock, zero-padded: "09:00" yes, "9:00" / "25:00" / "9:60" no
	timeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// ValidateEmail checks if an email address is well-formed
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateTimeOfDay checks if a time value matches HH:MM on a 24-hour clock
func ValidateTimeOfDay(t string) bool {
	return timeRegex.MatchString(t)
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{6,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
