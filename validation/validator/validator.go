// Package validator holds the request field validation rules shared by
// the authentication and recipe flows.
package validator

import (
	"fmt"
	"regexp"
)

// MinPasswordLength is the uniform password policy applied at
// registration, reset, and change.
const MinPasswordLength = 6

// MinNameLength is the minimum accepted display-name length.
const MinNameLength = 2

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail reports whether the string matches the accepted email pattern.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword checks the password policy. The returned message is
// client-facing.
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength {
		return false, fmt.Sprintf("A senha deve ter pelo menos %d caracteres", MinPasswordLength)
	}
	return true, ""
}

// IsEmpty reports whether the string is empty.
func IsEmpty(s string) bool {
	return s == ""
}
