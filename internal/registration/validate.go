// Package registration holds the form state, field validators and request
// payload for a single account registration.
package registration

import (
	"regexp"
	"unicode/utf8"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 32
)

var (
	usernamePattern = regexp.MustCompile(`^[0-9A-Za-z]{6,24}$`)
	emailPattern    = regexp.MustCompile(`^[\w.-]+@[a-zA-Z\d.-]+\.[a-zA-Z]{2,}$`)
)

// ValidUsername reports whether s is 6 to 24 ASCII letters or digits.
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// ValidEmail reports whether s looks like local@domain.tld with a TLD of at
// least two letters.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPassword reports whether s is 8 to 32 characters long, has no line
// breaks, and contains a digit, an uppercase letter, a lowercase letter and a
// character that is none of those.
func ValidPassword(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < minPasswordLen || n > maxPasswordLen {
		return false
	}

	var digit, upper, lower, symbol bool
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029':
			return false
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		default:
			symbol = true
		}
	}
	return digit && upper && lower && symbol
}

// PasswordsMatch reports whether confirm repeats password and neither is empty.
func PasswordsMatch(password, confirm string) bool {
	return password != "" && confirm != "" && password == confirm
}
