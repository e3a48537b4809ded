package crypto

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

var (
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrPasswordNumeric   = errors.New("password is entirely numeric")
	ErrPasswordTooCommon = errors.New("password is too common")
	ErrPasswordSimilar   = errors.New("password is too similar to user information")
)

// commonPasswords is a short list of the most frequently used passwords.
// Candidates are compared case-insensitively.
var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "passw0rd": {},
	"12345678": {}, "123456789": {}, "1234567890": {}, "qwertyuiop": {},
	"qwerty123": {}, "11111111": {}, "iloveyou": {}, "sunshine": {},
	"princess": {}, "football": {}, "baseball": {}, "welcome1": {},
	"admin123": {}, "letmein1": {}, "monkey123": {}, "dragon123": {},
	"superman": {}, "trustno1": {}, "whatever": {}, "jennifer": {},
	"michelle": {}, "computer": {}, "starwars": {}, "shadow123": {},
	"master123": {}, "696969696": {}, "mustang1": {}, "access123": {},
}

// ValidatePassword applies the password strength policy: minimum length,
// not entirely numeric, not in the common-password list, and not too
// similar to any of the given user attributes (email, names).
func ValidatePassword(password string, userAttributes ...string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: it must contain at least %d characters", ErrPasswordTooShort, MinPasswordLength)
	}

	if isNumeric(password) {
		return ErrPasswordNumeric
	}

	if _, found := commonPasswords[strings.ToLower(password)]; found {
		return ErrPasswordTooCommon
	}

	lowered := strings.ToLower(password)
	for _, attr := range userAttributes {
		for _, part := range splitAttribute(attr) {
			if len(part) < 3 {
				continue
			}
			if strings.Contains(lowered, part) || strings.Contains(part, lowered) {
				return ErrPasswordSimilar
			}
		}
	}

	return nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

// splitAttribute breaks a user attribute into comparable chunks, the way
// an email splits around separators ("jane.doe@example.com" -> jane, doe, ...).
func splitAttribute(attr string) []string {
	lowered := strings.ToLower(strings.TrimSpace(attr))
	if lowered == "" {
		return nil
	}
	parts := strings.FieldsFunc(lowered, func(r rune) bool {
		switch r {
		case '@', '.', '_', '-', '+', ' ':
			return true
		}
		return false
	})
	return append(parts, lowered)
}
