package services

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

var (
	ErrWeakPassword    = fmt.Errorf("%w: password must be at least %d characters and mix upper case, lower case and digits", ErrInvalidInput, minPasswordLength)
	ErrPasswordTooLong = fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, maxPasswordBytes)
)

type charClass uint8

const (
	classUpper charClass = 1 << iota
	classLower
	classDigit

	requiredClasses = classUpper | classLower | classDigit
)

func ValidatePasswordStrength(password string) error {
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return ErrWeakPassword
	}

	var seen charClass
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			seen |= classUpper
		case unicode.IsLower(char):
			seen |= classLower
		case unicode.IsDigit(char):
			seen |= classDigit
		}
		if seen == requiredClasses {
			return nil
		}
	}
	return ErrWeakPassword
}
