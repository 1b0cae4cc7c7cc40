package services

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrAuthCredentialsInvalid = errors.New("invalid credentials")
	ErrInvalidUsername        = fmt.Errorf("%w: username must be 3-50 characters without spaces", ErrInvalidInput)
	ErrInvalidEmail           = fmt.Errorf("%w: email address is invalid", ErrInvalidInput)
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
)

// NormalizeUsername trims raw and returns "" when the result is not a usable
// username.
func NormalizeUsername(raw string) string {
	username := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(username)
	if length < minUsernameLength || length > maxUsernameLength {
		return ""
	}
	if strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return ""
	}
	return username
}

// NormalizeOptionalEmail lowercases raw. An empty value is allowed.
func NormalizeOptionalEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func NormalizeCredentialsInput(usernameRaw string, passwordRaw string) (string, string, error) {
	username := strings.TrimSpace(usernameRaw)
	if username == "" || passwordRaw == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return username, passwordRaw, nil
}
