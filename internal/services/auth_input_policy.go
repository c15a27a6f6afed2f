package services

import (
	"errors"
	"strings"
)

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

// NormalizeUsername lowercases and trims the raw form value. Every lookup
// and uniqueness check runs against this normalized form.
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeCredentialsInput normalizes the username only. The password is
// passed through verbatim, whitespace included, so the hash always covers
// exactly what the user typed.
func NormalizeCredentialsInput(usernameRaw string, passwordRaw string) (string, string, error) {
	username := NormalizeUsername(usernameRaw)
	if username == "" || passwordRaw == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return username, passwordRaw, nil
}

// NormalizeRegistrationInput validates a registration form. An empty display
// name falls back to the normalized username so every account renders with a
// human-readable name.
func NormalizeRegistrationInput(usernameRaw string, displayNameRaw string, passwordRaw string) (string, string, string, error) {
	username, password, err := NormalizeCredentialsInput(usernameRaw, passwordRaw)
	if err != nil {
		return "", "", "", err
	}
	displayName := strings.TrimSpace(displayNameRaw)
	if displayName == "" {
		displayName = username
	}
	return username, displayName, password, nil
}
