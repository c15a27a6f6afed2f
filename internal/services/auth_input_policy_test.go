package services

import (
	"errors"
	"testing"
)

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercases and trims", raw: "  ALICE  ", want: "alice"},
		{name: "already normalized", raw: "bob", want: "bob"},
		{name: "whitespace only becomes empty", raw: "   ", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := NormalizeUsername(testCase.raw); got != testCase.want {
				t.Fatalf("NormalizeUsername(%q) = %q, want %q", testCase.raw, got, testCase.want)
			}
		})
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	username, password, err := NormalizeCredentialsInput(" ALICE ", "  secret1  ")
	if err != nil {
		t.Fatalf("expected valid credentials input, got %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected normalized username, got %q", username)
	}
	if password != "  secret1  " {
		t.Fatalf("expected password passed through verbatim, got %q", password)
	}

	_, _, err = NormalizeCredentialsInput("   ", "secret1")
	if !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for empty username, got %v", err)
	}

	_, _, err = NormalizeCredentialsInput("alice", "")
	if !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for empty password, got %v", err)
	}
}

func TestNormalizeRegistrationInputDisplayNameFallback(t *testing.T) {
	username, displayName, _, err := NormalizeRegistrationInput("ALICE", "   ", "secret1")
	if err != nil {
		t.Fatalf("expected valid registration input, got %v", err)
	}
	if username != "alice" {
		t.Fatalf("expected normalized username, got %q", username)
	}
	if displayName != "alice" {
		t.Fatalf("expected display name to fall back to username, got %q", displayName)
	}

	_, displayName, _, err = NormalizeRegistrationInput("alice", "  Alice W.  ", "secret1")
	if err != nil {
		t.Fatalf("expected valid registration input, got %v", err)
	}
	if displayName != "Alice W." {
		t.Fatalf("expected trimmed display name, got %q", displayName)
	}
}
