package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateInviteCode(t *testing.T) {
	code := GenerateInviteCode()
	assert.Len(t, code, 8)
	for _, r := range code {
		assert.Contains(t, inviteAlphabet, string(r))
	}
	// No ambiguous characters in the alphabet itself
	for _, bad := range []string{"0", "O", "1", "I"} {
		assert.NotContains(t, inviteAlphabet, bad)
	}
}

func TestGenerateInviteCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := GenerateInviteCode()
		assert.False(t, seen[code], "duplicate code %s after %d draws", code, i)
		seen[code] = true
	}
}

func TestWelcomeEmailBody(t *testing.T) {
	body := WelcomeEmailBody("Anna")
	assert.Contains(t, body, "Hi Anna,")

	fallback := WelcomeEmailBody("")
	assert.True(t, strings.Contains(fallback, "Hi there,"))
}
