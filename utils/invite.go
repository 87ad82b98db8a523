package utils

import (
	"crypto/rand"
	"fmt"
)

// Unambiguous uppercase alphabet, no 0/O or 1/I.
const inviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const inviteCodeLength = 8

// GenerateInviteCode returns a random single-use invite code.
func GenerateInviteCode() string {
	b := make([]byte, inviteCodeLength)
	rand.Read(b)
	for i := range b {
		b[i] = inviteAlphabet[int(b[i])%len(inviteAlphabet)]
	}
	return string(b)
}

// WelcomeEmailBody builds the registration welcome email.
func WelcomeEmailBody(name string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your account has been created. You can now sign in and complete your profile.</p>
		<p>Best regards,</p>
		<p>The PsyMatch Team</p>
	`, name)
}
