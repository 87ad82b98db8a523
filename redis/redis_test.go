package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Without a connected client, revocation degrades to a no-op on both the
// write and the read side instead of crashing the logout path.
func TestRevocationWithoutClient(t *testing.T) {
	Client = nil

	assert.NotPanics(t, func() {
		assert.NoError(t, RevokeToken("some-token", time.Hour))
	})
	assert.False(t, IsTokenRevoked("some-token"))
}

func TestRevokeTokenSkipsExpired(t *testing.T) {
	Client = nil

	// A token that already expired needs no denylist entry
	assert.NoError(t, RevokeToken("stale-token", -time.Minute))
	assert.NoError(t, RevokeToken("stale-token", 0))
}
