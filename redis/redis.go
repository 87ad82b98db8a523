package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// RevokeToken denylists a JWT until its natural expiry. Logged-out tokens
// are rejected by the auth middleware even though they are still signed
// and unexpired.
func RevokeToken(token string, ttl time.Duration) error {
	if Client == nil || ttl <= 0 {
		return nil
	}
	return Client.Set(Ctx, "revoked:"+token, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token was denylisted by logout.
func IsTokenRevoked(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, "revoked:"+token).Result()
	return err == nil && n > 0
}
