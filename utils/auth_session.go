package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// AdminSessionPrefix is the key prefix for active admin session tokens.
const AdminSessionPrefix = "adminSession:"

// AdminSessionTTL bounds how long a dashboard session stays valid.
const AdminSessionTTL = 24 * time.Hour

// SaveAdminSession records a hashed session token so it can be revoked later.
func SaveAdminSession(client *redis.Client, tokenHash, adminID string) error {
	ctx := context.Background()
	return client.Set(ctx, AdminSessionPrefix+tokenHash, adminID, AdminSessionTTL).Err()
}

// GetAdminSession returns the admin ID bound to a hashed token, or redis.Nil
// when the session does not exist (expired or revoked).
func GetAdminSession(client *redis.Client, tokenHash string) (string, error) {
	ctx := context.Background()
	return client.Get(ctx, AdminSessionPrefix+tokenHash).Result()
}

// DeleteAdminSession revokes a session.
func DeleteAdminSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, AdminSessionPrefix+tokenHash).Err()
}
