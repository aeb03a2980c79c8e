package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	scheduleKeyFmt = "tenant:%d:schedule"
	dashboardKey   = "dashboard:plots"
	scheduleTTL    = 2 * time.Minute
	dashboardTTL   = 5 * time.Minute
)

var client *redis.Client

// Init initializes the Redis connection. The cache is optional; every
// accessor degrades to a miss when the client is nil.
func Init() error {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client, nil when the cache is unavailable.
func GetClient() *redis.Client {
	return client
}

// hashCredentials creates a hash of email+password for cache key
func hashCredentials(email, password string) string {
	h := sha256.New()
	h.Write([]byte(email + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (int64, bool) {
	if client == nil {
		return 0, false
	}
	userID, err := client.Get(ctx, hashCredentials(email, password)).Int64()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, email, password string, userID int64) {
	if client == nil {
		return
	}
	client.Set(ctx, hashCredentials(email, password), userID, 15*time.Minute)
}

// InvalidateAuth removes cached auth for a user (on password change/logout)
func InvalidateAuth(ctx context.Context, email, password string) {
	if client == nil {
		return
	}
	client.Del(ctx, hashCredentials(email, password))
}

// GetCachedSchedule returns a tenant's cached schedule JSON if present.
func GetCachedSchedule(ctx context.Context, tenantID int) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, fmt.Sprintf(scheduleKeyFmt, tenantID)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheSchedule stores a tenant's computed schedule for a short window.
func CacheSchedule(ctx context.Context, tenantID int, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, fmt.Sprintf(scheduleKeyFmt, tenantID), data, scheduleTTL)
}

// InvalidateSchedule drops a tenant's cached schedule after a new payment.
func InvalidateSchedule(ctx context.Context, tenantID int) {
	if client == nil {
		return
	}
	client.Del(ctx, fmt.Sprintf(scheduleKeyFmt, tenantID))
}

// GetCachedDashboard returns the cached plot aggregates if present.
func GetCachedDashboard(ctx context.Context) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// CacheDashboard stores the plot aggregates.
func CacheDashboard(ctx context.Context, data []byte) {
	if client == nil {
		return
	}
	client.Set(ctx, dashboardKey, data, dashboardTTL)
}

// InvalidateDashboard drops the cached aggregates after a write.
func InvalidateDashboard(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, dashboardKey)
}
