package utils

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"rosterly/config"
	"rosterly/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

const (
	authEntryTTL       = time.Hour
	currentScheduleTTL = 10 * time.Minute
	cacheOpTimeout     = 2 * time.Second
)

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for authorization caching (using DB from AppConfig for auth cache).
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// AuthEntry is the cached authentication state for one account: the hash of
// the token presented at login plus the account flags checked on every
// request. Both the login path and the auth middleware go through
// EncodeAuthEntry/DecodeAuthEntry, so the two can never disagree on format.
type AuthEntry struct {
	TokenHash string
	IsAdmin   bool
	Suspended bool
}

// EncodeAuthEntry renders an entry as "hash[|admin][|suspended]".
func EncodeAuthEntry(e AuthEntry) string {
	v := e.TokenHash
	if e.IsAdmin {
		v += "|admin"
	}
	if e.Suspended {
		v += "|suspended"
	}
	return v
}

// DecodeAuthEntry parses an encoded entry. Unknown flags are ignored.
func DecodeAuthEntry(raw string) AuthEntry {
	parts := strings.Split(raw, "|")
	e := AuthEntry{TokenHash: parts[0]}
	for _, flag := range parts[1:] {
		switch flag {
		case "admin":
			e.IsAdmin = true
		case "suspended":
			e.Suspended = true
		}
	}
	return e
}

// StoreAuthEntry caches the auth state for an account. A nil client is a
// no-op, as is a write failure; the middleware falls back to the database.
func StoreAuthEntry(client *redis.Client, accountID string, e AuthEntry) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	if err := client.Set(ctx, AuthCachePrefix+accountID, EncodeAuthEntry(e), authEntryTTL).Err(); err != nil {
		zap.L().Debug("failed to cache auth entry", zap.Error(err))
	}
}

// FetchAuthEntry looks up the cached auth state for an account.
func FetchAuthEntry(client *redis.Client, accountID string) (AuthEntry, bool) {
	if client == nil {
		return AuthEntry{}, false
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	raw, err := client.Get(ctx, AuthCachePrefix+accountID).Result()
	if err != nil {
		return AuthEntry{}, false
	}
	return DecodeAuthEntry(raw), true
}

// CacheCurrentSchedule stores the current schedule document for fast reads.
func CacheCurrentSchedule(client *redis.Client, doc *models.ScheduleDocument) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	if err := client.Set(ctx, CurrentScheduleCacheKey, raw, currentScheduleTTL).Err(); err != nil {
		zap.L().Debug("failed to cache current schedule", zap.Error(err))
	}
}

// CachedCurrentSchedule returns the cached current schedule, or nil on a miss.
func CachedCurrentSchedule(client *redis.Client) *models.ScheduleDocument {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	raw, err := client.Get(ctx, CurrentScheduleCacheKey).Result()
	if err != nil {
		return nil
	}
	var doc models.ScheduleDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil
	}
	return &doc
}

// InvalidateCurrentSchedule drops the cached current schedule.
func InvalidateCurrentSchedule(client *redis.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	if err := client.Del(ctx, CurrentScheduleCacheKey).Err(); err != nil {
		zap.L().Debug("failed to invalidate schedule cache", zap.Error(err))
	}
}
