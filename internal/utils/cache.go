package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error matching
	"strconv"       // Version formatting
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// GetCacheField reads one field of a Redis hash and unmarshals it into dest.
// A nil client behaves like an empty cache.
func GetCacheField(ctx context.Context, rdb *redis.Client, key, field string, dest any) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	val, err := rdb.HGet(ctx, key, field).Result() // Get field from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Field does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// setIfVersion writes a hash field only while the version key still holds the
// version observed before the value was computed. A missing version reads as "0".
var setIfVersion = redis.NewScript(`
if (redis.call("GET", KEYS[1]) or "0") ~= ARGV[1] then
	return 0
end
redis.call("HSET", KEYS[2], ARGV[2], ARGV[3])
redis.call("PEXPIRE", KEYS[2], ARGV[4])
return 1
`)

// CacheVersion returns the current version counter stored at versionKey, zero when unset
func CacheVersion(ctx context.Context, rdb *redis.Client, versionKey string) (int64, error) {
	if rdb == nil {
		return 0, nil
	}
	v, err := rdb.Get(ctx, versionKey).Int64() // Read version counter
	if errors.Is(err, redis.Nil) {
		return 0, nil // Never invalidated
	}
	return v, err
}

// SetCacheFieldAtVersion stores value as JSON in one field of a Redis hash and refreshes
// the hash TTL, unless versionKey moved past version since it was read. It reports
// whether the value was written.
func SetCacheFieldAtVersion(ctx context.Context, rdb *redis.Client, versionKey string, version int64, key, field string, value any, ttl time.Duration) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return false, err
	}
	n, err := setIfVersion.Run(ctx, rdb, []string{versionKey, key},
		strconv.FormatInt(version, 10), field, string(b), ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// InvalidateCache bumps versionKey and deletes key in one transaction, so writers
// holding an older version can no longer repopulate it
func InvalidateCache(ctx context.Context, rdb *redis.Client, versionKey, key string) error {
	if rdb == nil {
		return nil
	}
	pipe := rdb.TxPipeline()
	pipe.Incr(ctx, versionKey) // New version for later writers
	pipe.Del(ctx, key)         // Drop cached values
	_, err := pipe.Exec(ctx)
	return err
}
