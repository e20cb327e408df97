package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/middleware"

	"github.com/redis/go-redis/v9"
)

// ReportCache is a read-through Redis cache for the core API list responses
// the dashboard refetches constantly (statements, listings, tags, schedule
// rules). Entries carry short TTLs and are invalidated on any write that
// would stale them.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

var GlobalReportCache *ReportCache

// NewReportCache creates and initializes a new report cache
func NewReportCache(redisURL string, ttl time.Duration) (*ReportCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &ReportCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// Close releases the underlying Redis connection.
func (rc *ReportCache) Close() error {
	return rc.client.Close()
}

// Key builds the per-user cache key for a core resource list. Keys for one
// resource are always this prefix or WindowKey extensions of it, so
// InvalidateResource can drop every variant in one pass.
func (rc *ReportCache) Key(userID, resource string) string {
	return fmt.Sprintf("reports:%s:%s", userID, resource)
}

// WindowKey builds the cache key for a resource list filtered to a date
// window, e.g. the statements view.
func (rc *ReportCache) WindowKey(userID, resource, startDate, endDate string) string {
	return fmt.Sprintf("%s:%s:%s", rc.Key(userID, resource), startDate, endDate)
}

// Get loads a cached list into dest. The boolean reports a hit.
func (rc *ReportCache) Get(key string, dest interface{}) (bool, error) {
	data, err := rc.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		middleware.TrackCacheLookup("miss")
		return false, nil
	}
	if err != nil {
		middleware.TrackCacheLookup("error")
		return false, fmt.Errorf("failed to read cache: %v", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		middleware.TrackCacheLookup("error")
		return false, fmt.Errorf("failed to unmarshal cached value: %v", err)
	}

	middleware.TrackCacheLookup("hit")
	return true, nil
}

// Set stores a list with the configured TTL.
func (rc *ReportCache) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %v", err)
	}

	if err := rc.client.Set(context.Background(), key, data, rc.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %v", err)
	}
	return nil
}

// InvalidateResource drops every cached variant of one user's resource: the
// bare Key entry plus all WindowKey entries under it. Writes that stale a
// list (rule save, import commit) go through here so a windowed entry can
// never outlive the data it was built from.
func (rc *ReportCache) InvalidateResource(userID, resource string) error {
	ctx := context.Background()
	keys := []string{rc.Key(userID, resource)}

	iter := rc.client.Scan(ctx, 0, rc.Key(userID, resource)+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %v", err)
	}

	if err := rc.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %v", err)
	}
	return nil
}
