package services

import (
	"os"
	"testing"
	"time"

	"main/model"

	"github.com/google/uuid"
)

func newReportCache(t *testing.T) *ReportCache {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set; skipping live Redis test")
	}

	cache, err := NewReportCache(url, 30*time.Second)
	if err != nil {
		t.Fatalf("error while connecting redis: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestReportCacheRoundTrip(t *testing.T) {
	cache := newReportCache(t)
	userID := uuid.New().String()

	t.Run("MissOnUnknownKey", func(t *testing.T) {
		var out []model.Tag
		hit, err := cache.Get(cache.Key(userID, "tags"), &out)
		if err != nil {
			t.Fatal("get failed", err)
		}
		if hit {
			t.Error("expected a miss for a never-written key")
		}
	})

	t.Run("SetAndGet", func(t *testing.T) {
		tags := []model.Tag{{Name: "downtown"}, {Name: "beachfront"}}
		key := cache.Key(userID, "tags")
		if err := cache.Set(key, tags); err != nil {
			t.Fatal("set failed", err)
		}

		var out []model.Tag
		hit, err := cache.Get(key, &out)
		if err != nil {
			t.Fatal("get failed", err)
		}
		if !hit || len(out) != 2 || out[1].Name != "beachfront" {
			t.Errorf("round trip gave hit=%v out=%+v", hit, out)
		}
	})
}

// An import commit must evict every cached statements window, not just a
// bare statements key, or stale totals survive until the TTL runs out.
func TestInvalidateResourceDropsWindowedKeys(t *testing.T) {
	cache := newReportCache(t)
	userID := uuid.New().String()
	otherUser := uuid.New().String()

	janKey := cache.WindowKey(userID, "statements", "2024-01-01", "2024-01-31")
	febKey := cache.WindowKey(userID, "statements", "2024-02-01", "2024-02-29")
	schedulesKey := cache.Key(userID, "schedules")
	otherKey := cache.WindowKey(otherUser, "statements", "2024-01-01", "2024-01-31")

	statements := []model.Statement{{ID: "st_1", OwnerName: "Dana Reyes"}}
	for _, key := range []string{janKey, febKey, otherKey} {
		if err := cache.Set(key, statements); err != nil {
			t.Fatal("set failed", err)
		}
	}
	if err := cache.Set(schedulesKey, []model.ScheduleRule{{TagName: "downtown"}}); err != nil {
		t.Fatal("set failed", err)
	}

	if err := cache.InvalidateResource(userID, "statements"); err != nil {
		t.Fatal("invalidate failed", err)
	}

	var out []model.Statement
	for _, key := range []string{janKey, febKey} {
		hit, err := cache.Get(key, &out)
		if err != nil {
			t.Fatal("get failed", err)
		}
		if hit {
			t.Errorf("statements window %s still cached after invalidation", key)
		}
	}

	var rules []model.ScheduleRule
	if hit, err := cache.Get(schedulesKey, &rules); err != nil || !hit {
		t.Errorf("schedules entry should survive a statements invalidation (hit=%v err=%v)", hit, err)
	}
	if hit, err := cache.Get(otherKey, &out); err != nil || !hit {
		t.Errorf("another user's window should survive (hit=%v err=%v)", hit, err)
	}
}
