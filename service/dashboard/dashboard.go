package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"storeadmin.GO/config"
	"storeadmin.GO/core/cache"
	"storeadmin.GO/core/settle"
	"storeadmin.GO/listing"
	"storeadmin.GO/resource"
)

// CacheKey is where the latest snapshot lives, in the process cache and,
// when Redis is configured, mirrored there so restarts keep the dashboard
// warm.
const CacheKey = "dashboard:snapshot"

// snapshotTTL is in seconds; the cron job refreshes well within it.
const snapshotTTL = 900

// Snapshot is one point-in-time view of entity counts across all resources.
// A resource whose count could not be fetched appears in Warnings and is
// absent from Counts; the snapshot is still served.
type Snapshot struct {
	Counts      map[string]int `json:"counts"`
	Warnings    []string       `json:"warnings,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// Collect fetches the entity count of every registered resource
// concurrently. One resource failing or stalling never blocks the others.
func Collect(ctx context.Context, client listing.Fetcher) Snapshot {
	descriptors := resource.All()
	tasks := make(map[string]settle.Task[int], len(descriptors))
	for _, desc := range descriptors {
		desc := desc
		tasks[desc.Name] = func(ctx context.Context) (int, error) {
			params := url.Values{}
			params.Set("limit", "1")
			payload, err := client.List(ctx, desc.Endpoint, params)
			if err != nil {
				return 0, err
			}
			return listing.Normalize(payload, desc.ListKey).Count, nil
		}
	}

	snap := Snapshot{Counts: map[string]int{}, GeneratedAt: time.Now().UTC()}
	for name, r := range settle.All(ctx, tasks) {
		if r.Err != nil {
			snap.Warnings = append(snap.Warnings, fmt.Sprintf("%s: %v", name, r.Err))
			continue
		}
		snap.Counts[name] = r.Value
	}
	return snap
}

// Store writes the snapshot to the process cache and, if configured, Redis.
func Store(snap Snapshot) error {
	cache.GetInstance().Set(CacheKey, snap, snapshotTTL, []string{"dashboard"})

	if config.RedisClient == nil {
		return nil
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return config.RedisClient.Set(config.RedisCtx(), CacheKey, raw, snapshotTTL*time.Second).Err()
}

// Load returns the latest snapshot, preferring the process cache and
// falling back to Redis after a restart.
func Load() (Snapshot, bool) {
	if v, ok := cache.GetInstance().Get(CacheKey); ok {
		if snap, ok := v.(Snapshot); ok {
			return snap, true
		}
	}

	if config.RedisClient == nil {
		return Snapshot{}, false
	}
	raw, err := config.RedisClient.Get(config.RedisCtx(), CacheKey).Bytes()
	if err != nil {
		return Snapshot{}, false
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, false
	}
	cache.GetInstance().Set(CacheKey, snap, snapshotTTL, []string{"dashboard"})
	return snap, true
}
