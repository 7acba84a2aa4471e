package dashboard

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"storeadmin.GO/core/cache"
)

type countClient struct {
	counts map[string]int
	fail   map[string]bool
}

func (c *countClient) List(ctx context.Context, endpoint string, params url.Values) (map[string]interface{}, error) {
	if c.fail[endpoint] {
		return nil, errors.New("unreachable")
	}
	return map[string]interface{}{
		"items": []interface{}{},
		"count": float64(c.counts[endpoint]),
	}, nil
}

func TestCollect_CountsAllResources(t *testing.T) {
	client := &countClient{counts: map[string]int{
		"/admin/orders":   120,
		"/admin/products": 34,
	}}

	snap := Collect(context.Background(), client)

	if snap.Counts["orders"] != 120 {
		t.Errorf("orders = %d, want 120", snap.Counts["orders"])
	}
	if snap.Counts["products"] != 34 {
		t.Errorf("products = %d, want 34", snap.Counts["products"])
	}
	if len(snap.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", snap.Warnings)
	}
	if snap.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestCollect_FailedResourceBecomesWarning(t *testing.T) {
	client := &countClient{
		counts: map[string]int{"/admin/products": 34},
		fail:   map[string]bool{"/admin/orders": true},
	}

	snap := Collect(context.Background(), client)

	if _, ok := snap.Counts["orders"]; ok {
		t.Error("failed resource must not report a count")
	}
	if snap.Counts["products"] != 34 {
		t.Errorf("products = %d, want 34: one failure must not block the rest", snap.Counts["products"])
	}
	found := false
	for _, w := range snap.Warnings {
		if strings.HasPrefix(w, "orders:") {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want one naming orders", snap.Warnings)
	}
}

func TestStoreAndLoad_ProcessCache(t *testing.T) {
	cache.GetInstance().Delete(CacheKey)
	t.Cleanup(func() { cache.GetInstance().Delete(CacheKey) })

	snap := Collect(context.Background(), &countClient{counts: map[string]int{"/admin/orders": 7}})
	if err := Store(snap); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	got, ok := Load()
	if !ok {
		t.Fatal("Load() = not found, want stored snapshot")
	}
	if got.Counts["orders"] != 7 {
		t.Errorf("orders = %d, want 7", got.Counts["orders"])
	}
}
