package cache

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache()
	c.Set("foo", 123, 0, nil)

	v, ok := c.Get("foo")
	if !ok {
		t.Fatal("expected foo to be present")
	}
	if v != 123 {
		t.Errorf("value = %v, want 123", v)
	}
}

func TestCache_Miss(t *testing.T) {
	c := NewCache()
	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for absent key")
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c := NewCache()
	c.Set("short", "v", 1, nil)

	if _, ok := c.Get("short"); !ok {
		t.Fatal("value should be present before expiry")
	}

	// Force expiry by rewriting with an already-past deadline.
	c.m.Store("short", cacheItem{Value: "v", ExpiresAt: time.Now().Add(-time.Second).UnixNano()})
	if _, ok := c.Get("short"); ok {
		t.Error("value should be gone after expiry")
	}
}

func TestCache_Delete(t *testing.T) {
	c := NewCache()
	c.Set("k", "v", 0, nil)
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("value should be deleted")
	}
}

func TestCache_CompositeKeys(t *testing.T) {
	c := NewCache()
	c.SetN([]interface{}{"options", "products", "collections"}, []string{"a"}, 0, nil)

	v, ok := c.GetN("options", "products", "collections")
	if !ok {
		t.Fatal("composite key should resolve")
	}
	if got := v.([]string); len(got) != 1 || got[0] != "a" {
		t.Errorf("value = %v, want [a]", got)
	}

	c.DeleteN("options", "products", "collections")
	if _, ok := c.GetN("options", "products", "collections"); ok {
		t.Error("composite key should be deleted")
	}
}

func TestCache_Tags(t *testing.T) {
	c := NewCache()
	c.Set("a", 1, 0, []string{"options"})
	c.Set("b", 2, 0, []string{"options"})
	c.Set("c", 3, 0, []string{"dashboard"})

	if keys := c.GetKeysByTag("options"); len(keys) != 2 {
		t.Errorf("options keys = %d, want 2", len(keys))
	}

	c.DeleteByTag("options")
	if _, ok := c.Get("a"); ok {
		t.Error("a should be invalidated by tag")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("b should be invalidated by tag")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c should survive unrelated tag invalidation")
	}
}
