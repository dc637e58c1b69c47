package cache

import (
	"encoding/json"
	"os"
	"testing"
	"time"
)

func TestCache_PutGet(t *testing.T) {
	c, err := New(true, t.TempDir(), 3600)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	key := BuildKey("gemini", "gemini-2.5-flash", "some prompt")
	if _, ok := c.Get(key); ok {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Put(key, "cached completion"); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Expected hit after Put")
	}
	if got != "cached completion" {
		t.Errorf("Get = %q, want %q", got, "cached completion")
	}
}

func TestCache_KeyIncludesModel(t *testing.T) {
	k1 := BuildKey("gemini", "gemini-2.5-flash", "prompt")
	k2 := BuildKey("gemini", "gemini-2.5-pro", "prompt")
	if k1 == k2 {
		t.Error("Keys for different models should differ")
	}
}

func TestCache_Expiry(t *testing.T) {
	c, err := New(true, t.TempDir(), 1)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	key := BuildKey("gemini", "gemini-2.5-flash", "prompt")
	if err := c.Put(key, "old completion"); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	// Backdate the entry past its TTL by rewriting it.
	entry := Entry{Key: HashKey(key), Response: "old completion", CreatedAt: time.Now().Add(-time.Hour), TTL: 1}
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshaling entry: %v", err)
	}
	if err := os.WriteFile(c.entryPath(key), data, 0o644); err != nil {
		t.Fatalf("rewriting entry: %v", err)
	}

	if _, ok := c.Get(key); ok {
		t.Error("Expected miss for expired entry")
	}
}

func TestCache_Disabled(t *testing.T) {
	c, err := New(false, "", 0)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if c.Enabled() {
		t.Error("Cache should be disabled")
	}
	if err := c.Put("k", "v"); err != nil {
		t.Errorf("Put on disabled cache should be a no-op, got %v", err)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("Get on disabled cache should miss")
	}
}

func TestCache_ClearAndStats(t *testing.T) {
	c, err := New(true, t.TempDir(), 3600)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for _, prompt := range []string{"a", "b", "c"} {
		if err := c.Put(BuildKey("gemini", "m", prompt), "resp"); err != nil {
			t.Fatalf("Put error: %v", err)
		}
	}

	stats, err := c.GetStats()
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if stats.Entries != 3 {
		t.Errorf("Entries = %d, want 3", stats.Entries)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	stats, err = c.GetStats()
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if stats.Entries != 0 {
		t.Errorf("Entries after Clear = %d, want 0", stats.Entries)
	}
}
