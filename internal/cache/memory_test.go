package cache

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestMemory(maxEntries int) (*Memory, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}
	m := NewMemory(maxEntries)
	m.now = clock.Now
	return m, clock
}

func TestMemory_GetSet(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMemory(2)

	if err := m.Set(ctx, "key", "value", time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := m.Get(ctx, "key")
	if err != nil || !ok {
		t.Fatalf("Get() = %q, %v, %v; want hit", got, ok, err)
	}
	if got != "value" {
		t.Errorf("Get() = %q, want value", got)
	}
}

func TestMemory_Miss(t *testing.T) {
	m, _ := newTestMemory(2)
	if _, ok, _ := m.Get(context.Background(), "absent"); ok {
		t.Error("expected miss")
	}
	if _, ok, _ := m.Get(context.Background(), ""); ok {
		t.Error("expected miss for empty key")
	}
}

func TestMemory_ExpiresEntries(t *testing.T) {
	ctx := context.Background()
	m, clock := newTestMemory(2)
	m.Set(ctx, "key", "value", time.Minute)

	clock.Advance(2 * time.Minute)

	if _, ok, _ := m.Get(ctx, "key"); ok {
		t.Fatal("expected entry to expire")
	}
	if m.Len() != 0 {
		t.Errorf("expired entry should be removed, Len() = %d", m.Len())
	}
}

func TestMemory_EvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMemory(2)

	m.Set(ctx, "a", "summary-a", time.Hour)
	m.Set(ctx, "b", "summary-b", time.Hour)

	if _, ok, _ := m.Get(ctx, "a"); !ok {
		t.Fatal("expected a before eviction")
	}

	m.Set(ctx, "c", "summary-c", time.Hour)

	if _, ok, _ := m.Get(ctx, "a"); !ok {
		t.Error("a was used recently and should remain")
	}
	if _, ok, _ := m.Get(ctx, "b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok, _ := m.Get(ctx, "c"); !ok {
		t.Error("c should be cached")
	}
}

func TestMemory_SetEvictsExpiredFirst(t *testing.T) {
	ctx := context.Background()
	m, clock := newTestMemory(3)

	m.Set(ctx, "short", "s", time.Minute)
	m.Set(ctx, "long", "l", time.Hour)
	clock.Advance(5 * time.Minute)
	m.Set(ctx, "new", "n", time.Hour)

	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after expired eviction", m.Len())
	}
}

func TestMemory_OverwriteRefreshes(t *testing.T) {
	ctx := context.Background()
	m, clock := newTestMemory(2)

	m.Set(ctx, "key", "old", time.Minute)
	clock.Advance(30 * time.Second)
	m.Set(ctx, "key", "new", time.Minute)
	clock.Advance(45 * time.Second)

	got, ok, _ := m.Get(ctx, "key")
	if !ok || got != "new" {
		t.Errorf("Get() = %q, %v; want refreshed entry", got, ok)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestMemory_IgnoresUnstorableValues(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMemory(2)

	m.Set(ctx, "empty", "", time.Hour)
	m.Set(ctx, "nottl", "x", 0)
	m.Set(ctx, "", "x", time.Hour)

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestMemory_DefaultSize(t *testing.T) {
	if m := NewMemory(0); m.maxEntries != DefaultMaxEntries {
		t.Errorf("maxEntries = %d, want %d", m.maxEntries, DefaultMaxEntries)
	}
}

func TestMemory_Close(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMemory(2)
	m.Set(ctx, "a", "x", time.Hour)

	if err := m.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d after Close", m.Len())
	}
	m.Set(ctx, "b", "y", time.Hour)
	if _, ok, _ := m.Get(ctx, "b"); !ok {
		t.Error("cache should remain usable after Close")
	}
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(16)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := Key("test", strings.Repeat("x", n))
			for j := 0; j < 50; j++ {
				m.Set(ctx, key, "summary", time.Hour)
				m.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()

	if m.Len() > 16 {
		t.Errorf("Len() = %d exceeds bound", m.Len())
	}
}

func TestKey(t *testing.T) {
	a := Key("gpt-4o-mini", "Patient reports mild fever.")

	tests := []struct {
		name    string
		variant string
		text    string
		same    bool
	}{
		{"same input", "gpt-4o-mini", "Patient reports mild fever.", true},
		{"different text", "gpt-4o-mini", "Patient reports high fever.", false},
		{"different variant", "llama3", "Patient reports mild fever.", false},
		{"boundary moved between variant and text", "gpt-4o-miniP", "atient reports mild fever.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Key(tt.variant, tt.text)
			if (got == a) != tt.same {
				t.Errorf("Key(%q, %q) == base is %v, want %v", tt.variant, tt.text, got == a, tt.same)
			}
		})
	}

	if !strings.HasPrefix(a, KeyPrefix) {
		t.Errorf("Key %q missing prefix", a)
	}
	if len(a) != len(KeyPrefix)+64 {
		t.Errorf("unexpected key length %d", len(a))
	}
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	ctx := context.Background()
	if err := c.Set(ctx, "k", "v", time.Hour); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Nop should never hit")
	}
}

var (
	_ Cache = (*Memory)(nil)
	_ Cache = (*Valkey)(nil)
	_ Cache = Nop{}
)
