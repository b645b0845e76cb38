package validation

import (
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestCacheExpiresAfterTTL(t *testing.T) {
	clock := &fakeClock{now: fixedTime}
	cache := NewCache(WithTTL(time.Minute), WithCacheClock(clock.Now))
	cache.Set("k", Report{Fingerprint: "k"})

	clock.Advance(59 * time.Second)
	if _, ok := cache.Get("k"); !ok {
		t.Fatalf("expected entry before TTL")
	}
	clock.Advance(time.Second)
	if _, ok := cache.Get("k"); ok {
		t.Fatalf("expected entry to expire at TTL")
	}
	if cache.Len() != 0 {
		t.Fatalf("expected expired entry to be dropped, len=%d", cache.Len())
	}
}

func TestCacheEvictsOldest(t *testing.T) {
	cache := NewCache(WithMaxEntries(2))
	cache.Set("a", Report{Fingerprint: "a"})
	cache.Set("b", Report{Fingerprint: "b"})
	cache.Set("c", Report{Fingerprint: "c"})

	if _, ok := cache.Get("a"); ok {
		t.Fatalf("expected oldest entry evicted")
	}
	for _, key := range []string{"b", "c"} {
		if got, ok := cache.Get(key); !ok || got.Fingerprint != key {
			t.Fatalf("expected %s to be cached", key)
		}
	}
}

func TestCacheDefaultsAndClear(t *testing.T) {
	cache := NewCache(WithTTL(-1), WithMaxEntries(0))
	if cache.TTL() != DefaultCacheTTL {
		t.Fatalf("expected default TTL, got %s", cache.TTL())
	}
	cache.Set("a", Report{})
	cache.Clear()
	if cache.Len() != 0 {
		t.Fatalf("expected empty cache after Clear")
	}
}

func TestEngineCacheTTL(t *testing.T) {
	clock := &fakeClock{now: fixedTime}
	engine := New(
		WithClock(clock.Now),
		WithCache(NewCache(WithTTL(5*time.Minute), WithCacheClock(clock.Now))),
	)
	first := engine.Validate(northwind(), Context{})

	clock.Advance(time.Minute)
	if again := engine.Validate(northwind(), Context{}); !again.Timestamp.Equal(first.Timestamp) {
		t.Fatalf("expected cached report within TTL")
	}

	clock.Advance(5 * time.Minute)
	if fresh := engine.Validate(northwind(), Context{}); fresh.Timestamp.Equal(first.Timestamp) {
		t.Fatalf("expected a fresh report after TTL")
	}
}
