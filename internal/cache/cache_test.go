package cache

import (
	"testing"
	"time"
)

func TestGetReturnsStoredValue(t *testing.T) {
	c := NewLRU[int](4, time.Minute)
	c.Set("a", 1)

	got, ok := c.Get("a")
	if !ok || got != 1 {
		t.Fatalf("Get = (%d, %v), want (1, true)", got, ok)
	}
}

func TestGetMissesUnknownKey(t *testing.T) {
	c := NewLRU[int](4, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("Get reported a hit for an unknown key")
	}
}

func TestExpiredEntryIsAMiss(t *testing.T) {
	c := NewLRU[int](4, -time.Second)
	c.Set("a", 1)

	if _, ok := c.Get("a"); ok {
		t.Fatal("expired entry still readable")
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d after expired read, want 0", c.Len())
	}
}

func TestCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	// Touch "a" so "b" becomes the eviction candidate.
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatal("least recently used entry survived eviction")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatal("recently used entry was evicted")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatal("newest entry missing")
	}
}

func TestInvalidateDropsEntry(t *testing.T) {
	c := NewLRU[int](4, time.Minute)
	c.Set("a", 1)
	c.Invalidate("a")

	if _, ok := c.Get("a"); ok {
		t.Fatal("invalidated entry still readable")
	}
	// Invalidating again must not panic.
	c.Invalidate("a")
}

func TestSetReplacesExistingKey(t *testing.T) {
	c := NewLRU[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("a", 2)

	if got, _ := c.Get("a"); got != 2 {
		t.Fatalf("Get = %d, want 2", got)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}
