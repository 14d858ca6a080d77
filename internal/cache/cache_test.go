package cache

import (
	"testing"
	"time"
)

func TestTTLGetSet(t *testing.T) {
	c := NewTTL[int](time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
	c.Set("a", 42)
	got, ok := c.Get("a")
	if !ok || got != 42 {
		t.Fatalf("Get(a) = %d, %v; want 42, true", got, ok)
	}
	if c.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", c.Size())
	}
	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss after Delete")
	}
}

func TestTTLExpiry(t *testing.T) {
	c := NewTTL[string](10 * time.Millisecond)
	c.Set("k", "v")
	time.Sleep(25 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestCleanExpired(t *testing.T) {
	c := NewTTL[string](10 * time.Millisecond)
	c.Set("a", "1")
	c.Set("b", "2")
	time.Sleep(25 * time.Millisecond)
	c.Set("c", "3")

	if removed := c.CleanExpired(); removed != 2 {
		t.Fatalf("CleanExpired() = %d, want 2", removed)
	}
	if c.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", c.Size())
	}
}
