package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryVectorCacheRoundTrip(t *testing.T) {
	c := NewMemoryVectorCache(time.Minute)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	c.Set(ctx, "k", []float32{1, 2, 3})
	vec, ok := c.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if len(vec) != 3 || vec[0] != 1 || vec[2] != 3 {
		t.Fatalf("vector drifted: %v", vec)
	}
}

func TestMemoryVectorCacheExpiry(t *testing.T) {
	c := NewMemoryVectorCache(10 * time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "k", []float32{1})
	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestMemoryVectorCacheDelete(t *testing.T) {
	c := NewMemoryVectorCache(time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", []float32{1})
	c.Delete("k")
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("expected miss after delete")
	}
}
