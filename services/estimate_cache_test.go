package services

import (
	"testing"
	"time"
)

func TestEstimateCacheKeyNormalization(t *testing.T) {
	t.Parallel()

	c := NewEstimateCache(time.Minute)
	key := c.Key("  Banana ", 2, "PCS")
	if key != "banana-2-pcs" {
		t.Fatalf("key = %q, want banana-2-pcs", key)
	}
	if c.Key("banana", 2, "pcs") != key {
		t.Fatal("normalized keys should match")
	}
	if c.Key("banana", 2.5, "pcs") == key {
		t.Fatal("different amounts must not collide")
	}
}

func TestEstimateCacheHitAndMiss(t *testing.T) {
	t.Parallel()

	c := NewEstimateCache(time.Minute)
	key := c.Key("poha", 1, "plate")

	if _, ok := c.Get(key); ok {
		t.Fatal("empty cache should miss")
	}

	want := NutritionEstimate{Calories: 280, Protein: floatPtr(6), Sodium: floatPtr(420), Method: "ai"}
	c.Set(key, want)

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("cache should hit after Set")
	}
	if got.Calories != 280 || got.Method != "ai" {
		t.Fatalf("cached value = %+v, want %+v", got, want)
	}
	if got.Protein == nil || *got.Protein != 6 {
		t.Fatalf("cached protein = %v, want 6", got.Protein)
	}
}

func TestEstimateCacheTTLExpiry(t *testing.T) {
	t.Parallel()

	c := NewEstimateCache(20 * time.Millisecond)
	key := c.Key("apple", 1, "pcs")
	c.Set(key, NutritionEstimate{Calories: 95})

	if _, ok := c.Get(key); !ok {
		t.Fatal("fresh entry should hit")
	}

	time.Sleep(40 * time.Millisecond)

	if _, ok := c.Get(key); ok {
		t.Fatal("expired entry should miss")
	}
}
