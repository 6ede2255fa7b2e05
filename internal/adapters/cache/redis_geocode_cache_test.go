package cache

import (
	"context"
	"testing"
	"time"

	"trip-planner-service/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) *RedisGeocodeCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisGeocodeCache(client, time.Hour)
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	want := map[string]domain.Coordinates{
		"MG Road, Bengaluru": {Lat: 12.975, Lng: 77.606},
		"Cubbon Park":        {Lat: 12.976, Lng: 77.592},
	}

	if err := c.PutMany(ctx, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.GetMany(ctx, []string{"MG Road, Bengaluru", "Cubbon Park", "Unknown Place"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(got))
	}
	for addr, w := range want {
		g, ok := got[addr]
		if !ok {
			t.Fatalf("missing cache hit for %q", addr)
		}
		if g.Lat != w.Lat || g.Lng != w.Lng {
			t.Fatalf("cache hit for %q = %+v, want %+v", addr, g, w)
		}
	}
	if _, ok := got["Unknown Place"]; ok {
		t.Fatal("unexpected hit for address never written")
	}
}

func TestRedisGeocodeCacheRejectsEmptyKey(t *testing.T) {
	c := newTestCache(t)

	err := c.PutMany(context.Background(), map[string]domain.Coordinates{"  ": {Lat: 1, Lng: 2}})
	if err == nil {
		t.Fatal("expected error for empty address key")
	}
}
