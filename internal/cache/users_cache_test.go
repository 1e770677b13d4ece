package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/geocoder89/userhub/internal/cache"
	"github.com/geocoder89/userhub/internal/domain/user"
)

func newTestCache(t *testing.T) *cache.UsersCache {
	t.Helper()

	mr := miniredis.RunT(t)

	client := cache.New(cache.Config{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return cache.NewUsersCache(client, time.Minute, log)
}

func TestUsersCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if _, ok := c.Get(ctx); ok {
		t.Fatal("cold cache reported a hit")
	}

	users := []user.User{
		{ID: 1, FirstName: "Ada", Email: "ada@example.com", Role: user.RoleUser},
		{ID: 2, FirstName: "Grace", Email: "grace@example.com", Role: user.RoleAdmin},
	}

	c.Set(ctx, users)

	got, ok := c.Get(ctx)

	if !ok {
		t.Fatal("expected a hit after Set")
	}

	if len(got) != 2 || got[0].ID != 1 || got[1].FirstName != "Grace" {
		t.Fatalf("unexpected cached users: %+v", got)
	}
}

func TestUsersCacheInvalidate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, []user.User{{ID: 1}})

	c.Invalidate(ctx)

	if _, ok := c.Get(ctx); ok {
		t.Fatal("hit after invalidation")
	}
}

func TestNilUsersCacheIsDisabled(t *testing.T) {
	var c *cache.UsersCache
	ctx := context.Background()

	if _, ok := c.Get(ctx); ok {
		t.Fatal("nil cache reported a hit")
	}

	// must not panic
	c.Set(ctx, []user.User{{ID: 1}})
	c.Invalidate(ctx)
}

func TestUsersCacheNeverStoresHashes(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, []user.User{{ID: 1, HashedPassword: "$2a$10$secret"}})

	got, ok := c.Get(ctx)

	if !ok {
		t.Fatal("expected a hit")
	}

	// the hash field is json:"-" so it cannot survive serialization
	if got[0].HashedPassword != "" {
		t.Fatalf("hash survived the cache: %q", got[0].HashedPassword)
	}
}
