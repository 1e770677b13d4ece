package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/geocoder89/userhub/internal/domain/user"
	"github.com/redis/go-redis/v9"
)

const usersListKey = "users:all"

// UsersCache holds the serialized full user list for a short TTL and is
// invalidated on every write. A nil *UsersCache is valid and disables
// caching, so handlers never branch on configuration. Cache failures are
// logged and degrade to the repository.
type UsersCache struct {
	client *Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewUsersCache(client *Client, ttl time.Duration, log *slog.Logger) *UsersCache {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}

	return &UsersCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *UsersCache) Get(ctx context.Context) ([]user.User, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Raw().Get(ctx, usersListKey).Bytes()

	if err != nil {
		if err != redis.Nil {
			c.log.WarnContext(ctx, "users cache read failed", "err", err)
		}

		return nil, false
	}

	var users []user.User

	if err := json.Unmarshal(raw, &users); err != nil {
		c.log.WarnContext(ctx, "users cache decode failed", "err", err)
		return nil, false
	}

	return users, true
}

func (c *UsersCache) Set(ctx context.Context, users []user.User) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(users)

	if err != nil {
		c.log.WarnContext(ctx, "users cache encode failed", "err", err)
		return
	}

	if err := c.client.Raw().Set(ctx, usersListKey, raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "users cache write failed", "err", err)
	}
}

// Invalidate drops the cached list after any mutation.
func (c *UsersCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.client.Raw().Del(ctx, usersListKey).Err(); err != nil {
		c.log.WarnContext(ctx, "users cache invalidate failed", "err", err)
	}
}
