package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps the redis connection used for content snapshots (crypto
// markets, weather by city). A nil Client is valid and behaves as a cache
// that never hits, so the service runs without redis configured.
type Client struct {
	inner *redis.Client
}

func New(addr, password string) *Client {
	if addr == "" {
		return nil
	}

	return &Client{
		inner: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0, // use default DB
		}),
	}
}

func snapshotKey(kind, scope string) string {
	if scope == "" {
		return fmt.Sprintf("onehub:snapshot:%s", kind)
	}
	return fmt.Sprintf("onehub:snapshot:%s:%s", kind, scope)
}

// PutSnapshot stores a JSON-encoded payload under kind/scope with a TTL.
func (c *Client) PutSnapshot(ctx context.Context, kind, scope string, payload interface{}, ttl time.Duration) error {
	if c == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return c.inner.Set(ctx, snapshotKey(kind, scope), body, ttl).Err()
}

// GetSnapshot loads a snapshot into dest. The boolean reports a hit; a miss
// (or nil client) is not an error.
func (c *Client) GetSnapshot(ctx context.Context, kind, scope string, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}

	body, err := c.inner.Get(ctx, snapshotKey(kind, scope)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return false, err
	}

	return true, nil
}

// Ping reports connectivity; used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.inner.Ping(ctx).Err()
}
