package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe: connectivity errors behave like
// cache misses so the API keeps serving from MySQL when redis is down.
type Client struct {
	client *redis.Client
}

// New creates a new Redis-backed cache client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Get returns the raw value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and transport errors alike count as a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
	return nil
}

// Delete removes a key, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Del(ctx, key).Err()
	return nil
}

// GetJSON unmarshals a cached value into dest. Returns false on miss or
// decode failure.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	data, _ := c.Get(ctx, key)
	if data == nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON marshals value and stores it with TTL. Marshal failures are
// ignored; the entry is simply not cached.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, payload, ttl)
}
