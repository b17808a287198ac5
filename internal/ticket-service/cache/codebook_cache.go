package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/ticket-shop-poc/internal/ticket-service/codebook"
)

const bookKey = "codebook:current"

type Cache struct{ R *redis.Client }

func New(r *redis.Client) *Cache { return &Cache{R: r} }

func (c *Cache) GetCodebook(ctx context.Context) ([]codebook.Entry, bool, error) {
	b, err := c.R.Get(ctx, bookKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var book []codebook.Entry
	if err := json.Unmarshal(b, &book); err != nil {
		return nil, false, err
	}
	return book, true, nil
}

func (c *Cache) SetCodebook(ctx context.Context, book []codebook.Entry, ttl time.Duration) error {
	b, _ := json.Marshal(book)
	return c.R.Set(ctx, bookKey, b, ttl).Err()
}
