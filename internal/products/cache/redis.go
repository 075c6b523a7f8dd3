package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"product-catalog/internal/products"

	redislib "github.com/redis/go-redis/v9"
)

// keyPrefix namespaces product entries from other users of the same
// Redis instance.
const keyPrefix = "productCache:"

type RedisCache struct {
	client *redislib.Client
}

func NewRedis(client *redislib.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, id int64) (products.Product, error) {
	result, err := c.client.Get(ctx, key(id)).Result()
	if err != nil {
		if err == redislib.Nil {
			return products.Product{}, products.ErrCacheMiss
		}
		return products.Product{}, fmt.Errorf("cache get %d: %w", id, err)
	}

	var p products.Product
	if err := json.Unmarshal([]byte(result), &p); err != nil {
		return products.Product{}, fmt.Errorf("cache decode %d: %w", id, err)
	}
	return p, nil
}

// Set stores the product without a TTL; entries live until overwritten
// or evicted by the orchestration layer.
func (c *RedisCache) Set(ctx context.Context, p products.Product) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cache encode %d: %w", p.ID, err)
	}

	if err := c.client.Set(ctx, key(p.ID), payload, 0).Err(); err != nil {
		return fmt.Errorf("cache set %d: %w", p.ID, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete %d: %w", id, err)
	}
	return nil
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}
