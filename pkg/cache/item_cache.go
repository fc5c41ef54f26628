package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// DefaultItemTTL is used when NewItemCache receives a non-positive TTL.
const DefaultItemTTL = 24 * time.Hour

const itemCacheKeyPrefix = "item"

// CachedItem is the denormalized read model stored in Redis as a hash.
type CachedItem struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	CreatedBy string
	CreatedAt time.Time
	UpdatedBy *string
	UpdatedAt *time.Time
}

// ItemCache provides structured read/write operations for catalog item
// cache entries. Key format: "item:{itemID}".
type ItemCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewItemCache creates an ItemCache backed by r whose entries expire after ttl.
func NewItemCache(r *RedisClient, ttl time.Duration) *ItemCache {
	if ttl <= 0 {
		ttl = DefaultItemTTL
	}
	return &ItemCache{client: r, ttl: ttl}
}

// Get retrieves a cached item by id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, id int64) (*CachedItem, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}

	itemID, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	price, err := decimal.NewFromString(vals["price"])
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	item := &CachedItem{
		ID:        itemID,
		Name:      vals["name"],
		Price:     price,
		CreatedBy: vals["created_by"],
		CreatedAt: createdAt,
	}
	if v := vals["updated_by"]; v != "" {
		item.UpdatedBy = &v
	}
	if v := vals["updated_at"]; v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("cache parse updated_at: %w", err)
		}
		item.UpdatedAt = &t
	}
	return item, nil
}

// Set writes a cached item as a Redis hash with the configured TTL.
// The key is deleted first so optional fields from a previous version do
// not linger; the pipeline runs as one MULTI/EXEC.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	key := c.key(item.ID)
	pipe := c.client.Client().TxPipeline()
	c.write(ctx, pipe, key, item)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Add writes item only when no entry exists for its id and reports whether
// it did. A concurrent write to the key between the check and the write
// aborts the transaction, so a read-through fill never overwrites a newer
// entry stored by Set.
func (c *ItemCache) Add(ctx context.Context, item *CachedItem) (bool, error) {
	key := c.key(item.ID)
	added := false
	err := c.client.Client().Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil || n > 0 {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			c.write(ctx, pipe, key, item)
			return nil
		})
		if err == nil {
			added = true
		}
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache add: %w", err)
	}
	return added, nil
}

func (c *ItemCache) write(ctx context.Context, pipe redis.Pipeliner, key string, item *CachedItem) {
	fields := []any{
		"id", strconv.FormatInt(item.ID, 10),
		"name", item.Name,
		"price", item.Price.StringFixed(2),
		"created_by", item.CreatedBy,
		"created_at", item.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if item.UpdatedBy != nil {
		fields = append(fields, "updated_by", *item.UpdatedBy)
	}
	if item.UpdatedAt != nil {
		fields = append(fields, "updated_at", item.UpdatedAt.UTC().Format(time.RFC3339Nano))
	}

	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields...)
	pipe.Expire(ctx, key, c.ttl)
}

// Delete removes a cached item.
func (c *ItemCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "item:{itemID}"
func (c *ItemCache) key(id int64) string {
	return fmt.Sprintf("%s:%d", itemCacheKeyPrefix, id)
}
