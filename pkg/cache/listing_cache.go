package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/campusmart/campusmart/pkg/campus"
)

const (
	// ListingCacheTTL is the time-to-live for cached listings.
	ListingCacheTTL = 24 * time.Hour

	listingCacheKeyPrefix = "listing"
)

// CachedListing is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash. It holds the subset of listing data
// needed to render a feed card without hitting Postgres.
type CachedListing struct {
	ID         uuid.UUID  `json:"id"`
	Campus     campus.Key `json:"campus"`
	Title      string     `json:"title"`
	Price      int64      `json:"price"`
	Category   string     `json:"category"`
	SellerName string     `json:"seller_name"`
	Sold       bool       `json:"sold"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ListingCache provides structured read/write operations for listing cache entries.
// Keys are scoped by campus to keep different institutions' feeds apart.
// Key format: "listing:{campus}:{listingID}"
type ListingCache struct {
	client *RedisClient
}

// NewListingCache creates a new ListingCache backed by the given RedisClient.
func NewListingCache(r *RedisClient) *ListingCache {
	return &ListingCache{client: r}
}

// Get retrieves a cached listing by campus + listing ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ListingCache) Get(ctx context.Context, key campus.Key, listingID uuid.UUID) (*CachedListing, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(key, listingID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	price, err := strconv.ParseInt(vals["price"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	sold, err := strconv.ParseBool(vals["sold"])
	if err != nil {
		return nil, fmt.Errorf("cache parse sold: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedListing{
		ID:         id,
		Campus:     campus.Key(vals["campus"]),
		Title:      vals["title"],
		Price:      price,
		Category:   vals["category"],
		SellerName: vals["seller_name"],
		Sold:       sold,
		CreatedAt:  createdAt,
	}, nil
}

// Set writes a cached listing as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ListingCache) Set(ctx context.Context, l *CachedListing) error {
	key := c.key(l.Campus, l.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", l.ID.String(),
		"campus", string(l.Campus),
		"title", l.Title,
		"price", strconv.FormatInt(l.Price, 10),
		"category", l.Category,
		"seller_name", l.SellerName,
		"sold", strconv.FormatBool(l.Sold),
		"created_at", l.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ListingCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// MarkSold flips the sold flag on a cached listing if it is present.
// A missing key is not an error; the next feed load repopulates the cache.
func (c *ListingCache) MarkSold(ctx context.Context, key campus.Key, listingID uuid.UUID, sold bool) error {
	k := c.key(key, listingID)
	exists, err := c.client.Client().Exists(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("cache exists: %w", err)
	}
	if exists == 0 {
		return nil
	}
	if err := c.client.Client().HSet(ctx, k, "sold", strconv.FormatBool(sold)).Err(); err != nil {
		return fmt.Errorf("cache mark sold: %w", err)
	}
	return nil
}

// Delete removes a cached listing.
func (c *ListingCache) Delete(ctx context.Context, key campus.Key, listingID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(key, listingID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "listing:{campus}:{listingID}"
func (c *ListingCache) key(k campus.Key, listingID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", listingCacheKeyPrefix, k, listingID)
}
