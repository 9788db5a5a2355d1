package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"promogen/internal/contextutil"
)

const (
	crossRefKeyPrefix = "crossref:"
	contentKeyPrefix  = "campaign:"
)

// NewRedisClient creates a redis client for the given address and verifies
// connectivity with a ping.
func NewRedisClient(addr string) (*goredis.Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

// RedisPinger adapts a redis client to a plain Ping method for health
// checks.
type RedisPinger struct {
	rdb *goredis.Client
}

// NewRedisPinger creates a new RedisPinger.
func NewRedisPinger(rdb *goredis.Client) *RedisPinger {
	return &RedisPinger{rdb: rdb}
}

// Ping verifies connectivity to redis.
func (p *RedisPinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

// RedisCrossRefRepo implements CrossRefStore on redis with JSON values
// keyed by product id.
type RedisCrossRefRepo struct {
	rdb *goredis.Client
}

// NewRedisCrossRefRepo creates a new RedisCrossRefRepo.
func NewRedisCrossRefRepo(rdb *goredis.Client) *RedisCrossRefRepo {
	return &RedisCrossRefRepo{rdb: rdb}
}

// Put writes a cross-reference record, overwriting any prior record for
// the same product.
func (r *RedisCrossRefRepo) Put(ctx context.Context, ref *CrossRef) error {
	logger := contextutil.LoggerFromContext(ctx)

	raw, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("failed to marshal cross-reference: %w", err)
	}
	if err := r.rdb.Set(ctx, crossRefKeyPrefix+ref.ProductID, raw, 0).Err(); err != nil {
		logger.ErrorContext(ctx, "failed to write cross-reference", "product_id", ref.ProductID, "error", err)
		return fmt.Errorf("failed to write cross-reference for %s: %w", ref.ProductID, err)
	}

	logger.InfoContext(ctx, "cross-reference stored", "product_id", ref.ProductID, "campaign_id", ref.CampaignID)
	return nil
}

// Get fetches the cross-reference record for a product.
func (r *RedisCrossRefRepo) Get(ctx context.Context, productID string) (*CrossRef, error) {
	raw, err := r.rdb.Get(ctx, crossRefKeyPrefix+productID).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cross-reference for %s: %w", productID, err)
	}

	var ref CrossRef
	if err := json.Unmarshal(raw, &ref); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cross-reference for %s: %w", productID, err)
	}
	return &ref, nil
}

// RedisContentRepo implements ContentStore on redis with JSON values
// keyed by campaign id.
type RedisContentRepo struct {
	rdb *goredis.Client
}

// NewRedisContentRepo creates a new RedisContentRepo.
func NewRedisContentRepo(rdb *goredis.Client) *RedisContentRepo {
	return &RedisContentRepo{rdb: rdb}
}

// Put writes the full generated content for a campaign, replacing any
// prior document.
func (r *RedisContentRepo) Put(ctx context.Context, content *CampaignContent) error {
	logger := contextutil.LoggerFromContext(ctx)

	raw, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal campaign content: %w", err)
	}
	if err := r.rdb.Set(ctx, contentKeyPrefix+content.CampaignID, raw, 0).Err(); err != nil {
		logger.ErrorContext(ctx, "failed to write campaign content", "campaign_id", content.CampaignID, "error", err)
		return fmt.Errorf("failed to write campaign content for %s: %w", content.CampaignID, err)
	}

	logger.InfoContext(ctx, "campaign content stored", "campaign_id", content.CampaignID, "days", len(content.Days))
	return nil
}

// Get fetches the stored content for a campaign.
func (r *RedisContentRepo) Get(ctx context.Context, campaignID string) (*CampaignContent, error) {
	raw, err := r.rdb.Get(ctx, contentKeyPrefix+campaignID).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign content for %s: %w", campaignID, err)
	}

	var content CampaignContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign content for %s: %w", campaignID, err)
	}
	return &content, nil
}
