package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"fare/internal/domain"
)

// TierCacheTTL is short: a checkout or cancellation should be visible in
// pricing within a minute.
const TierCacheTTL = 60 * time.Second

const tierCachePrefix = "cache:tier:"

// TierCacheStore caches subscription tiers in Redis so the quote path does
// not hit the subscription store on every request.
type TierCacheStore struct {
	client *redis.Client
}

// NewTierCacheStore creates a new TierCacheStore.
func NewTierCacheStore(client *redis.Client) *TierCacheStore {
	return &TierCacheStore{client: client}
}

// GetTier retrieves a cached tier. The second return value is false on a
// cache miss.
func (s *TierCacheStore) GetTier(ctx context.Context, userID string) (domain.SubscriptionTier, bool, error) {
	val, err := s.client.Get(ctx, tierCachePrefix+userID).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil // Cache miss
		}
		return "", false, err
	}
	return domain.SubscriptionTier(val), true, nil
}

// SetTier stores a tier with the cache TTL. Tier none is cached too, so
// unsubscribed users do not hammer the store.
func (s *TierCacheStore) SetTier(ctx context.Context, userID string, tier domain.SubscriptionTier) error {
	return s.client.Set(ctx, tierCachePrefix+userID, string(tier), TierCacheTTL).Err()
}

// InvalidateTier removes a cached tier, for use when a subscription webhook
// lands.
func (s *TierCacheStore) InvalidateTier(ctx context.Context, userID string) error {
	return s.client.Del(ctx, tierCachePrefix+userID).Err()
}
