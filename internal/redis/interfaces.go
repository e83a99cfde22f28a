package redis

import (
	"context"

	"fare/internal/domain"
)

// TierCacheInterface defines the subscription-tier cache operations.
type TierCacheInterface interface {
	GetTier(ctx context.Context, userID string) (domain.SubscriptionTier, bool, error)
	SetTier(ctx context.Context, userID string, tier domain.SubscriptionTier) error
}

// Ensure concrete types implement interfaces.
var _ TierCacheInterface = (*TierCacheStore)(nil)
