package repository

import (
	"context"

	"fare/internal/domain"
)

// SubscriptionRepository reads a user's current subscription tier from the
// external store.
type SubscriptionRepository interface {
	// GetTier returns the user's active subscription tier. "No active
	// subscription" is a valid result (TierNone, nil), not an error.
	GetTier(ctx context.Context, userID string) (domain.SubscriptionTier, error)
}
