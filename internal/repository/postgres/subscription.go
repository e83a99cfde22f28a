package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fare/internal/domain"
)

// SubscriptionRepository reads subscription tiers from PostgreSQL. The
// subscriptions table is written by the billing provider's webhook
// processor, which is outside this service.
type SubscriptionRepository struct {
	q Querier
}

// NewSubscriptionRepository creates a new PostgreSQL subscription repository.
func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{q: db}
}

// GetTier returns the user's active subscription tier. A user with no
// active subscription resolves to TierNone without error.
func (r *SubscriptionRepository) GetTier(ctx context.Context, userID string) (domain.SubscriptionTier, error) {
	query := `
		SELECT tier FROM subscriptions
		WHERE user_id = $1 AND status = 'active'
		ORDER BY started_at DESC
		LIMIT 1
	`

	var tier string
	err := r.q.QueryRowContext(ctx, query, userID).Scan(&tier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.TierNone, nil
		}
		return domain.TierNone, err
	}

	switch t := domain.SubscriptionTier(tier); t {
	case domain.TierBasic, domain.TierPremium, domain.TierEnterprise:
		return t, nil
	default:
		// Unrecognized plan names price as unsubscribed rather than failing.
		return domain.TierNone, nil
	}
}
