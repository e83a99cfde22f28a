package service

import (
	"math"

	"fare/internal/domain"
)

// PricingService computes fare quotes from the static per-category rules.
// It is a pure calculator: identical inputs always produce identical output.
type PricingService struct {
	rules             map[domain.RideCategory]domain.PricingRule
	categoryDiscounts map[discountKey]int
	tierDiscounts     map[domain.SubscriptionTier]int
}

type discountKey struct {
	Category domain.RideCategory
	Tier     domain.SubscriptionTier
}

// NewPricingService creates a PricingService with the standard rule set.
func NewPricingService() *PricingService {
	return &PricingService{
		rules:             defaultPricingRules(),
		categoryDiscounts: defaultCategoryDiscounts(),
		tierDiscounts:     defaultTierDiscounts(),
	}
}

// defaultPricingRules returns the static per-category price configuration.
// Amounts are SAR.
func defaultPricingRules() map[domain.RideCategory]domain.PricingRule {
	return map[domain.RideCategory]domain.PricingRule{
		domain.CategoryShort: {
			PerKm:           3.0,
			PerMinute:       1.0,
			MinimumPrice:    20,
			MaximumPrice:    60,
			SurgeMultiplier: 1.2,
			ServiceFee:      5,
			Description:     "Quick city rides",
		},
		domain.CategoryMedium: {
			PerKm:           2.5,
			PerMinute:       0.8,
			MinimumPrice:    30,
			MaximumPrice:    120,
			SurgeMultiplier: 1.3,
			ServiceFee:      8,
			Description:     "Inter-city rides",
		},
		domain.CategoryLong: {
			PerKm:           2.0,
			PerMinute:       0.6,
			MinimumPrice:    50,
			MaximumPrice:    250,
			SurgeMultiplier: 1.4,
			ServiceFee:      12,
			Description:     "Long distance rides",
		},
		domain.CategoryPremium: {
			PerKm:           5.0,
			PerMinute:       1.5,
			MinimumPrice:    40,
			MaximumPrice:    400,
			SurgeMultiplier: 1.1,
			ServiceFee:      15,
			Description:     "Luxury service",
		},
	}
}

// defaultCategoryDiscounts returns the category-specific subscription
// discounts in percent.
func defaultCategoryDiscounts() map[discountKey]int {
	return map[discountKey]int{
		{domain.CategoryShort, domain.TierBasic}:        10,
		{domain.CategoryShort, domain.TierPremium}:      15,
		{domain.CategoryMedium, domain.TierBasic}:       8,
		{domain.CategoryMedium, domain.TierPremium}:     20,
		{domain.CategoryLong, domain.TierBasic}:         5,
		{domain.CategoryLong, domain.TierPremium}:       15,
		{domain.CategoryPremium, domain.TierPremium}:    25,
		{domain.CategoryPremium, domain.TierEnterprise}: 35,
	}
}

// defaultTierDiscounts returns the tier-level default discounts applied when
// no category-specific entry exists. These match the base discounts each
// plan advertises.
func defaultTierDiscounts() map[domain.SubscriptionTier]int {
	return map[domain.SubscriptionTier]int{
		domain.TierBasic:      10,
		domain.TierPremium:    20,
		domain.TierEnterprise: 30,
	}
}

// Rule returns the pricing rule for a category.
func (s *PricingService) Rule(category domain.RideCategory) (domain.PricingRule, error) {
	rule, ok := s.rules[category]
	if !ok {
		return domain.PricingRule{}, ErrUnknownCategory
	}
	return rule, nil
}

// Rules returns the full catalogue keyed by category.
func (s *PricingService) Rules() map[domain.RideCategory]domain.PricingRule {
	out := make(map[domain.RideCategory]domain.PricingRule, len(s.rules))
	for k, v := range s.rules {
		out[k] = v
	}
	return out
}

// ComputePrice computes a full price breakdown for a ride.
//
// Order matters: distance and duration components plus the service fee are
// summed, surge is applied, and only then is the result clamped to the
// category min/max. The discount applies to the clamped base price.
func (s *PricingService) ComputePrice(
	category domain.RideCategory,
	distanceKm float64,
	durationMinutes float64,
	tier domain.SubscriptionTier,
) (*domain.PriceBreakdown, error) {
	if distanceKm < 0 {
		return nil, ErrNegativeDistance
	}
	if durationMinutes < 0 {
		return nil, ErrNegativeDuration
	}

	rule, ok := s.rules[category]
	if !ok {
		return nil, ErrUnknownCategory
	}

	distancePrice := distanceKm * rule.PerKm
	durationPrice := durationMinutes * rule.PerMinute

	basePrice := distancePrice + durationPrice + rule.ServiceFee
	basePrice *= rule.SurgeMultiplier
	basePrice = math.Max(rule.MinimumPrice, math.Min(rule.MaximumPrice, basePrice))

	discountPct := s.resolveDiscount(category, tier)
	discountAmount := basePrice * float64(discountPct) / 100
	finalPrice := basePrice - discountAmount

	return &domain.PriceBreakdown{
		Category:           category,
		DistancePrice:      round2(distancePrice),
		DurationPrice:      round2(durationPrice),
		ServiceFee:         round2(rule.ServiceFee),
		SurgeMultiplier:    rule.SurgeMultiplier,
		BasePrice:          round2(basePrice),
		DiscountPercentage: discountPct,
		DiscountAmount:     round2(discountAmount),
		FinalPrice:         round2(finalPrice),
		Currency:           "SAR",
	}, nil
}

// resolveDiscount looks up the discount percentage for a category/tier pair:
// category-specific entry first, then the tier-level default, then zero.
func (s *PricingService) resolveDiscount(category domain.RideCategory, tier domain.SubscriptionTier) int {
	if tier == "" || tier == domain.TierNone {
		return 0
	}
	if pct, ok := s.categoryDiscounts[discountKey{category, tier}]; ok {
		return pct
	}
	return s.tierDiscounts[tier]
}

// round2 rounds a monetary value to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
