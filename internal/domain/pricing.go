package domain

// RideCategory is a fixed service tier determining pricing rules.
type RideCategory string

const (
	CategoryShort   RideCategory = "short"
	CategoryMedium  RideCategory = "medium"
	CategoryLong    RideCategory = "long"
	CategoryPremium RideCategory = "premium"
)

// Categories lists the fixed ride categories in catalogue order.
var Categories = []RideCategory{CategoryShort, CategoryMedium, CategoryLong, CategoryPremium}

// SubscriptionTier is a user's billing plan level, consulted only to
// resolve a discount percentage.
type SubscriptionTier string

const (
	TierNone       SubscriptionTier = "none"
	TierBasic      SubscriptionTier = "basic"
	TierPremium    SubscriptionTier = "premium"
	TierEnterprise SubscriptionTier = "enterprise"
)

// PricingRule is the static per-category price configuration.
// MinimumPrice <= MaximumPrice; all monetary fields are non-negative.
type PricingRule struct {
	PerKm           float64
	PerMinute       float64
	MinimumPrice    float64
	MaximumPrice    float64
	SurgeMultiplier float64 // static per-category factor, >= 1.0
	ServiceFee      float64
	Description     string
}

// PriceBreakdown is the computed quote. Constructed once per request and
// never mutated. Monetary values are rounded to 2 decimals at the boundary;
// internal math keeps full precision.
type PriceBreakdown struct {
	Category           RideCategory
	DistancePrice      float64
	DurationPrice      float64
	ServiceFee         float64
	SurgeMultiplier    float64
	BasePrice          float64 // components summed, surge applied, clamped
	DiscountPercentage int
	DiscountAmount     float64
	FinalPrice         float64
	Currency           string
}
