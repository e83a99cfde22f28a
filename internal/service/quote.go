package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"fare/internal/domain"
	"fare/internal/redis"
	"fare/internal/repository"
)

// DefaultUpstreamTimeout bounds every external call made while quoting
// (subscription store, ride persistence). A timeout is treated the same as
// "service unavailable" and triggers the respective fallback.
const DefaultUpstreamTimeout = 5 * time.Second

// QuoteService is the façade a booking client invokes: it resolves the route
// estimate and the caller's subscription tier, prices the ride, and
// optionally appends a ride record.
type QuoteService struct {
	estimator        *RouteEstimator
	pricing          *PricingService
	subscriptionRepo repository.SubscriptionRepository
	rideRepo         repository.RideRepository
	tierCache        redis.TierCacheInterface
	upstreamTimeout  time.Duration
}

// NewQuoteService creates a QuoteService. subscriptionRepo, rideRepo and
// tierCache may be nil; each missing collaborator degrades to its fallback
// (tier none, no persistence, no caching). A non-positive upstreamTimeout
// selects the default.
func NewQuoteService(
	estimator *RouteEstimator,
	pricing *PricingService,
	subscriptionRepo repository.SubscriptionRepository,
	rideRepo repository.RideRepository,
	tierCache redis.TierCacheInterface,
	upstreamTimeout time.Duration,
) *QuoteService {
	if upstreamTimeout <= 0 {
		upstreamTimeout = DefaultUpstreamTimeout
	}
	return &QuoteService{
		estimator:        estimator,
		pricing:          pricing,
		subscriptionRepo: subscriptionRepo,
		rideRepo:         rideRepo,
		tierCache:        tierCache,
		upstreamTimeout:  upstreamTimeout,
	}
}

// QuoteRequest contains the parameters for quoting a ride. DistanceKm and
// DurationMinutes are optional; when either is missing the route estimator
// fills in both.
type QuoteRequest struct {
	UserID          string
	Origin          domain.Location
	Destination     domain.Location
	Category        domain.RideCategory
	DistanceKm      *float64
	DurationMinutes *float64
}

// QuoteResult contains the computed breakdown plus the route figures that
// produced it. RouteSource is empty when the caller supplied the route.
type QuoteResult struct {
	Breakdown       *domain.PriceBreakdown
	DistanceKm      float64
	DurationMinutes float64
	RouteSource     domain.RouteSource
	Tier            domain.SubscriptionTier
}

// Quote computes a price breakdown for a ride.
//
// Only invalid input and an unknown category abort the quote. Upstream
// unavailability never does: a failed tier lookup degrades to tier none and
// a failed live route call degrades through the estimator's fallback chain,
// so the caller can always display some price.
func (s *QuoteService) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	if err := s.validateQuoteRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.pricing.Rule(req.Category); err != nil {
		return nil, err
	}

	distanceKm, durationMinutes, source := s.resolveRoute(ctx, req)
	tier := s.resolveTier(ctx, req.UserID)

	breakdown, err := s.pricing.ComputePrice(req.Category, distanceKm, durationMinutes, tier)
	if err != nil {
		return nil, err
	}

	return &QuoteResult{
		Breakdown:       breakdown,
		DistanceKm:      distanceKm,
		DurationMinutes: durationMinutes,
		RouteSource:     source,
		Tier:            tier,
	}, nil
}

// BookResult is the outcome of quoting and persisting a ride.
type BookResult struct {
	Ride      *domain.RideRecord
	Persisted bool
}

// Book quotes the ride and appends a ride record. Persistence failure does
// not void the quote: the record is still returned, marked unpersisted.
func (s *QuoteService) Book(ctx context.Context, req QuoteRequest) (*BookResult, error) {
	result, err := s.Quote(ctx, req)
	if err != nil {
		return nil, err
	}

	ride := &domain.RideRecord{
		ID:              uuid.New().String(),
		UserID:          req.UserID,
		Category:        req.Category,
		Origin:          req.Origin.Address,
		Destination:     req.Destination.Address,
		DistanceKm:      result.DistanceKm,
		DurationMinutes: int(result.DurationMinutes),
		Breakdown:       *result.Breakdown,
		RouteSource:     result.RouteSource,
		Status:          domain.RideStatusQuoted,
		CreatedAt:       time.Now(),
	}

	persisted := false
	if s.rideRepo != nil {
		saveCtx, cancel := context.WithTimeout(ctx, s.upstreamTimeout)
		defer cancel()

		if err := s.rideRepo.Create(saveCtx, ride); err != nil {
			log.Printf("quote: ride record not persisted (id=%s): %v", ride.ID, err)
		} else {
			persisted = true
		}
	}

	return &BookResult{Ride: ride, Persisted: persisted}, nil
}

// GetRide retrieves a persisted ride record.
func (s *QuoteService) GetRide(ctx context.Context, rideID string) (*domain.RideRecord, error) {
	if rideID == "" {
		return nil, ErrInvalidRideID
	}
	return s.rideRepo.GetByID(ctx, rideID)
}

// RideHistory returns a user's most recent ride records.
func (s *QuoteService) RideHistory(ctx context.Context, userID string, limit int) ([]*domain.RideRecord, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if limit <= 0 {
		limit = 20
	}
	return s.rideRepo.GetByUser(ctx, userID, limit)
}

func (s *QuoteService) validateQuoteRequest(req QuoteRequest) error {
	if req.UserID == "" {
		return ErrInvalidUserID
	}
	if req.Origin.Address == "" {
		return ErrInvalidOrigin
	}
	if req.Destination.Address == "" {
		return ErrInvalidDestination
	}
	if !coordinatesUsable(req.Origin.Coordinates) || !coordinatesUsable(req.Destination.Coordinates) {
		return ErrInvalidCoordinates
	}
	if req.DistanceKm != nil && *req.DistanceKm < 0 {
		return ErrNegativeDistance
	}
	if req.DurationMinutes != nil && *req.DurationMinutes < 0 {
		return ErrNegativeDuration
	}
	return nil
}

// coordinatesUsable accepts either an unresolved zero pair (routing then
// falls back to the static table) or a pair within WGS84 bounds. Malformed
// pairs are rejected rather than normalized.
func coordinatesUsable(c domain.Coordinates) bool {
	if c.Lat == 0 && c.Lng == 0 {
		return true
	}
	return c.Valid()
}

// resolveRoute uses the caller-supplied figures when both are present,
// otherwise runs the estimator.
func (s *QuoteService) resolveRoute(ctx context.Context, req QuoteRequest) (float64, float64, domain.RouteSource) {
	if req.DistanceKm != nil && req.DurationMinutes != nil {
		return *req.DistanceKm, *req.DurationMinutes, ""
	}

	routeCtx, cancel := context.WithTimeout(ctx, s.upstreamTimeout)
	defer cancel()

	est := s.estimator.EstimateRoute(routeCtx, req.Origin, req.Destination)
	return est.DistanceKm, float64(est.DurationMinutes), est.Source
}

// resolveTier looks up the user's subscription tier: cache first, then the
// store. The whole resolution, Redis included, is bounded by the upstream
// timeout. Lookup failure is absorbed as tier none so pricing never blocks
// on the subscription store.
func (s *QuoteService) resolveTier(ctx context.Context, userID string) domain.SubscriptionTier {
	lookupCtx, cancel := context.WithTimeout(ctx, s.upstreamTimeout)
	defer cancel()

	if s.tierCache != nil {
		if tier, ok, err := s.tierCache.GetTier(lookupCtx, userID); err == nil && ok {
			return tier
		}
	}

	if s.subscriptionRepo == nil {
		return domain.TierNone
	}

	tier, err := s.subscriptionRepo.GetTier(lookupCtx, userID)
	if err != nil {
		log.Printf("quote: tier lookup failed for user %s, pricing without discount: %v", userID, err)
		return domain.TierNone
	}

	if s.tierCache != nil {
		_ = s.tierCache.SetTier(lookupCtx, userID, tier)
	}

	return tier
}
