package service

import (
	"context"
	"log"
	"math"

	"fare/internal/domain"
)

// DistanceClient is the live mapping API used for the preferred route path.
// Implemented by the Google Maps wrapper; mocked in tests.
type DistanceClient interface {
	// Distance returns driving distance in km and duration in minutes
	// between two addresses.
	Distance(ctx context.Context, origin, destination string) (km float64, minutes int, err error)
}

// Average speeds for the fallback duration heuristic.
const (
	highwaySpeedKmh = 80.0 // long hauls, mostly highway
	citySpeedKmh    = 40.0
	highwayCutoffKm = 100.0
)

// RouteEstimator produces best-effort distance/duration estimates.
//
// Strategies are tried in a fixed order: the live mapping API (when a client
// is configured), great-circle distance from coordinates, then the static
// city-pair table. EstimateRoute never fails; degraded precision is
// signalled only via RouteEstimate.Source.
type RouteEstimator struct {
	distance DistanceClient // nil when no mapping API credential is configured
}

// NewRouteEstimator creates a RouteEstimator. distance may be nil, in which
// case the live API path is skipped entirely.
func NewRouteEstimator(distance DistanceClient) *RouteEstimator {
	return &RouteEstimator{distance: distance}
}

// EstimateRoute returns a best-effort estimate for the pair. It always
// succeeds: each strategy that cannot serve the pair falls through to the
// next, and the static table serves anything.
func (e *RouteEstimator) EstimateRoute(ctx context.Context, origin, destination domain.Location) domain.RouteEstimate {
	if est, ok := e.liveEstimate(ctx, origin, destination); ok {
		return est
	}
	if est, ok := haversineEstimate(origin, destination); ok {
		return est
	}
	return staticEstimate(origin, destination)
}

// liveEstimate queries the mapping API. Any transport error or missing
// client falls through to the next strategy.
func (e *RouteEstimator) liveEstimate(ctx context.Context, origin, destination domain.Location) (domain.RouteEstimate, bool) {
	if e.distance == nil {
		return domain.RouteEstimate{}, false
	}

	km, minutes, err := e.distance.Distance(ctx, origin.Address, destination.Address)
	if err != nil {
		log.Printf("route estimator: live API unavailable, falling back: %v", err)
		return domain.RouteEstimate{}, false
	}

	return domain.RouteEstimate{
		DistanceKm:      km,
		DurationMinutes: minutes,
		Source:          domain.RouteSourceLiveAPI,
	}, true
}

// haversineEstimate computes great-circle distance when both locations carry
// valid coordinates.
func haversineEstimate(origin, destination domain.Location) (domain.RouteEstimate, bool) {
	if !origin.Coordinates.Valid() || !destination.Coordinates.Valid() {
		return domain.RouteEstimate{}, false
	}

	km := HaversineKm(
		origin.Coordinates.Lat, origin.Coordinates.Lng,
		destination.Coordinates.Lat, destination.Coordinates.Lng,
	)

	return domain.RouteEstimate{
		DistanceKm:      km,
		DurationMinutes: estimateDurationMinutes(km),
		Source:          domain.RouteSourceHaversine,
	}, true
}

// staticEstimate serves pairs without coordinates from the city-pair table.
func staticEstimate(origin, destination domain.Location) domain.RouteEstimate {
	km := staticDistanceKm(origin.Address, destination.Address)

	return domain.RouteEstimate{
		DistanceKm:      km,
		DurationMinutes: estimateDurationMinutes(km),
		Source:          domain.RouteSourceStaticTable,
	}
}

// estimateDurationMinutes derives travel time from distance using an
// average-speed heuristic, rounded up to the next whole hour (minimum one).
func estimateDurationMinutes(distanceKm float64) int {
	avgSpeed := citySpeedKmh
	if distanceKm > highwayCutoffKm {
		avgSpeed = highwaySpeedKmh
	}

	minutes := distanceKm / avgSpeed * 60
	hours := int(math.Ceil(minutes / 60))
	if hours < 1 {
		hours = 1
	}
	return hours * 60
}
