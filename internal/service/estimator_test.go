package service

import (
	"context"
	"errors"
	"testing"

	"fare/internal/domain"
)

// fakeDistanceClient is a test double for the live mapping API.
type fakeDistanceClient struct {
	km      float64
	minutes int
	err     error
	calls   int
}

func (f *fakeDistanceClient) Distance(ctx context.Context, origin, destination string) (float64, int, error) {
	f.calls++
	if f.err != nil {
		return 0, 0, f.err
	}
	return f.km, f.minutes, nil
}

func riyadh() domain.Location {
	return domain.Location{
		Address:     "Riyadh City Center, Riyadh, Saudi Arabia",
		Coordinates: domain.Coordinates{Lat: 24.7136, Lng: 46.6753},
	}
}

func jeddah() domain.Location {
	return domain.Location{
		Address:     "Al Balad (Old Town), Jeddah, Saudi Arabia",
		Coordinates: domain.Coordinates{Lat: 21.4858, Lng: 39.1925},
	}
}

func TestEstimateRoute_PrefersLiveAPI(t *testing.T) {
	client := &fakeDistanceClient{km: 12.3, minutes: 25}
	estimator := NewRouteEstimator(client)

	est := estimator.EstimateRoute(context.Background(), riyadh(), jeddah())

	if est.Source != domain.RouteSourceLiveAPI {
		t.Errorf("expected live API source, got %s", est.Source)
	}
	if est.DistanceKm != 12.3 {
		t.Errorf("expected distance 12.3, got %v", est.DistanceKm)
	}
	// Live API durations are taken as-is, no hour rounding.
	if est.DurationMinutes != 25 {
		t.Errorf("expected duration 25, got %d", est.DurationMinutes)
	}
	if client.calls != 1 {
		t.Errorf("expected 1 API call, got %d", client.calls)
	}
}

func TestEstimateRoute_LiveFailureFallsBackToHaversine(t *testing.T) {
	client := &fakeDistanceClient{err: errors.New("upstream unavailable")}
	estimator := NewRouteEstimator(client)

	est := estimator.EstimateRoute(context.Background(), riyadh(), jeddah())

	if est.Source != domain.RouteSourceHaversine {
		t.Errorf("expected haversine source, got %s", est.Source)
	}
	// Great-circle Riyadh->Jeddah is about 845 km.
	if est.DistanceKm < 840 || est.DistanceKm > 850 {
		t.Errorf("expected distance near 845 km, got %v", est.DistanceKm)
	}
	// 845/80 km/h = 633.8 min, rounded up to 11 hours.
	if est.DurationMinutes != 660 {
		t.Errorf("expected duration 660, got %d", est.DurationMinutes)
	}
}

func TestEstimateRoute_NoClientUsesHaversine(t *testing.T) {
	estimator := NewRouteEstimator(nil)

	// Two points 430 km apart along a meridian: 3.867 degrees of latitude.
	origin := domain.Location{
		Address:     "A",
		Coordinates: domain.Coordinates{Lat: 10.0, Lng: 30.0},
	}
	destination := domain.Location{
		Address:     "B",
		Coordinates: domain.Coordinates{Lat: 13.867, Lng: 30.0},
	}

	est := estimator.EstimateRoute(context.Background(), origin, destination)

	if est.Source != domain.RouteSourceHaversine {
		t.Errorf("expected haversine source, got %s", est.Source)
	}
	if est.DistanceKm < 425 || est.DistanceKm > 435 {
		t.Errorf("expected distance near 430 km, got %v", est.DistanceKm)
	}
	// 430/80 = 322.5 min, rounded up to the next hour: 360.
	if est.DurationMinutes != 360 {
		t.Errorf("expected duration 360, got %d", est.DurationMinutes)
	}
}

func TestEstimateRoute_StaticTableCityPair(t *testing.T) {
	estimator := NewRouteEstimator(nil)

	origin := domain.Location{Address: "Riyadh"}
	destination := domain.Location{Address: "Jeddah"}

	est := estimator.EstimateRoute(context.Background(), origin, destination)

	if est.Source != domain.RouteSourceStaticTable {
		t.Errorf("expected static table source, got %s", est.Source)
	}
	if est.DistanceKm != 850 {
		t.Errorf("expected 850 km, got %v", est.DistanceKm)
	}
	// 850/80 = 637.5 min, rounded up to 11 hours.
	if est.DurationMinutes != 660 {
		t.Errorf("expected duration 660, got %d", est.DurationMinutes)
	}
}

func TestEstimateRoute_StaticTableMatchesCaseInsensitively(t *testing.T) {
	estimator := NewRouteEstimator(nil)

	est := estimator.EstimateRoute(context.Background(),
		domain.Location{Address: "Downtown RIYADH"},
		domain.Location{Address: "king khalid international airport"},
	)

	if est.DistanceKm != 35 {
		t.Errorf("expected 35 km airport transfer, got %v", est.DistanceKm)
	}
}

func TestEstimateRoute_StaticTableAirportDefault(t *testing.T) {
	estimator := NewRouteEstimator(nil)

	est := estimator.EstimateRoute(context.Background(),
		domain.Location{Address: "Unknown Airport"},
		domain.Location{Address: "Somewhere"},
	)

	if est.DistanceKm != 50 {
		t.Errorf("expected 50 km airport default, got %v", est.DistanceKm)
	}
	// 50/40 = 75 min, rounded up to 2 hours.
	if est.DurationMinutes != 120 {
		t.Errorf("expected duration 120, got %d", est.DurationMinutes)
	}
}

func TestEstimateRoute_StaticTableGenericDefault(t *testing.T) {
	estimator := NewRouteEstimator(nil)

	est := estimator.EstimateRoute(context.Background(),
		domain.Location{Address: "Nowhere"},
		domain.Location{Address: "Elsewhere"},
	)

	if est.DistanceKm != 200 {
		t.Errorf("expected 200 km default, got %v", est.DistanceKm)
	}
	// 200 km is highway speed: 200/80 = 150 min, rounded up to 3 hours.
	if est.DurationMinutes != 180 {
		t.Errorf("expected duration 180, got %d", est.DurationMinutes)
	}
}

func TestEstimateRoute_ZeroDistanceStillPositiveDuration(t *testing.T) {
	estimator := NewRouteEstimator(nil)

	same := riyadh()
	est := estimator.EstimateRoute(context.Background(), same, same)

	if est.Source != domain.RouteSourceHaversine {
		t.Errorf("expected haversine source, got %s", est.Source)
	}
	if est.DistanceKm != 0 {
		t.Errorf("expected 0 km, got %v", est.DistanceKm)
	}
	if est.DurationMinutes != 60 {
		t.Errorf("expected minimum duration 60, got %d", est.DurationMinutes)
	}
}

func TestEstimateRoute_FallbackDurationsAreWholeHours(t *testing.T) {
	estimator := NewRouteEstimator(nil)

	pairs := []struct {
		origin, destination domain.Location
	}{
		{riyadh(), jeddah()},
		{domain.Location{Address: "Riyadh"}, domain.Location{Address: "Dammam"}},
		{domain.Location{Address: "x"}, domain.Location{Address: "y"}},
		{domain.Location{Address: "Jeddah"}, domain.Location{Address: "airport"}},
	}

	for _, p := range pairs {
		est := estimator.EstimateRoute(context.Background(), p.origin, p.destination)
		if est.Source == domain.RouteSourceLiveAPI {
			t.Fatalf("unexpected live source without client")
		}
		if est.DurationMinutes <= 0 || est.DurationMinutes%60 != 0 {
			t.Errorf("fallback duration %d is not a positive multiple of 60", est.DurationMinutes)
		}
	}
}

func TestEstimateRoute_InvalidCoordinatesSkipHaversine(t *testing.T) {
	estimator := NewRouteEstimator(nil)

	origin := domain.Location{
		Address:     "Riyadh",
		Coordinates: domain.Coordinates{Lat: 95.0, Lng: 46.0}, // out of range
	}
	est := estimator.EstimateRoute(context.Background(), origin, jeddah())

	if est.Source != domain.RouteSourceStaticTable {
		t.Errorf("expected static table source for invalid coordinates, got %s", est.Source)
	}
}
