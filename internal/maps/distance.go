// Package maps wraps the Google Maps Web Services client. Absence of an API
// key is a normal configuration state: callers construct this client only
// when a credential is present and otherwise rely on local fallbacks.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// DistanceService queries the Distance Matrix API for driving
// distance/duration between two addresses.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a DistanceService with the given API key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// Distance returns the driving distance in km and duration in minutes from
// origin to destination. Any non-OK element status is an error; the caller
// treats every error as "fall back".
func (s *DistanceService) Distance(ctx context.Context, origin, destination string) (float64, int, error) {
	r := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}

	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return 0, 0, fmt.Errorf("distance matrix error: %w", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, 0, fmt.Errorf("no route found between %q and %q", origin, destination)
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, 0, fmt.Errorf("distance matrix element status %s", element.Status)
	}

	km := float64(element.Distance.Meters) / 1000
	minutes := int(element.Duration.Minutes())
	return km, minutes, nil
}
