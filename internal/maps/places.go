package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"fare/internal/domain"
)

// PlacesService queries the Places Text Search API for location candidates.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchPlaces returns location candidates for a free-text query. Results
// carry resolved coordinates; the caller applies its own result cap.
func (s *PlacesService) SearchPlaces(ctx context.Context, query string) ([]domain.Location, error) {
	r := &maps.TextSearchRequest{
		Query:  query,
		Region: "SA", // Bias results to Saudi Arabia
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []domain.Location
	for _, result := range resp.Results {
		address := result.FormattedAddress
		if address == "" {
			address = result.Name
		}
		results = append(results, domain.Location{
			Address: address,
			Coordinates: domain.Coordinates{
				Lat: result.Geometry.Location.Lat,
				Lng: result.Geometry.Location.Lng,
			},
			PlaceTags: result.Types,
		})
	}
	return results, nil
}
