package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fare/internal/domain"
)

func TestLocationSearch_ByName(t *testing.T) {
	directory := NewLocationDirectory()

	results := directory.Search("corniche")
	if len(results) != 3 {
		t.Fatalf("expected 3 corniche results, got %d", len(results))
	}
	for _, loc := range results {
		if !strings.Contains(strings.ToLower(loc.Address), "corniche") {
			t.Errorf("unexpected result %q", loc.Address)
		}
		if !loc.Coordinates.Valid() {
			t.Errorf("result %q has unresolved coordinates", loc.Address)
		}
	}
}

func TestLocationSearch_ByCityCaseInsensitive(t *testing.T) {
	directory := NewLocationDirectory()

	results := directory.Search("RIYADH")
	if len(results) == 0 {
		t.Fatal("expected results for RIYADH")
	}
	for _, loc := range results {
		if loc.City != "Riyadh" {
			t.Errorf("expected Riyadh results, got city %q", loc.City)
		}
		if loc.Region != "Riyadh Province" {
			t.Errorf("expected Riyadh Province, got %q", loc.Region)
		}
	}
}

func TestLocationSearch_CapsResults(t *testing.T) {
	directory := NewLocationDirectory()

	// "a" matches nearly everything; output stays capped.
	results := directory.Search("a")
	if len(results) != maxLocationResults {
		t.Errorf("expected %d results, got %d", maxLocationResults, len(results))
	}
}

func TestLocationSearch_AirportsAreTagged(t *testing.T) {
	directory := NewLocationDirectory()

	results := directory.Search("airport")
	if len(results) == 0 {
		t.Fatal("expected airport results")
	}
	for _, loc := range results {
		if !loc.HasTag("airport") {
			t.Errorf("expected airport tag on %q", loc.Address)
		}
	}
}

func TestLocationSearch_EmptyQuery(t *testing.T) {
	directory := NewLocationDirectory()

	if results := directory.Search("  "); results != nil {
		t.Errorf("expected no results for blank query, got %d", len(results))
	}
}

// fakePlaceSearcher is a test double for the live place search API.
type fakePlaceSearcher struct {
	results []domain.Location
	err     error
	calls   int
}

func (f *fakePlaceSearcher) SearchPlaces(ctx context.Context, query string) ([]domain.Location, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func TestLocationService_PrefersLiveSearch(t *testing.T) {
	searcher := &fakePlaceSearcher{results: []domain.Location{
		{Address: "Kingdom Centre, Riyadh", Coordinates: domain.Coordinates{Lat: 24.7113, Lng: 46.6745}},
	}}
	svc := NewLocationService(searcher, NewLocationDirectory())

	results := svc.Search(context.Background(), "kingdom centre")
	if len(results) != 1 {
		t.Fatalf("expected 1 live result, got %d", len(results))
	}
	if results[0].Address != "Kingdom Centre, Riyadh" {
		t.Errorf("unexpected result %q", results[0].Address)
	}
	if searcher.calls != 1 {
		t.Errorf("expected 1 API call, got %d", searcher.calls)
	}
}

func TestLocationService_LiveFailureFallsBackToDirectory(t *testing.T) {
	searcher := &fakePlaceSearcher{err: errors.New("quota exceeded")}
	svc := NewLocationService(searcher, NewLocationDirectory())

	results := svc.Search(context.Background(), "corniche")
	if len(results) != 3 {
		t.Fatalf("expected 3 directory results, got %d", len(results))
	}
}

func TestLocationService_EmptyLiveResultsFallBackToDirectory(t *testing.T) {
	searcher := &fakePlaceSearcher{}
	svc := NewLocationService(searcher, NewLocationDirectory())

	results := svc.Search(context.Background(), "riyadh")
	if len(results) == 0 {
		t.Fatal("expected directory results when the live search finds nothing")
	}
}

func TestLocationService_CapsLiveResults(t *testing.T) {
	var many []domain.Location
	for i := 0; i < 20; i++ {
		many = append(many, domain.Location{Address: "Place", Coordinates: domain.Coordinates{Lat: 24, Lng: 46}})
	}
	svc := NewLocationService(&fakePlaceSearcher{results: many}, NewLocationDirectory())

	results := svc.Search(context.Background(), "place")
	if len(results) != maxLocationResults {
		t.Errorf("expected %d results, got %d", maxLocationResults, len(results))
	}
}

func TestLocationService_NoSearcherUsesDirectory(t *testing.T) {
	svc := NewLocationService(nil, NewLocationDirectory())

	results := svc.Search(context.Background(), "airport")
	if len(results) == 0 {
		t.Fatal("expected directory results without a live searcher")
	}
}
