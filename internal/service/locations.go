package service

import (
	"context"
	"log"
	"strings"

	"fare/internal/domain"
)

// maxLocationResults caps search output from both the live and static paths.
const maxLocationResults = 8

// PlaceSearcher is the live place search tried before the static directory.
// Implemented by the Google Places wrapper; mocked in tests.
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, query string) ([]domain.Location, error)
}

// LocationService resolves location searches: the live place API when a
// client is configured, the static directory otherwise. Like the route
// estimator it never fails; a live API error degrades to the directory.
type LocationService struct {
	search    PlaceSearcher // nil when no mapping API credential is configured
	directory *LocationDirectory
}

// NewLocationService creates a LocationService. search may be nil, in which
// case only the static directory is consulted.
func NewLocationService(search PlaceSearcher, directory *LocationDirectory) *LocationService {
	return &LocationService{search: search, directory: directory}
}

// Search returns up to 8 location candidates for the query. An empty query
// returns nothing.
func (s *LocationService) Search(ctx context.Context, query string) []domain.Location {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}

	if s.search != nil {
		results, err := s.search.SearchPlaces(ctx, q)
		if err != nil {
			log.Printf("location search: live API unavailable, using directory: %v", err)
		} else if len(results) > 0 {
			if len(results) > maxLocationResults {
				results = results[:maxLocationResults]
			}
			return results
		}
	}

	return s.directory.Search(q)
}

// LocationDirectory serves the static Saudi place dataset used when no
// place-search API is configured. Entries carry resolved coordinates, so
// quotes built from them take the great-circle route path.
type LocationDirectory struct {
	places []directoryPlace
}

type directoryPlace struct {
	Name   string
	City   string
	Tags   []string
	Coords domain.Coordinates
}

// NewLocationDirectory creates a directory over the built-in dataset.
func NewLocationDirectory() *LocationDirectory {
	return &LocationDirectory{places: saudiPlaces}
}

// Search returns up to 8 locations whose name or city contains the query,
// case-insensitively. An empty query returns nothing.
func (d *LocationDirectory) Search(query string) []domain.Location {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []domain.Location
	for _, p := range d.places {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.City), q) {
			continue
		}
		results = append(results, domain.Location{
			Address:     p.Name + ", " + p.City + ", Saudi Arabia",
			Coordinates: p.Coords,
			City:        p.City,
			Region:      cityRegion(p.City),
			Country:     "Saudi Arabia",
			PlaceTags:   p.Tags,
		})
		if len(results) == maxLocationResults {
			break
		}
	}
	return results
}

func cityRegion(city string) string {
	if region, ok := cityRegions[city]; ok {
		return region
	}
	return "Saudi Arabia"
}

var cityRegions = map[string]string{
	"Riyadh":    "Riyadh Province",
	"Jeddah":    "Makkah Province",
	"Mecca":     "Makkah Province",
	"Medina":    "Medina Province",
	"Dammam":    "Eastern Province",
	"Al Khobar": "Eastern Province",
	"Dhahran":   "Eastern Province",
	"Taif":      "Makkah Province",
	"Abha":      "Asir Province",
	"Tabuk":     "Tabuk Province",
	"Hail":      "Hail Province",
	"Najran":    "Najran Province",
	"NEOM":      "Tabuk Province",
	"Al-Ula":    "Medina Province",
}

var saudiPlaces = []directoryPlace{
	// Airports.
	{"King Khalid International Airport", "Riyadh", []string{"airport"}, domain.Coordinates{Lat: 24.9576, Lng: 46.6988}},
	{"King Abdulaziz International Airport", "Jeddah", []string{"airport"}, domain.Coordinates{Lat: 21.6796, Lng: 39.1565}},
	{"King Fahd International Airport", "Dammam", []string{"airport"}, domain.Coordinates{Lat: 26.4711, Lng: 49.7979}},
	{"Prince Mohammed bin Abdulaziz Airport", "Medina", []string{"airport"}, domain.Coordinates{Lat: 24.5534, Lng: 39.7051}},
	{"Taif Regional Airport", "Taif", []string{"airport"}, domain.Coordinates{Lat: 21.4827, Lng: 40.5444}},

	// Riyadh.
	{"Riyadh City Center", "Riyadh", []string{"establishment"}, domain.Coordinates{Lat: 24.7136, Lng: 46.6753}},
	{"King Fahd Road", "Riyadh", []string{"route"}, domain.Coordinates{Lat: 24.7411, Lng: 46.6544}},
	{"Olaya District", "Riyadh", []string{"sublocality"}, domain.Coordinates{Lat: 24.6877, Lng: 46.6859}},
	{"Al Malaz", "Riyadh", []string{"sublocality"}, domain.Coordinates{Lat: 24.6408, Lng: 46.7152}},
	{"Diplomatic Quarter", "Riyadh", []string{"sublocality"}, domain.Coordinates{Lat: 24.6918, Lng: 46.6098}},
	{"King Abdulaziz Historical Center", "Riyadh", []string{"establishment"}, domain.Coordinates{Lat: 24.6465, Lng: 46.7173}},

	// Jeddah.
	{"Jeddah Corniche", "Jeddah", []string{"establishment"}, domain.Coordinates{Lat: 21.5169, Lng: 39.1748}},
	{"Al Balad (Old Town)", "Jeddah", []string{"establishment"}, domain.Coordinates{Lat: 21.4858, Lng: 39.1925}},
	{"Red Sea Mall", "Jeddah", []string{"establishment"}, domain.Coordinates{Lat: 21.6063, Lng: 39.1034}},
	{"King Abdulaziz University", "Jeddah", []string{"establishment"}, domain.Coordinates{Lat: 21.5092, Lng: 39.2441}},

	// Mecca.
	{"Masjid al-Haram (Grand Mosque)", "Mecca", []string{"establishment"}, domain.Coordinates{Lat: 21.4225, Lng: 39.8262}},
	{"Abraj Al Bait (Clock Tower)", "Mecca", []string{"establishment"}, domain.Coordinates{Lat: 21.4186, Lng: 39.8256}},
	{"Mina", "Mecca", []string{"sublocality"}, domain.Coordinates{Lat: 21.4067, Lng: 39.8847}},
	{"Arafat", "Mecca", []string{"sublocality"}, domain.Coordinates{Lat: 21.3544, Lng: 39.9855}},

	// Medina.
	{"Masjid an-Nabawi (Prophet's Mosque)", "Medina", []string{"establishment"}, domain.Coordinates{Lat: 24.4672, Lng: 39.6117}},
	{"Quba Mosque", "Medina", []string{"establishment"}, domain.Coordinates{Lat: 24.4394, Lng: 39.6194}},
	{"Mount Uhud", "Medina", []string{"natural_feature"}, domain.Coordinates{Lat: 24.4951, Lng: 39.5951}},

	// Eastern Province.
	{"Dammam Corniche", "Dammam", []string{"establishment"}, domain.Coordinates{Lat: 26.4207, Lng: 50.0888}},
	{"Al Khobar Corniche", "Al Khobar", []string{"establishment"}, domain.Coordinates{Lat: 26.2172, Lng: 50.1971}},
	{"Dhahran", "Dhahran", []string{"locality"}, domain.Coordinates{Lat: 26.2361, Lng: 50.1328}},
	{"Half Moon Bay", "Al Khobar", []string{"natural_feature"}, domain.Coordinates{Lat: 26.1264, Lng: 50.1640}},
	{"Saudi Aramco", "Dhahran", []string{"establishment"}, domain.Coordinates{Lat: 26.2361, Lng: 50.1328}},

	// Other major cities.
	{"Taif City Center", "Taif", []string{"establishment"}, domain.Coordinates{Lat: 21.2703, Lng: 40.4158}},
	{"Abha City Center", "Abha", []string{"establishment"}, domain.Coordinates{Lat: 18.2465, Lng: 42.5056}},
	{"Tabuk City Center", "Tabuk", []string{"establishment"}, domain.Coordinates{Lat: 28.3998, Lng: 36.5700}},
	{"Hail City Center", "Hail", []string{"establishment"}, domain.Coordinates{Lat: 27.5114, Lng: 41.7208}},
	{"Najran City Center", "Najran", []string{"establishment"}, domain.Coordinates{Lat: 17.4924, Lng: 44.1277}},

	// Popular destinations.
	{"NEOM Bay", "NEOM", []string{"establishment"}, domain.Coordinates{Lat: 28.2636, Lng: 34.7892}},
	{"Al-Ula Old Town", "Al-Ula", []string{"establishment"}, domain.Coordinates{Lat: 26.6083, Lng: 37.9267}},
	{"Edge of the World (Jebel Fihrayn)", "Riyadh", []string{"natural_feature"}, domain.Coordinates{Lat: 25.0969, Lng: 45.8372}},
}
