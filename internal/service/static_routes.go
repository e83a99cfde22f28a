package service

import "strings"

// Pre-measured road distances in km between major Saudi cities and their
// airports, matched by case-insensitive substring against the address.
// Entry order is significant: an address matching several entries (a city
// and an airport, or two cities) resolves to the first match, so the table
// is held as ordered slices rather than maps.
type placeDistance struct {
	place string
	km    float64
}

type cityDistanceEntry struct {
	city   string
	places []placeDistance
}

var cityDistances = []cityDistanceEntry{
	{"riyadh", []placeDistance{
		{"jeddah", 850}, {"dammam", 400}, {"mecca", 870}, {"medina", 800},
		{"taif", 800}, {"khobar", 420}, {"dhahran", 420}, {"al khobar", 420},
		{"airport", 35}, {"king khalid international airport", 35},
	}},
	{"jeddah", []placeDistance{
		{"riyadh", 850}, {"mecca", 80}, {"medina", 350}, {"taif", 200},
		{"dammam", 1200}, {"airport", 20}, {"king abdulaziz international airport", 20},
	}},
	{"dammam", []placeDistance{
		{"riyadh", 400}, {"jeddah", 1200}, {"khobar", 15}, {"al khobar", 15},
		{"dhahran", 10}, {"airport", 25}, {"king fahd international airport", 25},
	}},
	{"mecca", []placeDistance{
		{"jeddah", 80}, {"riyadh", 870}, {"medina", 450}, {"taif", 120},
	}},
	{"medina", []placeDistance{
		{"riyadh", 800}, {"jeddah", 350}, {"mecca", 450},
		{"airport", 20}, {"prince mohammed bin abdulaziz airport", 20},
	}},
}

const (
	// airportFallbackKm applies when no city pair matches but either address
	// mentions an airport; transfers are assumed short.
	airportFallbackKm = 50

	// defaultFallbackKm applies when nothing at all matches.
	defaultFallbackKm = 200
)

// staticDistanceKm estimates the distance between two addresses from the
// city-pair table. It always returns a value, and the same pair always
// resolves to the same entry.
func staticDistanceKm(origin, destination string) float64 {
	originLower := strings.ToLower(origin)
	destLower := strings.ToLower(destination)

	for _, entry := range cityDistances {
		if !strings.Contains(originLower, entry.city) {
			continue
		}
		for _, pd := range entry.places {
			if strings.Contains(destLower, pd.place) {
				return pd.km
			}
		}
	}

	if strings.Contains(originLower, "airport") || strings.Contains(destLower, "airport") {
		return airportFallbackKm
	}
	return defaultFallbackKm
}
