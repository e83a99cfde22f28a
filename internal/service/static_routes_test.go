package service

import "testing"

func TestStaticDistanceKm_KnownPairs(t *testing.T) {
	testCases := []struct {
		origin, destination string
		expected            float64
	}{
		{"Riyadh", "Jeddah", 850},
		{"Jeddah", "Mecca", 80},
		{"Dammam", "Dhahran", 10},
		{"Medina", "Prince Mohammed bin Abdulaziz Airport", 20},
		{"Olaya District, Riyadh", "King Khalid International Airport", 35},
	}

	for _, tc := range testCases {
		if got := staticDistanceKm(tc.origin, tc.destination); got != tc.expected {
			t.Errorf("%s -> %s: expected %v km, got %v", tc.origin, tc.destination, tc.expected, got)
		}
	}
}

func TestStaticDistanceKm_AmbiguousDestinationUsesFirstEntry(t *testing.T) {
	// The destination matches both "dammam" and "airport" in the riyadh
	// table; "dammam" comes first, so the inter-city figure wins over the
	// local airport-transfer one.
	origin := "Riyadh"
	destination := "King Fahd International Airport, Dammam"

	if got := staticDistanceKm(origin, destination); got != 400 {
		t.Fatalf("expected 400 km, got %v", got)
	}
}

func TestStaticDistanceKm_AmbiguousOriginUsesFirstCity(t *testing.T) {
	// The origin matches both "riyadh" and "mecca"; the riyadh table is
	// scanned first, so the pair resolves as riyadh -> jeddah.
	origin := "Mecca Road, Riyadh"
	destination := "Jeddah"

	if got := staticDistanceKm(origin, destination); got != 850 {
		t.Fatalf("expected 850 km, got %v", got)
	}
}

func TestStaticDistanceKm_Deterministic(t *testing.T) {
	origin := "Riyadh"
	destination := "King Fahd International Airport, Dammam"

	first := staticDistanceKm(origin, destination)
	for i := 0; i < 200; i++ {
		if got := staticDistanceKm(origin, destination); got != first {
			t.Fatalf("resolution changed between calls: %v then %v", first, got)
		}
	}
}

func TestStaticDistanceKm_NoMatchFallbacks(t *testing.T) {
	if got := staticDistanceKm("Unknown Airport", "Somewhere"); got != airportFallbackKm {
		t.Errorf("expected airport fallback %v, got %v", airportFallbackKm, got)
	}
	if got := staticDistanceKm("Nowhere", "Elsewhere"); got != defaultFallbackKm {
		t.Errorf("expected default fallback %v, got %v", defaultFallbackKm, got)
	}
}
