package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"fare/internal/service"
)

func newQuoteTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	estimator := service.NewRouteEstimator(nil)
	pricing := service.NewPricingService()
	quoteService := service.NewQuoteService(estimator, pricing, nil, nil, nil, 0)

	router := gin.New()
	router.POST("/v1/quotes", NewQuoteHandler(quoteService).CreateQuote)
	return router
}

func postQuote(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateQuote_Success(t *testing.T) {
	router := newQuoteTestRouter()

	distance := 5.0
	duration := 15.0
	w := postQuote(t, router, QuoteRequest{
		UserID:          "user-1",
		Origin:          LocationPayload{Address: "Olaya District, Riyadh"},
		Destination:     LocationPayload{Address: "King Khalid International Airport"},
		Category:        "short",
		DistanceKm:      &distance,
		DurationMinutes: &duration,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp QuoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Breakdown.FinalPrice != 42.00 {
		t.Errorf("expected final price 42.00, got %v", resp.Breakdown.FinalPrice)
	}
	if resp.Tier != "none" {
		t.Errorf("expected tier none, got %q", resp.Tier)
	}
	if resp.RouteSource != "" {
		t.Errorf("expected no route source for caller-supplied figures, got %q", resp.RouteSource)
	}
}

func TestCreateQuote_EstimatedRoute(t *testing.T) {
	router := newQuoteTestRouter()

	w := postQuote(t, router, QuoteRequest{
		UserID:      "user-1",
		Origin:      LocationPayload{Address: "Riyadh", Coordinates: &CoordinatesPayload{Lat: 24.7136, Lng: 46.6753}},
		Destination: LocationPayload{Address: "Jeddah", Coordinates: &CoordinatesPayload{Lat: 21.4858, Lng: 39.1925}},
		Category:    "long",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp QuoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.RouteSource != "HAVERSINE" {
		t.Errorf("expected HAVERSINE route source, got %q", resp.RouteSource)
	}
	if resp.DistanceKm < 840 || resp.DistanceKm > 850 {
		t.Errorf("expected distance near 845 km, got %v", resp.DistanceKm)
	}
}

func TestCreateQuote_MalformedBody(t *testing.T) {
	router := newQuoteTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCreateQuote_MissingUserID(t *testing.T) {
	router := newQuoteTestRouter()

	w := postQuote(t, router, QuoteRequest{
		Origin:      LocationPayload{Address: "Riyadh"},
		Destination: LocationPayload{Address: "Jeddah"},
		Category:    "short",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateQuote_UnknownCategory(t *testing.T) {
	router := newQuoteTestRouter()

	w := postQuote(t, router, QuoteRequest{
		UserID:      "user-1",
		Origin:      LocationPayload{Address: "Riyadh"},
		Destination: LocationPayload{Address: "Jeddah"},
		Category:    "scooter",
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}
