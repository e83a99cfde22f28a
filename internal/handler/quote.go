package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fare/internal/domain"
	"fare/internal/service"
)

// QuoteHandler handles HTTP requests for ride quotes.
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// CoordinatesPayload is a lat/lng pair in a request or response body.
type CoordinatesPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationPayload is a named place in a request body. Coordinates are
// optional; without them the route falls back to the static table.
type LocationPayload struct {
	Address     string              `json:"address"`
	Coordinates *CoordinatesPayload `json:"coordinates,omitempty"`
}

// QuoteRequest is the HTTP request body for quoting a ride. DistanceKm and
// DurationMinutes are optional; omit both to have the route estimated.
type QuoteRequest struct {
	UserID          string          `json:"user_id"`
	Origin          LocationPayload `json:"origin"`
	Destination     LocationPayload `json:"destination"`
	Category        string          `json:"category"`
	DistanceKm      *float64        `json:"distance_km,omitempty"`
	DurationMinutes *float64        `json:"duration_minutes,omitempty"`
}

// BreakdownPayload is the price breakdown in a response body.
type BreakdownPayload struct {
	DistancePrice      float64 `json:"distance_price"`
	DurationPrice      float64 `json:"duration_price"`
	ServiceFee         float64 `json:"service_fee"`
	SurgeMultiplier    float64 `json:"surge_multiplier"`
	BasePrice          float64 `json:"base_price"`
	DiscountPercentage int     `json:"discount_percentage"`
	DiscountAmount     float64 `json:"discount_amount"`
	FinalPrice         float64 `json:"final_price"`
	Currency           string  `json:"currency"`
}

// QuoteResponse is the HTTP response for quoting a ride. RouteSource is set
// only when the route was computed internally.
type QuoteResponse struct {
	Category        string           `json:"category"`
	DistanceKm      float64          `json:"distance_km"`
	DurationMinutes float64          `json:"duration_minutes"`
	RouteSource     string           `json:"route_source,omitempty"`
	Tier            string           `json:"tier"`
	Breakdown       BreakdownPayload `json:"breakdown"`
}

// CreateQuote handles POST /v1/quotes
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.quoteService.Quote(c.Request.Context(), toServiceRequest(req))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toQuoteResponse(result))
}

func toServiceRequest(req QuoteRequest) service.QuoteRequest {
	return service.QuoteRequest{
		UserID:          req.UserID,
		Origin:          toLocation(req.Origin),
		Destination:     toLocation(req.Destination),
		Category:        domain.RideCategory(req.Category),
		DistanceKm:      req.DistanceKm,
		DurationMinutes: req.DurationMinutes,
	}
}

func toLocation(p LocationPayload) domain.Location {
	loc := domain.Location{Address: p.Address}
	if p.Coordinates != nil {
		loc.Coordinates = domain.Coordinates{Lat: p.Coordinates.Lat, Lng: p.Coordinates.Lng}
	}
	return loc
}

func toBreakdownPayload(b domain.PriceBreakdown) BreakdownPayload {
	return BreakdownPayload{
		DistancePrice:      b.DistancePrice,
		DurationPrice:      b.DurationPrice,
		ServiceFee:         b.ServiceFee,
		SurgeMultiplier:    b.SurgeMultiplier,
		BasePrice:          b.BasePrice,
		DiscountPercentage: b.DiscountPercentage,
		DiscountAmount:     b.DiscountAmount,
		FinalPrice:         b.FinalPrice,
		Currency:           b.Currency,
	}
}

func toQuoteResponse(result *service.QuoteResult) QuoteResponse {
	return QuoteResponse{
		Category:        string(result.Breakdown.Category),
		DistanceKm:      result.DistanceKm,
		DurationMinutes: result.DurationMinutes,
		RouteSource:     string(result.RouteSource),
		Tier:            string(result.Tier),
		Breakdown:       toBreakdownPayload(*result.Breakdown),
	}
}
