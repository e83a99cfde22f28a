package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fare/internal/domain"
	"fare/internal/service"
)

// RideHandler handles HTTP requests for booked rides.
type RideHandler struct {
	quoteService *service.QuoteService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(quoteService *service.QuoteService) *RideHandler {
	return &RideHandler{quoteService: quoteService}
}

// RideResponse is the HTTP representation of a ride record.
type RideResponse struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Category        string           `json:"category"`
	Origin          string           `json:"origin"`
	Destination     string           `json:"destination"`
	DistanceKm      float64          `json:"distance_km"`
	DurationMinutes int              `json:"duration_minutes"`
	RouteSource     string           `json:"route_source,omitempty"`
	Status          string           `json:"status"`
	Breakdown       BreakdownPayload `json:"breakdown"`
	Persisted       bool             `json:"persisted"`
	CreatedAt       string           `json:"created_at"`
}

// CreateRide handles POST /v1/rides
func (h *RideHandler) CreateRide(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.quoteService.Book(c.Request.Context(), toServiceRequest(req))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRideResponse(result.Ride, result.Persisted))
}

// GetRide handles GET /v1/rides/:id
func (h *RideHandler) GetRide(c *gin.Context) {
	rideID := c.Param("id")

	ride, err := h.quoteService.GetRide(c.Request.Context(), rideID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRideResponse(ride, true))
}

// GetUserRides handles GET /v1/users/:id/rides
func (h *RideHandler) GetUserRides(c *gin.Context) {
	userID := c.Param("id")

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	rides, err := h.quoteService.RideHistory(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]RideResponse, 0, len(rides))
	for _, r := range rides {
		response = append(response, toRideResponse(r, true))
	}
	respondJSON(c, http.StatusOK, response)
}

func toRideResponse(ride *domain.RideRecord, persisted bool) RideResponse {
	return RideResponse{
		ID:              ride.ID,
		UserID:          ride.UserID,
		Category:        string(ride.Category),
		Origin:          ride.Origin,
		Destination:     ride.Destination,
		DistanceKm:      ride.DistanceKm,
		DurationMinutes: ride.DurationMinutes,
		RouteSource:     string(ride.RouteSource),
		Status:          string(ride.Status),
		Breakdown:       toBreakdownPayload(ride.Breakdown),
		Persisted:       persisted,
		CreatedAt:       ride.CreatedAt.Format(time.RFC3339),
	}
}
