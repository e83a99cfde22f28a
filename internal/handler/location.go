package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fare/internal/service"
)

// LocationHandler serves location searches.
type LocationHandler struct {
	locations *service.LocationService
}

// NewLocationHandler creates a new LocationHandler.
func NewLocationHandler(locations *service.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// LocationResponse is one location search result. Results always carry
// resolved coordinates; city and region may be empty for live API results.
type LocationResponse struct {
	Address     string             `json:"address"`
	Coordinates CoordinatesPayload `json:"coordinates"`
	City        string             `json:"city"`
	Region      string             `json:"region"`
	Country     string             `json:"country"`
	PlaceTags   []string           `json:"place_tags"`
}

// SearchLocations handles GET /v1/locations?q=
func (h *LocationHandler) SearchLocations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing query parameter q"})
		return
	}

	locations := h.locations.Search(c.Request.Context(), query)

	response := make([]LocationResponse, 0, len(locations))
	for _, loc := range locations {
		response = append(response, LocationResponse{
			Address:     loc.Address,
			Coordinates: CoordinatesPayload{Lat: loc.Coordinates.Lat, Lng: loc.Coordinates.Lng},
			City:        loc.City,
			Region:      loc.Region,
			Country:     loc.Country,
			PlaceTags:   loc.PlaceTags,
		})
	}

	respondJSON(c, http.StatusOK, response)
}
