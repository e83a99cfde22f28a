package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fare/internal/domain"
	"fare/internal/service"
)

// CategoryHandler serves the static pricing catalogue.
type CategoryHandler struct {
	pricingService *service.PricingService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(pricingService *service.PricingService) *CategoryHandler {
	return &CategoryHandler{pricingService: pricingService}
}

// CategoryResponse describes one ride category and its pricing rule.
type CategoryResponse struct {
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	PerKm           float64 `json:"per_km"`
	PerMinute       float64 `json:"per_minute"`
	MinimumPrice    float64 `json:"minimum_price"`
	MaximumPrice    float64 `json:"maximum_price"`
	SurgeMultiplier float64 `json:"surge_multiplier"`
	ServiceFee      float64 `json:"service_fee"`
	Currency        string  `json:"currency"`
}

// GetCategories handles GET /v1/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	rules := h.pricingService.Rules()

	response := make([]CategoryResponse, 0, len(rules))
	for _, category := range domain.Categories {
		rule, ok := rules[category]
		if !ok {
			continue
		}
		response = append(response, CategoryResponse{
			Category:        string(category),
			Description:     rule.Description,
			PerKm:           rule.PerKm,
			PerMinute:       rule.PerMinute,
			MinimumPrice:    rule.MinimumPrice,
			MaximumPrice:    rule.MaximumPrice,
			SurgeMultiplier: rule.SurgeMultiplier,
			ServiceFee:      rule.ServiceFee,
			Currency:        "SAR",
		})
	}

	respondJSON(c, http.StatusOK, response)
}
