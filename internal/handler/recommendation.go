package handler

import (
	"net/http"
	"strconv"

	"github.com/nineylabs/smart-server/internal/validation"
)

// trendingUpdatedAt is the fixed freshness stamp for the static
// trending catalog.
const trendingUpdatedAt = "2024-01-01T00:00:00Z"

// RecommendationRequest is the body for POST /api/recommendations.
// Limit defaults to 10 when absent and must not be negative.
type RecommendationRequest struct {
	UserID   *string        `json:"user_id"`
	Category string         `json:"category" validate:"required"`
	Context  map[string]any `json:"context"`
	Limit    int            `json:"limit" validate:"gte=0"`
}

// trendingQuery holds the parsed query parameters for the trending
// endpoint.
type trendingQuery struct {
	Category string `validate:"-"`
	Limit    int    `validate:"min=1,max=100"`
}

// GetRecommendations godoc
// @Summary Get recommendations
// @Description Returns recommendations for a category, newest scores first
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body RecommendationRequest true "Recommendation request"
// @Success 200 {object} RecommendationResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/recommendations [post]
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	req := RecommendationRequest{Limit: defaultRecommendationLimit}
	if err := decodeJSON(r, &req); err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, "Invalid JSON body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondDetail(w, http.StatusUnprocessableEntity, verr.Fields)
		return
	}

	result := h.service.GetRecommendations(req.Category, req.Limit)

	respondJSON(w, http.StatusOK, RecommendationResponse{
		UserID:          req.UserID,
		Category:        req.Category,
		Recommendations: result.Items,
		TotalCount:      result.TotalCount,
	})
}

// Categories godoc
// @Summary List categories
// @Description Lists the supported recommendation categories
// @Tags recommendations
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /api/recommendations/categories [get]
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CategoriesResponse{
		Categories: h.service.Categories(),
	})
}

// Trending godoc
// @Summary List trending items
// @Description Lists trending items, optionally filtered by category
// @Tags recommendations
// @Produce json
// @Param category query string false "Category filter"
// @Param limit query int false "Maximum items to return" default(10) minimum(1) maximum(100)
// @Success 200 {object} TrendingResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/recommendations/trending [get]
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	q := trendingQuery{
		Category: r.URL.Query().Get("category"),
		Limit:    defaultTrendingLimit,
	}
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			respondDetail(w, http.StatusUnprocessableEntity, "limit must be an integer")
			return
		}
		q.Limit = n
	}
	if verr := validation.ValidateStruct(&q); verr != nil {
		respondDetail(w, http.StatusUnprocessableEntity, verr.Fields)
		return
	}

	items := h.service.GetTrending(q.Category, q.Limit)

	respondJSON(w, http.StatusOK, TrendingResponse{
		Trending:  items,
		UpdatedAt: trendingUpdatedAt,
	})
}
