package handler

import (
	"github.com/nineylabs/smart-server/internal/domain"
	"github.com/nineylabs/smart-server/internal/model"
)

// ErrorResponse is the envelope for every non-2xx body. Detail holds
// either a message string or a list of validation.FieldError.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// HealthResponse reports overall service health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// ProbeResponse answers liveness and readiness probes.
type ProbeResponse struct {
	Status string `json:"status"`
}

// RootResponse describes the service at the root endpoint. Docs is
// null when interactive documentation is disabled.
type RootResponse struct {
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	Status      string  `json:"status"`
	Environment string  `json:"environment"`
	Docs        *string `json:"docs"`
}

// PredictionResponse carries the predictions for one request.
type PredictionResponse struct {
	Predictions      []model.Prediction `json:"predictions"`
	ModelName        string             `json:"model_name"`
	ConfidenceScores []float64          `json:"confidence_scores"`
	ProcessingTimeMs float64            `json:"processing_time_ms"`
}

// ModelSummary is one entry in the model list.
type ModelSummary struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Type    string `json:"type"`
	Status  string `json:"status"`
}

// ModelListResponse lists the models known to the registry.
type ModelListResponse struct {
	Models []ModelSummary `json:"models"`
}

// RecommendationResponse carries recommendations for one request.
// UserID echoes the request and is null when none was given.
// TotalCount is the number of matches before the limit was applied.
type RecommendationResponse struct {
	UserID          *string                     `json:"user_id"`
	Category        string                      `json:"category"`
	Recommendations []domain.RecommendationItem `json:"recommendations"`
	TotalCount      int                         `json:"total_count"`
}

// CategoriesResponse lists the supported recommendation categories.
type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// TrendingResponse lists currently trending items.
type TrendingResponse struct {
	Trending  []domain.TrendingItem `json:"trending"`
	UpdatedAt string                `json:"updated_at"`
}
