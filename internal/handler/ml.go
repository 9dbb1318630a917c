package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nineylabs/smart-server/internal/domain"
	"github.com/nineylabs/smart-server/internal/metrics"
	"github.com/nineylabs/smart-server/internal/model"
)

// PredictionRequest is the body for POST /api/ml/predict. Data holds
// opaque feature records; absent fields fall back to the defaults set
// before decoding.
type PredictionRequest struct {
	Data                []map[string]any `json:"data"`
	ModelName           string           `json:"model_name"`
	ConfidenceThreshold float64          `json:"confidence_threshold"`
}

// Predict godoc
// @Summary Run a prediction
// @Description Returns one placeholder prediction per input record
// @Tags machine-learning
// @Accept json
// @Produce json
// @Param request body PredictionRequest true "Prediction request"
// @Success 200 {object} PredictionResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/ml/predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	req := PredictionRequest{
		ModelName:           defaultModelName,
		ConfidenceThreshold: defaultConfidenceThreshold,
	}
	if err := decodeJSON(r, &req); err != nil {
		respondDetail(w, http.StatusUnprocessableEntity, "Invalid JSON body")
		return
	}

	out := h.service.Predict(model.PredictInput{
		Data:                req.Data,
		ModelName:           req.ModelName,
		ConfidenceThreshold: req.ConfidenceThreshold,
	})

	metrics.RecordPredictions(out.ModelName, len(out.Predictions))

	respondJSON(w, http.StatusOK, PredictionResponse{
		Predictions:      out.Predictions,
		ModelName:        out.ModelName,
		ConfidenceScores: out.ConfidenceScores,
		ProcessingTimeMs: out.ElapsedMs,
	})
}

// ListModels godoc
// @Summary List models
// @Description Lists the models known to the registry
// @Tags machine-learning
// @Produce json
// @Success 200 {object} ModelListResponse
// @Router /api/ml/models [get]
func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	models := h.service.ListModels()

	summaries := make([]ModelSummary, len(models))
	for i, m := range models {
		summaries[i] = ModelSummary{
			Name:    m.Name.String(),
			Version: m.Version,
			Type:    m.Type,
			Status:  m.Status,
		}
	}

	respondJSON(w, http.StatusOK, ModelListResponse{Models: summaries})
}

// GetModel godoc
// @Summary Get model details
// @Description Returns details and metrics for one model
// @Tags machine-learning
// @Produce json
// @Param name path string true "Model name"
// @Success 200 {object} domain.ModelInfo
// @Failure 404 {object} ErrorResponse
// @Router /api/ml/models/{name} [get]
func (h *Handler) GetModel(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	info, err := h.service.GetModel(name)
	if err != nil {
		if errors.Is(err, domain.ErrModelNotFound) {
			respondDetail(w, http.StatusNotFound, fmt.Sprintf("Model '%s' not found", name))
			return
		}
		respondDetail(w, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	respondJSON(w, http.StatusOK, info)
}
