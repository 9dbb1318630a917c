// Package handler contains the HTTP handlers for the smart server.
// Handlers decode and validate request bodies, call the service layer
// and encode JSON responses. Error bodies always carry the shape
// {"detail": ...} where detail is a message string or a list of field
// errors.
package handler

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/nineylabs/smart-server/internal/config"
	"github.com/nineylabs/smart-server/internal/logging"
	"github.com/nineylabs/smart-server/internal/service"
)

const (
	serviceName = "smart-server"

	defaultModelName           = "default"
	defaultConfidenceThreshold = 0.5
	defaultRecommendationLimit = 10
	defaultTrendingLimit       = 10
)

// Handler holds the dependencies shared by all HTTP handlers.
type Handler struct {
	service *service.Service
	cfg     *config.Config
}

// NewHandler creates a handler backed by the given service and
// resolved configuration.
func NewHandler(svc *service.Service, cfg *config.Config) *Handler {
	return &Handler{
		service: svc,
		cfg:     cfg,
	}
}

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write response")
	}
}

// respondDetail writes an error response body {"detail": detail}.
func respondDetail(w http.ResponseWriter, status int, detail any) {
	respondJSON(w, status, ErrorResponse{Detail: detail})
}

// decodeJSON parses the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
