package handler

import (
	"net/http"
	"time"
)

// Health godoc
// @Summary Service health
// @Description Returns overall service health with version information
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   serviceName,
		Version:   h.cfg.App.Version,
	})
}

// Liveness godoc
// @Summary Liveness probe
// @Description Reports whether the process is alive
// @Tags health
// @Produce json
// @Success 200 {object} ProbeResponse
// @Router /health/live [get]
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ProbeResponse{Status: "alive"})
}

// Readiness godoc
// @Summary Readiness probe
// @Description Reports whether the service is ready to accept traffic
// @Tags health
// @Produce json
// @Success 200 {object} ProbeResponse
// @Router /health/ready [get]
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ProbeResponse{Status: "ready"})
}
