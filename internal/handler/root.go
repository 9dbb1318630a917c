package handler

import "net/http"

// Root godoc
// @Summary Service information
// @Description Describes the running service and links to the docs
// @Tags root
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	var docs *string
	if url := h.cfg.DocsURL(); url != "" {
		docs = &url
	}

	respondJSON(w, http.StatusOK, RootResponse{
		Name:        h.cfg.App.Name,
		Version:     h.cfg.App.Version,
		Status:      "running",
		Environment: h.cfg.App.Environment,
		Docs:        docs,
	})
}
