package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-admin-status/internal/logger"
	"github.com/sbilibin2017/gw-admin-status/internal/models"
)

// NewHealthHandler returns the liveness handler. It performs no checks.
// @Summary Liveness check
// @Description Reports that the process is able to serve HTTP requests
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{OK: true})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}
