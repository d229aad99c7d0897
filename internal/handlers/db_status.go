package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-admin-status/internal/models"
)

//go:generate mockgen -source=db_status.go -destination=db_status_mock.go -package=handlers

// DBStatuser defines the interface that the status service must implement.
type DBStatuser interface {
	DBStatus(ctx context.Context) models.DBStatusResponse
}

// NewDBStatusHandler returns the dependency status handler.
// @Summary Database connection status
// @Description Reports the live state of the MongoDB connection. Always 200;
// @Description a missing connection shows up as stateText "unknown" and db null.
// @Tags health
// @Produce json
// @Success 200 {object} models.DBStatusResponse
// @Router /mongo-status [get]
func NewDBStatusHandler(svc DBStatuser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.DBStatus(r.Context()))
	}
}
