package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/date-tracker/internal/logger"
	"github.com/sbilibin2017/date-tracker/internal/models"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

// Pinger checks the database connection.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns an HTTP handler reporting database reachability.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /health [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.FromContext(r.Context()).Errorw("health check failed", "err", err)
			writeErrorMessage(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "ok"})
	}
}
