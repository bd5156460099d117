package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/date-tracker/internal/models"
)

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

// SessionClearer ends the session carried by a request.
type SessionClearer interface {
	Clear(ctx context.Context, r *http.Request) *http.Cookie
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// @Summary Logout
// @Description Revokes the session token and expires the cookie. Succeeds without a session too.
// @Tags auth
// @Produce json
// @Success 200 {object} models.MessageResponse "Logged out"
// @Router /api/logout [post]
func NewLogoutHandler(sessions SessionClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, sessions.Clear(r.Context(), r))
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Logged out successfully"})
	}
}
