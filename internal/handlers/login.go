package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/date-tracker/internal/models"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verifies credentials and sets the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "Logged in, session cookie set"
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Invalid username or password"
// @Router /api/login [post]
func NewLoginHandler(svc Loginer, sessions SessionIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		cookie, err := sessions.Issue(r.Context(), user)
		if err != nil {
			writeError(w, r, err)
			return
		}
		http.SetCookie(w, cookie)

		writeJSON(w, http.StatusOK, models.LoginResponse{
			Message:   "Login successful",
			UserID:    user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
	}
}
