package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/date-tracker/internal/models"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password, firstName, lastName string) (*models.User, error)
}

// SessionIssuer establishes a session for a user.
type SessionIssuer interface {
	Issue(ctx context.Context, user *models.User) (*http.Cookie, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account and logs it in. Usernames are unique; the password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 201 {object} models.RegisterResponse "User registered, session cookie set"
// @Failure 400 {object} models.ErrorResponse "Missing fields or username already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/register [post]
func NewRegisterHandler(svc Registerer, sessions SessionIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Password, req.FirstName, req.LastName)
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

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Message: "Registration successful",
			UserID:  user.ID,
		})
	}
}
