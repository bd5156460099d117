package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/date-tracker/internal/models"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

// UserGetter loads a user by id.
type UserGetter interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// ProfileUpdater changes a user's names.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID int64, firstName, lastName string) (*models.User, error)
}

// NewUserHandler returns an HTTP handler describing the logged-in user.
// @Summary Current user
// @Tags user
// @Produce json
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Security SessionCookie
// @Router /api/user [get]
func NewUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := requireSession(w, r)
		if !ok {
			return
		}

		user, err := svc.GetUser(r.Context(), session.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.UserResponse{
			UserID:    user.ID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			HasName:   user.HasName(),
		})
	}
}

// NewProfileHandler returns an HTTP handler that updates the user's names
// and re-issues the session cookie with them.
// @Summary Update profile
// @Tags user
// @Accept json
// @Produce json
// @Param profileRequest body models.ProfileRequest true "New names"
// @Success 200 {object} models.ProfileResponse
// @Failure 400 {object} models.ErrorResponse "First name and last name are required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Security SessionCookie
// @Router /api/user/profile [put]
func NewProfileHandler(svc ProfileUpdater, sessions SessionIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.ProfileRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.UpdateProfile(r.Context(), session.UserID, req.FirstName, req.LastName)
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

		writeJSON(w, http.StatusOK, models.ProfileResponse{
			Message:   "Profile updated successfully",
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
	}
}
