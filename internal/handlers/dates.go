package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/date-tracker/internal/models"
	"github.com/sbilibin2017/date-tracker/internal/services"
)

//go:generate mockgen -source=dates.go -destination=dates_mock.go -package=handlers

// DateLister lists dates matching a filter.
type DateLister interface {
	List(ctx context.Context, filter models.DateFilter) ([]models.Date, error)
}

// DateCounter counts stored dates.
type DateCounter interface {
	Count(ctx context.Context) (int64, error)
}

// DateCreator creates dates.
type DateCreator interface {
	Create(ctx context.Context, in models.DateCreate, actor int64) (*models.Date, error)
}

// DateGetter loads one date.
type DateGetter interface {
	Get(ctx context.Context, id int64) (*models.Date, error)
}

// DateUpdater applies partial updates to dates.
type DateUpdater interface {
	Update(ctx context.Context, id int64, in models.DateUpdate, actor int64) (*models.Date, error)
}

// DateDeleter removes dates.
type DateDeleter interface {
	Delete(ctx context.Context, id int64, actor int64) error
}

// NewListDatesHandler returns an HTTP handler listing dates, newest day first.
// @Summary List dates
// @Description Text filters are case-insensitive substring matches; rating and date_day match exactly.
// @Tags dates
// @Produce json
// @Param activity_name query string false "Activity name contains"
// @Param location query string false "Location contains"
// @Param rating query int false "Exact rating (1-5)"
// @Param date_day query string false "Exact day (YYYY-MM-DD)"
// @Success 200 {array} models.Date
// @Failure 400 {object} models.ErrorResponse "Invalid filter"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Security SessionCookie
// @Router /api/dates [get]
func NewListDatesHandler(svc DateLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireSession(w, r); !ok {
			return
		}

		q := r.URL.Query()
		filter, err := services.ParseDateFilter(q.Get("activity_name"), q.Get("location"), q.Get("rating"), q.Get("date_day"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		dates, err := svc.List(r.Context(), filter)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, dates)
	}
}

// NewCountDatesHandler returns an HTTP handler reporting how many dates exist.
// @Summary Count dates
// @Tags dates
// @Produce json
// @Success 200 {object} models.CountResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Security SessionCookie
// @Router /api/dates/count [get]
func NewCountDatesHandler(svc DateCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireSession(w, r); !ok {
			return
		}

		n, err := svc.Count(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.CountResponse{Count: n})
	}
}

// NewCreateDateHandler returns an HTTP handler creating a date owned by the caller.
// @Summary Create date
// @Tags dates
// @Accept json
// @Produce json
// @Param date body models.DateCreate true "New date"
// @Success 201 {object} models.Date
// @Failure 400 {object} models.ErrorResponse "Activity name, location, and date are required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Security SessionCookie
// @Router /api/dates [post]
func NewCreateDateHandler(svc DateCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := requireSession(w, r)
		if !ok {
			return
		}

		var req models.DateCreate
		if !decodeJSON(w, r, &req) {
			return
		}

		date, err := svc.Create(r.Context(), req, session.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, date)
	}
}

// NewGetDateHandler returns an HTTP handler loading one date with its photos.
// @Summary Get date
// @Tags dates
// @Produce json
// @Param id path int true "Date ID"
// @Success 200 {object} models.Date
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Date not found"
// @Security SessionCookie
// @Router /api/dates/{id} [get]
func NewGetDateHandler(svc DateGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireSession(w, r); !ok {
			return
		}
		id, ok := dateID(w, r)
		if !ok {
			return
		}

		date, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, date)
	}
}

// NewUpdateDateHandler returns an HTTP handler applying a partial update.
// Only keys present in the body are changed; null clears rating and notes.
// @Summary Update date
// @Tags dates
// @Accept json
// @Produce json
// @Param id path int true "Date ID"
// @Param date body models.DateUpdate true "Fields to change"
// @Success 200 {object} models.Date
// @Failure 400 {object} models.ErrorResponse "No fields to update"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Date not found"
// @Security SessionCookie
// @Router /api/dates/{id} [put]
func NewUpdateDateHandler(svc DateUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := requireSession(w, r)
		if !ok {
			return
		}
		id, ok := dateID(w, r)
		if !ok {
			return
		}

		var req models.DateUpdate
		if !decodeJSON(w, r, &req) {
			return
		}

		date, err := svc.Update(r.Context(), id, req, session.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, date)
	}
}

// NewDeleteDateHandler returns an HTTP handler deleting a date and its photo rows.
// @Summary Delete date
// @Tags dates
// @Produce json
// @Param id path int true "Date ID"
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Date not found"
// @Security SessionCookie
// @Router /api/dates/{id} [delete]
func NewDeleteDateHandler(svc DateDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := requireSession(w, r)
		if !ok {
			return
		}
		id, ok := dateID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id, session.UserID); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Date deleted successfully"})
	}
}
