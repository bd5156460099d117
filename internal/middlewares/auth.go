package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/date-tracker/internal/logger"
	"github.com/sbilibin2017/date-tracker/internal/models"
	"github.com/sbilibin2017/date-tracker/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Authenticator resolves the session carried by a request.
type Authenticator interface {
	Authenticate(ctx context.Context, r *http.Request) (*models.Session, error)
}

type sessionKey struct{}

// AuthMiddleware rejects requests without a valid session and stores the
// session in the request context for downstream handlers.
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			session, err := auth.Authenticate(ctx, r)
			if errors.Is(err, services.ErrUnauthorized) {
				log.Infow("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if err != nil {
				log.Errorw("session lookup failed", "err", err)
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}

			ctx = logger.WithContext(ctx, log.With("user_id", session.UserID))
			next.ServeHTTP(w, r.WithContext(WithSession(ctx, session)))
		})
	}
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session stored by AuthMiddleware, or nil.
func SessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(sessionKey{}).(*models.Session)
	return session
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg})
}
