package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/date-tracker/internal/logger"
	"github.com/sbilibin2017/date-tracker/internal/middlewares"
	"github.com/sbilibin2017/date-tracker/internal/models"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Initialize("error")
}

var testSession = &models.Session{UserID: 7, Username: "jdoe", FirstName: "John", LastName: "Doe"}

func authed(r *http.Request) *http.Request {
	return r.WithContext(middlewares.WithSession(r.Context(), testSession))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
