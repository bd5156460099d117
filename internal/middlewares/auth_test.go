package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/date-tracker/internal/logger"
	"github.com/sbilibin2017/date-tracker/internal/models"
	"github.com/sbilibin2017/date-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func init() {
	_ = logger.Initialize("error")
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &models.Session{UserID: 7, Username: "jdoe", FirstName: "John", LastName: "Doe"}

	tests := []struct {
		name             string
		mockSetup        func(m *MockAuthenticator)
		expectedStatus   int
		expectedBody     string
		expectNextCalled bool
	}{
		{
			name: "NoSession",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: no token", services.ErrUnauthorized))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectedBody:     `{"error":"Unauthorized"}`,
			expectNextCalled: false,
		},
		{
			name: "StoreFailure",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("redis down"))
			},
			expectedStatus:   http.StatusInternalServerError,
			expectedBody:     `{"error":"redis down"}`,
			expectNextCalled: false,
		},
		{
			name: "ValidSession",
			mockSetup: func(m *MockAuthenticator) {
				m.EXPECT().Authenticate(gomock.Any(), gomock.Any()).
					Return(session, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := NewMockAuthenticator(ctrl)
			tt.mockSetup(mockAuth)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, session, SessionFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockAuth)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestSessionFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, SessionFromContext(req.Context()))
}
