package middlewares

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(mock sqlmock.Sqlmock)
		status       int
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name: "commit on success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM photos").WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectCommit()
			},
			status:       http.StatusOK,
			body:         `{"message":"Date deleted successfully"}`,
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Date deleted successfully"}`,
		},
		{
			name: "rollback on client error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM photos").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			status:       http.StatusNotFound,
			body:         `{"error":"Date not found"}`,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Date not found"}`,
		},
		{
			name: "rollback on server error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM photos").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			status:       http.StatusInternalServerError,
			body:         `{"error":"boom"}`,
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"boom"}`,
		},
		{
			name: "commit failure replaces response",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM photos").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit().WillReturnError(sql.ErrConnDone)
			},
			status:       http.StatusOK,
			body:         `{"message":"Date deleted successfully"}`,
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"` + sql.ErrConnDone.Error() + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setupMock(mock)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tx := GetTxFromContext(r.Context())
				require.NotNil(t, tx)
				_, err := tx.ExecContext(r.Context(), "DELETE FROM photos WHERE date_id = $1", 1)
				require.NoError(t, err)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			rr := httptest.NewRecorder()
			TxMiddleware(sqlx.NewDb(db, "sqlmock"))(next).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/dates/1", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxMiddleware_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := httptest.NewRecorder()
	TxMiddleware(sqlx.NewDb(db, "sqlmock"))(next).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/dates/1", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_Panic(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	rr := httptest.NewRecorder()
	assert.Panics(t, func() {
		TxMiddleware(sqlx.NewDb(db, "sqlmock"))(next).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/dates/1", nil))
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTxFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetTxFromContext(req.Context()))
}

func TestTxMiddleware_AfterCommit(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		commitErr error
		expectRun bool
		setupMock func(mock sqlmock.Sqlmock, commitErr error)
	}{
		{
			name:      "runs after commit",
			status:    http.StatusOK,
			expectRun: true,
			setupMock: func(mock sqlmock.Sqlmock, _ error) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name:      "dropped on rollback",
			status:    http.StatusNotFound,
			setupMock: func(mock sqlmock.Sqlmock, _ error) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
		},
		{
			name:      "dropped when commit fails",
			status:    http.StatusOK,
			commitErr: sql.ErrConnDone,
			setupMock: func(mock sqlmock.Sqlmock, commitErr error) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(commitErr)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setupMock(mock, tt.commitErr)

			ran := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				AfterCommit(r.Context(), func() {
					// the commit has already reached the database
					assert.NoError(t, mock.ExpectationsWereMet())
					ran = true
				})
				assert.False(t, ran)
				w.WriteHeader(tt.status)
			})

			rr := httptest.NewRecorder()
			TxMiddleware(sqlx.NewDb(db, "sqlmock"))(next).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/dates/1", nil))

			assert.Equal(t, tt.expectRun, ran)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAfterCommit_WithoutTransaction(t *testing.T) {
	ran := false
	AfterCommit(httptest.NewRequest(http.MethodPost, "/api/dates", nil).Context(), func() { ran = true })
	assert.True(t, ran)
}
