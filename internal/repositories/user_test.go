package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

var userRowColumns = []string{"id", "username", "password_hash", "first_name", "last_name", "created_at"}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
			WithArgs("alice").
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(int64(1), "alice", "hash", "Alice", "Smith", now))

		user, err := NewUserReadRepository(db).GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		if assert.NotNil(t, user) {
			assert.Equal(t, int64(1), user.ID)
			assert.Equal(t, "hash", user.PasswordHash)
			assert.Equal(t, "Alice Smith", user.DisplayName())
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		user, err := NewUserReadRepository(db).GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
			WillReturnError(errors.New("connection refused"))

		user, err := NewUserReadRepository(db).GetByUsername(ctx, "alice")
		assert.EqualError(t, err, "connection refused")
		assert.Nil(t, user)
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(int64(7), "bob", "hash", "", "", time.Now()))

	user, err := NewUserReadRepository(db).GetByID(context.Background(), 7)
	assert.NoError(t, err)
	if assert.NotNil(t, user) {
		assert.Equal(t, "bob", user.DisplayName())
		assert.False(t, user.HasName())
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (username, password_hash, first_name, last_name, created_at)")).
			WithArgs("alice", "hash", "Alice", "Smith").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

		id, err := NewUserWriteRepository(db).Save(ctx, "alice", "hash", "Alice", "Smith")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		_, err := NewUserWriteRepository(db).Save(ctx, "alice", "hash", "Alice", "Smith")
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})
}

func TestUserWriteRepository_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET first_name = $1, last_name = $2 WHERE id = $3")).
			WithArgs("Jane", "Roe", int64(5)).
			WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(int64(5), "jr", "hash", "Jane", "Roe", time.Now()))

		user, err := NewUserWriteRepository(db).UpdateProfile(ctx, 5, "Jane", "Roe")
		assert.NoError(t, err)
		if assert.NotNil(t, user) {
			assert.Equal(t, "Jane", user.FirstName)
			assert.Equal(t, "Roe", user.LastName)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET")).
			WillReturnRows(sqlmock.NewRows(userRowColumns))

		user, err := NewUserWriteRepository(db).UpdateProfile(ctx, 99, "Jane", "Roe")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
