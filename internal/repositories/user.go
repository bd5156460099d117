package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/date-tracker/internal/models"
)

const userColumns = `id, username, password_hash, first_name, last_name, created_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns nil, nil when no user has the username.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1`
	return r.get(ctx, query, username)
}

// GetByID returns nil, nil when the user does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, query, arg)

	logQuery(ctx, query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns its id. A taken username yields ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, firstName, lastName string) (int64, error) {
	const query = `
		INSERT INTO users (username, password_hash, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	args := []any{username, passwordHash, firstName, lastName}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	// never log the hash
	logQuery(ctx, query, []any{username, "***", firstName, lastName}, id, err)

	if isUniqueViolation(err) {
		return 0, ErrUniqueViolation
	}
	return id, err
}

// UpdateProfile sets the names and returns the updated user, or nil, nil when the id is unknown.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id int64, firstName, lastName string) (*models.User, error) {
	const query = `
		UPDATE users SET first_name = $1, last_name = $2
		WHERE id = $3
		RETURNING ` + userColumns

	args := []any{firstName, lastName, id}

	var user models.User
	err := r.db.GetContext(ctx, &user, query, args...)

	logQuery(ctx, query, args, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
