package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/date-tracker/internal/models"
)

// dateSelect joins the creator and the last notes editor to resolve their display names:
// "first last" trimmed, or the username when both names are blank.
const dateSelect = `
	SELECT d.id, d.activity_name, d.location, d.date_day, d.rating, d.notes,
	       d.created_by, d.notes_edited_by, d.created_at, d.updated_at,
	       COALESCE(NULLIF(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''), u.username) AS created_by_name,
	       COALESCE(NULLIF(TRIM(CONCAT(u2.first_name, ' ', u2.last_name)), ''), u2.username) AS notes_edited_by_name
	FROM dates d
	JOIN users u ON d.created_by = u.id
	LEFT JOIN users u2 ON d.notes_edited_by = u2.id
`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into an ILIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// DateReadRepository handles date read operations
type DateReadRepository struct {
	db *sqlx.DB
}

func NewDateReadRepository(db *sqlx.DB) *DateReadRepository {
	return &DateReadRepository{db: db}
}

// List returns dates matching every non-zero filter field, newest day first.
func (r *DateReadRepository) List(ctx context.Context, filter models.DateFilter) ([]models.Date, error) {
	var (
		conds []string
		args  []any
	)
	if filter.ActivityName != "" {
		args = append(args, containsPattern(filter.ActivityName))
		conds = append(conds, fmt.Sprintf("d.activity_name ILIKE $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, containsPattern(filter.Location))
		conds = append(conds, fmt.Sprintf("d.location ILIKE $%d", len(args)))
	}
	if filter.Rating != nil {
		args = append(args, *filter.Rating)
		conds = append(conds, fmt.Sprintf("d.rating = $%d", len(args)))
	}
	if filter.DateDay != nil {
		args = append(args, *filter.DateDay)
		conds = append(conds, fmt.Sprintf("d.date_day = $%d", len(args)))
	}

	query := dateSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY d.date_day DESC, d.id DESC"

	dates := []models.Date{}
	err := r.db.SelectContext(ctx, &dates, query, args...)

	logQuery(ctx, query, args, len(dates), err)

	if err != nil {
		return nil, err
	}
	return dates, nil
}

// GetByID returns nil, nil when the date does not exist.
func (r *DateReadRepository) GetByID(ctx context.Context, id int64) (*models.Date, error) {
	const query = dateSelect + ` WHERE d.id = $1`

	var date models.Date
	err := r.db.GetContext(ctx, &date, query, id)

	logQuery(ctx, query, []any{id}, date.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// Exists reports whether a date with the id exists.
func (r *DateReadRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM dates WHERE id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, id)

	logQuery(ctx, query, []any{id}, exists, err)

	return exists, err
}

// Count returns the total number of dates.
func (r *DateReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM dates`

	var count int64
	err := r.db.GetContext(ctx, &count, query)

	logQuery(ctx, query, nil, count, err)

	return count, err
}

// DateWriteRepository handles date write operations. When txGetter yields a
// transaction, statements run inside it.
type DateWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDateWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DateWriteRepository {
	return &DateWriteRepository{db: db, txGetter: txGetter}
}

func (r *DateWriteRepository) executor(ctx context.Context) (sqlx.ExtContext, bool) {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx, true
		}
	}
	return r.db, false
}

// Save inserts a date and returns its id.
func (r *DateWriteRepository) Save(ctx context.Context, date *models.Date) (int64, error) {
	const query = `
		INSERT INTO dates (activity_name, location, date_day, rating, notes, created_by, notes_edited_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`
	args := []any{
		date.ActivityName, date.Location, date.DateDay, date.Rating,
		date.Notes, date.CreatedBy, date.NotesEditedBy,
	}

	exec, _ := r.executor(ctx)

	var id int64
	err := sqlx.GetContext(ctx, exec, &id, query, args...)

	logQuery(ctx, query, args, id, err)

	return id, err
}

// Update assigns the given columns and refreshes updated_at. Columns outside
// DateUpdatableColumns are rejected before any SQL is sent. It reports whether
// a row matched.
func (r *DateWriteRepository) Update(ctx context.Context, id int64, changes map[string]any) (bool, error) {
	b := NewUpdateBuilder("dates", DateUpdatableColumns...).Touch("updated_at")
	for column, value := range changes {
		if err := b.Set(column, value); err != nil {
			return false, err
		}
	}

	query, args, err := b.Build(id)
	if err != nil {
		return false, err
	}

	exec, _ := r.executor(ctx)

	res, err := exec.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes a date and reports whether a row matched. Photo rows go with
// it through ON DELETE CASCADE; inside a request transaction they are also
// deleted explicitly before the parent so the removal is atomic either way.
func (r *DateWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	exec, inTx := r.executor(ctx)

	if inTx {
		const photosQuery = `DELETE FROM photos WHERE date_id = $1`
		res, err := exec.ExecContext(ctx, photosQuery, id)
		var photos int64
		if res != nil {
			photos, _ = res.RowsAffected()
		}
		logQuery(ctx, photosQuery, []any{id}, photos, err)
		if err != nil {
			return false, err
		}
	}

	const query = `DELETE FROM dates WHERE id = $1`
	res, err := exec.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
