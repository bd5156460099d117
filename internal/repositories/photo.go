package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/date-tracker/internal/models"
)

const photoColumns = `id, date_id, filename, filepath, uploaded_by, uploaded_at`

// PhotoReadRepository handles photo read operations
type PhotoReadRepository struct {
	db *sqlx.DB
}

func NewPhotoReadRepository(db *sqlx.DB) *PhotoReadRepository {
	return &PhotoReadRepository{db: db}
}

// ListByDateID returns the photos of one date in upload order.
func (r *PhotoReadRepository) ListByDateID(ctx context.Context, dateID int64) ([]models.Photo, error) {
	const query = `SELECT ` + photoColumns + ` FROM photos WHERE date_id = $1 ORDER BY id`

	photos := []models.Photo{}
	err := r.db.SelectContext(ctx, &photos, query, dateID)

	logQuery(ctx, query, []any{dateID}, len(photos), err)

	if err != nil {
		return nil, err
	}
	return photos, nil
}

// ListByDateIDs returns the photos of several dates grouped by date id.
func (r *PhotoReadRepository) ListByDateIDs(ctx context.Context, dateIDs []int64) (map[int64][]models.Photo, error) {
	grouped := make(map[int64][]models.Photo, len(dateIDs))
	if len(dateIDs) == 0 {
		return grouped, nil
	}

	query, args, err := sqlx.In(`SELECT `+photoColumns+` FROM photos WHERE date_id IN (?) ORDER BY id`, dateIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var photos []models.Photo
	err = r.db.SelectContext(ctx, &photos, query, args...)

	logQuery(ctx, query, args, len(photos), err)

	if err != nil {
		return nil, err
	}
	for _, p := range photos {
		grouped[p.DateID] = append(grouped[p.DateID], p)
	}
	return grouped, nil
}

// PhotoWriteRepository handles photo write operations
type PhotoWriteRepository struct {
	db *sqlx.DB
}

func NewPhotoWriteRepository(db *sqlx.DB) *PhotoWriteRepository {
	return &PhotoWriteRepository{db: db}
}

// Save inserts a photo row and returns its id.
func (r *PhotoWriteRepository) Save(ctx context.Context, photo *models.Photo) (int64, error) {
	const query = `
		INSERT INTO photos (date_id, filename, filepath, uploaded_by, uploaded_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`
	args := []any{photo.DateID, photo.Filename, photo.Filepath, photo.UploadedBy}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logQuery(ctx, query, args, id, err)

	return id, err
}
