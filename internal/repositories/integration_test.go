package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/date-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("container tests skipped in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db))
	// second run must be a no-op
	require.NoError(t, Migrate(ctx, db))

	return db
}

func countPhotos(t *testing.T, db *sqlx.DB, dateID int64) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM photos WHERE date_id = $1", dateID))
	return n
}

func TestRepositories_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	users := NewUserWriteRepository(db)
	userReader := NewUserReadRepository(db)
	dateWriter := NewDateWriteRepository(db, nil)
	dateReader := NewDateReadRepository(db)
	photoWriter := NewPhotoWriteRepository(db)
	photoReader := NewPhotoReadRepository(db)

	aliceID, err := users.Save(ctx, "alice", "hash", "Alice", "Smith")
	require.NoError(t, err)
	bobID, err := users.Save(ctx, "bob", "hash", "", "")
	require.NoError(t, err)

	_, err = users.Save(ctx, "alice", "other", "A", "S")
	assert.ErrorIs(t, err, ErrUniqueViolation)

	newDate := func(name, location string, day models.Day) int64 {
		id, err := dateWriter.Save(ctx, &models.Date{
			ActivityName: name,
			Location:     location,
			DateDay:      day,
			CreatedBy:    aliceID,
		})
		require.NoError(t, err)
		return id
	}
	addPhoto := func(dateID int64, name string) {
		_, err := photoWriter.Save(ctx, &models.Photo{
			DateID:     dateID,
			Filename:   name,
			Filepath:   "static/images/" + name,
			UploadedBy: aliceID,
		})
		require.NoError(t, err)
	}

	hikeID := newDate("Hike", "Trailhead", models.NewDay(2024, time.May, 1))
	dinnerID := newDate("Dinner", "Bistro 50%", models.NewDay(2024, time.June, 2))
	movieID := newDate("Movie", "Cinema", models.NewDay(2024, time.April, 3))

	t.Run("list orders by day and resolves names", func(t *testing.T) {
		dates, err := dateReader.List(ctx, models.DateFilter{})
		require.NoError(t, err)
		require.Len(t, dates, 3)
		assert.Equal(t, []int64{dinnerID, hikeID, movieID}, []int64{dates[0].ID, dates[1].ID, dates[2].ID})
		assert.Equal(t, "Alice Smith", dates[0].CreatedByName)
		assert.Nil(t, dates[0].NotesEditedByName)
	})

	t.Run("list filters", func(t *testing.T) {
		dates, err := dateReader.List(ctx, models.DateFilter{ActivityName: "HIK"})
		require.NoError(t, err)
		require.Len(t, dates, 1)
		assert.Equal(t, hikeID, dates[0].ID)

		dates, err = dateReader.List(ctx, models.DateFilter{Location: "50%"})
		require.NoError(t, err)
		require.Len(t, dates, 1)
		assert.Equal(t, dinnerID, dates[0].ID)

		day := models.NewDay(2024, time.April, 3)
		dates, err = dateReader.List(ctx, models.DateFilter{DateDay: &day})
		require.NoError(t, err)
		require.Len(t, dates, 1)
		assert.Equal(t, movieID, dates[0].ID)
	})

	t.Run("partial update attributes notes", func(t *testing.T) {
		before, err := dateReader.GetByID(ctx, hikeID)
		require.NoError(t, err)

		ok, err := dateWriter.Update(ctx, hikeID, map[string]any{
			"notes":           "great",
			"notes_edited_by": bobID,
			"rating":          5,
		})
		require.NoError(t, err)
		assert.True(t, ok)

		after, err := dateReader.GetByID(ctx, hikeID)
		require.NoError(t, err)
		require.NotNil(t, after)
		assert.Equal(t, "great", after.Notes)
		assert.Equal(t, "Hike", after.ActivityName)
		if assert.NotNil(t, after.NotesEditedByName) {
			assert.Equal(t, "bob", *after.NotesEditedByName)
		}
		if assert.NotNil(t, after.Rating) {
			assert.Equal(t, 5, *after.Rating)
		}
		assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))

		rating := 5
		dates, err := dateReader.List(ctx, models.DateFilter{Rating: &rating})
		require.NoError(t, err)
		require.Len(t, dates, 1)

		ok, err = dateWriter.Update(ctx, hikeID, map[string]any{"rating": nil})
		require.NoError(t, err)
		assert.True(t, ok)
		after, err = dateReader.GetByID(ctx, hikeID)
		require.NoError(t, err)
		assert.Nil(t, after.Rating)
	})

	t.Run("photos grouped by date", func(t *testing.T) {
		addPhoto(hikeID, "a.png")
		addPhoto(hikeID, "b.png")
		addPhoto(dinnerID, "c.png")

		grouped, err := photoReader.ListByDateIDs(ctx, []int64{hikeID, dinnerID, movieID})
		require.NoError(t, err)
		assert.Len(t, grouped[hikeID], 2)
		assert.Len(t, grouped[dinnerID], 1)
		assert.Empty(t, grouped[movieID])
	})

	t.Run("delete cascades through the foreign key", func(t *testing.T) {
		require.Equal(t, 2, countPhotos(t, db, hikeID))

		ok, err := dateWriter.Delete(ctx, hikeID)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 0, countPhotos(t, db, hikeID))

		date, err := dateReader.GetByID(ctx, hikeID)
		require.NoError(t, err)
		assert.Nil(t, date)

		dates, err := dateReader.List(ctx, models.DateFilter{})
		require.NoError(t, err)
		for _, d := range dates {
			assert.NotEqual(t, hikeID, d.ID)
		}
	})

	t.Run("delete removes children inside a transaction", func(t *testing.T) {
		require.Equal(t, 1, countPhotos(t, db, dinnerID))

		tx, err := db.Beginx()
		require.NoError(t, err)
		txRepo := NewDateWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

		ok, err := txRepo.Delete(ctx, dinnerID)
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, tx.Rollback())

		// rolled back: nothing removed
		assert.Equal(t, 1, countPhotos(t, db, dinnerID))

		tx, err = db.Beginx()
		require.NoError(t, err)
		ok, err = txRepo.Delete(ctx, dinnerID)
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, tx.Commit())

		assert.Equal(t, 0, countPhotos(t, db, dinnerID))
	})

	t.Run("count and profile", func(t *testing.T) {
		count, err := dateReader.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		user, err := users.UpdateProfile(ctx, bobID, "Bob", "Stone")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Bob Stone", user.DisplayName())

		got, err := userReader.GetByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, bobID, got.ID)

		missing, err := users.UpdateProfile(ctx, 99999, "X", "Y")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

func TestSessionRevocationRepository_Redis(t *testing.T) {
	if testing.Short() {
		t.Skip("container tests skipped in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	// Start Redis container
	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewSessionRevocationRepository(rdb)

	t.Run("revoke then check", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "token-1", time.Minute))

		revoked, err := repo.IsRevoked(ctx, "token-1")
		assert.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("unknown token", func(t *testing.T) {
		revoked, err := repo.IsRevoked(ctx, "token-2")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("expired token ids are skipped", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "token-3", 0))

		revoked, err := repo.IsRevoked(ctx, "token-3")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("revocation expires", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "token-4", time.Second))
		time.Sleep(2 * time.Second)

		revoked, err := repo.IsRevoked(ctx, "token-4")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})
}
