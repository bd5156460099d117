package services

//go:generate mockgen -source=date.go -destination=date_mock.go -package=services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/date-tracker/internal/logger"
	"github.com/sbilibin2017/date-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

const (
	minRating = 1
	maxRating = 5
)

// DateReader defines read operations for dates.
type DateReader interface {
	List(ctx context.Context, filter models.DateFilter) ([]models.Date, error)
	GetByID(ctx context.Context, id int64) (*models.Date, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// DateWriter defines write operations for dates.
type DateWriter interface {
	Save(ctx context.Context, date *models.Date) (int64, error)
	Update(ctx context.Context, id int64, changes map[string]any) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PhotoReader loads the photos attached to dates.
type PhotoReader interface {
	ListByDateID(ctx context.Context, dateID int64) ([]models.Photo, error)
	ListByDateIDs(ctx context.Context, dateIDs []int64) (map[int64][]models.Photo, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// DateService handles date records and publishes their lifecycle events.
type DateService struct {
	reader      DateReader
	writer      DateWriter
	photos      PhotoReader
	kafkaWriter KafkaWriter
	afterCommit func(ctx context.Context, fn func())
}

// NewDateService creates a new DateService. kafkaWriter may be nil.
// afterCommit defers event publishing until the request transaction in ctx
// commits; nil publishes immediately.
func NewDateService(
	reader DateReader,
	writer DateWriter,
	photos PhotoReader,
	kafkaWriter KafkaWriter,
	afterCommit func(ctx context.Context, fn func()),
) *DateService {
	if afterCommit == nil {
		afterCommit = func(_ context.Context, fn func()) { fn() }
	}
	return &DateService{
		reader:      reader,
		writer:      writer,
		photos:      photos,
		kafkaWriter: kafkaWriter,
		afterCommit: afterCommit,
	}
}

// ParseDateFilter builds a filter from query parameters. Empty values are ignored.
func ParseDateFilter(activityName, location, rating, dateDay string) (models.DateFilter, error) {
	filter := models.DateFilter{
		ActivityName: activityName,
		Location:     location,
	}
	if rating != "" {
		r, err := strconv.Atoi(rating)
		if err != nil {
			return filter, validationError("Invalid rating filter")
		}
		filter.Rating = &r
	}
	if dateDay != "" {
		d, err := models.ParseDay(dateDay)
		if err != nil {
			return filter, validationError("Invalid date_day filter, expected YYYY-MM-DD")
		}
		filter.DateDay = &d
	}
	return filter, nil
}

// List returns the dates matching filter, each with its photos.
func (s *DateService) List(ctx context.Context, filter models.DateFilter) ([]models.Date, error) {
	dates, err := s.reader.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list dates", "err", err)
		return nil, err
	}
	if len(dates) == 0 {
		return []models.Date{}, nil
	}

	ids := make([]int64, len(dates))
	for i := range dates {
		ids[i] = dates[i].ID
	}

	photos, err := s.photos.ListByDateIDs(ctx, ids)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list photos", "err", err)
		return nil, err
	}

	for i := range dates {
		dates[i].Photos = photos[dates[i].ID]
		if dates[i].Photos == nil {
			dates[i].Photos = []models.Photo{}
		}
	}
	return dates, nil
}

// Get returns one date with its photos.
func (s *DateService) Get(ctx context.Context, id int64) (*models.Date, error) {
	date, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get date", "date_id", id, "err", err)
		return nil, err
	}
	if date == nil {
		return nil, notFoundError("Date not found")
	}

	photos, err := s.photos.ListByDateID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list photos", "date_id", id, "err", err)
		return nil, err
	}
	if photos == nil {
		photos = []models.Photo{}
	}
	date.Photos = photos
	return date, nil
}

// Create stores a new date owned by actor and returns it as Get would.
func (s *DateService) Create(ctx context.Context, in models.DateCreate, actor int64) (*models.Date, error) {
	activity := strings.TrimSpace(in.ActivityName)
	location := strings.TrimSpace(in.Location)
	day := strings.TrimSpace(in.DateDay)
	if activity == "" || location == "" || day == "" {
		return nil, validationError("Activity name, location, and date are required")
	}

	dateDay, err := models.ParseDay(day)
	if err != nil {
		return nil, validationError("Invalid date_day, expected YYYY-MM-DD")
	}
	if err := validateRating(in.Rating); err != nil {
		return nil, err
	}

	date := &models.Date{
		ActivityName: activity,
		Location:     location,
		DateDay:      dateDay,
		Rating:       in.Rating,
		CreatedBy:    actor,
	}
	if in.Notes != nil {
		date.Notes = *in.Notes
	}
	if strings.TrimSpace(date.Notes) != "" {
		date.NotesEditedBy = &actor
	}

	id, err := s.writer.Save(ctx, date)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save date", "err", err)
		return nil, err
	}

	s.afterCommit(ctx, func() { s.publish(ctx, id, actor, models.OperationCreated) })

	return s.Get(ctx, id)
}

// Update applies the fields present in in. Any presence of notes, even null
// or empty, makes actor the notes editor.
func (s *DateService) Update(ctx context.Context, id int64, in models.DateUpdate, actor int64) (*models.Date, error) {
	if in.Empty() {
		return nil, validationError("No fields to update")
	}

	changes := make(map[string]any)
	if in.ActivityName.Set {
		v := strings.TrimSpace(in.ActivityName.Value)
		if v == "" {
			return nil, validationError("Activity name cannot be empty")
		}
		changes["activity_name"] = v
	}
	if in.Location.Set {
		v := strings.TrimSpace(in.Location.Value)
		if v == "" {
			return nil, validationError("Location cannot be empty")
		}
		changes["location"] = v
	}
	if in.DateDay.Set {
		d, err := models.ParseDay(strings.TrimSpace(in.DateDay.Value))
		if err != nil {
			return nil, validationError("Invalid date_day, expected YYYY-MM-DD")
		}
		changes["date_day"] = d
	}
	if in.Rating.Set {
		if err := validateRating(in.Rating.Value); err != nil {
			return nil, err
		}
		changes["rating"] = in.Rating.Value
	}
	if in.Notes.Set {
		notes := ""
		if in.Notes.Value != nil {
			notes = *in.Notes.Value
		}
		changes["notes"] = notes
		changes["notes_edited_by"] = actor
	}

	ok, err := s.writer.Update(ctx, id, changes)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update date", "date_id", id, "err", err)
		return nil, err
	}
	if !ok {
		return nil, notFoundError("Date not found")
	}

	s.afterCommit(ctx, func() { s.publish(ctx, id, actor, models.OperationUpdated) })

	return s.Get(ctx, id)
}

// Delete removes a date and, with it, its photo rows.
func (s *DateService) Delete(ctx context.Context, id int64, actor int64) error {
	ok, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete date", "date_id", id, "err", err)
		return err
	}
	if !ok {
		return notFoundError("Date not found")
	}

	s.afterCommit(ctx, func() { s.publish(ctx, id, actor, models.OperationDeleted) })
	return nil
}

// Count returns the number of stored dates.
func (s *DateService) Count(ctx context.Context) (int64, error) {
	n, err := s.reader.Count(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to count dates", "err", err)
		return 0, err
	}
	return n, nil
}

// Exists reports whether a date with id is stored.
func (s *DateService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.reader.Exists(ctx, id)
}

func validateRating(rating *int) error {
	if rating != nil && (*rating < minRating || *rating > maxRating) {
		return validationError("Rating must be between 1 and 5")
	}
	return nil
}

// publish sends a DateEvent to Kafka. Failures are logged, never returned.
func (s *DateService) publish(ctx context.Context, dateID, userID int64, operation string) {
	event := models.DateEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		DateID:    dateID,
		UserID:    userID,
		Operation: operation,
	}

	if s.kafkaWriter == nil {
		logger.FromContext(ctx).Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to marshal date event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(dateID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("Failed to publish date event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.FromContext(ctx).Infow("Date event published to Kafka", "event_id", event.EventID, "date_id", dateID, "operation", operation)
	}
}
