package services

//go:generate mockgen -source=photo.go -destination=photo_mock.go -package=services

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"strings"

	"github.com/sbilibin2017/date-tracker/internal/logger"
	"github.com/sbilibin2017/date-tracker/internal/models"
	"github.com/sbilibin2017/date-tracker/internal/storage"
)

// DefaultMaxUploadBytes caps the size of one uploaded photo.
const DefaultMaxUploadBytes int64 = 16 << 20

// ErrThumbnailUnsupported is returned when no thumbnail can be produced for an image.
var ErrThumbnailUnsupported = errors.New("thumbnail not supported")

// DateChecker reports whether a date exists.
type DateChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// PhotoWriter persists photo rows.
type PhotoWriter interface {
	Save(ctx context.Context, photo *models.Photo) (int64, error)
}

// ImageStorage keeps image files.
type ImageStorage interface {
	Save(originalName string, src io.Reader) (string, string, error)
	Open(name string) (*os.File, fs.FileInfo, error)
	Thumbnail(name string) ([]byte, error)
}

// PhotoService handles photo uploads and serving stored images.
type PhotoService struct {
	dates    DateChecker
	writer   PhotoWriter
	images   ImageStorage
	maxBytes int64
}

// NewPhotoService creates a PhotoService. maxBytes <= 0 selects DefaultMaxUploadBytes.
func NewPhotoService(dates DateChecker, writer PhotoWriter, images ImageStorage, maxBytes int64) *PhotoService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &PhotoService{
		dates:    dates,
		writer:   writer,
		images:   images,
		maxBytes: maxBytes,
	}
}

// MaxBytes returns the upload size limit.
func (s *PhotoService) MaxBytes() int64 {
	return s.maxBytes
}

// Upload stores the file and attaches it to the date. A row insert failure
// leaves the stored file behind.
func (s *PhotoService) Upload(ctx context.Context, dateID int64, fh *multipart.FileHeader, actor int64) (*models.PhotoResponse, error) {
	if fh == nil {
		return nil, validationError("No file provided")
	}
	if strings.TrimSpace(fh.Filename) == "" {
		return nil, validationError("No file selected")
	}
	ext, ok := storage.Extension(fh.Filename)
	if !ok {
		return nil, validationError("File type not allowed")
	}

	exists, err := s.dates.Exists(ctx, dateID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to check date exists", "date_id", dateID, "err", err)
		return nil, err
	}
	if !exists {
		return nil, notFoundError("Date not found")
	}

	if fh.Size > s.maxBytes {
		return nil, validationError("File too large")
	}

	file, err := fh.Open()
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to open upload", "err", err)
		return nil, err
	}
	defer file.Close()

	if err := storage.ValidateContent(file, ext); err != nil {
		if errors.Is(err, storage.ErrContentMismatch) {
			logger.FromContext(ctx).Infow("upload rejected", "filename", fh.Filename, "err", err)
			return nil, validationError("File content does not match its type")
		}
		return nil, err
	}

	storedName, relPath, err := s.images.Save(fh.Filename, io.LimitReader(file, s.maxBytes))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to store image", "filename", fh.Filename, "err", err)
		return nil, err
	}

	photo := &models.Photo{
		DateID:     dateID,
		Filename:   fh.Filename,
		Filepath:   relPath,
		UploadedBy: actor,
	}
	id, err := s.writer.Save(ctx, photo)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save photo", "stored_name", storedName, "err", err)
		return nil, err
	}

	return &models.PhotoResponse{
		ID:       id,
		Filename: photo.Filename,
		Filepath: photo.Filepath,
	}, nil
}

// Open returns a stored image for serving.
func (s *PhotoService) Open(name string) (*os.File, fs.FileInfo, error) {
	f, info, err := s.images.Open(name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, notFoundError("Image not found")
	}
	if err != nil {
		logger.Log.Errorw("failed to open image", "name", name, "err", err)
		return nil, nil, err
	}
	return f, info, nil
}

// Thumbnail returns a JPEG thumbnail of a stored image.
func (s *PhotoService) Thumbnail(name string) ([]byte, error) {
	data, err := s.images.Thumbnail(name)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, notFoundError("Image not found")
	case errors.Is(err, storage.ErrThumbnailUnsupported):
		return nil, ErrThumbnailUnsupported
	case err != nil:
		logger.Log.Errorw("failed to build thumbnail", "name", name, "err", err)
		return nil, err
	}
	return data, nil
}
