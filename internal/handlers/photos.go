package handlers

import (
	"context"
	"errors"
	"io/fs"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/date-tracker/internal/logger"
	"github.com/sbilibin2017/date-tracker/internal/models"
	"github.com/sbilibin2017/date-tracker/internal/services"
)

//go:generate mockgen -source=photos.go -destination=photos_mock.go -package=handlers

// multipartMemory is how much of a multipart body is kept in memory before spilling to disk.
const multipartMemory = 8 << 20

// multipartOverhead is the room left for form boundaries and headers on top of the file limit.
const multipartOverhead = 1 << 20

// PhotoUploader attaches uploaded files to dates.
type PhotoUploader interface {
	Upload(ctx context.Context, dateID int64, fh *multipart.FileHeader, actor int64) (*models.PhotoResponse, error)
	MaxBytes() int64
}

// ImageOpener opens stored images.
type ImageOpener interface {
	Open(name string) (*os.File, fs.FileInfo, error)
}

// ThumbnailBuilder renders thumbnails of stored images.
type ThumbnailBuilder interface {
	Thumbnail(name string) ([]byte, error)
}

// NewUploadPhotoHandler returns an HTTP handler storing a photo for a date.
// @Summary Upload photo
// @Description Multipart upload in the "photo" field. Allowed types: png, jpg, jpeg, gif, webp.
// @Tags photos
// @Accept mpfd
// @Produce json
// @Param id path int true "Date ID"
// @Param photo formData file true "Image file"
// @Success 201 {object} models.PhotoResponse
// @Failure 400 {object} models.ErrorResponse "No file provided / File type not allowed"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Date not found"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Security SessionCookie
// @Router /api/dates/{id}/photos [post]
func NewUploadPhotoHandler(svc PhotoUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := requireSession(w, r)
		if !ok {
			return
		}
		id, ok := dateID(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, svc.MaxBytes()+multipartOverhead)

		var fh *multipart.FileHeader
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeErrorMessage(w, http.StatusRequestEntityTooLarge, "File too large")
				return
			}
			logger.FromContext(r.Context()).Infow("unreadable multipart body", "err", err)
		} else {
			defer r.MultipartForm.RemoveAll()
			if files := r.MultipartForm.File["photo"]; len(files) > 0 {
				fh = files[0]
			}
		}

		photo, err := svc.Upload(r.Context(), id, fh, session.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, photo)
	}
}

// NewImageHandler returns an HTTP handler serving stored images.
// @Summary Serve image
// @Tags photos
// @Produce image/png,image/jpeg,image/gif,image/webp
// @Param filename path string true "Stored file name"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse "Image not found"
// @Router /static/images/{filename} [get]
func NewImageHandler(svc ImageOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveImage(w, r, svc, chi.URLParam(r, "filename"))
	}
}

// NewThumbnailHandler returns an HTTP handler serving JPEG thumbnails. Images
// that cannot be thumbnailed are served unchanged.
// @Summary Serve thumbnail
// @Tags photos
// @Produce image/jpeg
// @Param filename path string true "Stored file name"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse "Image not found"
// @Router /static/images/thumbs/{filename} [get]
func NewThumbnailHandler(thumbs ThumbnailBuilder, images ImageOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "filename")

		data, err := thumbs.Thumbnail(name)
		if errors.Is(err, services.ErrThumbnailUnsupported) {
			serveImage(w, r, images, name)
			return
		}
		if err != nil {
			writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "image/jpeg")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

func serveImage(w http.ResponseWriter, r *http.Request, svc ImageOpener, name string) {
	f, info, err := svc.Open(name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer f.Close()

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
