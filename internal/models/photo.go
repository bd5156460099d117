package models

import "time"

// Photo is an image attached to a date.
// swagger:model Photo
type Photo struct {
	ID         int64     `json:"id" db:"id"`
	DateID     int64     `json:"date_id" db:"date_id"`
	Filename   string    `json:"filename" db:"filename"` // original client filename
	Filepath   string    `json:"filepath" db:"filepath"` // static/images/<stored name>
	UploadedBy int64     `json:"uploaded_by" db:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}

// PhotoResponse is returned by POST /api/dates/{id}/photos
// swagger:model PhotoResponse
type PhotoResponse struct {
	// example: 3
	ID int64 `json:"id"`
	// example: beach.png
	Filename string `json:"filename"`
	// example: static/images/20240501_101500_beach.png
	Filepath string `json:"filepath"`
}
