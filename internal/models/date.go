package models

import (
	"encoding/json"
	"time"
)

// Date is a logged outing, joined with the display names of its creator and notes editor.
// swagger:model Date
type Date struct {
	ID                int64     `json:"id" db:"id"`
	ActivityName      string    `json:"activity_name" db:"activity_name"`
	Location          string    `json:"location" db:"location"`
	DateDay           Day       `json:"date_day" db:"date_day" swaggertype:"string" example:"2024-05-01"`
	Rating            *int      `json:"rating" db:"rating"`
	Notes             string    `json:"notes" db:"notes"`
	CreatedBy         int64     `json:"created_by" db:"created_by"`
	NotesEditedBy     *int64    `json:"notes_edited_by" db:"notes_edited_by"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
	CreatedByName     string    `json:"created_by_name" db:"created_by_name"`
	NotesEditedByName *string   `json:"notes_edited_by_name" db:"notes_edited_by_name"`
	Photos            []Photo   `json:"photos" db:"-"`
}

// DateFilter narrows GET /api/dates. Zero values mean "no filter".
type DateFilter struct {
	ActivityName string // case-insensitive substring
	Location     string // case-insensitive substring
	Rating       *int   // exact
	DateDay      *Day   // exact
}

// DateCreate represents the JSON body of POST /api/dates
// swagger:model DateCreate
type DateCreate struct {
	// required: true
	// example: Hike
	ActivityName string `json:"activity_name"`
	// required: true
	// example: Trailhead
	Location string `json:"location"`
	// required: true
	// example: 2024-05-01
	DateDay string `json:"date_day"`
	// example: 5
	Rating *int `json:"rating"`
	// example: great views
	Notes *string `json:"notes"`
}

// Optional tracks whether a JSON key was present, so that an explicit null
// can be told apart from an absent key.
type Optional[T any] struct {
	Set   bool
	Value T
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	return json.Unmarshal(b, &o.Value)
}

// DateUpdate represents the JSON body of PUT /api/dates/{id}; only present keys are applied.
// swagger:model DateUpdate
type DateUpdate struct {
	ActivityName Optional[string]  `json:"activity_name" swaggertype:"string"`
	Location     Optional[string]  `json:"location" swaggertype:"string"`
	DateDay      Optional[string]  `json:"date_day" swaggertype:"string"`
	Rating       Optional[*int]    `json:"rating" swaggertype:"integer"`
	Notes        Optional[*string] `json:"notes" swaggertype:"string"`
}

// Empty reports whether no updatable key was supplied.
func (u DateUpdate) Empty() bool {
	return !u.ActivityName.Set && !u.Location.Set && !u.DateDay.Set && !u.Rating.Set && !u.Notes.Set
}

// CountResponse is returned by GET /api/dates/count
// swagger:model CountResponse
type CountResponse struct {
	// example: 12
	Count int64 `json:"count"`
}
