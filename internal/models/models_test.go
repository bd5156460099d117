package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "full name", user: User{Username: "jd", FirstName: "John", LastName: "Doe"}, want: "John Doe"},
		{name: "first only", user: User{Username: "jd", FirstName: "John"}, want: "John"},
		{name: "blank names", user: User{Username: "jd", FirstName: " ", LastName: ""}, want: "jd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.DisplayName())
		})
	}
}

func TestDay_JSONAndScan(t *testing.T) {
	d := NewDay(2024, time.May, 1)

	b, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2024-05-01"`, string(b))

	var parsed Day
	assert.NoError(t, json.Unmarshal(b, &parsed))
	assert.True(t, d.Equal(parsed.Time))

	var scanned Day
	assert.NoError(t, scanned.Scan(time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "2024-05-01", scanned.String())

	assert.NoError(t, scanned.Scan([]byte("2023-12-31")))
	assert.Equal(t, "2023-12-31", scanned.String())

	assert.Error(t, scanned.Scan(42))

	_, err = ParseDay("05/01/2024")
	assert.Error(t, err)
}

func TestDateUpdate_Presence(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, u DateUpdate)
	}{
		{
			name: "empty object",
			body: `{}`,
			check: func(t *testing.T, u DateUpdate) {
				assert.True(t, u.Empty())
			},
		},
		{
			name: "unknown keys only",
			body: `{"foo": 1}`,
			check: func(t *testing.T, u DateUpdate) {
				assert.True(t, u.Empty())
			},
		},
		{
			name: "explicit nulls",
			body: `{"rating": null, "notes": null}`,
			check: func(t *testing.T, u DateUpdate) {
				assert.False(t, u.Empty())
				assert.True(t, u.Rating.Set)
				assert.Nil(t, u.Rating.Value)
				assert.True(t, u.Notes.Set)
				assert.Nil(t, u.Notes.Value)
				assert.False(t, u.Location.Set)
			},
		},
		{
			name: "values",
			body: `{"location": "Park", "rating": 4, "notes": ""}`,
			check: func(t *testing.T, u DateUpdate) {
				assert.Equal(t, Some("Park"), u.Location)
				if assert.NotNil(t, u.Rating.Value) {
					assert.Equal(t, 4, *u.Rating.Value)
				}
				if assert.NotNil(t, u.Notes.Value) {
					assert.Equal(t, "", *u.Notes.Value)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u DateUpdate
			assert.NoError(t, json.Unmarshal([]byte(tt.body), &u))
			tt.check(t, u)
		})
	}
}
