package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateEventRequest() CreateEventRequest {
	return CreateEventRequest{
		ClubID:      1,
		Title:       "Saturday Night",
		Location:    "Lower Parel",
		Description: "Weekly techno night",
		Genre:       "Techno",
		ImageURL:    "https://media.example.com/poster.jpg",
		Price:       1500,
		PriceLabel:  "1500 per couple",
		Date:        "2026-09-05",
		StartTime:   "21:00",
		EndTime:     "02:00",
	}
}

func TestCreateEventRequest_Validate(t *testing.T) {
	req := validCreateEventRequest()
	assert.NoError(t, req.Validate())

	tests := []struct {
		name   string
		mutate func(r *CreateEventRequest)
	}{
		{"missing club id", func(r *CreateEventRequest) { r.ClubID = 0 }},
		{"one-letter title", func(r *CreateEventRequest) { r.Title = "X" }},
		{"missing image url", func(r *CreateEventRequest) { r.ImageURL = "" }},
		{"malformed image url", func(r *CreateEventRequest) { r.ImageURL = "not a url" }},
		{"malformed gallery entry", func(r *CreateEventRequest) { r.Gallery = []string{"https://ok.example.com/1.jpg", "not a url"} }},
		{"negative price", func(r *CreateEventRequest) { r.Price = -1 }},
		{"slash date", func(r *CreateEventRequest) { r.Date = "05/09/2026" }},
		{"12h start time", func(r *CreateEventRequest) { r.StartTime = "9pm" }},
		{"out-of-range hour", func(r *CreateEventRequest) { r.EndTime = "24:00" }},
		{"unknown status", func(r *CreateEventRequest) { r.GuestlistStatus = "paused" }},
		{"zero limit", func(r *CreateEventRequest) { limit := 0; r.GuestlistLimit = &limit }},
		{"non-rfc3339 close time", func(r *CreateEventRequest) { s := "tonight"; r.GuestlistCloseTime = &s }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateEventRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateEventRequest_ToDomain(t *testing.T) {
	req := validCreateEventRequest()
	limit := 50
	req.GuestlistLimit = &limit
	closeTime := "2026-09-05T20:00:00Z"
	req.GuestlistCloseTime = &closeTime

	event, err := req.ToDomain()
	require.NoError(t, err)

	assert.Equal(t, uint(1), event.ClubID)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.Local), event.Date)
	require.NotNil(t, event.GuestlistLimit)
	assert.Equal(t, 50, *event.GuestlistLimit)
	require.NotNil(t, event.GuestlistCloseTime)
	assert.Equal(t, time.Date(2026, 9, 5, 20, 0, 0, 0, time.UTC), event.GuestlistCloseTime.UTC())
}

func TestUpdateEventRequest_Validate(t *testing.T) {
	empty := UpdateEventRequest{}
	assert.NoError(t, empty.Validate())

	title := "Renamed Night"
	date := "2026-10-01"
	partial := UpdateEventRequest{Title: &title, Date: &date}
	assert.NoError(t, partial.Validate())

	badStatus := "paused"
	assert.Error(t, (&UpdateEventRequest{GuestlistStatus: &badStatus}).Validate())

	emptyTitle := ""
	assert.Error(t, (&UpdateEventRequest{Title: &emptyTitle}).Validate())
}

func TestUpdateEventRequest_Changes(t *testing.T) {
	empty := UpdateEventRequest{}
	changes, err := empty.Changes()
	require.NoError(t, err)
	assert.Empty(t, changes)

	title := "Renamed Night"
	clubID := uint(2)
	date := "2026-10-01"
	featured := true
	req := UpdateEventRequest{
		Title:    &title,
		ClubID:   &clubID,
		Date:     &date,
		Featured: &featured,
	}

	changes, err = req.Changes()
	require.NoError(t, err)

	assert.Len(t, changes, 4)
	assert.Equal(t, "Renamed Night", changes["title"])
	assert.Equal(t, uint(2), changes["club_id"])
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.Local), changes["date"])
	assert.Equal(t, true, changes["featured"])
}

func TestCreateBookingRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateBookingRequest{Couples: 1}).Validate())
	assert.NoError(t, (&CreateBookingRequest{Ladies: 2, Stags: 1}).Validate())

	assert.ErrorIs(t, (&CreateBookingRequest{}).Validate(), errEmptyBooking)
	assert.Error(t, (&CreateBookingRequest{Couples: -1, Stags: 3}).Validate())
}
