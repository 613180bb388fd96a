package domain

import "time"

// Booking is a single guestlist submission. A couple counts as two guests.
type Booking struct {
	ID        uint      `json:"id"`
	EventID   uint      `json:"eventId"`
	Couples   int       `json:"couples"`
	Ladies    int       `json:"ladies"`
	Stags     int       `json:"stags"`
	CreatedAt time.Time `json:"createdAt"`
}

// Guests is the number of guests this booking contributes.
func (b Booking) Guests() int {
	return b.Couples*2 + b.Ladies + b.Stags
}
