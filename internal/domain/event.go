package domain

import "time"

// Guestlist statuses. Stored on the event; the effective status served to
// clients may be escalated (never downgraded) from booking volume and time.
const (
	GuestlistOpen    = "open"
	GuestlistClosing = "closing"
	GuestlistClosed  = "closed"
)

type Event struct {
	ID     uint `json:"id"`
	ClubID uint `json:"clubId"`
	// Club is the owning club's display name, always joined from ClubID.
	Club string `json:"club"`

	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Rules       string   `json:"rules,omitempty"`
	Genre       string   `json:"genre"`
	ImageURL    string   `json:"imageUrl"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Gallery     []string `json:"gallery"`

	Price      float64   `json:"price"`
	PriceLabel string    `json:"priceLabel"`
	Date       time.Time `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`

	GuestlistStatus       string     `json:"guestlistStatus"`
	GuestlistLimit        *int       `json:"guestlistLimit,omitempty"`
	ClosingThreshold      *int       `json:"closingThreshold,omitempty"`
	GuestlistCloseTime    *time.Time `json:"guestlistCloseTime,omitempty"`
	GuestlistCloseOnStart bool       `json:"guestlistCloseOnStart"`
	Featured              bool       `json:"featured"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AnnotatedEvent is an event decorated with the read-time guestlist metrics.
// SpotsRemaining is null when the event has no guestlist limit and may be
// negative when overbooked.
type AnnotatedEvent struct {
	Event
	TotalGuests     int    `json:"totalGuests"`
	SpotsRemaining  *int   `json:"spotsRemaining"`
	EffectiveStatus string `json:"effectiveStatus"`
}

// EventFilter holds the AND-composed listing predicates. Zero values mean
// "no filter"; Genre "all" is treated the same as absent.
type EventFilter struct {
	Genre    string
	Upcoming bool
	Featured *bool
}
