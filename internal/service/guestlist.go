package service

import (
	"time"

	"github.com/guestlistapp/guestlist-api/internal/domain"
)

// TotalGuests folds bookings into a guest count. The fold is commutative, so
// booking order never affects the result; zero bookings yield zero.
func TotalGuests(bookings []domain.Booking) int {
	total := 0
	for _, b := range bookings {
		total += b.Guests()
	}

	return total
}

// SpotsRemaining is nil exactly when no guestlist limit is set. It is not
// clamped: an overbooked event reports a negative remainder.
func SpotsRemaining(limit *int, totalGuests int) *int {
	if limit == nil {
		return nil
	}

	remaining := *limit - totalGuests
	return &remaining
}

// EffectiveStatus escalates the stored guestlist status from booking volume
// and time. It never downgrades: a manually closed list stays closed even
// with spots left.
func EffectiveStatus(event domain.Event, totalGuests int, now time.Time) string {
	status := event.GuestlistStatus
	if status == "" {
		status = domain.GuestlistOpen
	}
	if status == domain.GuestlistClosed {
		return status
	}

	if event.GuestlistLimit != nil && totalGuests >= *event.GuestlistLimit {
		return domain.GuestlistClosed
	}
	if event.GuestlistCloseTime != nil && !now.Before(*event.GuestlistCloseTime) {
		return domain.GuestlistClosed
	}
	if event.GuestlistCloseOnStart && !now.Before(event.Date) {
		return domain.GuestlistClosed
	}

	if status == domain.GuestlistClosing {
		return status
	}
	if event.ClosingThreshold != nil && totalGuests >= *event.ClosingThreshold {
		return domain.GuestlistClosing
	}

	return status
}

// Annotate projects an event and its bookings into the listed representation.
// Recomputed on every read; nothing is cached.
func Annotate(event domain.Event, bookings []domain.Booking, now time.Time) domain.AnnotatedEvent {
	total := TotalGuests(bookings)

	return domain.AnnotatedEvent{
		Event:           event,
		TotalGuests:     total,
		SpotsRemaining:  SpotsRemaining(event.GuestlistLimit, total),
		EffectiveStatus: EffectiveStatus(event, total, now),
	}
}
