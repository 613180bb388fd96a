package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guestlistapp/guestlist-api/internal/domain"
	"github.com/guestlistapp/guestlist-api/internal/repository"
)

var ErrEventNotFound = repository.ErrEventNotFound

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (repository.EventWithBookings, error)
	FindAll(ctx context.Context, filter domain.EventFilter) ([]repository.EventWithBookings, error)
	FindByClubID(ctx context.Context, clubID uint) ([]repository.EventWithBookings, error)
	FindByID(ctx context.Context, id uint) (repository.EventWithBookings, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (repository.EventWithBookings, error)
	Delete(ctx context.Context, id uint) error
	CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	FindBookings(ctx context.Context, eventID uint) ([]domain.Booking, error)
}

type EventClubRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Club, error)
}

type EventService struct {
	repo     EventRepository
	clubRepo EventClubRepository
}

func NewEventService(repo EventRepository, clubRepo EventClubRepository) *EventService {
	return &EventService{
		repo:     repo,
		clubRepo: clubRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.AnnotatedEvent, error) {
	// The owning club must exist; the display name is always joined from it.
	if _, err := s.clubRepo.FindByID(ctx, event.ClubID); err != nil {
		return domain.AnnotatedEvent{}, fmt.Errorf("s.clubRepo.FindByID -> %w", err)
	}

	if event.GuestlistStatus == "" {
		event.GuestlistStatus = domain.GuestlistOpen
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.AnnotatedEvent{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return Annotate(created.Event, created.Bookings, time.Now()), nil
}

// GetEvents lists events matching the AND-composed filter, each annotated
// with guestlist metrics recomputed from its current bookings.
func (s *EventService) GetEvents(ctx context.Context, filter domain.EventFilter) ([]domain.AnnotatedEvent, error) {
	found, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return s.annotateAll(found), nil
}

func (s *EventService) GetEventsByClub(ctx context.Context, clubID uint) ([]domain.AnnotatedEvent, error) {
	if _, err := s.clubRepo.FindByID(ctx, clubID); err != nil {
		return nil, fmt.Errorf("s.clubRepo.FindByID -> %w", err)
	}

	found, err := s.repo.FindByClubID(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByClubID -> %w", err)
	}

	return s.annotateAll(found), nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.AnnotatedEvent, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.AnnotatedEvent{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return Annotate(found.Event, found.Bookings, time.Now()), nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint, changes map[string]interface{}) (domain.AnnotatedEvent, error) {
	if clubID, ok := changes["club_id"]; ok {
		if _, err := s.clubRepo.FindByID(ctx, clubID.(uint)); err != nil {
			return domain.AnnotatedEvent{}, fmt.Errorf("s.clubRepo.FindByID -> %w", err)
		}
	}

	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return domain.AnnotatedEvent{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return Annotate(updated.Event, updated.Bookings, time.Now()), nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// CreateBooking records a guestlist submission. Capacity is not enforced at
// write time; overbooking shows up as a negative remainder on reads.
func (s *EventService) CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	if _, err := s.repo.FindByID(ctx, booking.EventID); err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	created, err := s.repo.CreateBooking(ctx, booking)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.CreateBooking -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetBookings(ctx context.Context, eventID uint) ([]domain.Booking, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	bookings, err := s.repo.FindBookings(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindBookings -> %w", err)
	}

	return bookings, nil
}

func (s *EventService) annotateAll(events []repository.EventWithBookings) []domain.AnnotatedEvent {
	now := time.Now()

	annotated := make([]domain.AnnotatedEvent, 0, len(events))
	for _, e := range events {
		annotated = append(annotated, Annotate(e.Event, e.Bookings, now))
	}

	return annotated
}
