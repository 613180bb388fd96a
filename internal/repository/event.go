package repository

import (
	"context"
	"fmt"

	"github.com/guestlistapp/guestlist-api/internal/domain"
	"github.com/guestlistapp/guestlist-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context, filter dao.EventFilter) ([]dao.Event, error)
	FindByClubID(ctx context.Context, clubID uint) ([]dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (dao.Event, error)
	Delete(ctx context.Context, id uint) error
}

type BookingDAO interface {
	Insert(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Booking, error)
}

type EventRepository struct {
	events   EventDAO
	bookings BookingDAO
}

func NewEventRepository(events EventDAO, bookings BookingDAO) *EventRepository {
	return &EventRepository{
		events:   events,
		bookings: bookings,
	}
}

// EventWithBookings pairs an event with its raw bookings so the service layer
// can annotate it without a second round trip.
type EventWithBookings struct {
	Event    domain.Event
	Bookings []domain.Booking
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (EventWithBookings, error) {
	created, err := r.events.Insert(ctx, dao.Event{
		ClubID:                event.ClubID,
		Title:                 event.Title,
		Location:              event.Location,
		Description:           event.Description,
		Rules:                 event.Rules,
		Genre:                 event.Genre,
		ImageURL:              event.ImageURL,
		VideoURL:              event.VideoURL,
		Gallery:               event.Gallery,
		Price:                 event.Price,
		PriceLabel:            event.PriceLabel,
		Date:                  event.Date,
		StartTime:             event.StartTime,
		EndTime:               event.EndTime,
		GuestlistStatus:       event.GuestlistStatus,
		GuestlistLimit:        event.GuestlistLimit,
		ClosingThreshold:      event.ClosingThreshold,
		GuestlistCloseTime:    event.GuestlistCloseTime,
		GuestlistCloseOnStart: event.GuestlistCloseOnStart,
		Featured:              event.Featured,
	})
	if err != nil {
		return EventWithBookings{}, fmt.Errorf("r.events.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindAll(ctx context.Context, filter domain.EventFilter) ([]EventWithBookings, error) {
	found, err := r.events.FindAll(ctx, dao.EventFilter{
		Genre:    filter.Genre,
		Upcoming: filter.Upcoming,
		Featured: filter.Featured,
	})
	if err != nil {
		return nil, fmt.Errorf("r.events.FindAll -> %w", err)
	}

	return r.daoSliceToDomain(found), nil
}

func (r *EventRepository) FindByClubID(ctx context.Context, clubID uint) ([]EventWithBookings, error) {
	found, err := r.events.FindByClubID(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("r.events.FindByClubID -> %w", err)
	}

	return r.daoSliceToDomain(found), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (EventWithBookings, error) {
	found, err := r.events.FindByID(ctx, id)
	if err != nil {
		return EventWithBookings{}, fmt.Errorf("r.events.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) (EventWithBookings, error) {
	updated, err := r.events.Update(ctx, id, changes)
	if err != nil {
		return EventWithBookings{}, fmt.Errorf("r.events.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.events.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	created, err := r.bookings.Insert(ctx, dao.Booking{
		EventID: booking.EventID,
		Couples: booking.Couples,
		Ladies:  booking.Ladies,
		Stags:   booking.Stags,
	})
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.bookings.Insert -> %w", err)
	}

	return r.bookingDaoToDomain(created), nil
}

func (r *EventRepository) FindBookings(ctx context.Context, eventID uint) ([]domain.Booking, error) {
	found, err := r.bookings.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.bookings.FindByEventID -> %w", err)
	}

	bookings := make([]domain.Booking, 0, len(found))
	for _, b := range found {
		bookings = append(bookings, r.bookingDaoToDomain(b))
	}

	return bookings, nil
}

func (r *EventRepository) daoSliceToDomain(events []dao.Event) []EventWithBookings {
	out := make([]EventWithBookings, 0, len(events))
	for _, e := range events {
		out = append(out, r.daoToDomain(e))
	}

	return out
}

func (r *EventRepository) daoToDomain(e dao.Event) EventWithBookings {
	bookings := make([]domain.Booking, 0, len(e.Bookings))
	for _, b := range e.Bookings {
		bookings = append(bookings, r.bookingDaoToDomain(b))
	}

	return EventWithBookings{
		Event: domain.Event{
			ID:                    e.ID,
			ClubID:                e.ClubID,
			Club:                  e.Club.Name,
			Title:                 e.Title,
			Location:              e.Location,
			Description:           e.Description,
			Rules:                 e.Rules,
			Genre:                 e.Genre,
			ImageURL:              e.ImageURL,
			VideoURL:              e.VideoURL,
			Gallery:               e.Gallery,
			Price:                 e.Price,
			PriceLabel:            e.PriceLabel,
			Date:                  e.Date,
			StartTime:             e.StartTime,
			EndTime:               e.EndTime,
			GuestlistStatus:       e.GuestlistStatus,
			GuestlistLimit:        e.GuestlistLimit,
			ClosingThreshold:      e.ClosingThreshold,
			GuestlistCloseTime:    e.GuestlistCloseTime,
			GuestlistCloseOnStart: e.GuestlistCloseOnStart,
			Featured:              e.Featured,
			CreatedAt:             e.CreatedAt,
			UpdatedAt:             e.UpdatedAt,
		},
		Bookings: bookings,
	}
}

func (r *EventRepository) bookingDaoToDomain(b dao.Booking) domain.Booking {
	return domain.Booking{
		ID:        b.ID,
		EventID:   b.EventID,
		Couples:   b.Couples,
		Ladies:    b.Ladies,
		Stags:     b.Stags,
		CreatedAt: b.CreatedAt,
	}
}
