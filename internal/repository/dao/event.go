package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID     uint `gorm:"primaryKey"`
	ClubID uint `gorm:"not null;index"`
	Club   Club `gorm:"foreignKey:ClubID"`

	Title       string `gorm:"not null"`
	Location    string `gorm:"not null"`
	Description string `gorm:"not null"`
	Rules       string
	Genre       string `gorm:"not null;index"`
	ImageURL    string `gorm:"not null"`
	VideoURL    string
	Gallery     []string `gorm:"serializer:json"`

	Price      float64   `gorm:"not null"`
	PriceLabel string    `gorm:"not null"`
	Date       time.Time `gorm:"not null;index"`
	StartTime  string    `gorm:"not null"`
	EndTime    string    `gorm:"not null"`

	GuestlistStatus       string `gorm:"not null;default:open"`
	GuestlistLimit        *int
	ClosingThreshold      *int
	GuestlistCloseTime    *time.Time
	GuestlistCloseOnStart bool `gorm:"not null;default:false"`
	Featured              bool `gorm:"not null;default:false;index"`

	Bookings []Booking `gorm:"foreignKey:EventID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// EventFilter mirrors domain.EventFilter at the query layer.
type EventFilter struct {
	Genre    string
	Upcoming bool
	Featured *bool
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return d.FindByID(ctx, event.ID)
}

// FindAll returns events matching every set predicate, with the owning club
// and all bookings preloaded for read-time annotation.
func (d *EventDAO) FindAll(ctx context.Context, filter EventFilter) ([]Event, error) {
	query := d.db.WithContext(ctx).Preload("Club").Preload("Bookings")

	if filter.Genre != "" {
		query = query.Where("LOWER(genre) = LOWER(?)", filter.Genre)
	}
	if filter.Upcoming {
		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		query = query.Where("date >= ?", startOfDay)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var events []Event
	result := query.Order("date asc").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByClubID(ctx context.Context, clubID uint) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Preload("Club").
		Preload("Bookings").
		Where("club_id = ?", clubID).
		Order("date asc").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).Preload("Club").Preload("Bookings").First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// Update applies the given columns to the event row.
func (d *EventDAO) Update(ctx context.Context, id uint, changes map[string]interface{}) (Event, error) {
	result := d.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
