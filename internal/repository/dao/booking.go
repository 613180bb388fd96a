package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID      uint `gorm:"primaryKey"`
	EventID uint `gorm:"not null;index"`

	Couples int `gorm:"not null"`
	Ladies  int `gorm:"not null"`
	Stags   int `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

func (d *BookingDAO) Insert(ctx context.Context, booking Booking) (Booking, error) {
	result := d.db.WithContext(ctx).Create(&booking)
	if result.Error != nil {
		return Booking{}, result.Error
	}

	return booking, nil
}

func (d *BookingDAO) FindByEventID(ctx context.Context, eventID uint) ([]Booking, error) {
	var bookings []Booking

	result := d.db.WithContext(ctx).Where("event_id = ?", eventID).Order("created_at asc").Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	return bookings, nil
}
