package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrClubNotFound    = errors.New("club not found")
	ErrClubEmailExists = errors.New("club portal email already exists")
)

type Club struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Location    string `gorm:"not null"`
	Address     string
	MapURL      string
	Description string
	ImageURL    string `gorm:"not null"`

	// Portal credentials, generated on demand.
	Email        *string `gorm:"uniqueIndex"`
	PasswordHash *string

	Events []Event `gorm:"foreignKey:ClubID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ClubDAO struct {
	db *gorm.DB
}

func NewClubDAO(db *gorm.DB) *ClubDAO {
	return &ClubDAO{
		db: db,
	}
}

func (d *ClubDAO) Insert(ctx context.Context, club Club) (Club, error) {
	result := d.db.WithContext(ctx).Create(&club)
	if result.Error != nil {
		return Club{}, result.Error
	}

	return club, nil
}

func (d *ClubDAO) FindAll(ctx context.Context) ([]Club, error) {
	var clubs []Club

	result := d.db.WithContext(ctx).Order("name asc").Find(&clubs)
	if result.Error != nil {
		return nil, result.Error
	}

	return clubs, nil
}

func (d *ClubDAO) FindByID(ctx context.Context, id uint) (Club, error) {
	var club Club

	result := d.db.WithContext(ctx).First(&club, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Club{}, ErrClubNotFound
		}

		return Club{}, result.Error
	}

	return club, nil
}

// Update applies the non-nil columns of changes to the club row.
func (d *ClubDAO) Update(ctx context.Context, id uint, changes map[string]interface{}) (Club, error) {
	result := d.db.WithContext(ctx).Model(&Club{}).Where("id = ?", id).Updates(changes)
	if result.Error != nil {
		return Club{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Club{}, ErrClubNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *ClubDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Club{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClubNotFound
	}

	return nil
}

// SetCredentials stores the portal email and password hash for a club.
func (d *ClubDAO) SetCredentials(ctx context.Context, id uint, email, passwordHash string) (Club, error) {
	result := d.db.WithContext(ctx).Model(&Club{}).Where("id = ?", id).Updates(map[string]interface{}{
		"email":         email,
		"password_hash": passwordHash,
	})
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Club{}, ErrClubEmailExists
		}

		return Club{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Club{}, ErrClubNotFound
	}

	return d.FindByID(ctx, id)
}
