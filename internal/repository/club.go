package repository

import (
	"context"
	"fmt"

	"github.com/guestlistapp/guestlist-api/internal/domain"
	"github.com/guestlistapp/guestlist-api/internal/repository/dao"
)

var (
	ErrClubNotFound    = dao.ErrClubNotFound
	ErrClubEmailExists = dao.ErrClubEmailExists
)

type ClubDAO interface {
	Insert(ctx context.Context, club dao.Club) (dao.Club, error)
	FindAll(ctx context.Context) ([]dao.Club, error)
	FindByID(ctx context.Context, id uint) (dao.Club, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (dao.Club, error)
	Delete(ctx context.Context, id uint) error
	SetCredentials(ctx context.Context, id uint, email, passwordHash string) (dao.Club, error)
}

type ClubRepository struct {
	dao ClubDAO
}

func NewClubRepository(dao ClubDAO) *ClubRepository {
	return &ClubRepository{
		dao: dao,
	}
}

func (r *ClubRepository) Create(ctx context.Context, club domain.Club) (domain.Club, error) {
	created, err := r.dao.Insert(ctx, dao.Club{
		Name:        club.Name,
		Location:    club.Location,
		Address:     club.Address,
		MapURL:      club.MapURL,
		Description: club.Description,
		ImageURL:    club.ImageURL,
	})
	if err != nil {
		return domain.Club{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ClubRepository) FindAll(ctx context.Context) ([]domain.Club, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	clubs := make([]domain.Club, 0, len(found))
	for _, c := range found {
		clubs = append(clubs, r.daoToDomain(c))
	}

	return clubs, nil
}

func (r *ClubRepository) FindByID(ctx context.Context, id uint) (domain.Club, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Club{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ClubRepository) Update(ctx context.Context, id uint, changes map[string]interface{}) (domain.Club, error) {
	updated, err := r.dao.Update(ctx, id, changes)
	if err != nil {
		return domain.Club{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ClubRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ClubRepository) SetCredentials(ctx context.Context, id uint, email, passwordHash string) (domain.Club, error) {
	updated, err := r.dao.SetCredentials(ctx, id, email, passwordHash)
	if err != nil {
		return domain.Club{}, fmt.Errorf("r.dao.SetCredentials -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ClubRepository) daoToDomain(c dao.Club) domain.Club {
	return domain.Club{
		ID:           c.ID,
		Name:         c.Name,
		Location:     c.Location,
		Address:      c.Address,
		MapURL:       c.MapURL,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
