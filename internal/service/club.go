package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/guestlistapp/guestlist-api/internal/domain"
	"github.com/guestlistapp/guestlist-api/internal/pkg/credgen"
	"github.com/guestlistapp/guestlist-api/internal/repository"
)

var (
	ErrClubNotFound    = repository.ErrClubNotFound
	ErrClubEmailExists = repository.ErrClubEmailExists
)

type ClubRepository interface {
	Create(ctx context.Context, club domain.Club) (domain.Club, error)
	FindAll(ctx context.Context) ([]domain.Club, error)
	FindByID(ctx context.Context, id uint) (domain.Club, error)
	Update(ctx context.Context, id uint, changes map[string]interface{}) (domain.Club, error)
	Delete(ctx context.Context, id uint) error
	SetCredentials(ctx context.Context, id uint, email, passwordHash string) (domain.Club, error)
}

type ClubService struct {
	repo ClubRepository
}

func NewClubService(repo ClubRepository) *ClubService {
	return &ClubService{
		repo: repo,
	}
}

func (s *ClubService) CreateClub(ctx context.Context, club domain.Club) (domain.Club, error) {
	created, err := s.repo.Create(ctx, club)
	if err != nil {
		return domain.Club{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ClubService) GetClubs(ctx context.Context) ([]domain.Club, error) {
	clubs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return clubs, nil
}

func (s *ClubService) GetClub(ctx context.Context, id uint) (domain.Club, error) {
	club, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Club{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return club, nil
}

func (s *ClubService) UpdateClub(ctx context.Context, id uint, changes map[string]interface{}) (domain.Club, error) {
	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return domain.Club{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ClubService) DeleteClub(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// ClubCredentials carries the one-time plaintext password back to the caller.
type ClubCredentials struct {
	Club     domain.Club
	Email    string
	Password string
}

// GenerateCredentials mints a portal login for the club. Only the bcrypt hash
// is stored; the plaintext password leaves this function once and is not
// retrievable afterwards.
func (s *ClubService) GenerateCredentials(ctx context.Context, id uint) (ClubCredentials, error) {
	club, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ClubCredentials{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	email := credgen.Email(club.Name)
	password := credgen.Password()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ClubCredentials{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	updated, err := s.repo.SetCredentials(ctx, id, email, string(hash))
	if err != nil {
		return ClubCredentials{}, fmt.Errorf("s.repo.SetCredentials -> %w", err)
	}

	return ClubCredentials{
		Club:     updated,
		Email:    email,
		Password: password,
	}, nil
}
