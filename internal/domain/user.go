package domain

import "time"

// User is an account holder. Identity is either an email (password signup) or
// a phone number (provider-verified phone auth); phone users may carry no
// email or password at all.
type User struct {
	ID           uint      `json:"id"`
	Email        *string   `json:"email,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	PasswordHash *string   `json:"-"`
	Name         string    `json:"name"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
