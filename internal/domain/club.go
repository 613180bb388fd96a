package domain

import "time"

type Club struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Address     string    `json:"address,omitempty"`
	MapURL      string    `json:"mapUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	Email       *string   `json:"email,omitempty"`
	// PasswordHash backs the club-portal login; the plaintext is returned
	// exactly once at generation time and never stored.
	PasswordHash *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
