package response

import "github.com/guestlistapp/guestlist-api/internal/domain"

type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}
