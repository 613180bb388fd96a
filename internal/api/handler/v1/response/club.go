package response

import "github.com/guestlistapp/guestlist-api/internal/domain"

// ClubCredentialsResponse returns the generated portal login. The password
// appears here exactly once; only its hash survives server-side.
type ClubCredentialsResponse struct {
	Club     domain.Club `json:"club"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
}
