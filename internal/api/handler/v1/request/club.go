package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/guestlistapp/guestlist-api/internal/domain"
)

type CreateClubRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Address     string `json:"address,omitempty"`
	MapURL      string `json:"mapUrl,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl"`
}

func (req *CreateClubRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.MapURL, is.URL),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.ImageURL, validation.Required, is.URL),
	)
}

func (req *CreateClubRequest) ToDomain() domain.Club {
	return domain.Club{
		Name:        req.Name,
		Location:    req.Location,
		Address:     req.Address,
		MapURL:      req.MapURL,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
}

// UpdateClubRequest is a partial payload; only present fields are validated
// and applied.
type UpdateClubRequest struct {
	Name        *string `json:"name,omitempty"`
	Location    *string `json:"location,omitempty"`
	Address     *string `json:"address,omitempty"`
	MapURL      *string `json:"mapUrl,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

func (req *UpdateClubRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.Location, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&req.MapURL, is.URL),
		validation.Field(&req.Description, validation.Length(0, 2000)),
		validation.Field(&req.ImageURL, validation.NilOrNotEmpty, is.URL),
	)
}

// Changes builds the column map for the partial update.
func (req *UpdateClubRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Location != nil {
		changes["location"] = *req.Location
	}
	if req.Address != nil {
		changes["address"] = *req.Address
	}
	if req.MapURL != nil {
		changes["map_url"] = *req.MapURL
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.ImageURL != nil {
		changes["image_url"] = *req.ImageURL
	}

	return changes
}
